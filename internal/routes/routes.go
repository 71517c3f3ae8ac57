package routes

import (
	"math/rand"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-manager/internal/audit"
	"github.com/BruksfildServices01/barber-manager/internal/config"
	"github.com/BruksfildServices01/barber-manager/internal/handlers"
	"github.com/BruksfildServices01/barber-manager/internal/infra/notifier"
	infraRepo "github.com/BruksfildServices01/barber-manager/internal/infra/repository"
	"github.com/BruksfildServices01/barber-manager/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/barber-manager/internal/usecase/appointment"
	ucLoyalty "github.com/BruksfildServices01/barber-manager/internal/usecase/loyalty"
	ucPlan "github.com/BruksfildServices01/barber-manager/internal/usecase/plan"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	planRepo := infraRepo.NewPlanGormRepository(db)
	loyaltyRepo := infraRepo.NewLoyaltyGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// Nil quando REDIS_ADDR vazio ou fora do ar — o ledger segue sem publicar
	loyaltyNotifier := notifier.NewRedisNotifier(cfg.RedisAddr)

	drawRNG := rand.New(rand.NewSource(time.Now().UnixNano()))

	// ======================================================
	// 🧠 USE CASES — LOYALTY
	// ======================================================
	loyaltyLedger := ucLoyalty.NewLedger(loyaltyRepo, loyaltyNotifier, auditDispatcher)
	loyaltySettingsUC := ucLoyalty.NewSettings(loyaltyRepo, loyaltyNotifier)
	drawRewardUC := ucLoyalty.NewDrawReward(loyaltyRepo, loyaltyNotifier, auditDispatcher, drawRNG)
	loyaltyHistoryUC := ucLoyalty.NewHistory(loyaltyRepo)

	// ======================================================
	// 🧠 USE CASES — APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	startAppointmentUC := ucAppointment.NewStartAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	completeAppointmentUC := ucAppointment.NewCompleteAppointment(
		appointmentRepo,
		loyaltyLedger,
		auditDispatcher,
	)

	cancelAppointmentUC := ucAppointment.NewCancelAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	markNoShowUC := ucAppointment.NewMarkNoShow(
		appointmentRepo,
		auditDispatcher,
	)

	rescheduleAppointmentUC := ucAppointment.NewRescheduleAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	getAvailabilityUC := ucAppointment.NewGetAvailability(appointmentRepo)

	listAppointmentsByDateUC := ucAppointment.NewListAppointmentsByDate(
		appointmentRepo,
	)

	listAppointmentsByMonthUC := ucAppointment.NewListAppointmentsByMonth(
		appointmentRepo,
	)

	// ======================================================
	// 🧠 USE CASES — MONTHLY PLANS
	// ======================================================
	enrollPlanUC := ucPlan.NewEnrollPlan(planRepo, appointmentRepo, auditDispatcher)
	editScheduleUC := ucPlan.NewEditSchedule(planRepo, appointmentRepo, auditDispatcher)
	suspendPlanUC := ucPlan.NewSuspendPlan(planRepo, auditDispatcher)
	reactivatePlanUC := ucPlan.NewReactivatePlan(planRepo, auditDispatcher)
	cancelPlanUC := ucPlan.NewCancelPlan(planRepo, appointmentRepo, auditDispatcher)
	markPlanPaidUC := ucPlan.NewMarkPlanPaid(planRepo, auditDispatcher)
	listPlansUC := ucPlan.NewListPlans(planRepo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	barbershopHandler := handlers.NewBarbershopHandler(db)

	serviceHandler := handlers.NewServiceHandler(db)
	clientHandler := handlers.NewClientHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		startAppointmentUC,
		completeAppointmentUC,
		cancelAppointmentUC,
		markNoShowUC,
		rescheduleAppointmentUC,
		getAvailabilityUC,
		listAppointmentsByDateUC,
		listAppointmentsByMonthUC,
	)

	planHandler := handlers.NewPlanHandler(
		enrollPlanUC,
		editScheduleUC,
		suspendPlanUC,
		reactivatePlanUC,
		cancelPlanUC,
		markPlanPaidUC,
		listPlansUC,
	)

	loyaltyHandler := handlers.NewLoyaltyHandler(
		loyaltyRepo,
		loyaltyLedger,
		loyaltySettingsUC,
		drawRewardUC,
		loyaltyHistoryUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	publicHandler := handlers.NewPublicHandler(db, auditDispatcher)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/:slug/services", publicHandler.ListServices)
			publicAPI.GET("/:slug/availability", publicHandler.Availability)
			publicAPI.POST("/:slug/appointments", publicHandler.CreateAppointment)
			publicAPI.GET("/:slug/appointments/:reference", publicHandler.GetAppointment)
			publicAPI.PATCH("/:slug/appointments/:reference/cancel", publicHandler.CancelAppointment)
		}

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/barbershop", barbershopHandler.GetMeBarbershop)
			secured.PATCH("/me/barbershop", barbershopHandler.UpdateMeBarbershop)

			secured.GET("/me/clients", clientHandler.List)
			secured.GET("/me/clients/:id", clientHandler.Get)

			secured.GET("/me/services", serviceHandler.List)
			secured.POST("/me/services", serviceHandler.Create)
			secured.PATCH("/me/services/:id", serviceHandler.Update)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/me/appointments", appointmentHandler.Create)
			secured.GET("/me/appointments", appointmentHandler.ListByDate)
			secured.GET("/me/appointments/month", appointmentHandler.ListByMonth)
			secured.GET("/me/appointments/availability", appointmentHandler.Availability)
			secured.PATCH("/me/appointments/:id/start", appointmentHandler.Start)
			secured.PATCH("/me/appointments/:id/complete", appointmentHandler.Complete)
			secured.PATCH("/me/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.PATCH("/me/appointments/:id/no-show", appointmentHandler.NoShow)
			secured.PATCH("/me/appointments/:id/reschedule", appointmentHandler.Reschedule)

			// ------------------------------
			// MONTHLY PLANS
			// ------------------------------
			secured.POST("/me/plans", planHandler.Enroll)
			secured.GET("/me/plans", planHandler.List)
			secured.PUT("/me/plans/:id/schedule", planHandler.EditSchedule)
			secured.PATCH("/me/plans/:id/suspend", planHandler.Suspend)
			secured.PATCH("/me/plans/:id/reactivate", planHandler.Reactivate)
			secured.PATCH("/me/plans/:id/cancel", planHandler.Cancel)
			secured.PATCH("/me/plans/:id/mark-paid", planHandler.MarkPaid)

			// ------------------------------
			// LOYALTY
			// ------------------------------
			secured.GET("/me/loyalty/accounts", loyaltyHandler.ListAccounts)
			secured.GET("/me/loyalty/accounts/:clientId", loyaltyHandler.GetAccount)
			secured.POST("/me/loyalty/accounts/:clientId/redeem", loyaltyHandler.Redeem)
			secured.GET("/me/loyalty/accounts/:clientId/history", loyaltyHandler.History)
			secured.GET("/me/loyalty/settings", loyaltyHandler.GetSettings)
			secured.PUT("/me/loyalty/settings", loyaltyHandler.UpdateSettings)
			secured.POST("/me/loyalty/draw", loyaltyHandler.Draw)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
