package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-manager/internal/httperr"
	"github.com/BruksfildServices01/barber-manager/internal/middleware"
	"github.com/BruksfildServices01/barber-manager/internal/models"
	ucPlan "github.com/BruksfildServices01/barber-manager/internal/usecase/plan"
)

type planLifecycleFunc func(ctx context.Context, barbershopID, barberID, planID uint) (*models.MonthlyPlan, error)

// ======================================================
// HANDLER
// ======================================================

type PlanHandler struct {
	enrollUC     *ucPlan.EnrollPlan
	editUC       *ucPlan.EditSchedule
	suspendUC    *ucPlan.SuspendPlan
	reactivateUC *ucPlan.ReactivatePlan
	cancelUC     *ucPlan.CancelPlan
	markPaidUC   *ucPlan.MarkPlanPaid
	listUC       *ucPlan.ListPlans
}

func NewPlanHandler(
	enrollUC *ucPlan.EnrollPlan,
	editUC *ucPlan.EditSchedule,
	suspendUC *ucPlan.SuspendPlan,
	reactivateUC *ucPlan.ReactivatePlan,
	cancelUC *ucPlan.CancelPlan,
	markPaidUC *ucPlan.MarkPlanPaid,
	listUC *ucPlan.ListPlans,
) *PlanHandler {
	return &PlanHandler{
		enrollUC:     enrollUC,
		editUC:       editUC,
		suspendUC:    suspendUC,
		reactivateUC: reactivateUC,
		cancelUC:     cancelUC,
		markPaidUC:   markPaidUC,
		listUC:       listUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type EnrollPlanRequest struct {
	ClientID     uint    `json:"client_id" binding:"required"`
	Tier         string  `json:"tier" binding:"required"`
	MonthlyPrice float64 `json:"monthly_price" binding:"required,gt=0"`
	StartDate    string  `json:"start_date" binding:"required"`
	Notes        string  `json:"notes"`

	Entries    []ucPlan.ScheduleEntryInput `json:"entries" binding:"required,min=1"`
	VisitDates []string                    `json:"visit_dates" binding:"required,min=1"`
}

type EditScheduleRequest struct {
	Entries    []ucPlan.ScheduleEntryInput `json:"entries" binding:"required,min=1"`
	VisitDates []string                    `json:"visit_dates" binding:"required,min=1"`
}

func planID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_plan_id", "ID inválido.")
		return 0, false
	}
	return uint(id), true
}

// ======================================================
// ENROLL
// ======================================================

func (h *PlanHandler) Enroll(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var req EnrollPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	plan, err := h.enrollUC.Execute(c.Request.Context(), ucPlan.EnrollPlanInput{
		BarbershopID: barbershopID,
		BarberID:     barberID,
		ClientID:     req.ClientID,
		Tier:         req.Tier,
		MonthlyPrice: req.MonthlyPrice,
		StartDate:    req.StartDate,
		Notes:        req.Notes,
		Entries:      req.Entries,
		VisitDates:   req.VisitDates,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusCreated, plan)
}

// ======================================================
// LIST
// ======================================================

func (h *PlanHandler) List(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	plans, err := h.listUC.Execute(c.Request.Context(), barbershopID)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"plans": plans})
}

// ======================================================
// SCHEDULE
// ======================================================

func (h *PlanHandler) EditSchedule(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	id, ok := planID(c)
	if !ok {
		return
	}

	var req EditScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	plan, err := h.editUC.Execute(c.Request.Context(), ucPlan.EditScheduleInput{
		BarbershopID: barbershopID,
		BarberID:     barberID,
		PlanID:       id,
		Entries:      req.Entries,
		VisitDates:   req.VisitDates,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, plan)
}

// ======================================================
// LIFECYCLE
// ======================================================

func (h *PlanHandler) Suspend(c *gin.Context) {
	h.lifecycle(c, h.suspendUC.Execute)
}

func (h *PlanHandler) Reactivate(c *gin.Context) {
	h.lifecycle(c, h.reactivateUC.Execute)
}

func (h *PlanHandler) Cancel(c *gin.Context) {
	h.lifecycle(c, h.cancelUC.Execute)
}

func (h *PlanHandler) MarkPaid(c *gin.Context) {
	h.lifecycle(c, h.markPaidUC.Execute)
}

func (h *PlanHandler) lifecycle(c *gin.Context, exec planLifecycleFunc) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	id, ok := planID(c)
	if !ok {
		return
	}

	plan, err := exec(c.Request.Context(), barbershopID, barberID, id)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, plan)
}
