package plan

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barber-manager/internal/audit"
	apptdomain "github.com/BruksfildServices01/barber-manager/internal/domain/appointment"
	domain "github.com/BruksfildServices01/barber-manager/internal/domain/plan"
	"github.com/BruksfildServices01/barber-manager/internal/httperr"
	"github.com/BruksfildServices01/barber-manager/internal/models"
	"github.com/BruksfildServices01/barber-manager/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type EnrollPlanInput struct {
	BarbershopID uint
	BarberID     uint
	ClientID     uint

	Tier         string
	MonthlyPrice float64
	StartDate    string
	Notes        string

	Entries []ScheduleEntryInput

	// Datas do ciclo, escolhidas/confirmadas pelo operador
	VisitDates []string
}

// ======================================================
// USE CASE
// ======================================================

type EnrollPlan struct {
	plans        domain.Repository
	appointments apptdomain.Repository
	audit        *audit.Dispatcher
}

func NewEnrollPlan(
	plans domain.Repository,
	appointments apptdomain.Repository,
	audit *audit.Dispatcher,
) *EnrollPlan {
	return &EnrollPlan{
		plans:        plans,
		appointments: appointments,
		audit:        audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *EnrollPlan) Execute(
	ctx context.Context,
	in EnrollPlanInput,
) (*models.MonthlyPlan, error) {

	// --------------------------------------------------
	// 1️⃣ Barbearia + cliente
	// --------------------------------------------------
	shop, err := uc.appointments.GetBarbershopByID(ctx, in.BarbershopID)
	if err != nil {
		return nil, httperr.ErrBusiness("barbershop_not_found")
	}

	client, err := uc.appointments.GetClient(ctx, in.BarbershopID, in.ClientID)
	if err != nil {
		return nil, httperr.ErrBusiness("client_not_found")
	}

	// --------------------------------------------------
	// 2️⃣ Tier + capacidade
	// --------------------------------------------------
	tier, err := domain.TierByName(in.Tier)
	if err != nil {
		return nil, err
	}

	entries := buildEntries(in.Entries)
	if err := tier.ValidateCapacity(len(entries)); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3️⃣ Horário repetido na submissão + colisão com planos ativos
	// --------------------------------------------------
	if err := domain.ValidateNoDuplicates(entries); err != nil {
		return nil, err
	}

	others, err := uc.plans.ListPlansWithSchedules(ctx, in.BarbershopID)
	if err != nil {
		return nil, err
	}
	if err := domain.ValidateNoCollisions(entries, others, 0); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4️⃣ Expansão nas datas do ciclo
	// --------------------------------------------------
	generated, err := expandSchedule(
		ctx,
		uc.appointments,
		shop,
		in.BarberID,
		client.ID,
		entries,
		in.VisitDates,
		in.MonthlyPrice,
	)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 5️⃣ Persistência (plano + agendamentos, uma transação)
	// --------------------------------------------------
	startDate, err := time.ParseInLocation(
		"2006-01-02",
		in.StartDate,
		timezone.Location(shop.Timezone),
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	firstPayment := startDate
	p := &models.MonthlyPlan{
		BarbershopID:    in.BarbershopID,
		ClientID:        client.ID,
		Tier:            tier.Name,
		MonthlyPrice:    in.MonthlyPrice,
		StartDate:       startDate,
		Status:          string(domain.StatusActive),
		PaymentStatus:   string(domain.PaymentPending),
		NextPaymentDate: &firstPayment,
		Notes:           in.Notes,
		ScheduleEntries: entries,
	}

	if err := uc.plans.SaveEnrollment(ctx, p, generated); err != nil {
		if httperr.IsExclusionConflict(err) {
			return nil, httperr.ErrBusiness("time_conflict")
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: in.BarbershopID,
		UserID:       &in.BarberID,
		Action:       "plan_enrolled",
		Entity:       "monthly_plan",
		EntityID:     &p.ID,
	})

	return p, nil
}
