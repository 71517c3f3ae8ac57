package plan

import (
	"context"

	"github.com/BruksfildServices01/barber-manager/internal/audit"
	domain "github.com/BruksfildServices01/barber-manager/internal/domain/plan"
	"github.com/BruksfildServices01/barber-manager/internal/httperr"
	"github.com/BruksfildServices01/barber-manager/internal/models"
)

// Suspensão libera os horários semanais para outros planos; os
// agendamentos futuros já gerados permanecem no calendário.
type SuspendPlan struct {
	plans domain.Repository
	audit *audit.Dispatcher
}

func NewSuspendPlan(
	plans domain.Repository,
	audit *audit.Dispatcher,
) *SuspendPlan {
	return &SuspendPlan{
		plans: plans,
		audit: audit,
	}
}

func (uc *SuspendPlan) Execute(
	ctx context.Context,
	barbershopID uint,
	barberID uint,
	planID uint,
) (*models.MonthlyPlan, error) {

	p, err := uc.plans.GetPlan(ctx, barbershopID, planID)
	if err != nil {
		return nil, httperr.ErrBusiness("plan_not_found")
	}

	if err := domain.CanSuspend(domain.Status(p.Status)); err != nil {
		return nil, err
	}

	p.Status = string(domain.StatusSuspended)
	if err := uc.plans.UpdatePlan(ctx, p); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: barbershopID,
		UserID:       &barberID,
		Action:       "plan_suspended",
		Entity:       "monthly_plan",
		EntityID:     &p.ID,
	})

	return p, nil
}
