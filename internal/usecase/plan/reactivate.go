package plan

import (
	"context"

	"github.com/BruksfildServices01/barber-manager/internal/audit"
	domain "github.com/BruksfildServices01/barber-manager/internal/domain/plan"
	"github.com/BruksfildServices01/barber-manager/internal/httperr"
	"github.com/BruksfildServices01/barber-manager/internal/models"
)

type ReactivatePlan struct {
	plans domain.Repository
	audit *audit.Dispatcher
}

func NewReactivatePlan(
	plans domain.Repository,
	audit *audit.Dispatcher,
) *ReactivatePlan {
	return &ReactivatePlan{
		plans: plans,
		audit: audit,
	}
}

// Execute reativa um plano suspenso. Como a suspensão libera os
// horários, outro plano pode ter ocupado um deles nesse meio tempo —
// a reativação revalida e falha com schedule_conflict nesse caso.
func (uc *ReactivatePlan) Execute(
	ctx context.Context,
	barbershopID uint,
	barberID uint,
	planID uint,
) (*models.MonthlyPlan, error) {

	p, err := uc.plans.GetPlan(ctx, barbershopID, planID)
	if err != nil {
		return nil, httperr.ErrBusiness("plan_not_found")
	}

	if err := domain.CanReactivate(domain.Status(p.Status)); err != nil {
		return nil, err
	}

	others, err := uc.plans.ListPlansWithSchedules(ctx, barbershopID)
	if err != nil {
		return nil, err
	}
	if err := domain.ValidateNoCollisions(p.ScheduleEntries, others, p.ID); err != nil {
		return nil, err
	}

	p.Status = string(domain.StatusActive)
	if err := uc.plans.UpdatePlan(ctx, p); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: barbershopID,
		UserID:       &barberID,
		Action:       "plan_reactivated",
		Entity:       "monthly_plan",
		EntityID:     &p.ID,
	})

	return p, nil
}
