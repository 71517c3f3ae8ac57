package plan

import (
	"context"

	"github.com/BruksfildServices01/barber-manager/internal/audit"
	domain "github.com/BruksfildServices01/barber-manager/internal/domain/plan"
	"github.com/BruksfildServices01/barber-manager/internal/httperr"
	"github.com/BruksfildServices01/barber-manager/internal/models"
	"github.com/BruksfildServices01/barber-manager/internal/timezone"
)

// O status overdue é marcado por rotina externa de cobrança; aqui o
// engine só registra o pagamento e avança o ciclo.
type MarkPlanPaid struct {
	plans domain.Repository
	audit *audit.Dispatcher
}

func NewMarkPlanPaid(
	plans domain.Repository,
	audit *audit.Dispatcher,
) *MarkPlanPaid {
	return &MarkPlanPaid{
		plans: plans,
		audit: audit,
	}
}

func (uc *MarkPlanPaid) Execute(
	ctx context.Context,
	barbershopID uint,
	barberID uint,
	planID uint,
) (*models.MonthlyPlan, error) {

	p, err := uc.plans.GetPlan(ctx, barbershopID, planID)
	if err != nil {
		return nil, httperr.ErrBusiness("plan_not_found")
	}

	if domain.Status(p.Status) == domain.StatusInactive {
		return nil, httperr.ErrBusiness("invalid_state")
	}

	now := timezone.Now()
	domain.MarkPaid(p, now)

	if err := uc.plans.UpdatePlan(ctx, p); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: barbershopID,
		UserID:       &barberID,
		Action:       "plan_payment_registered",
		Entity:       "monthly_plan",
		EntityID:     &p.ID,
	})

	return p, nil
}
