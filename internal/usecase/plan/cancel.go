package plan

import (
	"context"

	"github.com/BruksfildServices01/barber-manager/internal/audit"
	apptdomain "github.com/BruksfildServices01/barber-manager/internal/domain/appointment"
	domain "github.com/BruksfildServices01/barber-manager/internal/domain/plan"
	"github.com/BruksfildServices01/barber-manager/internal/httperr"
	"github.com/BruksfildServices01/barber-manager/internal/models"
	"github.com/BruksfildServices01/barber-manager/internal/timezone"
)

type CancelPlan struct {
	plans        domain.Repository
	appointments apptdomain.Repository
	audit        *audit.Dispatcher
}

func NewCancelPlan(
	plans domain.Repository,
	appointments apptdomain.Repository,
	audit *audit.Dispatcher,
) *CancelPlan {
	return &CancelPlan{
		plans:        plans,
		appointments: appointments,
		audit:        audit,
	}
}

// Execute encerra o plano (terminal) e remove os agendamentos futuros
// gerados por ele. Visitas passadas e concluídas ficam intactas.
func (uc *CancelPlan) Execute(
	ctx context.Context,
	barbershopID uint,
	barberID uint,
	planID uint,
) (*models.MonthlyPlan, error) {

	shop, err := uc.appointments.GetBarbershopByID(ctx, barbershopID)
	if err != nil {
		return nil, httperr.ErrBusiness("barbershop_not_found")
	}

	p, err := uc.plans.GetPlan(ctx, barbershopID, planID)
	if err != nil {
		return nil, httperr.ErrBusiness("plan_not_found")
	}

	if err := domain.CanCancel(domain.Status(p.Status)); err != nil {
		return nil, err
	}

	now := timezone.NowIn(shop.Timezone)
	if err := uc.plans.DeleteFutureGenerated(ctx, p.ID, now); err != nil {
		return nil, err
	}

	p.Status = string(domain.StatusInactive)
	if err := uc.plans.UpdatePlan(ctx, p); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: barbershopID,
		UserID:       &barberID,
		Action:       "plan_cancelled",
		Entity:       "monthly_plan",
		EntityID:     &p.ID,
	})

	return p, nil
}
