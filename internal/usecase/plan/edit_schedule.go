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

type EditScheduleInput struct {
	BarbershopID uint
	BarberID     uint
	PlanID       uint

	Entries    []ScheduleEntryInput
	VisitDates []string
}

type EditSchedule struct {
	plans        domain.Repository
	appointments apptdomain.Repository
	audit        *audit.Dispatcher
}

func NewEditSchedule(
	plans domain.Repository,
	appointments apptdomain.Repository,
	audit *audit.Dispatcher,
) *EditSchedule {
	return &EditSchedule{
		plans:        plans,
		appointments: appointments,
		audit:        audit,
	}
}

// Execute troca os horários semanais do plano: remove os agendamentos
// futuros gerados (passados/concluídos nunca são tocados), revalida
// como em um novo enrollment e regenera a expansão.
func (uc *EditSchedule) Execute(
	ctx context.Context,
	in EditScheduleInput,
) (*models.MonthlyPlan, error) {

	shop, err := uc.appointments.GetBarbershopByID(ctx, in.BarbershopID)
	if err != nil {
		return nil, httperr.ErrBusiness("barbershop_not_found")
	}

	p, err := uc.plans.GetPlan(ctx, in.BarbershopID, in.PlanID)
	if err != nil {
		return nil, httperr.ErrBusiness("plan_not_found")
	}

	if err := domain.CanEditSchedule(domain.Status(p.Status)); err != nil {
		return nil, err
	}

	tier, err := domain.TierByName(p.Tier)
	if err != nil {
		return nil, err
	}

	entries := buildEntries(in.Entries)
	if err := tier.ValidateCapacity(len(entries)); err != nil {
		return nil, err
	}

	if err := domain.ValidateNoDuplicates(entries); err != nil {
		return nil, err
	}

	others, err := uc.plans.ListPlansWithSchedules(ctx, in.BarbershopID)
	if err != nil {
		return nil, err
	}
	if err := domain.ValidateNoCollisions(entries, others, p.ID); err != nil {
		return nil, err
	}

	generated, err := expandSchedule(
		ctx,
		uc.appointments,
		shop,
		in.BarberID,
		p.ClientID,
		entries,
		in.VisitDates,
		p.MonthlyPrice,
	)
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(shop.Timezone)
	if err := uc.plans.SaveScheduleChange(ctx, p, entries, generated, now); err != nil {
		if httperr.IsExclusionConflict(err) {
			return nil, httperr.ErrBusiness("time_conflict")
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: in.BarbershopID,
		UserID:       &in.BarberID,
		Action:       "plan_schedule_edited",
		Entity:       "monthly_plan",
		EntityID:     &p.ID,
	})

	return p, nil
}
