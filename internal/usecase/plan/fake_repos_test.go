package plan

import (
	"context"
	"errors"
	"time"

	apptdomain "github.com/BruksfildServices01/barber-manager/internal/domain/appointment"
	domain "github.com/BruksfildServices01/barber-manager/internal/domain/plan"
	"github.com/BruksfildServices01/barber-manager/internal/models"
)

// ------------------------------------------------------
// Fake do repositório de planos
// ------------------------------------------------------

type fakePlanRepo struct {
	plans  map[uint]*models.MonthlyPlan
	nextID uint

	// agendamentos gerados, espelhando o vínculo monthly_plan_id
	generated []models.Appointment

	deleteFutureCalls []uint
}

func newFakePlanRepo() *fakePlanRepo {
	return &fakePlanRepo{
		plans:  make(map[uint]*models.MonthlyPlan),
		nextID: 1,
	}
}

func (f *fakePlanRepo) GetPlan(_ context.Context, barbershopID, planID uint) (*models.MonthlyPlan, error) {
	p, ok := f.plans[planID]
	if !ok || p.BarbershopID != barbershopID {
		return nil, errors.New("not found")
	}
	return p, nil
}

func (f *fakePlanRepo) ListPlans(_ context.Context, barbershopID uint) ([]models.MonthlyPlan, error) {
	return f.ListPlansWithSchedules(context.Background(), barbershopID)
}

func (f *fakePlanRepo) ListPlansWithSchedules(_ context.Context, barbershopID uint) ([]models.MonthlyPlan, error) {
	var out []models.MonthlyPlan
	for _, p := range f.plans {
		if p.BarbershopID == barbershopID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakePlanRepo) UpdatePlan(_ context.Context, p *models.MonthlyPlan) error {
	if _, ok := f.plans[p.ID]; !ok {
		return errors.New("not found")
	}
	f.plans[p.ID] = p
	return nil
}

func (f *fakePlanRepo) SaveEnrollment(_ context.Context, p *models.MonthlyPlan, generated []models.Appointment) error {
	p.ID = f.nextID
	f.nextID++
	f.plans[p.ID] = p

	for i := range generated {
		planID := p.ID
		generated[i].MonthlyPlanID = &planID
		f.generated = append(f.generated, generated[i])
	}
	return nil
}

func (f *fakePlanRepo) SaveScheduleChange(
	ctx context.Context,
	p *models.MonthlyPlan,
	entries []models.PlanScheduleEntry,
	generated []models.Appointment,
	from time.Time,
) error {
	if err := f.DeleteFutureGenerated(ctx, p.ID, from); err != nil {
		return err
	}

	p.ScheduleEntries = entries
	f.plans[p.ID] = p

	for i := range generated {
		planID := p.ID
		generated[i].MonthlyPlanID = &planID
		f.generated = append(f.generated, generated[i])
	}
	return nil
}

func (f *fakePlanRepo) DeleteFutureGenerated(_ context.Context, planID uint, from time.Time) error {
	f.deleteFutureCalls = append(f.deleteFutureCalls, planID)

	kept := f.generated[:0]
	for _, ap := range f.generated {
		remove := ap.MonthlyPlanID != nil &&
			*ap.MonthlyPlanID == planID &&
			ap.Origin == apptdomain.OriginPlan &&
			ap.Status == string(apptdomain.StatusScheduled) &&
			ap.StartTime.After(from)
		if !remove {
			kept = append(kept, ap)
		}
	}
	f.generated = kept
	return nil
}

var _ domain.Repository = (*fakePlanRepo)(nil)

// ------------------------------------------------------
// Fake do repositório de agendamentos (só o que o enroll usa)
// ------------------------------------------------------

type fakeApptRepo struct {
	shop     *models.Barbershop
	services map[uint]*models.Service
	clients  map[uint]*models.Client
}

func newFakeApptRepo() *fakeApptRepo {
	return &fakeApptRepo{
		shop: &models.Barbershop{
			ID:              1,
			Slug:            "navalha-de-ouro",
			Timezone:        "UTC",
			OpenTime:        "08:00",
			CloseTime:       "20:00",
			SlotIntervalMin: 30,
		},
		services: map[uint]*models.Service{
			10: {ID: 10, BarbershopID: 1, Name: "Corte", DurationMin: 45, Price: 50},
			11: {ID: 11, BarbershopID: 1, Name: "Barba", DurationMin: 30, Price: 30},
		},
		clients: map[uint]*models.Client{
			100: {ID: 100, BarbershopID: 1, Name: "João"},
		},
	}
}

func (f *fakeApptRepo) GetBarbershopByID(_ context.Context, id uint) (*models.Barbershop, error) {
	if f.shop.ID != id {
		return nil, errors.New("not found")
	}
	return f.shop, nil
}

func (f *fakeApptRepo) GetBarbershopBySlug(_ context.Context, slug string) (*models.Barbershop, error) {
	if f.shop.Slug != slug {
		return nil, errors.New("not found")
	}
	return f.shop, nil
}

func (f *fakeApptRepo) GetService(_ context.Context, barbershopID, serviceID uint) (*models.Service, error) {
	s, ok := f.services[serviceID]
	if !ok || s.BarbershopID != barbershopID {
		return nil, errors.New("not found")
	}
	return s, nil
}

func (f *fakeApptRepo) GetClient(_ context.Context, barbershopID, clientID uint) (*models.Client, error) {
	c, ok := f.clients[clientID]
	if !ok || c.BarbershopID != barbershopID {
		return nil, errors.New("not found")
	}
	return c, nil
}

func (f *fakeApptRepo) GetOrCreateClient(context.Context, uint, string, string, string) (*models.Client, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeApptRepo) UpdateClientTotals(context.Context, uint, float64, time.Time) error {
	return nil
}

func (f *fakeApptRepo) CreateAppointmentClaimingSlot(context.Context, *models.Appointment) error {
	return errors.New("not implemented")
}

func (f *fakeApptRepo) UpdateAppointmentClaimingSlot(context.Context, *models.Appointment) error {
	return errors.New("not implemented")
}

func (f *fakeApptRepo) GetAppointment(context.Context, uint, uint) (*models.Appointment, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeApptRepo) GetAppointmentByReference(context.Context, uint, string) (*models.Appointment, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeApptRepo) UpdateAppointment(context.Context, *models.Appointment) error {
	return errors.New("not implemented")
}

func (f *fakeApptRepo) ListBlockingBookingsForDay(context.Context, uint, time.Time, time.Time) ([]apptdomain.ExistingBooking, error) {
	return nil, nil
}

func (f *fakeApptRepo) ListAppointmentsForPeriod(context.Context, uint, time.Time, time.Time) ([]models.Appointment, error) {
	return nil, nil
}

var _ apptdomain.Repository = (*fakeApptRepo)(nil)
