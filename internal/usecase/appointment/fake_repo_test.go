package appointment

import (
	"context"
	"errors"
	"time"

	domain "github.com/BruksfildServices01/barber-manager/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-manager/internal/models"
)

// Repositório em memória com a mesma semântica de claim do Postgres:
// a checagem de conflito e o insert acontecem na mesma operação, e o
// conflito sai com a assinatura detectada por IsExclusionConflict.
type fakeRepo struct {
	shop     *models.Barbershop
	services map[uint]*models.Service
	clients  map[uint]*models.Client

	appointments []*models.Appointment
	nextID       uint

	totalsCalls   int
	failTotals    bool
	lastVisitSeen time.Time
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		shop: &models.Barbershop{
			ID:              1,
			Name:            "Navalha de Ouro",
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
			100: {ID: 100, BarbershopID: 1, Name: "João", Phone: "11999990000"},
		},
		nextID: 1,
	}
}

func (f *fakeRepo) GetBarbershopByID(_ context.Context, id uint) (*models.Barbershop, error) {
	if f.shop == nil || f.shop.ID != id {
		return nil, errors.New("not found")
	}
	return f.shop, nil
}

func (f *fakeRepo) GetBarbershopBySlug(_ context.Context, slug string) (*models.Barbershop, error) {
	if f.shop == nil || f.shop.Slug != slug {
		return nil, errors.New("not found")
	}
	return f.shop, nil
}

func (f *fakeRepo) GetService(_ context.Context, barbershopID, serviceID uint) (*models.Service, error) {
	s, ok := f.services[serviceID]
	if !ok || s.BarbershopID != barbershopID {
		return nil, errors.New("not found")
	}
	return s, nil
}

func (f *fakeRepo) GetClient(_ context.Context, barbershopID, clientID uint) (*models.Client, error) {
	c, ok := f.clients[clientID]
	if !ok || c.BarbershopID != barbershopID {
		return nil, errors.New("not found")
	}
	return c, nil
}

func (f *fakeRepo) GetOrCreateClient(_ context.Context, barbershopID uint, name, phone, email string) (*models.Client, error) {
	for _, c := range f.clients {
		if c.BarbershopID == barbershopID && c.Phone == phone {
			return c, nil
		}
	}

	c := &models.Client{
		ID:           uint(len(f.clients) + 1000),
		BarbershopID: barbershopID,
		Name:         name,
		Phone:        phone,
		Email:        email,
	}
	f.clients[c.ID] = c
	return c, nil
}

func (f *fakeRepo) UpdateClientTotals(_ context.Context, clientID uint, visitPrice float64, visitAt time.Time) error {
	f.totalsCalls++
	if f.failTotals {
		return errors.New("db down")
	}

	c, ok := f.clients[clientID]
	if !ok {
		return errors.New("not found")
	}
	c.TotalVisits++
	c.TotalSpent += visitPrice
	c.LastVisit = &visitAt
	f.lastVisitSeen = visitAt
	return nil
}

func (f *fakeRepo) hasConflict(start, end time.Time, barberID, excludeID uint) bool {
	for _, ap := range f.appointments {
		if ap.BarberID != barberID || ap.ID == excludeID {
			continue
		}

		blocking := false
		for _, s := range domain.BlockingStatuses {
			if ap.Status == s {
				blocking = true
			}
		}
		if !blocking {
			continue
		}

		if domain.Overlaps(start, end, ap.StartTime, ap.EndTime) {
			return true
		}
	}
	return false
}

func (f *fakeRepo) CreateAppointmentClaimingSlot(_ context.Context, ap *models.Appointment) error {
	if f.hasConflict(ap.StartTime, ap.EndTime, ap.BarberID, 0) {
		return errors.New(`duplicate key value violates exclusion constraint "appointments_no_overlap"`)
	}

	ap.ID = f.nextID
	f.nextID++
	f.appointments = append(f.appointments, ap)
	return nil
}

func (f *fakeRepo) UpdateAppointmentClaimingSlot(_ context.Context, ap *models.Appointment) error {
	if f.hasConflict(ap.StartTime, ap.EndTime, ap.BarberID, ap.ID) {
		return errors.New(`duplicate key value violates exclusion constraint "appointments_no_overlap"`)
	}

	for i, cur := range f.appointments {
		if cur.ID == ap.ID {
			f.appointments[i] = ap
			return nil
		}
	}
	return errors.New("not found")
}

func (f *fakeRepo) GetAppointment(_ context.Context, appointmentID, barbershopID uint) (*models.Appointment, error) {
	for _, ap := range f.appointments {
		if ap.ID == appointmentID && ap.BarbershopID == barbershopID {
			return ap, nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeRepo) GetAppointmentByReference(_ context.Context, barbershopID uint, reference string) (*models.Appointment, error) {
	for _, ap := range f.appointments {
		if ap.Reference == reference && ap.BarbershopID == barbershopID {
			return ap, nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	for i, cur := range f.appointments {
		if cur.ID == ap.ID {
			f.appointments[i] = ap
			return nil
		}
	}
	return errors.New("not found")
}

func (f *fakeRepo) ListBlockingBookingsForDay(_ context.Context, barberID uint, start, end time.Time) ([]domain.ExistingBooking, error) {
	var out []domain.ExistingBooking
	for _, ap := range f.appointments {
		if ap.BarberID != barberID {
			continue
		}

		blocking := false
		for _, s := range domain.BlockingStatuses {
			if ap.Status == s {
				blocking = true
			}
		}
		if !blocking {
			continue
		}

		if domain.Overlaps(ap.StartTime, ap.EndTime, start, end) {
			out = append(out, domain.ExistingBooking{
				ID:    ap.ID,
				Start: ap.StartTime,
				End:   ap.EndTime,
			})
		}
	}
	return out, nil
}

func (f *fakeRepo) ListAppointmentsForPeriod(_ context.Context, barberID uint, start, end time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.BarberID != barberID {
			continue
		}
		if ap.StartTime.Before(end) && ap.EndTime.After(start) {
			out = append(out, *ap)
		}
	}
	return out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)

// Ledger de fidelidade de teste: registra chamadas, falha sob demanda.
type fakeLedger struct {
	calls []uint
	fail  bool
}

func (f *fakeLedger) Accrue(_ context.Context, _ uint, clientID uint) error {
	f.calls = append(f.calls, clientID)
	if f.fail {
		return errors.New("redis down")
	}
	return nil
}
