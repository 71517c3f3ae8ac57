package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barber-manager/internal/audit"
	domain "github.com/BruksfildServices01/barber-manager/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-manager/internal/httperr"
	"github.com/BruksfildServices01/barber-manager/internal/models"
	"github.com/BruksfildServices01/barber-manager/internal/timezone"
)

type RescheduleAppointmentInput struct {
	BarbershopID  uint
	BarberID      uint
	AppointmentID uint

	Date string
	Time string

	// Troca de serviço opcional (recalcula duração e preço)
	ServiceID *uint

	AllowPast bool
}

type RescheduleAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRescheduleAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *RescheduleAppointment {
	return &RescheduleAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute move um agendamento ainda agendado, revalidando expediente
// e conflito — o próprio agendamento é excluído da checagem.
func (uc *RescheduleAppointment) Execute(
	ctx context.Context,
	in RescheduleAppointmentInput,
) (*models.Appointment, error) {

	shop, err := uc.repo.GetBarbershopByID(ctx, in.BarbershopID)
	if err != nil {
		return nil, httperr.ErrBusiness("barbershop_not_found")
	}

	ap, err := uc.repo.GetAppointment(ctx, in.AppointmentID, in.BarbershopID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.CanReschedule(domain.Status(ap.Status)); err != nil {
		return nil, err
	}

	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		timezone.Location(shop.Timezone),
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	window := domain.WindowForDate(shop, start)
	if err := window.ValidateStart(start); err != nil {
		return nil, err
	}

	if !in.AllowPast {
		now := timezone.NowIn(shop.Timezone)
		if err := domain.ValidateNotPast(start, now); err != nil {
			return nil, err
		}
	}

	serviceID := ap.ServiceID
	if in.ServiceID != nil {
		serviceID = *in.ServiceID
	}

	service, err := uc.repo.GetService(ctx, in.BarbershopID, serviceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	ap.StartTime = start
	ap.EndTime = start.Add(time.Duration(service.DurationMin) * time.Minute)
	if in.ServiceID != nil {
		ap.ServiceID = service.ID
		ap.Price = service.Price
	}

	if err := uc.repo.UpdateAppointmentClaimingSlot(ctx, ap); err != nil {
		if httperr.IsExclusionConflict(err) {
			return nil, httperr.ErrBusiness("time_conflict")
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: in.BarbershopID,
		UserID:       &in.BarberID,
		Action:       "appointment_rescheduled",
		Entity:       "appointment",
		EntityID:     &ap.ID,
	})

	return ap, nil
}
