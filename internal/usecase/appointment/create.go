package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-manager/internal/audit"
	domain "github.com/BruksfildServices01/barber-manager/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-manager/internal/httperr"
	"github.com/BruksfildServices01/barber-manager/internal/models"
	"github.com/BruksfildServices01/barber-manager/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	BarbershopID uint
	BarberID     uint

	// Cliente cadastrado OU dados para get-or-create OU walk-in
	ClientID    *uint
	ClientName  string
	ClientPhone string
	ClientEmail string
	WalkIn      bool

	ServiceID uint

	Date  string
	Time  string
	Notes string

	Origin string

	// Permite registrar atendimentos históricos (edição retroativa)
	AllowPast bool
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1️⃣ Barbearia
	// --------------------------------------------------
	shop, err := uc.repo.GetBarbershopByID(ctx, in.BarbershopID)
	if err != nil {
		return nil, httperr.ErrBusiness("barbershop_not_found")
	}

	// --------------------------------------------------
	// 2️⃣ Data / hora no timezone da barbearia
	// --------------------------------------------------
	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		timezone.Location(shop.Timezone),
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	// --------------------------------------------------
	// 3️⃣ Expediente + passado (com tolerância)
	// --------------------------------------------------
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

	// --------------------------------------------------
	// 4️⃣ Serviço (duração e preço padrão)
	// --------------------------------------------------
	service, err := uc.repo.GetService(ctx, in.BarbershopID, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	end := start.Add(time.Duration(service.DurationMin) * time.Minute)

	// --------------------------------------------------
	// 5️⃣ Cliente (cadastrado, get-or-create ou walk-in)
	// --------------------------------------------------
	var clientID *uint
	switch {
	case in.WalkIn:
		clientID = nil

	case in.ClientID != nil:
		client, err := uc.repo.GetClient(ctx, in.BarbershopID, *in.ClientID)
		if err != nil {
			return nil, httperr.ErrBusiness("client_not_found")
		}
		clientID = &client.ID

	case in.ClientPhone != "":
		client, err := uc.repo.GetOrCreateClient(
			ctx,
			in.BarbershopID,
			in.ClientName,
			in.ClientPhone,
			in.ClientEmail,
		)
		if err != nil {
			return nil, err
		}
		clientID = &client.ID

	default:
		return nil, httperr.ErrBusiness("client_required")
	}

	// --------------------------------------------------
	// 6️⃣ Claim do horário (checagem + insert na mesma tx)
	// --------------------------------------------------
	origin := in.Origin
	if origin == "" {
		origin = domain.OriginManual
	}

	ap := &models.Appointment{
		Reference:    uuid.NewString(),
		BarbershopID: in.BarbershopID,
		BarberID:     in.BarberID,
		ClientID:     clientID,
		ServiceID:    service.ID,
		StartTime:    start,
		EndTime:      end,
		Price:        service.Price,
		Status:       string(domain.InitialStatus()),
		Origin:       origin,
		Notes:        in.Notes,
	}

	if err := uc.repo.CreateAppointmentClaimingSlot(ctx, ap); err != nil {
		if httperr.IsExclusionConflict(err) {
			return nil, httperr.ErrBusiness("time_conflict")
		}
		return nil, err
	}

	// --------------------------------------------------
	// 7️⃣ Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		BarbershopID: in.BarbershopID,
		UserID:       &in.BarberID,
		Action:       "appointment_created",
		Entity:       "appointment",
		EntityID:     &ap.ID,
	})

	return ap, nil
}
