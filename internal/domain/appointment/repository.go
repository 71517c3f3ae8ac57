package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barber-manager/internal/models"
)

type Repository interface {
	// -------- Barbershop --------
	GetBarbershopByID(
		ctx context.Context,
		id uint,
	) (*models.Barbershop, error)

	GetBarbershopBySlug(
		ctx context.Context,
		slug string,
	) (*models.Barbershop, error)

	// -------- Service --------
	GetService(
		ctx context.Context,
		barbershopID uint,
		serviceID uint,
	) (*models.Service, error)

	// -------- Client --------
	GetClient(
		ctx context.Context,
		barbershopID uint,
		clientID uint,
	) (*models.Client, error)

	GetOrCreateClient(
		ctx context.Context,
		barbershopID uint,
		name string,
		phone string,
		email string,
	) (*models.Client, error)

	UpdateClientTotals(
		ctx context.Context,
		clientID uint,
		visitPrice float64,
		visitAt time.Time,
	) error

	// -------- Appointment (slot claim) --------
	// Checagem de conflito + insert dentro da mesma transação,
	// serializando a disputa pelo horário.
	CreateAppointmentClaimingSlot(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// Mesma claim para edição, ignorando o próprio ID na checagem.
	UpdateAppointmentClaimingSlot(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (state change) --------
	GetAppointment(
		ctx context.Context,
		appointmentID uint,
		barbershopID uint,
	) (*models.Appointment, error)

	GetAppointmentByReference(
		ctx context.Context,
		barbershopID uint,
		reference string,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Availability --------
	ListBlockingBookingsForDay(
		ctx context.Context,
		barberID uint,
		start time.Time,
		end time.Time,
	) ([]ExistingBooking, error)

	ListAppointmentsForPeriod(
		ctx context.Context,
		barberID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)
}
