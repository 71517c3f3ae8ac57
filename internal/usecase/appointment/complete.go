package appointment

import (
	"context"
	"log"

	"github.com/BruksfildServices01/barber-manager/internal/audit"
	domain "github.com/BruksfildServices01/barber-manager/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-manager/internal/httperr"
	"github.com/BruksfildServices01/barber-manager/internal/models"
	"github.com/BruksfildServices01/barber-manager/internal/timezone"
)

// LoyaltyLedger é o ponto de acúmulo de fidelidade invocado na
// conclusão do atendimento.
type LoyaltyLedger interface {
	Accrue(ctx context.Context, barbershopID uint, clientID uint) error
}

type CompleteAppointmentInput struct {
	BarbershopID  uint
	BarberID      uint
	AppointmentID uint

	PaymentMethod string

	// Substitui o preço do agendamento quando informado
	FinalPrice *float64
}

type CompleteAppointment struct {
	repo    domain.Repository
	loyalty LoyaltyLedger
	audit   *audit.Dispatcher
}

func NewCompleteAppointment(
	repo domain.Repository,
	loyalty LoyaltyLedger,
	audit *audit.Dispatcher,
) *CompleteAppointment {
	return &CompleteAppointment{
		repo:    repo,
		loyalty: loyalty,
		audit:   audit,
	}
}

// Execute conclui o atendimento e aplica os efeitos colaterais:
// totais do cliente e acúmulo de fidelidade. A transição de status é
// autoritativa — falha de efeito colateral vira warning, não rollback.
func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	in CompleteAppointmentInput,
) (*models.Appointment, []string, error) {

	shop, err := uc.repo.GetBarbershopByID(ctx, in.BarbershopID)
	if err != nil {
		return nil, nil, httperr.ErrBusiness("barbershop_not_found")
	}

	ap, err := uc.repo.GetAppointment(ctx, in.AppointmentID, in.BarbershopID)
	if err != nil {
		return nil, nil, httperr.ErrBusiness("appointment_not_found")
	}

	now := timezone.NowIn(shop.Timezone)
	if err := domain.Complete(ap, in.PaymentMethod, in.FinalPrice, now); err != nil {
		return nil, nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, nil, err
	}

	// --------------------------------------------------
	// Efeitos colaterais (best-effort, cada falha vira warning)
	// --------------------------------------------------
	var warnings []string

	if ap.ClientID != nil {
		if err := uc.repo.UpdateClientTotals(ctx, *ap.ClientID, ap.Price, now); err != nil {
			log.Printf("complete appointment %d: client totals: %v", ap.ID, err)
			warnings = append(warnings, "client_totals_failed")
		}

		if err := uc.loyalty.Accrue(ctx, in.BarbershopID, *ap.ClientID); err != nil {
			log.Printf("complete appointment %d: loyalty accrual: %v", ap.ID, err)
			warnings = append(warnings, "loyalty_accrual_failed")
		}
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: in.BarbershopID,
		UserID:       &in.BarberID,
		Action:       "appointment_completed",
		Entity:       "appointment",
		EntityID:     &ap.ID,
	})

	return ap, warnings, nil
}
