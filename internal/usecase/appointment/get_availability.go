package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/barber-manager/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-manager/internal/httperr"
	"github.com/BruksfildServices01/barber-manager/internal/timezone"
)

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

// Execute enumera os slots do dia na granularidade da barbearia e
// devolve apenas os livres: dentro do expediente, sem sobreposição e
// não passados (com a mesma tolerância da criação).
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.TimeSlot, error) {

	shop, err := uc.repo.GetBarbershopByID(ctx, in.BarbershopID)
	if err != nil {
		return nil, httperr.ErrBusiness("barbershop_not_found")
	}

	service, err := uc.repo.GetService(ctx, in.BarbershopID, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	window := domain.WindowForDate(shop, in.Date)
	duration := time.Duration(service.DurationMin) * time.Minute

	existing, err := uc.repo.ListBlockingBookingsForDay(
		ctx,
		in.BarberID,
		window.Open,
		window.Close,
	)
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(shop.Timezone)

	slots := []domain.TimeSlot{}
	for _, slotStart := range window.Slots() {
		slotEnd := slotStart.Add(duration)

		if slotEnd.After(window.Close) {
			continue
		}
		if domain.ValidateNotPast(slotStart, now) != nil {
			continue
		}
		if domain.ConflictsWithAny(slotStart, slotEnd, existing, 0) {
			continue
		}

		slots = append(slots, domain.TimeSlot{
			Start: slotStart.Format("15:04"),
			End:   slotEnd.Format("15:04"),
		})
	}

	return slots, nil
}
