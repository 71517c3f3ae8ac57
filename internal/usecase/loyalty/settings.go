package loyalty

import (
	"context"

	domain "github.com/BruksfildServices01/barber-manager/internal/domain/loyalty"
	"github.com/BruksfildServices01/barber-manager/internal/httperr"
	"github.com/BruksfildServices01/barber-manager/internal/models"
)

type Settings struct {
	repo     domain.Repository
	notifier Notifier
}

func NewSettings(repo domain.Repository, notifier Notifier) *Settings {
	return &Settings{repo: repo, notifier: notifier}
}

func (s *Settings) Get(
	ctx context.Context,
	barbershopID uint,
) (*models.LoyaltySettings, error) {
	return s.repo.GetSettings(ctx, barbershopID)
}

// Update altera o limiar de cortes para corte grátis. Vale apenas
// para acúmulos futuros: contas existentes não são recalculadas.
func (s *Settings) Update(
	ctx context.Context,
	barbershopID uint,
	cutsForFree int,
) (*models.LoyaltySettings, error) {

	if cutsForFree < 1 {
		return nil, httperr.ErrBusiness("invalid_threshold")
	}

	settings, err := s.repo.GetSettings(ctx, barbershopID)
	if err != nil {
		return nil, err
	}

	settings.CutsForFree = cutsForFree
	if err := s.repo.SaveSettings(ctx, settings); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.LoyaltyChanged(ctx, barbershopID, "loyalty_settings", 0)
	}

	return settings, nil
}
