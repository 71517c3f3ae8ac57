package loyalty

import (
	"context"

	domain "github.com/BruksfildServices01/barber-manager/internal/domain/loyalty"
	"github.com/BruksfildServices01/barber-manager/internal/models"
)

type History struct {
	repo domain.Repository
}

func NewHistory(repo domain.Repository) *History {
	return &History{repo: repo}
}

func (uc *History) Execute(
	ctx context.Context,
	barbershopID uint,
	clientID uint,
	limit int,
) ([]models.LoyaltyHistory, error) {

	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return uc.repo.ListHistory(ctx, barbershopID, clientID, limit)
}
