package loyalty

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barber-manager/internal/models"
)

type Repository interface {
	// WithAccount carrega (ou cria) a conta do cliente e aplica fn
	// dentro de uma transação com lock de linha — acúmulo e resgate
	// são atômicos por cliente.
	WithAccount(
		ctx context.Context,
		barbershopID uint,
		clientID uint,
		fn func(acc *models.LoyaltyAccount) error,
	) error

	GetAccount(
		ctx context.Context,
		barbershopID uint,
		clientID uint,
	) (*models.LoyaltyAccount, error)

	ListAccounts(
		ctx context.Context,
		barbershopID uint,
	) ([]models.LoyaltyAccount, error)

	// -------- Settings --------
	GetSettings(
		ctx context.Context,
		barbershopID uint,
	) (*models.LoyaltySettings, error)

	SaveSettings(
		ctx context.Context,
		s *models.LoyaltySettings,
	) error

	// -------- History (append-only) --------
	AppendHistory(
		ctx context.Context,
		h *models.LoyaltyHistory,
	) error

	ListHistory(
		ctx context.Context,
		barbershopID uint,
		clientID uint,
		limit int,
	) ([]models.LoyaltyHistory, error)

	// -------- Draw --------
	ListEligibleClients(
		ctx context.Context,
		barbershopID uint,
		visitedSince time.Time,
	) ([]models.Client, error)
}
