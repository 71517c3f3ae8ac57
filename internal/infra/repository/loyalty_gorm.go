package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/barber-manager/internal/domain/loyalty"
	"github.com/BruksfildServices01/barber-manager/internal/models"
)

type LoyaltyGormRepository struct {
	db *gorm.DB
}

func NewLoyaltyGormRepository(db *gorm.DB) *LoyaltyGormRepository {
	return &LoyaltyGormRepository{db: db}
}

// --------------------------------------------------
// Account
// --------------------------------------------------

// WithAccount roda fn sobre a conta do cliente dentro de uma
// transação com lock de linha, criando a conta zerada na primeira
// visita. Acúmulo/resgate ficam atômicos por cliente.
func (r *LoyaltyGormRepository) WithAccount(
	ctx context.Context,
	barbershopID uint,
	clientID uint,
	fn func(acc *models.LoyaltyAccount) error,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var acc models.LoyaltyAccount

		err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("barbershop_id = ? AND client_id = ?", barbershopID, clientID).
			First(&acc).Error

		if err == gorm.ErrRecordNotFound {
			acc = models.LoyaltyAccount{
				BarbershopID: barbershopID,
				ClientID:     clientID,
			}
			if err := tx.Create(&acc).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		if err := fn(&acc); err != nil {
			return err
		}

		return tx.Save(&acc).Error
	})
}

func (r *LoyaltyGormRepository) GetAccount(
	ctx context.Context,
	barbershopID uint,
	clientID uint,
) (*models.LoyaltyAccount, error) {

	var acc models.LoyaltyAccount
	err := r.db.WithContext(ctx).
		Where("barbershop_id = ? AND client_id = ?", barbershopID, clientID).
		First(&acc).Error

	if err == gorm.ErrRecordNotFound {
		// Conta ainda não criada = saldo zerado
		return &models.LoyaltyAccount{
			BarbershopID: barbershopID,
			ClientID:     clientID,
		}, nil
	}
	if err != nil {
		return nil, err
	}

	return &acc, nil
}

func (r *LoyaltyGormRepository) ListAccounts(
	ctx context.Context,
	barbershopID uint,
) ([]models.LoyaltyAccount, error) {

	var accounts []models.LoyaltyAccount
	if err := r.db.WithContext(ctx).
		Where("barbershop_id = ?", barbershopID).
		Order("free_haircuts DESC, points DESC").
		Find(&accounts).Error; err != nil {
		return nil, err
	}

	return accounts, nil
}

// --------------------------------------------------
// Settings
// --------------------------------------------------

func (r *LoyaltyGormRepository) GetSettings(
	ctx context.Context,
	barbershopID uint,
) (*models.LoyaltySettings, error) {

	var s models.LoyaltySettings
	err := r.db.WithContext(ctx).
		Where("barbershop_id = ?", barbershopID).
		First(&s).Error

	if err == gorm.ErrRecordNotFound {
		s = models.LoyaltySettings{
			BarbershopID: barbershopID,
			CutsForFree:  domain.DefaultCutsForFree,
		}
		if err := r.db.WithContext(ctx).Create(&s).Error; err != nil {
			return nil, err
		}
		return &s, nil
	}
	if err != nil {
		return nil, err
	}

	return &s, nil
}

func (r *LoyaltyGormRepository) SaveSettings(
	ctx context.Context,
	s *models.LoyaltySettings,
) error {
	return r.db.WithContext(ctx).Save(s).Error
}

// --------------------------------------------------
// History
// --------------------------------------------------

func (r *LoyaltyGormRepository) AppendHistory(
	ctx context.Context,
	h *models.LoyaltyHistory,
) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *LoyaltyGormRepository) ListHistory(
	ctx context.Context,
	barbershopID uint,
	clientID uint,
	limit int,
) ([]models.LoyaltyHistory, error) {

	q := r.db.WithContext(ctx).
		Where("barbershop_id = ?", barbershopID)

	if clientID != 0 {
		q = q.Where("client_id = ?", clientID)
	}

	var history []models.LoyaltyHistory
	if err := q.
		Order("created_at DESC").
		Limit(limit).
		Find(&history).Error; err != nil {
		return nil, err
	}

	return history, nil
}

// --------------------------------------------------
// Draw
// --------------------------------------------------

func (r *LoyaltyGormRepository) ListEligibleClients(
	ctx context.Context,
	barbershopID uint,
	visitedSince time.Time,
) ([]models.Client, error) {

	var clients []models.Client
	if err := r.db.WithContext(ctx).
		Where(
			"barbershop_id = ? AND last_visit IS NOT NULL AND last_visit >= ?",
			barbershopID,
			visitedSince,
		).
		Order("id ASC").
		Find(&clients).Error; err != nil {
		return nil, err
	}

	return clients, nil
}

// Compile-time check
var _ domain.Repository = (*LoyaltyGormRepository)(nil)
