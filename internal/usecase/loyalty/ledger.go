package loyalty

import (
	"context"
	"log"

	"github.com/BruksfildServices01/barber-manager/internal/audit"
	domain "github.com/BruksfildServices01/barber-manager/internal/domain/loyalty"
	"github.com/BruksfildServices01/barber-manager/internal/models"
)

// Notifier publica mudanças de fidelidade para quem assina o feed
// (cache de telas, por exemplo). O ledger funciona sem ele.
type Notifier interface {
	LoyaltyChanged(ctx context.Context, barbershopID uint, entity string, clientID uint)
}

// ======================================================
// LEDGER
// ======================================================

type Ledger struct {
	repo     domain.Repository
	notifier Notifier
	audit    *audit.Dispatcher
}

func NewLedger(
	repo domain.Repository,
	notifier Notifier,
	audit *audit.Dispatcher,
) *Ledger {
	return &Ledger{
		repo:     repo,
		notifier: notifier,
		audit:    audit,
	}
}

// Accrue credita um ponto de visita na conta do cliente, virando
// corte grátis ao atingir o limiar configurado. Atômico por cliente
// (transação com lock de linha no repositório).
func (l *Ledger) Accrue(
	ctx context.Context,
	barbershopID uint,
	clientID uint,
) error {

	settings, err := l.repo.GetSettings(ctx, barbershopID)
	if err != nil {
		return err
	}

	var result domain.AccrualResult
	err = l.repo.WithAccount(ctx, barbershopID, clientID, func(acc *models.LoyaltyAccount) error {
		result = domain.Accrue(acc, settings.CutsForFree)
		return nil
	})
	if err != nil {
		return err
	}

	l.appendHistory(ctx, barbershopID, clientID, result, "visita concluída")
	l.notify(ctx, barbershopID, "loyalty_account", clientID)

	return nil
}

// Redeem consome um corte grátis e zera o progresso de pontos.
func (l *Ledger) Redeem(
	ctx context.Context,
	barbershopID uint,
	barberID uint,
	clientID uint,
) (*models.LoyaltyAccount, error) {

	var (
		result  domain.AccrualResult
		account *models.LoyaltyAccount
	)

	err := l.repo.WithAccount(ctx, barbershopID, clientID, func(acc *models.LoyaltyAccount) error {
		r, err := domain.Redeem(acc)
		if err != nil {
			return err
		}
		result = r
		account = acc
		return nil
	})
	if err != nil {
		return nil, err
	}

	l.appendHistory(ctx, barbershopID, clientID, result, "corte grátis resgatado")
	l.notify(ctx, barbershopID, "loyalty_account", clientID)

	l.audit.Dispatch(audit.Event{
		BarbershopID: barbershopID,
		UserID:       &barberID,
		Action:       "loyalty_redeemed",
		Entity:       "loyalty_account",
		EntityID:     &clientID,
	})

	return account, nil
}

// --------------------------------------------------
// Helpers
// --------------------------------------------------

func (l *Ledger) appendHistory(
	ctx context.Context,
	barbershopID uint,
	clientID uint,
	result domain.AccrualResult,
	note string,
) {
	h := &models.LoyaltyHistory{
		BarbershopID: barbershopID,
		ClientID:     clientID,
		Action:       result.Action,
		PointsDelta:  result.PointsDelta,
		RewardsDelta: result.RewardsDelta,
		Note:         note,
	}
	if err := l.repo.AppendHistory(ctx, h); err != nil {
		log.Printf("loyalty history append: %v", err)
	}
}

func (l *Ledger) notify(
	ctx context.Context,
	barbershopID uint,
	entity string,
	clientID uint,
) {
	if l.notifier == nil {
		return
	}
	l.notifier.LoyaltyChanged(ctx, barbershopID, entity, clientID)
}
