package loyalty

import (
	"context"
	"log"
	"math/rand"
	"sync"

	"github.com/BruksfildServices01/barber-manager/internal/audit"
	domain "github.com/BruksfildServices01/barber-manager/internal/domain/loyalty"
	"github.com/BruksfildServices01/barber-manager/internal/models"
	"github.com/BruksfildServices01/barber-manager/internal/timezone"
)

// ======================================================
// WEEKLY DRAW
// ======================================================

type DrawReward struct {
	repo     domain.Repository
	notifier Notifier
	audit    *audit.Dispatcher

	// Fonte de aleatoriedade injetável (determinismo nos testes).
	// rand.Rand não é seguro para uso concorrente: o mutex serializa
	// sorteios disparados por requisições simultâneas.
	rngMu sync.Mutex
	rng   *rand.Rand
}

func NewDrawReward(
	repo domain.Repository,
	notifier Notifier,
	audit *audit.Dispatcher,
	rng *rand.Rand,
) *DrawReward {
	return &DrawReward{
		repo:     repo,
		notifier: notifier,
		audit:    audit,
		rng:      rng,
	}
}

type DrawResult struct {
	Winner  models.Client         `json:"winner"`
	Account models.LoyaltyAccount `json:"account"`

	// Falhas pós-sorteio que não anulam o prêmio já creditado
	Warnings []string `json:"warnings,omitempty"`
}

// Execute sorteia um cliente que visitou nos últimos 7 dias e credita
// um corte grátis direto, sem passar pelo contador de pontos. O
// último ganhador não repete enquanto houver alternativa.
func (uc *DrawReward) Execute(
	ctx context.Context,
	barbershopID uint,
	barberID uint,
) (*DrawResult, error) {

	settings, err := uc.repo.GetSettings(ctx, barbershopID)
	if err != nil {
		return nil, err
	}

	now := timezone.Now()
	eligible, err := uc.repo.ListEligibleClients(
		ctx,
		barbershopID,
		domain.EligibilityCutoff(now),
	)
	if err != nil {
		return nil, err
	}

	uc.rngMu.Lock()
	winner, err := domain.Draw(eligible, settings.LastWinnerClientID, uc.rng)
	uc.rngMu.Unlock()
	if err != nil {
		return nil, err
	}

	var (
		result  domain.AccrualResult
		account models.LoyaltyAccount
	)
	err = uc.repo.WithAccount(ctx, barbershopID, winner.ID, func(acc *models.LoyaltyAccount) error {
		result = domain.GrantReward(acc)
		account = *acc
		return nil
	})
	if err != nil {
		return nil, err
	}

	var warnings []string

	h := &models.LoyaltyHistory{
		BarbershopID: barbershopID,
		ClientID:     winner.ID,
		Action:       result.Action,
		PointsDelta:  result.PointsDelta,
		RewardsDelta: result.RewardsDelta,
		Note:         "ganhador do sorteio semanal",
	}
	if err := uc.repo.AppendHistory(ctx, h); err != nil {
		log.Printf("draw history append: %v", err)
		warnings = append(warnings, "draw_history_failed")
	}

	// Sem o marcador de último ganhador persistido, o próximo sorteio
	// perde a proteção contra repetição: o chamador precisa saber.
	winnerID := winner.ID
	settings.LastWinnerClientID = &winnerID
	settings.LastDrawAt = &now
	if err := uc.repo.SaveSettings(ctx, settings); err != nil {
		log.Printf("draw settings save: %v", err)
		warnings = append(warnings, "last_winner_save_failed")
	}

	if uc.notifier != nil {
		uc.notifier.LoyaltyChanged(ctx, barbershopID, "loyalty_account", winner.ID)
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: barbershopID,
		UserID:       &barberID,
		Action:       "loyalty_draw_win",
		Entity:       "loyalty_account",
		EntityID:     &winnerID,
	})

	return &DrawResult{Winner: *winner, Account: account, Warnings: warnings}, nil
}
