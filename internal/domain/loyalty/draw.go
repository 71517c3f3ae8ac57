package loyalty

import (
	"math/rand"
	"time"

	"github.com/BruksfildServices01/barber-manager/internal/httperr"
	"github.com/BruksfildServices01/barber-manager/internal/models"
)

// ===============================
// Weekly Reward Draw
// ===============================

// Janela de elegibilidade: visitou nos últimos 7 dias (inclusive)
const EligibilityDays = 7

// Tentativas extras quando o sorteado repete o último ganhador
const maxDrawRetries = 5

// EligibilityCutoff devolve o instante mínimo de last_visit para
// participar do sorteio.
func EligibilityCutoff(now time.Time) time.Time {
	return now.AddDate(0, 0, -EligibilityDays)
}

// Draw sorteia um cliente uniformemente dentre os elegíveis.
// Quando há alternativa, re-sorteia até maxDrawRetries vezes para não
// repetir o último ganhador; se todas as tentativas repetirem, aceita.
func Draw(
	eligible []models.Client,
	lastWinnerID *uint,
	rng *rand.Rand,
) (*models.Client, error) {

	if len(eligible) == 0 {
		return nil, httperr.ErrBusiness("no_eligible_clients")
	}

	pick := eligible[rng.Intn(len(eligible))]

	if lastWinnerID != nil && len(eligible) > 1 {
		for attempt := 0; attempt < maxDrawRetries && pick.ID == *lastWinnerID; attempt++ {
			pick = eligible[rng.Intn(len(eligible))]
		}
	}

	return &pick, nil
}
