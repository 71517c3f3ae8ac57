package loyalty

import (
	"github.com/BruksfildServices01/barber-manager/internal/httperr"
	"github.com/BruksfildServices01/barber-manager/internal/models"
)

// ===============================
// Loyalty Ledger Rules
// ===============================

// Ações registradas na trilha de fidelidade
const (
	ActionVisitPoint    = "visit_point"
	ActionRewardReached = "reward_reached"
	ActionRedeemed      = "redeemed"
	ActionDrawWin       = "draw_win"
)

const DefaultCutsForFree = 10

// AccrualResult descreve o que aconteceu em um acúmulo.
type AccrualResult struct {
	Action       string
	PointsDelta  int
	RewardsDelta int
}

// Accrue credita um ponto de visita. Ao atingir o limiar, o corte
// grátis é creditado e os pontos zeram na mesma operação.
func Accrue(acc *models.LoyaltyAccount, cutsForFree int) AccrualResult {
	if cutsForFree < 1 {
		cutsForFree = DefaultCutsForFree
	}

	acc.Points++
	acc.TotalPointsEarned++

	if acc.Points >= cutsForFree {
		pointsCleared := acc.Points
		acc.Points = 0
		acc.FreeHaircuts++
		acc.TotalRewardsEarned++

		return AccrualResult{
			Action:       ActionRewardReached,
			PointsDelta:  -(pointsCleared - 1),
			RewardsDelta: 1,
		}
	}

	return AccrualResult{
		Action:      ActionVisitPoint,
		PointsDelta: 1,
	}
}

// Redeem consome um corte grátis. O resgate também zera o progresso
// de pontos em andamento — escolha de produto, não acidente.
func Redeem(acc *models.LoyaltyAccount) (AccrualResult, error) {
	if acc.FreeHaircuts <= 0 {
		return AccrualResult{}, httperr.ErrBusiness("no_reward_available")
	}

	pointsCleared := acc.Points
	acc.FreeHaircuts--
	acc.Points = 0

	return AccrualResult{
		Action:       ActionRedeemed,
		PointsDelta:  -pointsCleared,
		RewardsDelta: -1,
	}, nil
}

// GrantReward credita um corte grátis direto, sem passar pelo
// contador de pontos (usado pelo sorteio semanal).
func GrantReward(acc *models.LoyaltyAccount) AccrualResult {
	acc.FreeHaircuts++
	acc.TotalRewardsEarned++

	return AccrualResult{
		Action:       ActionDrawWin,
		RewardsDelta: 1,
	}
}
