package loyalty

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-manager/internal/httperr"
	"github.com/BruksfildServices01/barber-manager/internal/models"
)

func TestAccrueBelowThreshold(t *testing.T) {
	acc := &models.LoyaltyAccount{}

	for i := 1; i <= 9; i++ {
		result := Accrue(acc, 10)
		assert.Equal(t, ActionVisitPoint, result.Action)
		assert.Equal(t, 1, result.PointsDelta)
	}

	assert.Equal(t, 9, acc.Points)
	assert.Equal(t, 0, acc.FreeHaircuts)
	assert.Equal(t, 9, acc.TotalPointsEarned)
}

func TestAccrueReachesThreshold(t *testing.T) {
	acc := &models.LoyaltyAccount{Points: 9}

	result := Accrue(acc, 10)

	assert.Equal(t, ActionRewardReached, result.Action)
	assert.Equal(t, 1, result.RewardsDelta)
	// o décimo ponto entra e os dez saem na mesma operação
	assert.Equal(t, -9, result.PointsDelta)

	assert.Equal(t, 0, acc.Points)
	assert.Equal(t, 1, acc.FreeHaircuts)
	assert.Equal(t, 1, acc.TotalRewardsEarned)
}

func TestAccrueCustomThreshold(t *testing.T) {
	acc := &models.LoyaltyAccount{}

	Accrue(acc, 3)
	Accrue(acc, 3)
	assert.Equal(t, 0, acc.FreeHaircuts)

	Accrue(acc, 3)
	assert.Equal(t, 1, acc.FreeHaircuts)
	assert.Equal(t, 0, acc.Points)
}

func TestAccrueInvalidThresholdFallsBack(t *testing.T) {
	acc := &models.LoyaltyAccount{Points: 9}

	result := Accrue(acc, 0)
	assert.Equal(t, ActionRewardReached, result.Action)
	assert.Equal(t, 1, acc.FreeHaircuts)
}

func TestRedeem(t *testing.T) {
	acc := &models.LoyaltyAccount{Points: 4, FreeHaircuts: 2}

	result, err := Redeem(acc)
	require.NoError(t, err)

	assert.Equal(t, ActionRedeemed, result.Action)
	assert.Equal(t, -4, result.PointsDelta)
	assert.Equal(t, -1, result.RewardsDelta)

	// resgatar zera o progresso de pontos em andamento
	assert.Equal(t, 0, acc.Points)
	assert.Equal(t, 1, acc.FreeHaircuts)
}

func TestRedeemWithoutReward(t *testing.T) {
	acc := &models.LoyaltyAccount{Points: 7}

	_, err := Redeem(acc)
	assert.True(t, httperr.IsBusiness(err, "no_reward_available"))

	// conta intacta
	assert.Equal(t, 7, acc.Points)
	assert.Equal(t, 0, acc.FreeHaircuts)
}

func TestGrantReward(t *testing.T) {
	acc := &models.LoyaltyAccount{Points: 5}

	result := GrantReward(acc)

	assert.Equal(t, ActionDrawWin, result.Action)
	assert.Equal(t, 1, result.RewardsDelta)

	// o sorteio não mexe no contador de pontos
	assert.Equal(t, 5, acc.Points)
	assert.Equal(t, 1, acc.FreeHaircuts)
}
