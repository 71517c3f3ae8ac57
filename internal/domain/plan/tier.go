package plan

import "github.com/BruksfildServices01/barber-manager/internal/httperr"

// ===============================
// Plan Tiers
// ===============================

// Tier limita quantos horários semanais fixos um plano pode ter.
type Tier struct {
	Name     string
	MinSlots int
	MaxSlots int
}

var tiers = map[string]Tier{
	"basico":  {Name: "basico", MinSlots: 1, MaxSlots: 2},
	"premium": {Name: "premium", MinSlots: 2, MaxSlots: 4},
}

func TierByName(name string) (Tier, error) {
	t, ok := tiers[name]
	if !ok {
		return Tier{}, httperr.ErrBusiness("invalid_tier")
	}
	return t, nil
}

// ValidateCapacity garante que a quantidade de horários semanais
// está dentro dos limites do tier.
func (t Tier) ValidateCapacity(entryCount int) error {
	if entryCount < t.MinSlots || entryCount > t.MaxSlots {
		return httperr.ErrBusiness("capacity_exceeded")
	}
	return nil
}
