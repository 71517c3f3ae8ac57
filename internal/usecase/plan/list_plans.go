package plan

import (
	"context"

	domain "github.com/BruksfildServices01/barber-manager/internal/domain/plan"
	"github.com/BruksfildServices01/barber-manager/internal/models"
)

type ListPlans struct {
	plans domain.Repository
}

func NewListPlans(plans domain.Repository) *ListPlans {
	return &ListPlans{plans: plans}
}

func (uc *ListPlans) Execute(
	ctx context.Context,
	barbershopID uint,
) ([]models.MonthlyPlan, error) {
	return uc.plans.ListPlans(ctx, barbershopID)
}
