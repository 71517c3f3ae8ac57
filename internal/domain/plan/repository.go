package plan

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barber-manager/internal/models"
)

type Repository interface {
	GetPlan(
		ctx context.Context,
		barbershopID uint,
		planID uint,
	) (*models.MonthlyPlan, error)

	ListPlans(
		ctx context.Context,
		barbershopID uint,
	) ([]models.MonthlyPlan, error)

	// Planos com entries carregadas, para validação de colisão
	ListPlansWithSchedules(
		ctx context.Context,
		barbershopID uint,
	) ([]models.MonthlyPlan, error)

	UpdatePlan(
		ctx context.Context,
		p *models.MonthlyPlan,
	) error

	// SaveEnrollment persiste plano + agendamentos gerados em uma
	// transação única; conflito de horário aborta tudo.
	SaveEnrollment(
		ctx context.Context,
		p *models.MonthlyPlan,
		generated []models.Appointment,
	) error

	// SaveScheduleChange troca os horários semanais: remove os
	// agendamentos futuros gerados pelo plano, grava as novas entries
	// e insere a nova expansão, tudo na mesma transação.
	SaveScheduleChange(
		ctx context.Context,
		p *models.MonthlyPlan,
		entries []models.PlanScheduleEntry,
		generated []models.Appointment,
		from time.Time,
	) error

	// DeleteFutureGenerated remove agendamentos futuros ainda
	// agendados originados pelo plano. Passados/concluídos ficam.
	DeleteFutureGenerated(
		ctx context.Context,
		planID uint,
		from time.Time,
	) error
}
