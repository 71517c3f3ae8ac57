package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	apptdomain "github.com/BruksfildServices01/barber-manager/internal/domain/appointment"
	domain "github.com/BruksfildServices01/barber-manager/internal/domain/plan"
	"github.com/BruksfildServices01/barber-manager/internal/models"
)

type PlanGormRepository struct {
	db *gorm.DB
}

func NewPlanGormRepository(db *gorm.DB) *PlanGormRepository {
	return &PlanGormRepository{db: db}
}

// --------------------------------------------------
// Reads
// --------------------------------------------------

func (r *PlanGormRepository) GetPlan(
	ctx context.Context,
	barbershopID uint,
	planID uint,
) (*models.MonthlyPlan, error) {

	var p models.MonthlyPlan
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("ScheduleEntries", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("id = ? AND barbershop_id = ?", planID, barbershopID).
		First(&p).Error; err != nil {
		return nil, err
	}

	return &p, nil
}

func (r *PlanGormRepository) ListPlans(
	ctx context.Context,
	barbershopID uint,
) ([]models.MonthlyPlan, error) {

	var plans []models.MonthlyPlan
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("ScheduleEntries", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("barbershop_id = ?", barbershopID).
		Order("created_at DESC").
		Find(&plans).Error; err != nil {
		return nil, err
	}

	return plans, nil
}

func (r *PlanGormRepository) ListPlansWithSchedules(
	ctx context.Context,
	barbershopID uint,
) ([]models.MonthlyPlan, error) {

	var plans []models.MonthlyPlan
	if err := r.db.WithContext(ctx).
		Preload("ScheduleEntries").
		Where("barbershop_id = ?", barbershopID).
		Find(&plans).Error; err != nil {
		return nil, err
	}

	return plans, nil
}

// --------------------------------------------------
// Writes
// --------------------------------------------------

func (r *PlanGormRepository) UpdatePlan(
	ctx context.Context,
	p *models.MonthlyPlan,
) error {
	return r.db.WithContext(ctx).
		Omit("ScheduleEntries", "Client").
		Save(p).Error
}

func (r *PlanGormRepository) SaveEnrollment(
	ctx context.Context,
	p *models.MonthlyPlan,
	generated []models.Appointment,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(p).Error; err != nil {
			return err
		}

		for i := range generated {
			ap := &generated[i]
			ap.MonthlyPlanID = &p.ID

			if err := assertNoTimeConflict(tx, ap.BarberID, ap.StartTime, ap.EndTime, 0); err != nil {
				return err
			}
			if err := tx.Create(ap).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *PlanGormRepository) SaveScheduleChange(
	ctx context.Context,
	p *models.MonthlyPlan,
	entries []models.PlanScheduleEntry,
	generated []models.Appointment,
	from time.Time,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deleteFutureGenerated(tx, p.ID, from); err != nil {
			return err
		}

		if err := tx.
			Where("monthly_plan_id = ?", p.ID).
			Delete(&models.PlanScheduleEntry{}).Error; err != nil {
			return err
		}

		for i := range entries {
			entries[i].ID = 0
			entries[i].MonthlyPlanID = p.ID
		}
		if err := tx.Create(&entries).Error; err != nil {
			return err
		}
		p.ScheduleEntries = entries

		for i := range generated {
			ap := &generated[i]
			ap.MonthlyPlanID = &p.ID

			if err := assertNoTimeConflict(tx, ap.BarberID, ap.StartTime, ap.EndTime, 0); err != nil {
				return err
			}
			if err := tx.Create(ap).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *PlanGormRepository) DeleteFutureGenerated(
	ctx context.Context,
	planID uint,
	from time.Time,
) error {
	return deleteFutureGenerated(r.db.WithContext(ctx), planID, from)
}

// Remove apenas agendamentos futuros ainda agendados e gerados pelo
// plano. Concluídos, cancelados e passados nunca são apagados.
func deleteFutureGenerated(tx *gorm.DB, planID uint, from time.Time) error {
	return tx.
		Where(
			"monthly_plan_id = ? AND origin = ? AND status = ? AND start_time > ?",
			planID,
			apptdomain.OriginPlan,
			string(apptdomain.StatusScheduled),
			from,
		).
		Delete(&models.Appointment{}).Error
}

// Compile-time check
var _ domain.Repository = (*PlanGormRepository)(nil)
