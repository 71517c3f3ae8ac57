package plan

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-manager/internal/httperr"
	"github.com/BruksfildServices01/barber-manager/internal/models"
)

func entry(weekday int, hm string) models.PlanScheduleEntry {
	return models.PlanScheduleEntry{Weekday: weekday, Time: hm, ServiceID: 1}
}

func TestValidateNoDuplicates(t *testing.T) {
	assert.NoError(t, ValidateNoDuplicates([]models.PlanScheduleEntry{
		entry(2, "10:00"),
		entry(5, "10:00"),
		entry(2, "15:00"),
	}))

	err := ValidateNoDuplicates([]models.PlanScheduleEntry{
		entry(2, "10:00"),
		entry(2, "10:00"),
	})
	assert.True(t, httperr.IsBusiness(err, "duplicate_slot"))
}

func TestValidateNoCollisions(t *testing.T) {
	others := []models.MonthlyPlan{
		{
			ID:     7,
			Status: string(StatusActive),
			ScheduleEntries: []models.PlanScheduleEntry{
				entry(2, "10:00"),
			},
		},
		{
			ID:     8,
			Status: string(StatusSuspended),
			ScheduleEntries: []models.PlanScheduleEntry{
				entry(4, "16:00"),
			},
		},
	}

	// colide com plano ativo
	err := ValidateNoCollisions([]models.PlanScheduleEntry{entry(2, "10:00")}, others, 0)
	assert.True(t, httperr.IsBusiness(err, "schedule_conflict"))

	// plano suspenso não bloqueia o horário
	assert.NoError(t, ValidateNoCollisions([]models.PlanScheduleEntry{entry(4, "16:00")}, others, 0))

	// mesmo dia, hora diferente
	assert.NoError(t, ValidateNoCollisions([]models.PlanScheduleEntry{entry(2, "11:00")}, others, 0))

	// ao editar o próprio plano, os horários atuais dele não colidem
	assert.NoError(t, ValidateNoCollisions([]models.PlanScheduleEntry{entry(2, "10:00")}, others, 7))
}

func TestPricePerVisit(t *testing.T) {
	assert.Equal(t, 50.0, PricePerVisit(100, 2))
	assert.Equal(t, 25.0, PricePerVisit(100, 4))
	assert.Equal(t, 0.0, PricePerVisit(100, 0))
}

func TestMatchEntries(t *testing.T) {
	entries := []models.PlanScheduleEntry{
		entry(2, "10:00"), // terça
		entry(5, "15:00"), // sexta
	}

	tuesday := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	require.Equal(t, time.Tuesday, tuesday.Weekday())

	m := MatchEntries(entries, tuesday)
	require.Len(t, m, 1)
	assert.Equal(t, "10:00", m[0].Time)

	monday := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	assert.Empty(t, MatchEntries(entries, monday))
}

func TestMatchEntriesSameWeekday(t *testing.T) {
	// dois horários na mesma terça: ambos precisam virar visita
	entries := []models.PlanScheduleEntry{
		entry(2, "10:00"),
		entry(5, "09:00"),
		entry(2, "15:00"),
	}

	tuesday := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	m := MatchEntries(entries, tuesday)
	require.Len(t, m, 2)
	assert.Equal(t, "10:00", m[0].Time)
	assert.Equal(t, "15:00", m[1].Time)
}

func TestMarkPaid(t *testing.T) {
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)

	// sem próxima cobrança agendada: avança a partir de agora
	p := &models.MonthlyPlan{PaymentStatus: string(PaymentPending)}
	MarkPaid(p, now)

	assert.Equal(t, string(PaymentPaid), p.PaymentStatus)
	require.NotNil(t, p.LastPaymentDate)
	require.NotNil(t, p.NextPaymentDate)
	assert.Equal(t, now.AddDate(0, 1, 0), *p.NextPaymentDate)

	// com próxima cobrança: avança a partir dela, não de agora
	due := time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC)
	p2 := &models.MonthlyPlan{
		PaymentStatus:   string(PaymentOverdue),
		NextPaymentDate: &due,
	}
	MarkPaid(p2, now)
	assert.Equal(t, due.AddDate(0, 1, 0), *p2.NextPaymentDate)
}

func TestTiers(t *testing.T) {
	basico, err := TierByName("basico")
	require.NoError(t, err)
	assert.NoError(t, basico.ValidateCapacity(1))
	assert.NoError(t, basico.ValidateCapacity(2))
	assert.True(t, httperr.IsBusiness(basico.ValidateCapacity(3), "capacity_exceeded"))
	assert.True(t, httperr.IsBusiness(basico.ValidateCapacity(0), "capacity_exceeded"))

	premium, err := TierByName("premium")
	require.NoError(t, err)
	assert.True(t, httperr.IsBusiness(premium.ValidateCapacity(1), "capacity_exceeded"))
	assert.NoError(t, premium.ValidateCapacity(2))
	assert.NoError(t, premium.ValidateCapacity(4))
	assert.True(t, httperr.IsBusiness(premium.ValidateCapacity(5), "capacity_exceeded"))

	_, err = TierByName("vip")
	assert.True(t, httperr.IsBusiness(err, "invalid_tier"))
}

func TestPlanStatusGuards(t *testing.T) {
	assert.NoError(t, CanSuspend(StatusActive))
	assert.Error(t, CanSuspend(StatusSuspended))
	assert.Error(t, CanSuspend(StatusInactive))

	assert.NoError(t, CanReactivate(StatusSuspended))
	assert.Error(t, CanReactivate(StatusActive))

	assert.NoError(t, CanCancel(StatusActive))
	assert.NoError(t, CanCancel(StatusSuspended))
	assert.Error(t, CanCancel(StatusInactive))

	assert.NoError(t, CanEditSchedule(StatusActive))
	assert.Error(t, CanEditSchedule(StatusSuspended))
}
