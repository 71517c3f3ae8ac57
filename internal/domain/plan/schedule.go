package plan

import (
	"time"

	"github.com/BruksfildServices01/barber-manager/internal/httperr"
	"github.com/BruksfildServices01/barber-manager/internal/models"
)

// ===============================
// Weekly Schedule Rules
// ===============================

// EntryKey identifica um horário semanal: dia da semana + hora.
type EntryKey struct {
	Weekday int
	Time    string
}

func KeyOf(e models.PlanScheduleEntry) EntryKey {
	return EntryKey{Weekday: e.Weekday, Time: e.Time}
}

// ValidateNoDuplicates rejeita o mesmo horário escolhido duas vezes
// na mesma submissão.
func ValidateNoDuplicates(entries []models.PlanScheduleEntry) error {
	seen := make(map[EntryKey]bool, len(entries))
	for _, e := range entries {
		k := KeyOf(e)
		if seen[k] {
			return httperr.ErrBusiness("duplicate_slot")
		}
		seen[k] = true
	}
	return nil
}

// ValidateNoCollisions rejeita colisão de dia+hora contra os horários
// de outros planos. Apenas planos ativos bloqueiam: um plano suspenso
// libera os horários até ser reativado.
func ValidateNoCollisions(
	entries []models.PlanScheduleEntry,
	others []models.MonthlyPlan,
	excludePlanID uint,
) error {

	taken := make(map[EntryKey]bool)
	for _, p := range others {
		if p.ID == excludePlanID {
			continue
		}
		if Status(p.Status) != StatusActive {
			continue
		}
		for _, e := range p.ScheduleEntries {
			taken[KeyOf(e)] = true
		}
	}

	for _, e := range entries {
		if taken[KeyOf(e)] {
			return httperr.ErrBusiness("schedule_conflict")
		}
	}
	return nil
}

// ===============================
// Expansion
// ===============================

// PricePerVisit rateia a mensalidade entre os horários semanais.
func PricePerVisit(monthlyPrice float64, entryCount int) float64 {
	if entryCount <= 0 {
		return 0
	}
	return monthlyPrice / float64(entryCount)
}

// MatchEntries encontra todos os horários semanais correspondentes a
// uma data escolhida pelo operador. Um plano pode ter mais de um
// horário no mesmo dia da semana; cada um vira uma visita na data.
// Retorna vazio quando o dia da semana não casa com nenhuma entry.
func MatchEntries(entries []models.PlanScheduleEntry, date time.Time) []*models.PlanScheduleEntry {
	weekday := int(date.Weekday())
	var matched []*models.PlanScheduleEntry
	for i := range entries {
		if entries[i].Weekday == weekday {
			matched = append(matched, &entries[i])
		}
	}
	return matched
}

// MarkPaid registra o pagamento do ciclo e avança a cobrança em um mês.
func MarkPaid(p *models.MonthlyPlan, now time.Time) {
	p.PaymentStatus = string(PaymentPaid)
	p.LastPaymentDate = &now

	base := now
	if p.NextPaymentDate != nil {
		base = *p.NextPaymentDate
	}
	next := base.AddDate(0, 1, 0)
	p.NextPaymentDate = &next
}
