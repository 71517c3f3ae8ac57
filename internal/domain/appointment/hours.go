package appointment

import (
	"time"

	"github.com/BruksfildServices01/barber-manager/internal/httperr"
	"github.com/BruksfildServices01/barber-manager/internal/models"
)

// Tolerância para registrar um atendimento que começa "agora":
// um horário até 30 minutos no passado ainda é aceito.
const GraceMinutes = 30

const (
	DefaultOpenTime        = "08:00"
	DefaultCloseTime       = "20:00"
	DefaultSlotIntervalMin = 30
)

// BusinessWindow representa o expediente fixo da barbearia em um dia.
type BusinessWindow struct {
	Open     time.Time
	Close    time.Time
	Interval time.Duration
}

// WindowForDate monta o expediente da barbearia para uma data,
// caindo nos padrões quando a configuração estiver vazia.
func WindowForDate(shop *models.Barbershop, date time.Time) BusinessWindow {
	loc := date.Location()

	openStr := shop.OpenTime
	if openStr == "" {
		openStr = DefaultOpenTime
	}
	closeStr := shop.CloseTime
	if closeStr == "" {
		closeStr = DefaultCloseTime
	}
	interval := shop.SlotIntervalMin
	if interval <= 0 {
		interval = DefaultSlotIntervalMin
	}

	parseHM := func(hm string) time.Time {
		t, _ := time.Parse("15:04", hm)
		return time.Date(
			date.Year(), date.Month(), date.Day(),
			t.Hour(), t.Minute(), 0, 0,
			loc,
		)
	}

	return BusinessWindow{
		Open:     parseHM(openStr),
		Close:    parseHM(closeStr),
		Interval: time.Duration(interval) * time.Minute,
	}
}

// ValidateStart rejeita horários fora do expediente:
// antes da abertura ou a partir do fechamento.
func (w BusinessWindow) ValidateStart(start time.Time) error {
	if start.Before(w.Open) || !start.Before(w.Close) {
		return httperr.ErrBusiness("outside_business_hours")
	}
	return nil
}

// ValidateNotPast rejeita horários no passado, com janela de tolerância.
func ValidateNotPast(start time.Time, now time.Time) error {
	if start.Before(now.Add(-GraceMinutes * time.Minute)) {
		return httperr.ErrBusiness("in_past")
	}
	return nil
}

// Slots enumera os candidatos do dia na granularidade configurada.
// A filtragem por disponibilidade é feita pelo chamador.
func (w BusinessWindow) Slots() []time.Time {
	var out []time.Time
	for cur := w.Open; cur.Before(w.Close); cur = cur.Add(w.Interval) {
		out = append(out, cur)
	}
	return out
}
