package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-manager/internal/httperr"
	"github.com/BruksfildServices01/barber-manager/internal/models"
)

func TestWindowForDate(t *testing.T) {
	date := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

	shop := &models.Barbershop{
		OpenTime:        "09:00",
		CloseTime:       "18:00",
		SlotIntervalMin: 15,
	}

	w := WindowForDate(shop, date)
	assert.Equal(t, time.Date(2026, 9, 14, 9, 0, 0, 0, time.UTC), w.Open)
	assert.Equal(t, time.Date(2026, 9, 14, 18, 0, 0, 0, time.UTC), w.Close)
	assert.Equal(t, 15*time.Minute, w.Interval)
}

func TestWindowForDateDefaults(t *testing.T) {
	date := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

	w := WindowForDate(&models.Barbershop{}, date)
	assert.Equal(t, 8, w.Open.Hour())
	assert.Equal(t, 20, w.Close.Hour())
	assert.Equal(t, 30*time.Minute, w.Interval)
}

func TestValidateStart(t *testing.T) {
	date := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	w := WindowForDate(&models.Barbershop{OpenTime: "08:00", CloseTime: "20:00"}, date)

	tests := []struct {
		name  string
		start time.Time
		ok    bool
	}{
		{"na abertura", at(8, 0), true},
		{"meio do dia", at(14, 0), true},
		{"antes de abrir", at(7, 30), false},
		{"no fechamento", at(20, 0), false},
		{"depois de fechar", at(21, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := w.ValidateStart(tt.start)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.True(t, httperr.IsBusiness(err, "outside_business_hours"))
			}
		})
	}
}

func TestValidateNotPast(t *testing.T) {
	now := at(14, 0)

	// futuro sempre passa
	assert.NoError(t, ValidateNotPast(at(15, 0), now))

	// dentro da tolerância de 30min
	assert.NoError(t, ValidateNotPast(at(13, 45), now))
	assert.NoError(t, ValidateNotPast(at(13, 30), now))

	// além da tolerância
	err := ValidateNotPast(at(13, 29), now)
	assert.True(t, httperr.IsBusiness(err, "in_past"))
}

func TestSlots(t *testing.T) {
	date := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	w := WindowForDate(&models.Barbershop{
		OpenTime:        "08:00",
		CloseTime:       "10:00",
		SlotIntervalMin: 30,
	}, date)

	slots := w.Slots()
	require.Len(t, slots, 4)
	assert.Equal(t, at(8, 0), slots[0])
	assert.Equal(t, at(9, 30), slots[3])
}
