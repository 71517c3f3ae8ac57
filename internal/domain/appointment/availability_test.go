package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(h, m int) time.Time {
	return time.Date(2026, 9, 14, h, m, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		s1   time.Time
		e1   time.Time
		s2   time.Time
		e2   time.Time
		want bool
	}{
		{"identicos", at(14, 0), at(14, 45), at(14, 0), at(14, 45), true},
		{"parcial no fim", at(14, 0), at(14, 45), at(14, 30), at(15, 0), true},
		{"parcial no inicio", at(14, 30), at(15, 0), at(14, 0), at(14, 45), true},
		{"contido", at(14, 0), at(15, 0), at(14, 15), at(14, 30), true},
		{"encostado depois", at(14, 0), at(14, 45), at(14, 45), at(15, 15), false},
		{"encostado antes", at(14, 45), at(15, 15), at(14, 0), at(14, 45), false},
		{"disjunto", at(14, 0), at(14, 30), at(16, 0), at(16, 30), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.s1, tt.e1, tt.s2, tt.e2))
			// simetria: a ordem dos intervalos não muda o resultado
			assert.Equal(t, tt.want, Overlaps(tt.s2, tt.e2, tt.s1, tt.e1))
		})
	}
}

func TestConflictsWithAny(t *testing.T) {
	existing := []ExistingBooking{
		{ID: 1, Start: at(14, 0), End: at(14, 45)},
		{ID: 2, Start: at(16, 0), End: at(16, 30)},
	}

	// serviço de 45min às 14:30 invade o corte das 14:00
	assert.True(t, ConflictsWithAny(at(14, 30), at(15, 15), existing, 0))

	// às 14:45 o horário anterior já terminou
	assert.False(t, ConflictsWithAny(at(14, 45), at(15, 30), existing, 0))

	// editar o próprio agendamento não conflita consigo mesmo
	assert.False(t, ConflictsWithAny(at(14, 0), at(14, 45), existing, 1))

	// mas segue conflitando com terceiros
	assert.True(t, ConflictsWithAny(at(15, 45), at(16, 15), existing, 1))

	assert.False(t, ConflictsWithAny(at(10, 0), at(10, 30), nil, 0))
}
