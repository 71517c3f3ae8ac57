package appointment

import "time"

type AvailabilityInput struct {
	BarbershopID uint
	BarberID     uint
	ServiceID    uint
	Date         time.Time
}

type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Overlaps aplica a sobreposição clássica de intervalos semiabertos:
// [s1, e1) conflita com [s2, e2) quando s1 < e2 && e1 > s2.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && e1.After(s2)
}

// ConflictsWithAny busca sobreposição contra agendamentos existentes,
// ignorando o próprio agendamento em edições (excludeID > 0).
func ConflictsWithAny(
	start time.Time,
	end time.Time,
	existing []ExistingBooking,
	excludeID uint,
) bool {
	for _, b := range existing {
		if excludeID != 0 && b.ID == excludeID {
			continue
		}
		if Overlaps(start, end, b.Start, b.End) {
			return true
		}
	}
	return false
}

// ExistingBooking é a projeção mínima de um agendamento para
// checagem de conflito.
type ExistingBooking struct {
	ID    uint
	Start time.Time
	End   time.Time
}
