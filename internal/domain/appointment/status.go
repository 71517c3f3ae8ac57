package appointment

import "github.com/BruksfildServices01/barber-manager/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled  Status = "scheduled"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
	StatusNoShow     Status = "no_show"
)

// Origem do agendamento
const (
	OriginManual = "manual"
	OriginOnline = "online"
	OriginPlan   = "plan"
)

// Status que ocupam o horário nas checagens de conflito
var BlockingStatuses = []string{
	string(StatusScheduled),
	string(StatusInProgress),
}

// ===============================
// Validations
// ===============================

// CanStart define se um agendamento pode ser iniciado
func CanStart(current Status) error {
	if current != StatusScheduled {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanComplete define se um agendamento pode ser concluído
func CanComplete(current Status) error {
	if current != StatusScheduled && current != StatusInProgress {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanCancel define se um agendamento pode ser cancelado
func CanCancel(current Status) error {
	if current != StatusScheduled && current != StatusInProgress {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanMarkNoShow define se um agendamento pode ser marcado como falta
func CanMarkNoShow(current Status) error {
	if current != StatusScheduled && current != StatusInProgress {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanReschedule define se data/hora ainda podem ser alteradas
func CanReschedule(current Status) error {
	if current != StatusScheduled {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func IsTerminal(current Status) bool {
	switch current {
	case StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

func InitialStatus() Status {
	return StatusScheduled
}
