package plan

import "github.com/BruksfildServices01/barber-manager/internal/httperr"

// ===============================
// Plan Status
// ===============================

type Status string

const (
	StatusActive    Status = "active"
	StatusSuspended Status = "suspended"
	StatusInactive  Status = "inactive"
)

// Eixo independente do status do plano
type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "paid"
	PaymentPending PaymentStatus = "pending"
	PaymentOverdue PaymentStatus = "overdue"
)

// ===============================
// Validations
// ===============================

func CanSuspend(current Status) error {
	if current != StatusActive {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanReactivate(current Status) error {
	if current != StatusSuspended {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanCancel: inativo é terminal
func CanCancel(current Status) error {
	if current != StatusActive && current != StatusSuspended {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanEditSchedule(current Status) error {
	if current != StatusActive {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}
