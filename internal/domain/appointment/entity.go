package appointment

import (
	"time"

	"github.com/BruksfildServices01/barber-manager/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Start(ap *models.Appointment) error {
	if err := CanStart(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusInProgress)
	return nil
}

func Complete(ap *models.Appointment, method string, finalPrice *float64, now time.Time) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	normalized, err := NormalizePaymentMethod(method)
	if err != nil {
		return err
	}

	if finalPrice != nil {
		ap.Price = *finalPrice
	}

	ap.PaymentMethod = normalized
	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

func MarkNoShow(ap *models.Appointment) error {
	if err := CanMarkNoShow(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusNoShow)
	return nil
}
