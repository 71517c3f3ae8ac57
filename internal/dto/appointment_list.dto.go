package dto

import (
	"time"

	"github.com/BruksfildServices01/barber-manager/internal/models"
)

type AppointmentListDTO struct {
	ID            uint      `json:"id"`
	Reference     string    `json:"reference"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	Status        string    `json:"status"`
	Origin        string    `json:"origin"`
	Price         float64   `json:"price"`
	PaymentMethod string    `json:"payment_method"`
	ClientName    string    `json:"client_name"`
	ServiceName   string    `json:"service_name"`
}

func FromAppointment(ap models.Appointment) AppointmentListDTO {
	clientName := ""
	if ap.Client != nil {
		clientName = ap.Client.Name
	}

	return AppointmentListDTO{
		ID:            ap.ID,
		Reference:     ap.Reference,
		StartTime:     ap.StartTime,
		EndTime:       ap.EndTime,
		Status:        ap.Status,
		Origin:        ap.Origin,
		Price:         ap.Price,
		PaymentMethod: ap.PaymentMethod,
		ClientName:    clientName,
		ServiceName:   ap.Service.Name,
	}
}
