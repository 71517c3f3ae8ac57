package models

import "time"

type MonthlyPlan struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	BarbershopID uint `json:"barbershop_id"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	Tier         string  `gorm:"size:20;not null" json:"tier"`
	MonthlyPrice float64 `json:"monthly_price"`

	StartDate time.Time `json:"start_date"`

	Status        string `gorm:"size:20;default:'active'" json:"status"`
	PaymentStatus string `gorm:"size:20;default:'pending'" json:"payment_status"`

	NextPaymentDate *time.Time `json:"next_payment_date"`
	LastPaymentDate *time.Time `json:"last_payment_date"`

	Notes string `gorm:"size:255" json:"notes"`

	ScheduleEntries []PlanScheduleEntry `gorm:"constraint:OnDelete:CASCADE;" json:"schedule_entries"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Horário semanal fixo de um plano: dia da semana + hora + serviço.
type PlanScheduleEntry struct {
	ID            uint `gorm:"primaryKey" json:"id"`
	MonthlyPlanID uint `json:"monthly_plan_id"`

	Weekday   int    `json:"weekday"`
	Time      string `gorm:"size:5" json:"time"`
	ServiceID uint   `json:"service_id"`

	Position int `json:"position"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
