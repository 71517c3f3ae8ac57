package models

import "time"

type Barbershop struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:100;not null" json:"name"`
	Slug    string `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Phone   string `gorm:"size:20" json:"phone"`
	Address string `gorm:"size:255" json:"address"`

	Timezone string `gorm:"size:50" json:"timezone"`

	// Expediente fixo da barbearia (HH:MM) e granularidade dos slots
	OpenTime        string `gorm:"size:5;default:'08:00'" json:"open_time"`
	CloseTime       string `gorm:"size:5;default:'20:00'" json:"close_time"`
	SlotIntervalMin int    `gorm:"default:30" json:"slot_interval_min"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
