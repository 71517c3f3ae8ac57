package models

import "time"

// Saldo de fidelidade por cliente. points sempre fica em [0, cuts_for_free).
type LoyaltyAccount struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	BarbershopID uint `json:"barbershop_id"`

	ClientID uint `gorm:"uniqueIndex" json:"client_id"`

	Points       int `gorm:"default:0" json:"points"`
	FreeHaircuts int `gorm:"default:0" json:"free_haircuts"`

	// Contadores acumulados, apenas para auditoria/relatório
	TotalPointsEarned  int `gorm:"default:0" json:"total_points_earned"`
	TotalRewardsEarned int `gorm:"default:0" json:"total_rewards_earned"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Configuração única por barbearia.
type LoyaltySettings struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	BarbershopID uint `gorm:"uniqueIndex" json:"barbershop_id"`

	CutsForFree int `gorm:"default:10" json:"cuts_for_free"`

	// Último ganhador do sorteio semanal (evita repetição imediata)
	LastWinnerClientID *uint      `json:"last_winner_client_id"`
	LastDrawAt         *time.Time `json:"last_draw_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Trilha append-only das ações de fidelidade.
type LoyaltyHistory struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	BarbershopID uint `json:"barbershop_id"`

	ClientID uint   `json:"client_id"`
	Action   string `gorm:"size:30;not null" json:"action"`

	PointsDelta  int `json:"points_delta"`
	RewardsDelta int `json:"rewards_delta"`

	Note string `gorm:"size:255" json:"note"`

	CreatedAt time.Time `json:"created_at"`
}
