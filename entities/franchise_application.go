package entities

import (
	"github.com/google/uuid"
)

type FranchiseApplication struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	FullName        string    `gorm:"not null" json:"full_name"`
	Email           string    `gorm:"not null" json:"email"`
	Phone           string    `gorm:"not null" json:"phone"`
	City            string    `json:"city"`
	InvestmentRange string    `json:"investment_range,omitempty"`
	Message         string    `gorm:"type:text" json:"message,omitempty"`
	Status          string    `gorm:"default:pending" json:"status"` // "pending", "reviewed", "approved", "rejected"

	Timestamp
}
