package entities

import (
	"github.com/google/uuid"
)

type MenuCategory struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	CategoryID string    `gorm:"uniqueIndex;not null" json:"category_id"`
	Name       string    `gorm:"not null" json:"name"`
	Icon       string    `json:"icon,omitempty"`
	Color      string    `json:"color,omitempty"`
	SortOrder  int       `gorm:"default:0" json:"sort_order"`
	IsActive   bool      `gorm:"default:true" json:"is_active"`

	Timestamp
}
