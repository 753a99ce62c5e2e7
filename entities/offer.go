package entities

import (
	"time"

	"github.com/google/uuid"
)

type Offer struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Title       string     `gorm:"not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	ImageURL    string     `json:"image_url,omitempty"`
	Discount    string     `json:"discount,omitempty"`
	ValidUntil  *time.Time `json:"valid_until,omitempty"`
	IsActive    bool       `gorm:"default:true" json:"is_active"`

	Timestamp
}
