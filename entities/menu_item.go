package entities

import (
	"github.com/google/uuid"
)

type (
	ItemSize struct {
		Name  string  `json:"name"`
		Price float64 `json:"price"`
	}

	ItemAddOn struct {
		Name     string  `json:"name"`
		Price    float64 `json:"price"`
		Category string  `json:"category,omitempty"`
	}

	MenuItem struct {
		ID          uuid.UUID   `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
		Name        string      `gorm:"not null" json:"name"`
		Description string      `gorm:"type:text" json:"description"`
		ImageURL    string      `json:"image_url,omitempty"`
		Badge       string      `json:"badge,omitempty"`
		Rating      float64     `gorm:"default:4.5" json:"rating"`
		Category    string      `gorm:"index;not null" json:"category"` // soft pointer to MenuCategory.CategoryID
		Sizes       []ItemSize  `gorm:"serializer:json;type:jsonb" json:"sizes"`
		AddOns      []ItemAddOn `gorm:"serializer:json;type:jsonb" json:"add_ons,omitempty"`
		IsActive    bool        `gorm:"default:true" json:"is_active"`

		Timestamp
	}
)
