package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetMenuItems    = "menu items retrieved successfully"
	MessageSuccessGetMenuItem     = "menu item retrieved successfully"
	MessageSuccessGetGroupedMenu  = "grouped menu retrieved successfully"
	MessageSuccessCreateMenuItem  = "menu item created successfully"
	MessageSuccessUpdateMenuItem  = "menu item updated successfully"
	MessageSuccessDeleteMenuItem  = "menu item deleted successfully"
	MessageSuccessUploadItemImage = "menu item image uploaded successfully"
	MessageSuccessBackfillAddOns  = "add-on backfill completed"
	MessageFailedGetMenuItems     = "failed to retrieve menu items"
	MessageFailedCreateMenuItem   = "failed to create menu item"
	MessageFailedUpdateMenuItem   = "failed to update menu item"
	MessageFailedDeleteMenuItem   = "failed to delete menu item"
	MessageFailedUploadItemImage  = "failed to upload menu item image"
	MessageFailedBackfillAddOns   = "failed to backfill add-ons"
	MessageMenuItemNotFound       = "menu item not found"
	MessageUnknownCategory        = "referenced category does not exist"

	ErrMenuItemNotFound = errors.New("menu item not found")
	ErrUnknownCategory  = errors.New("referenced category does not exist or is inactive")
	ErrEmptySizes       = errors.New("at least one size is required")
	ErrNegativePrice    = errors.New("size price must be non-negative")
)

type (
	ItemSizeRequest struct {
		Name  string  `json:"name" validate:"required,min=1,max=50"`
		Price float64 `json:"price" validate:"gte=0"`
	}

	ItemAddOnRequest struct {
		Name     string  `json:"name" validate:"required,min=1,max=50"`
		Price    float64 `json:"price" validate:"gte=0"`
		Category string  `json:"category" validate:"omitempty,max=50"`
	}

	CreateMenuItemRequest struct {
		Name        string             `json:"name" validate:"required,min=1,max=100"`
		Description string             `json:"description" validate:"required,min=1"`
		ImageURL    string             `json:"image_url" validate:"omitempty,max=500"`
		Badge       string             `json:"badge" validate:"omitempty,max=50"`
		Rating      float64            `json:"rating" validate:"omitempty"`
		Category    string             `json:"category" validate:"required,min=1,max=50"`
		Sizes       []ItemSizeRequest  `json:"sizes" validate:"required,min=1,dive"`
		AddOns      []ItemAddOnRequest `json:"add_ons" validate:"omitempty,dive"`
	}

	UpdateMenuItemRequest struct {
		Name        string             `json:"name" validate:"omitempty,min=1,max=100"`
		Description string             `json:"description" validate:"omitempty,min=1"`
		ImageURL    string             `json:"image_url" validate:"omitempty,max=500"`
		Badge       string             `json:"badge" validate:"omitempty,max=50"`
		Rating      *float64           `json:"rating" validate:"omitempty"`
		Category    string             `json:"category" validate:"omitempty,min=1,max=50"`
		Sizes       []ItemSizeRequest  `json:"sizes" validate:"omitempty,min=1,dive"`
		AddOns      []ItemAddOnRequest `json:"add_ons" validate:"omitempty,dive"`
	}

	ItemSizeResponse struct {
		Name  string  `json:"name"`
		Price float64 `json:"price"`
	}

	ItemAddOnResponse struct {
		Name     string  `json:"name"`
		Price    float64 `json:"price"`
		Category string  `json:"category,omitempty"`
	}

	MenuItemResponse struct {
		ID          string              `json:"id"`
		Name        string              `json:"name"`
		Description string              `json:"description"`
		ImageURL    string              `json:"image_url,omitempty"`
		Badge       string              `json:"badge,omitempty"`
		Rating      float64             `json:"rating"`
		Category    string              `json:"category"`
		Sizes       []ItemSizeResponse  `json:"sizes"`
		AddOns      []ItemAddOnResponse `json:"add_ons,omitempty"`
		IsActive    bool                `json:"is_active"`
		CreatedAt   time.Time           `json:"created_at"`
		UpdatedAt   time.Time           `json:"updated_at"`
	}

	GroupedMenuResponse struct {
		Categories []CategoryResponse            `json:"categories"`
		MenuItems  map[string][]MenuItemResponse `json:"menuItems"`
	}

	UploadItemImageRequest struct {
		ItemID string `json:"item_id" form:"item_id" validate:"required,uuid"`
	}

	BackfillAddOnsResponse struct {
		Updated int `json:"updated"`
		Total   int `json:"total"`
	}
)
