package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetOffers   = "offers retrieved successfully"
	MessageSuccessCreateOffer = "offer created successfully"
	MessageSuccessUpdateOffer = "offer updated successfully"
	MessageSuccessDeleteOffer = "offer deleted successfully"
	MessageFailedGetOffers    = "failed to retrieve offers"
	MessageFailedCreateOffer  = "failed to create offer"
	MessageFailedUpdateOffer  = "failed to update offer"
	MessageFailedDeleteOffer  = "failed to delete offer"
	MessageOfferNotFound      = "offer not found"

	ErrOfferNotFound     = errors.New("offer not found")
	ErrInvalidValidUntil = errors.New("invalid valid_until date, expected YYYY-MM-DD")
)

type (
	CreateOfferRequest struct {
		Title       string `json:"title" validate:"required,min=1,max=100"`
		Description string `json:"description" validate:"omitempty,max=2000"`
		ImageURL    string `json:"image_url" validate:"omitempty,max=500"`
		Discount    string `json:"discount" validate:"omitempty,max=50"`
		ValidUntil  string `json:"valid_until" validate:"omitempty"`
	}

	UpdateOfferRequest struct {
		Title       string `json:"title" validate:"omitempty,min=1,max=100"`
		Description string `json:"description" validate:"omitempty,max=2000"`
		ImageURL    string `json:"image_url" validate:"omitempty,max=500"`
		Discount    string `json:"discount" validate:"omitempty,max=50"`
		ValidUntil  string `json:"valid_until" validate:"omitempty"`
	}

	OfferResponse struct {
		ID          string     `json:"id"`
		Title       string     `json:"title"`
		Description string     `json:"description,omitempty"`
		ImageURL    string     `json:"image_url,omitempty"`
		Discount    string     `json:"discount,omitempty"`
		ValidUntil  *time.Time `json:"valid_until,omitempty"`
		IsActive    bool       `json:"is_active"`
		CreatedAt   time.Time  `json:"created_at"`
		UpdatedAt   time.Time  `json:"updated_at"`
	}
)
