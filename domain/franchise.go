package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessApplyFranchise       = "franchise application submitted successfully"
	MessageSuccessGetApplications      = "franchise applications retrieved successfully"
	MessageSuccessUpdateApplication    = "franchise application updated successfully"
	MessageFailedApplyFranchise        = "failed to submit franchise application"
	MessageFailedGetApplications       = "failed to retrieve franchise applications"
	MessageFailedUpdateApplication     = "failed to update franchise application"
	MessageFranchiseApplicationMissing = "franchise application not found"

	ErrApplicationNotFound = errors.New("franchise application not found")
)

type (
	ApplyFranchiseRequest struct {
		FullName        string `json:"full_name" validate:"required,min=2,max=100"`
		Email           string `json:"email" validate:"required,email"`
		Phone           string `json:"phone" validate:"required,min=6,max=20"`
		City            string `json:"city" validate:"required,min=2,max=100"`
		InvestmentRange string `json:"investment_range" validate:"omitempty,max=50"`
		Message         string `json:"message" validate:"omitempty,max=2000"`
	}

	UpdateApplicationStatusRequest struct {
		Status string `json:"status" validate:"required,oneof=pending reviewed approved rejected"`
	}

	FranchiseApplicationResponse struct {
		ID              string    `json:"id"`
		FullName        string    `json:"full_name"`
		Email           string    `json:"email"`
		Phone           string    `json:"phone"`
		City            string    `json:"city"`
		InvestmentRange string    `json:"investment_range,omitempty"`
		Message         string    `json:"message,omitempty"`
		Status          string    `json:"status"`
		CreatedAt       time.Time `json:"created_at"`
		UpdatedAt       time.Time `json:"updated_at"`
	}
)
