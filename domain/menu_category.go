package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetCategories  = "categories retrieved successfully"
	MessageSuccessGetCategory    = "category retrieved successfully"
	MessageSuccessCreateCategory = "category created successfully"
	MessageSuccessUpdateCategory = "category updated successfully"
	MessageSuccessDeleteCategory = "category deleted successfully"
	MessageFailedGetCategories   = "failed to retrieve categories"
	MessageFailedCreateCategory  = "failed to create category"
	MessageFailedUpdateCategory  = "failed to update category"
	MessageFailedDeleteCategory  = "failed to delete category"
	MessageDuplicateCategoryID   = "a category with this category_id already exists"
	MessageCategoryNotFound      = "category not found"

	ErrCategoryNotFound    = errors.New("category not found")
	ErrDuplicateCategoryID = errors.New("category_id already exists")
)

type (
	CreateCategoryRequest struct {
		CategoryID string `json:"category_id" validate:"required,min=1,max=50"`
		Name       string `json:"name" validate:"required,min=1,max=100"`
		Icon       string `json:"icon" validate:"omitempty,max=50"`
		Color      string `json:"color" validate:"omitempty,max=50"`
		SortOrder  int    `json:"sort_order" validate:"omitempty,gte=0"`
	}

	UpdateCategoryRequest struct {
		Name      string `json:"name" validate:"omitempty,min=1,max=100"`
		Icon      string `json:"icon" validate:"omitempty,max=50"`
		Color     string `json:"color" validate:"omitempty,max=50"`
		SortOrder *int   `json:"sort_order" validate:"omitempty,gte=0"`
	}

	CategoryResponse struct {
		ID         string    `json:"id"`
		CategoryID string    `json:"category_id"`
		Name       string    `json:"name"`
		Icon       string    `json:"icon,omitempty"`
		Color      string    `json:"color,omitempty"`
		SortOrder  int       `json:"sort_order"`
		IsActive   bool      `json:"is_active"`
		CreatedAt  time.Time `json:"created_at"`
		UpdatedAt  time.Time `json:"updated_at"`
	}
)
