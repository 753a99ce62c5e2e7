package category

import (
	"context"
	"errors"
	"time"

	"Restaurant-Backend/domain"
	"Restaurant-Backend/entities"

	"gorm.io/gorm"
)

type (
	CategoryService interface {
		GetCategories(ctx context.Context) ([]domain.CategoryResponse, error)
		GetCategoryByID(ctx context.Context, categoryID string) (domain.CategoryResponse, error)
		CreateCategory(ctx context.Context, req domain.CreateCategoryRequest) (domain.CategoryResponse, error)
		UpdateCategory(ctx context.Context, categoryID string, req domain.UpdateCategoryRequest) (domain.CategoryResponse, error)
		DeleteCategory(ctx context.Context, categoryID string) error
	}

	categoryService struct {
		categoryRepository CategoryRepository
	}
)

func NewCategoryService(categoryRepository CategoryRepository) CategoryService {
	return &categoryService{categoryRepository: categoryRepository}
}

func (s *categoryService) GetCategories(ctx context.Context) ([]domain.CategoryResponse, error) {
	categories, err := s.categoryRepository.GetActiveCategories(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		response = append(response, CategoryToResponse(category))
	}
	return response, nil
}

func (s *categoryService) GetCategoryByID(ctx context.Context, categoryID string) (domain.CategoryResponse, error) {
	category, err := s.categoryRepository.GetActiveCategoryByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CategoryResponse{}, domain.ErrCategoryNotFound
		}
		return domain.CategoryResponse{}, err
	}
	return CategoryToResponse(category), nil
}

func (s *categoryService) CreateCategory(ctx context.Context, req domain.CreateCategoryRequest) (domain.CategoryResponse, error) {
	category := &entities.MenuCategory{
		CategoryID: req.CategoryID,
		Name:       req.Name,
		Icon:       req.Icon,
		Color:      req.Color,
		SortOrder:  req.SortOrder,
		IsActive:   true,
	}
	category.UpdatedAt = time.Now()

	if err := s.categoryRepository.CreateCategory(ctx, category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.CategoryResponse{}, domain.ErrDuplicateCategoryID
		}
		return domain.CategoryResponse{}, err
	}

	return CategoryToResponse(category), nil
}

// UpdateCategory deliberately skips the active-flag check: a soft-deleted
// category can still be mutated by id, matching the read/update asymmetry
// of the original surface.
func (s *categoryService) UpdateCategory(ctx context.Context, categoryID string, req domain.UpdateCategoryRequest) (domain.CategoryResponse, error) {
	category, err := s.categoryRepository.GetCategoryByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CategoryResponse{}, domain.ErrCategoryNotFound
		}
		return domain.CategoryResponse{}, err
	}

	if req.Name != "" {
		category.Name = req.Name
	}
	if req.Icon != "" {
		category.Icon = req.Icon
	}
	if req.Color != "" {
		category.Color = req.Color
	}
	if req.SortOrder != nil {
		category.SortOrder = *req.SortOrder
	}
	category.UpdatedAt = time.Now()

	if err := s.categoryRepository.UpdateCategory(ctx, category); err != nil {
		return domain.CategoryResponse{}, err
	}

	return CategoryToResponse(category), nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, categoryID string) error {
	if err := s.categoryRepository.SoftDeleteCategoryWithItems(ctx, categoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCategoryNotFound
		}
		return err
	}
	return nil
}

func CategoryToResponse(category *entities.MenuCategory) domain.CategoryResponse {
	return domain.CategoryResponse{
		ID:         category.ID.String(),
		CategoryID: category.CategoryID,
		Name:       category.Name,
		Icon:       category.Icon,
		Color:      category.Color,
		SortOrder:  category.SortOrder,
		IsActive:   category.IsActive,
		CreatedAt:  category.CreatedAt,
		UpdatedAt:  category.UpdatedAt,
	}
}
