package category

import (
	"context"
	"time"

	"Restaurant-Backend/entities"

	"gorm.io/gorm"
)

type (
	CategoryRepository interface {
		GetActiveCategories(ctx context.Context) ([]*entities.MenuCategory, error)
		GetActiveCategoryByID(ctx context.Context, categoryID string) (*entities.MenuCategory, error)
		GetCategoryByID(ctx context.Context, categoryID string) (*entities.MenuCategory, error)
		CreateCategory(ctx context.Context, category *entities.MenuCategory) error
		UpdateCategory(ctx context.Context, category *entities.MenuCategory) error
		SoftDeleteCategoryWithItems(ctx context.Context, categoryID string) error
	}

	categoryRepository struct {
		db *gorm.DB
	}
)

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) GetActiveCategories(ctx context.Context) ([]*entities.MenuCategory, error) {
	var categories []*entities.MenuCategory
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_order asc, created_at asc").
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) GetActiveCategoryByID(ctx context.Context, categoryID string) (*entities.MenuCategory, error) {
	var category entities.MenuCategory
	if err := r.db.WithContext(ctx).
		Where("category_id = ? AND is_active = ?", categoryID, true).
		First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// GetCategoryByID ignores the active flag so soft-deleted categories stay
// reachable for updates.
func (r *categoryRepository) GetCategoryByID(ctx context.Context, categoryID string) (*entities.MenuCategory, error) {
	var category entities.MenuCategory
	if err := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) CreateCategory(ctx context.Context, category *entities.MenuCategory) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *categoryRepository) UpdateCategory(ctx context.Context, category *entities.MenuCategory) error {
	return r.db.WithContext(ctx).Save(category).Error
}

// SoftDeleteCategoryWithItems deactivates the category and every menu item
// referencing it in a single transaction, so the cascade cannot leave items
// active after the category is gone.
func (r *categoryRepository) SoftDeleteCategoryWithItems(ctx context.Context, categoryID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now()

		result := tx.Model(&entities.MenuCategory{}).
			Where("category_id = ?", categoryID).
			Updates(map[string]interface{}{"is_active": false, "updated_at": now})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		return tx.Model(&entities.MenuItem{}).
			Where("category = ?", categoryID).
			Updates(map[string]interface{}{"is_active": false, "updated_at": now}).Error
	})
}
