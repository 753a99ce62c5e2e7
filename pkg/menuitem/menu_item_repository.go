package menuitem

import (
	"context"
	"time"

	"Restaurant-Backend/entities"

	"gorm.io/gorm"
)

type (
	MenuItemRepository interface {
		GetActiveItems(ctx context.Context, categoryID string) ([]*entities.MenuItem, error)
		GetActiveItemByID(ctx context.Context, id string) (*entities.MenuItem, error)
		GetItemByID(ctx context.Context, id string) (*entities.MenuItem, error)
		CreateItem(ctx context.Context, item *entities.MenuItem) error
		UpdateItem(ctx context.Context, item *entities.MenuItem) error
		SoftDeleteItem(ctx context.Context, id string) error
	}

	menuItemRepository struct {
		db *gorm.DB
	}
)

func NewMenuItemRepository(db *gorm.DB) MenuItemRepository {
	return &menuItemRepository{db: db}
}

// GetActiveItems returns active items newest first, optionally narrowed to a
// single category reference.
func (r *menuItemRepository) GetActiveItems(ctx context.Context, categoryID string) ([]*entities.MenuItem, error) {
	var items []*entities.MenuItem

	query := r.db.WithContext(ctx).Where("is_active = ?", true)
	if categoryID != "" {
		query = query.Where("category = ?", categoryID)
	}

	if err := query.Order("created_at desc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *menuItemRepository) GetActiveItemByID(ctx context.Context, id string) (*entities.MenuItem, error) {
	var item entities.MenuItem
	if err := r.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// GetItemByID ignores the active flag so soft-deleted items stay reachable
// for updates.
func (r *menuItemRepository) GetItemByID(ctx context.Context, id string) (*entities.MenuItem, error) {
	var item entities.MenuItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *menuItemRepository) CreateItem(ctx context.Context, item *entities.MenuItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *menuItemRepository) UpdateItem(ctx context.Context, item *entities.MenuItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *menuItemRepository) SoftDeleteItem(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Model(&entities.MenuItem{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"is_active": false, "updated_at": time.Now()})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
