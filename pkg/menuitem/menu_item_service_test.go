package menuitem

import (
	"context"
	"errors"
	"testing"
	"time"

	"Restaurant-Backend/domain"
	"Restaurant-Backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type mockMenuItemRepository struct {
	getActiveItems    func(ctx context.Context, categoryID string) ([]*entities.MenuItem, error)
	getActiveItemByID func(ctx context.Context, id string) (*entities.MenuItem, error)
	getItemByID       func(ctx context.Context, id string) (*entities.MenuItem, error)
	createItem        func(ctx context.Context, item *entities.MenuItem) error
	updateItem        func(ctx context.Context, item *entities.MenuItem) error
	softDeleteItem    func(ctx context.Context, id string) error
}

func (m *mockMenuItemRepository) GetActiveItems(ctx context.Context, categoryID string) ([]*entities.MenuItem, error) {
	return m.getActiveItems(ctx, categoryID)
}

func (m *mockMenuItemRepository) GetActiveItemByID(ctx context.Context, id string) (*entities.MenuItem, error) {
	return m.getActiveItemByID(ctx, id)
}

func (m *mockMenuItemRepository) GetItemByID(ctx context.Context, id string) (*entities.MenuItem, error) {
	return m.getItemByID(ctx, id)
}

func (m *mockMenuItemRepository) CreateItem(ctx context.Context, item *entities.MenuItem) error {
	return m.createItem(ctx, item)
}

func (m *mockMenuItemRepository) UpdateItem(ctx context.Context, item *entities.MenuItem) error {
	return m.updateItem(ctx, item)
}

func (m *mockMenuItemRepository) SoftDeleteItem(ctx context.Context, id string) error {
	return m.softDeleteItem(ctx, id)
}

type mockCategoryRepository struct {
	getActiveCategories   func(ctx context.Context) ([]*entities.MenuCategory, error)
	getActiveCategoryByID func(ctx context.Context, categoryID string) (*entities.MenuCategory, error)
}

func (m *mockCategoryRepository) GetActiveCategories(ctx context.Context) ([]*entities.MenuCategory, error) {
	return m.getActiveCategories(ctx)
}

func (m *mockCategoryRepository) GetActiveCategoryByID(ctx context.Context, categoryID string) (*entities.MenuCategory, error) {
	return m.getActiveCategoryByID(ctx, categoryID)
}

func (m *mockCategoryRepository) GetCategoryByID(ctx context.Context, categoryID string) (*entities.MenuCategory, error) {
	panic("not expected in menu item tests")
}

func (m *mockCategoryRepository) CreateCategory(ctx context.Context, category *entities.MenuCategory) error {
	panic("not expected in menu item tests")
}

func (m *mockCategoryRepository) UpdateCategory(ctx context.Context, category *entities.MenuCategory) error {
	panic("not expected in menu item tests")
}

func (m *mockCategoryRepository) SoftDeleteCategoryWithItems(ctx context.Context, categoryID string) error {
	panic("not expected in menu item tests")
}

func activeCategoryLookup(known ...string) func(ctx context.Context, categoryID string) (*entities.MenuCategory, error) {
	return func(ctx context.Context, categoryID string) (*entities.MenuCategory, error) {
		for _, k := range known {
			if k == categoryID {
				return &entities.MenuCategory{CategoryID: categoryID, IsActive: true}, nil
			}
		}
		return nil, gorm.ErrRecordNotFound
	}
}

func TestCreateMenuItem(t *testing.T) {
	validRequest := func() domain.CreateMenuItemRequest {
		return domain.CreateMenuItemRequest{
			Name:        "Margherita",
			Description: "d",
			ImageURL:    "i",
			Category:    "pizza",
			Sizes:       []domain.ItemSizeRequest{{Name: "Small", Price: 199}},
		}
	}

	newService := func(itemRepo *mockMenuItemRepository) MenuItemService {
		return NewMenuItemService(itemRepo, &mockCategoryRepository{
			getActiveCategoryByID: activeCategoryLookup("pizza"),
		}, nil)
	}

	t.Run("applies the default rating", func(t *testing.T) {
		repo := &mockMenuItemRepository{
			createItem: func(ctx context.Context, item *entities.MenuItem) error {
				item.ID = uuid.New()
				return nil
			},
		}
		service := newService(repo)

		item, err := service.CreateMenuItem(context.Background(), validRequest())
		require.NoError(t, err)
		assert.Equal(t, 4.5, item.Rating)
		assert.True(t, item.IsActive)
	})

	t.Run("clamps the rating into [1,5]", func(t *testing.T) {
		tests := []struct {
			name   string
			rating float64
			want   float64
		}{
			{"above range", 9.5, 5},
			{"below range", 0.2, 1},
			{"within range", 3.7, 3.7},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				repo := &mockMenuItemRepository{
					createItem: func(ctx context.Context, item *entities.MenuItem) error { return nil },
				}
				service := newService(repo)

				req := validRequest()
				req.Rating = tt.rating
				item, err := service.CreateMenuItem(context.Background(), req)
				require.NoError(t, err)
				assert.Equal(t, tt.want, item.Rating)
			})
		}
	})

	t.Run("rejects empty size list", func(t *testing.T) {
		service := newService(&mockMenuItemRepository{})

		req := validRequest()
		req.Sizes = nil
		_, err := service.CreateMenuItem(context.Background(), req)
		assert.ErrorIs(t, err, domain.ErrEmptySizes)
	})

	t.Run("rejects negative size price", func(t *testing.T) {
		service := newService(&mockMenuItemRepository{})

		req := validRequest()
		req.Sizes = []domain.ItemSizeRequest{{Name: "Small", Price: -1}}
		_, err := service.CreateMenuItem(context.Background(), req)
		assert.ErrorIs(t, err, domain.ErrNegativePrice)
	})

	t.Run("rejects unknown category reference", func(t *testing.T) {
		service := newService(&mockMenuItemRepository{})

		req := validRequest()
		req.Category = "ghost"
		_, err := service.CreateMenuItem(context.Background(), req)
		assert.ErrorIs(t, err, domain.ErrUnknownCategory)
	})
}

func TestGetGroupedMenu(t *testing.T) {
	pizzaID := uuid.New()
	burgerID := uuid.New()

	categoryRepo := &mockCategoryRepository{
		getActiveCategories: func(ctx context.Context) ([]*entities.MenuCategory, error) {
			return []*entities.MenuCategory{
				{ID: pizzaID, CategoryID: "pizza", Name: "Pizza", SortOrder: 1, IsActive: true},
				{ID: burgerID, CategoryID: "burger", Name: "Burger", SortOrder: 2, IsActive: true},
			}, nil
		},
	}
	itemRepo := &mockMenuItemRepository{
		getActiveItems: func(ctx context.Context, categoryID string) ([]*entities.MenuItem, error) {
			return []*entities.MenuItem{
				{ID: uuid.New(), Name: "Margherita", Category: "pizza", IsActive: true,
					Timestamp: entities.Timestamp{CreatedAt: time.Now()}},
				{ID: uuid.New(), Name: "Pepperoni", Category: "pizza", IsActive: true,
					Timestamp: entities.Timestamp{CreatedAt: time.Now().Add(-time.Minute)}},
				{ID: uuid.New(), Name: "Lost Dish", Category: "retired", IsActive: true},
			}, nil
		},
	}
	service := NewMenuItemService(itemRepo, categoryRepo, nil)

	grouped, err := service.GetGroupedMenu(context.Background())
	require.NoError(t, err)

	require.Len(t, grouped.Categories, 2)
	assert.Equal(t, "pizza", grouped.Categories[0].CategoryID)
	assert.Equal(t, "burger", grouped.Categories[1].CategoryID)

	// every active category gets a key, items keep repository order
	require.Contains(t, grouped.MenuItems, "pizza")
	require.Contains(t, grouped.MenuItems, "burger")
	require.Len(t, grouped.MenuItems["pizza"], 2)
	assert.Equal(t, "Margherita", grouped.MenuItems["pizza"][0].Name)
	assert.Empty(t, grouped.MenuItems["burger"])

	// an item pointing at an unknown category shows up under its own key
	require.Contains(t, grouped.MenuItems, "retired")
	assert.Equal(t, "Lost Dish", grouped.MenuItems["retired"][0].Name)
}

func TestGetMenuItems(t *testing.T) {
	itemRepo := &mockMenuItemRepository{
		getActiveItems: func(ctx context.Context, categoryID string) ([]*entities.MenuItem, error) {
			assert.Equal(t, "pizza", categoryID)
			return []*entities.MenuItem{
				{ID: uuid.New(), Name: "Margherita", Category: "pizza", IsActive: true},
			}, nil
		},
	}
	service := NewMenuItemService(itemRepo, &mockCategoryRepository{}, nil)

	items, err := service.GetMenuItems(context.Background(), "pizza")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Margherita", items[0].Name)
}

func TestGetMenuItemByID(t *testing.T) {
	itemRepo := &mockMenuItemRepository{
		getActiveItemByID: func(ctx context.Context, id string) (*entities.MenuItem, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	service := NewMenuItemService(itemRepo, &mockCategoryRepository{}, nil)

	_, err := service.GetMenuItemByID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrMenuItemNotFound)
}

func TestUpdateMenuItem(t *testing.T) {
	t.Run("partial update preserves untouched fields", func(t *testing.T) {
		existing := &entities.MenuItem{
			ID:          uuid.New(),
			Name:        "Margherita",
			Description: "classic",
			Category:    "pizza",
			Rating:      4.5,
			Sizes:       []entities.ItemSize{{Name: "Small", Price: 199}},
			IsActive:    true,
		}
		itemRepo := &mockMenuItemRepository{
			getItemByID: func(ctx context.Context, id string) (*entities.MenuItem, error) {
				return existing, nil
			},
			updateItem: func(ctx context.Context, item *entities.MenuItem) error { return nil },
		}
		service := NewMenuItemService(itemRepo, &mockCategoryRepository{
			getActiveCategoryByID: activeCategoryLookup("pizza"),
		}, nil)

		item, err := service.UpdateMenuItem(context.Background(), existing.ID.String(), domain.UpdateMenuItemRequest{
			Name: "Margherita Special",
		})
		require.NoError(t, err)
		assert.Equal(t, "Margherita Special", item.Name)
		assert.Equal(t, "classic", item.Description)
		assert.Equal(t, "pizza", item.Category)
		require.Len(t, item.Sizes, 1)
	})

	t.Run("changing to an unknown category is rejected", func(t *testing.T) {
		itemRepo := &mockMenuItemRepository{
			getItemByID: func(ctx context.Context, id string) (*entities.MenuItem, error) {
				return &entities.MenuItem{ID: uuid.New(), Category: "pizza"}, nil
			},
		}
		service := NewMenuItemService(itemRepo, &mockCategoryRepository{
			getActiveCategoryByID: activeCategoryLookup("pizza"),
		}, nil)

		_, err := service.UpdateMenuItem(context.Background(), uuid.NewString(), domain.UpdateMenuItemRequest{
			Category: "ghost",
		})
		assert.ErrorIs(t, err, domain.ErrUnknownCategory)
	})

	t.Run("unknown id maps to ErrMenuItemNotFound", func(t *testing.T) {
		itemRepo := &mockMenuItemRepository{
			getItemByID: func(ctx context.Context, id string) (*entities.MenuItem, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}
		service := NewMenuItemService(itemRepo, &mockCategoryRepository{}, nil)

		_, err := service.UpdateMenuItem(context.Background(), uuid.NewString(), domain.UpdateMenuItemRequest{Name: "x"})
		assert.ErrorIs(t, err, domain.ErrMenuItemNotFound)
	})
}

func TestBackfillAddOns(t *testing.T) {
	t.Run("attaches the pair only where missing and survives per-item failures", func(t *testing.T) {
		bare := &entities.MenuItem{ID: uuid.New(), Name: "Plain", IsActive: true}
		covered := &entities.MenuItem{ID: uuid.New(), Name: "Cheesy", IsActive: true,
			AddOns: []entities.ItemAddOn{{Name: "Extra Cheese", Price: 49}}}
		failing := &entities.MenuItem{ID: uuid.New(), Name: "Cursed", IsActive: true}

		itemRepo := &mockMenuItemRepository{
			getActiveItems: func(ctx context.Context, categoryID string) ([]*entities.MenuItem, error) {
				return []*entities.MenuItem{bare, covered, failing}, nil
			},
			updateItem: func(ctx context.Context, item *entities.MenuItem) error {
				if item.ID == failing.ID {
					return errors.New("write failed")
				}
				return nil
			},
		}
		service := NewMenuItemService(itemRepo, &mockCategoryRepository{}, nil)

		result, err := service.BackfillAddOns(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, result.Updated)
		assert.Equal(t, 3, result.Total)

		require.Len(t, bare.AddOns, 2)
		assert.Equal(t, "Extra Cheese", bare.AddOns[0].Name)
		assert.Equal(t, "Cheese Burst", bare.AddOns[1].Name)
		require.Len(t, covered.AddOns, 1)
	})

	t.Run("second run is a no-op", func(t *testing.T) {
		item := &entities.MenuItem{ID: uuid.New(), Name: "Plain", IsActive: true}
		itemRepo := &mockMenuItemRepository{
			getActiveItems: func(ctx context.Context, categoryID string) ([]*entities.MenuItem, error) {
				return []*entities.MenuItem{item}, nil
			},
			updateItem: func(ctx context.Context, i *entities.MenuItem) error { return nil },
		}
		service := NewMenuItemService(itemRepo, &mockCategoryRepository{}, nil)

		first, err := service.BackfillAddOns(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, first.Updated)

		second, err := service.BackfillAddOns(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 0, second.Updated)
		assert.Equal(t, 1, second.Total)
	})
}

func TestMalformedItemIDMapsToNotFound(t *testing.T) {
	// the repository must never see a non-uuid id
	service := NewMenuItemService(&mockMenuItemRepository{}, &mockCategoryRepository{}, nil)

	_, err := service.GetMenuItemByID(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrMenuItemNotFound)

	_, err = service.UpdateMenuItem(context.Background(), "not-a-uuid", domain.UpdateMenuItemRequest{Name: "x"})
	assert.ErrorIs(t, err, domain.ErrMenuItemNotFound)

	err = service.DeleteMenuItem(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrMenuItemNotFound)

	_, err = service.UploadItemImage(context.Background(), "not-a-uuid", nil)
	assert.ErrorIs(t, err, domain.ErrMenuItemNotFound)
}

func TestDeleteMenuItem(t *testing.T) {
	itemRepo := &mockMenuItemRepository{
		softDeleteItem: func(ctx context.Context, id string) error {
			return gorm.ErrRecordNotFound
		},
	}
	service := NewMenuItemService(itemRepo, &mockCategoryRepository{}, nil)

	err := service.DeleteMenuItem(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrMenuItemNotFound)
}
