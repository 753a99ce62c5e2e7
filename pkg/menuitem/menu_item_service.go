package menuitem

import (
	"context"
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"time"

	"Restaurant-Backend/domain"
	"Restaurant-Backend/entities"
	"Restaurant-Backend/internal/utils/storage"
	"Restaurant-Backend/pkg/category"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Add-ons attached by the one-shot backfill operation.
var backfillAddOns = []entities.ItemAddOn{
	{Name: "Extra Cheese", Price: 49, Category: "topping"},
	{Name: "Cheese Burst", Price: 99, Category: "topping"},
}

type (
	MenuItemService interface {
		GetMenuItems(ctx context.Context, categoryID string) ([]domain.MenuItemResponse, error)
		GetGroupedMenu(ctx context.Context) (domain.GroupedMenuResponse, error)
		GetMenuItemByID(ctx context.Context, id string) (domain.MenuItemResponse, error)
		CreateMenuItem(ctx context.Context, req domain.CreateMenuItemRequest) (domain.MenuItemResponse, error)
		UpdateMenuItem(ctx context.Context, id string, req domain.UpdateMenuItemRequest) (domain.MenuItemResponse, error)
		DeleteMenuItem(ctx context.Context, id string) error
		UploadItemImage(ctx context.Context, itemID string, image *multipart.FileHeader) (domain.MenuItemResponse, error)
		BackfillAddOns(ctx context.Context) (domain.BackfillAddOnsResponse, error)
	}

	menuItemService struct {
		menuItemRepository MenuItemRepository
		categoryRepository category.CategoryRepository
		s3                 storage.AwsS3
	}
)

func NewMenuItemService(menuItemRepository MenuItemRepository, categoryRepository category.CategoryRepository, s3 storage.AwsS3) MenuItemService {
	return &menuItemService{
		menuItemRepository: menuItemRepository,
		categoryRepository: categoryRepository,
		s3:                 s3,
	}
}

func (s *menuItemService) GetMenuItems(ctx context.Context, categoryID string) ([]domain.MenuItemResponse, error) {
	items, err := s.menuItemRepository.GetActiveItems(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.MenuItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, itemToResponse(item))
	}
	return response, nil
}

// GetGroupedMenu pairs the active category list with a map from category_id to
// that category's active items. Every active category gets a key even when it
// has no items; items pointing at an unknown category still show up under
// whatever reference they carry.
func (s *menuItemService) GetGroupedMenu(ctx context.Context) (domain.GroupedMenuResponse, error) {
	categories, err := s.categoryRepository.GetActiveCategories(ctx)
	if err != nil {
		return domain.GroupedMenuResponse{}, err
	}

	items, err := s.menuItemRepository.GetActiveItems(ctx, "")
	if err != nil {
		return domain.GroupedMenuResponse{}, err
	}

	categoryResponses := make([]domain.CategoryResponse, 0, len(categories))
	grouped := make(map[string][]domain.MenuItemResponse, len(categories))
	for _, cat := range categories {
		categoryResponses = append(categoryResponses, category.CategoryToResponse(cat))
		grouped[cat.CategoryID] = []domain.MenuItemResponse{}
	}

	for _, item := range items {
		grouped[item.Category] = append(grouped[item.Category], itemToResponse(item))
	}

	return domain.GroupedMenuResponse{
		Categories: categoryResponses,
		MenuItems:  grouped,
	}, nil
}

func (s *menuItemService) GetMenuItemByID(ctx context.Context, id string) (domain.MenuItemResponse, error) {
	// A malformed id can never match an item; short-circuit before Postgres
	// rejects the uuid cast.
	if _, err := uuid.Parse(id); err != nil {
		return domain.MenuItemResponse{}, domain.ErrMenuItemNotFound
	}

	item, err := s.menuItemRepository.GetActiveItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MenuItemResponse{}, domain.ErrMenuItemNotFound
		}
		return domain.MenuItemResponse{}, err
	}
	return itemToResponse(item), nil
}

func (s *menuItemService) CreateMenuItem(ctx context.Context, req domain.CreateMenuItemRequest) (domain.MenuItemResponse, error) {
	if len(req.Sizes) == 0 {
		return domain.MenuItemResponse{}, domain.ErrEmptySizes
	}
	for _, size := range req.Sizes {
		if size.Price < 0 {
			return domain.MenuItemResponse{}, domain.ErrNegativePrice
		}
	}

	// The category reference must point at a live category.
	if _, err := s.categoryRepository.GetActiveCategoryByID(ctx, req.Category); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MenuItemResponse{}, domain.ErrUnknownCategory
		}
		return domain.MenuItemResponse{}, err
	}

	rating := 4.5
	if req.Rating != 0 {
		rating = clampRating(req.Rating)
	}

	item := &entities.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Badge:       req.Badge,
		Rating:      rating,
		Category:    req.Category,
		Sizes:       sizesFromRequest(req.Sizes),
		AddOns:      addOnsFromRequest(req.AddOns),
		IsActive:    true,
	}
	item.UpdatedAt = time.Now()

	if err := s.menuItemRepository.CreateItem(ctx, item); err != nil {
		return domain.MenuItemResponse{}, err
	}

	return itemToResponse(item), nil
}

// UpdateMenuItem mirrors UpdateCategory: the active flag is not checked, so a
// soft-deleted item remains mutable by id.
func (s *menuItemService) UpdateMenuItem(ctx context.Context, id string, req domain.UpdateMenuItemRequest) (domain.MenuItemResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.MenuItemResponse{}, domain.ErrMenuItemNotFound
	}

	item, err := s.menuItemRepository.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MenuItemResponse{}, domain.ErrMenuItemNotFound
		}
		return domain.MenuItemResponse{}, err
	}

	if req.Name != "" {
		item.Name = req.Name
	}
	if req.Description != "" {
		item.Description = req.Description
	}
	if req.ImageURL != "" {
		item.ImageURL = req.ImageURL
	}
	if req.Badge != "" {
		item.Badge = req.Badge
	}
	if req.Rating != nil {
		item.Rating = clampRating(*req.Rating)
	}
	if req.Category != "" {
		if _, err := s.categoryRepository.GetActiveCategoryByID(ctx, req.Category); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.MenuItemResponse{}, domain.ErrUnknownCategory
			}
			return domain.MenuItemResponse{}, err
		}
		item.Category = req.Category
	}
	if len(req.Sizes) > 0 {
		for _, size := range req.Sizes {
			if size.Price < 0 {
				return domain.MenuItemResponse{}, domain.ErrNegativePrice
			}
		}
		item.Sizes = sizesFromRequest(req.Sizes)
	}
	if len(req.AddOns) > 0 {
		item.AddOns = addOnsFromRequest(req.AddOns)
	}
	item.UpdatedAt = time.Now()

	if err := s.menuItemRepository.UpdateItem(ctx, item); err != nil {
		return domain.MenuItemResponse{}, err
	}

	return itemToResponse(item), nil
}

func (s *menuItemService) DeleteMenuItem(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrMenuItemNotFound
	}

	if err := s.menuItemRepository.SoftDeleteItem(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrMenuItemNotFound
		}
		return err
	}
	return nil
}

func (s *menuItemService) UploadItemImage(ctx context.Context, itemID string, image *multipart.FileHeader) (domain.MenuItemResponse, error) {
	if _, err := uuid.Parse(itemID); err != nil {
		return domain.MenuItemResponse{}, domain.ErrMenuItemNotFound
	}

	item, err := s.menuItemRepository.GetItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MenuItemResponse{}, domain.ErrMenuItemNotFound
		}
		return domain.MenuItemResponse{}, err
	}

	fileName := fmt.Sprintf("menu-item-%s", item.ID.String())
	var objectKey string
	var uploadErr error

	if existingKey := s.s3.GetObjectKeyFromLink(item.ImageURL); existingKey != "" {
		objectKey, uploadErr = s.s3.UpdateFile(existingKey, image, storage.AllowImage...)
	} else {
		objectKey, uploadErr = s.s3.UploadFile(fileName, image, "menu-items", storage.AllowImage...)
	}
	if uploadErr != nil {
		return domain.MenuItemResponse{}, uploadErr
	}

	item.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	item.UpdatedAt = time.Now()

	if err := s.menuItemRepository.UpdateItem(ctx, item); err != nil {
		return domain.MenuItemResponse{}, err
	}

	return itemToResponse(item), nil
}

// BackfillAddOns attaches the fixed add-on pair to every active item that
// carries neither of them. Best effort: a failing item is logged and skipped,
// the rest of the batch continues.
func (s *menuItemService) BackfillAddOns(ctx context.Context) (domain.BackfillAddOnsResponse, error) {
	items, err := s.menuItemRepository.GetActiveItems(ctx, "")
	if err != nil {
		return domain.BackfillAddOnsResponse{}, err
	}

	updated := 0
	for _, item := range items {
		if hasBackfillAddOn(item.AddOns) {
			continue
		}

		item.AddOns = append(item.AddOns, backfillAddOns...)
		item.UpdatedAt = time.Now()
		if err := s.menuItemRepository.UpdateItem(ctx, item); err != nil {
			log.Printf("add-on backfill: skipping item %s: %v", item.ID, err)
			continue
		}
		updated++
	}

	return domain.BackfillAddOnsResponse{Updated: updated, Total: len(items)}, nil
}

func hasBackfillAddOn(addOns []entities.ItemAddOn) bool {
	for _, addOn := range addOns {
		for _, candidate := range backfillAddOns {
			if addOn.Name == candidate.Name {
				return true
			}
		}
	}
	return false
}

func clampRating(rating float64) float64 {
	if rating < 1 {
		return 1
	}
	if rating > 5 {
		return 5
	}
	return rating
}

func sizesFromRequest(sizes []domain.ItemSizeRequest) []entities.ItemSize {
	out := make([]entities.ItemSize, 0, len(sizes))
	for _, size := range sizes {
		out = append(out, entities.ItemSize{Name: size.Name, Price: size.Price})
	}
	return out
}

func addOnsFromRequest(addOns []domain.ItemAddOnRequest) []entities.ItemAddOn {
	if len(addOns) == 0 {
		return nil
	}
	out := make([]entities.ItemAddOn, 0, len(addOns))
	for _, addOn := range addOns {
		out = append(out, entities.ItemAddOn{Name: addOn.Name, Price: addOn.Price, Category: addOn.Category})
	}
	return out
}

func itemToResponse(item *entities.MenuItem) domain.MenuItemResponse {
	sizes := make([]domain.ItemSizeResponse, 0, len(item.Sizes))
	for _, size := range item.Sizes {
		sizes = append(sizes, domain.ItemSizeResponse{Name: size.Name, Price: size.Price})
	}

	var addOns []domain.ItemAddOnResponse
	for _, addOn := range item.AddOns {
		addOns = append(addOns, domain.ItemAddOnResponse{Name: addOn.Name, Price: addOn.Price, Category: addOn.Category})
	}

	return domain.MenuItemResponse{
		ID:          item.ID.String(),
		Name:        item.Name,
		Description: item.Description,
		ImageURL:    item.ImageURL,
		Badge:       item.Badge,
		Rating:      item.Rating,
		Category:    item.Category,
		Sizes:       sizes,
		AddOns:      addOns,
		IsActive:    item.IsActive,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}
