package handlers

import (
	"errors"

	"Restaurant-Backend/domain"
	"Restaurant-Backend/internal/api/presenters"
	"Restaurant-Backend/pkg/menuitem"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	MenuItemHandler interface {
		GetMenuItems(c *fiber.Ctx) error
		GetGroupedMenu(c *fiber.Ctx) error
		GetMenuItem(c *fiber.Ctx) error
		CreateMenuItem(c *fiber.Ctx) error
		UpdateMenuItem(c *fiber.Ctx) error
		DeleteMenuItem(c *fiber.Ctx) error
		UploadItemImage(c *fiber.Ctx) error
		BackfillAddOns(c *fiber.Ctx) error
	}

	menuItemHandler struct {
		menuItemService menuitem.MenuItemService
		validator       *validator.Validate
	}
)

func NewMenuItemHandler(menuItemService menuitem.MenuItemService, validator *validator.Validate) MenuItemHandler {
	return &menuItemHandler{
		menuItemService: menuItemService,
		validator:       validator,
	}
}

func (h *menuItemHandler) GetMenuItems(c *fiber.Ctx) error {
	categoryID := c.Query("category")

	items, err := h.menuItemService.GetMenuItems(c.Context(), categoryID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetMenuItems, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"count": len(items),
		"items": items,
	}, fiber.StatusOK, domain.MessageSuccessGetMenuItems)
}

func (h *menuItemHandler) GetGroupedMenu(c *fiber.Ctx) error {
	grouped, err := h.menuItemService.GetGroupedMenu(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetMenuItems, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"categories": grouped.Categories,
		"menuItems":  grouped.MenuItems,
	}, fiber.StatusOK, domain.MessageSuccessGetGroupedMenu)
}

func (h *menuItemHandler) GetMenuItem(c *fiber.Ctx) error {
	itemID := c.Params("id")

	item, err := h.menuItemService.GetMenuItemByID(c.Context(), itemID)
	if err != nil {
		if errors.Is(err, domain.ErrMenuItemNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageMenuItemNotFound, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetMenuItems, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"item": item}, fiber.StatusOK, domain.MessageSuccessGetMenuItem)
}

func (h *menuItemHandler) CreateMenuItem(c *fiber.Ctx) error {
	req := new(domain.CreateMenuItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedValidation, err)
	}

	item, err := h.menuItemService.CreateMenuItem(c.Context(), *req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnknownCategory):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageUnknownCategory, err)
		case errors.Is(err, domain.ErrEmptySizes), errors.Is(err, domain.ErrNegativePrice):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedValidation, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedCreateMenuItem, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"item": item}, fiber.StatusCreated, domain.MessageSuccessCreateMenuItem)
}

func (h *menuItemHandler) UpdateMenuItem(c *fiber.Ctx) error {
	itemID := c.Params("id")
	req := new(domain.UpdateMenuItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedValidation, err)
	}

	item, err := h.menuItemService.UpdateMenuItem(c.Context(), itemID, *req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMenuItemNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageMenuItemNotFound, err)
		case errors.Is(err, domain.ErrUnknownCategory):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageUnknownCategory, err)
		case errors.Is(err, domain.ErrNegativePrice):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedValidation, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUpdateMenuItem, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"item": item}, fiber.StatusOK, domain.MessageSuccessUpdateMenuItem)
}

func (h *menuItemHandler) DeleteMenuItem(c *fiber.Ctx) error {
	itemID := c.Params("id")

	if err := h.menuItemService.DeleteMenuItem(c.Context(), itemID); err != nil {
		if errors.Is(err, domain.ErrMenuItemNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageMenuItemNotFound, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedDeleteMenuItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteMenuItem)
}

func (h *menuItemHandler) UploadItemImage(c *fiber.Ctx) error {
	req := new(domain.UploadItemImageRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	image, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedValidation, err)
	}

	item, err := h.menuItemService.UploadItemImage(c.Context(), req.ItemID, image)
	if err != nil {
		if errors.Is(err, domain.ErrMenuItemNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageMenuItemNotFound, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUploadItemImage, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"item": item}, fiber.StatusOK, domain.MessageSuccessUploadItemImage)
}

func (h *menuItemHandler) BackfillAddOns(c *fiber.Ctx) error {
	result, err := h.menuItemService.BackfillAddOns(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedBackfillAddOns, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"updated": result.Updated,
		"total":   result.Total,
	}, fiber.StatusOK, domain.MessageSuccessBackfillAddOns)
}
