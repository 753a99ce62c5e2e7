package handlers

import (
	"errors"

	"Restaurant-Backend/domain"
	"Restaurant-Backend/internal/api/presenters"
	"Restaurant-Backend/pkg/franchise"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	FranchiseHandler interface {
		ApplyFranchise(c *fiber.Ctx) error
		GetApplications(c *fiber.Ctx) error
		UpdateApplicationStatus(c *fiber.Ctx) error
	}

	franchiseHandler struct {
		franchiseService franchise.FranchiseService
		validator        *validator.Validate
	}
)

func NewFranchiseHandler(franchiseService franchise.FranchiseService, validator *validator.Validate) FranchiseHandler {
	return &franchiseHandler{
		franchiseService: franchiseService,
		validator:        validator,
	}
}

func (h *franchiseHandler) ApplyFranchise(c *fiber.Ctx) error {
	req := new(domain.ApplyFranchiseRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedValidation, err)
	}

	application, err := h.franchiseService.ApplyFranchise(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedApplyFranchise, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"application": application}, fiber.StatusCreated, domain.MessageSuccessApplyFranchise)
}

func (h *franchiseHandler) GetApplications(c *fiber.Ctx) error {
	applications, err := h.franchiseService.GetApplications(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetApplications, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"applications": applications}, fiber.StatusOK, domain.MessageSuccessGetApplications)
}

func (h *franchiseHandler) UpdateApplicationStatus(c *fiber.Ctx) error {
	applicationID := c.Params("id")
	req := new(domain.UpdateApplicationStatusRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedValidation, err)
	}

	application, err := h.franchiseService.UpdateApplicationStatus(c.Context(), applicationID, *req)
	if err != nil {
		if errors.Is(err, domain.ErrApplicationNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFranchiseApplicationMissing, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUpdateApplication, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"application": application}, fiber.StatusOK, domain.MessageSuccessUpdateApplication)
}
