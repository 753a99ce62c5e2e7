package handlers

import (
	"errors"

	"Restaurant-Backend/domain"
	"Restaurant-Backend/internal/api/presenters"
	"Restaurant-Backend/pkg/offer"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	OfferHandler interface {
		GetOffers(c *fiber.Ctx) error
		CreateOffer(c *fiber.Ctx) error
		UpdateOffer(c *fiber.Ctx) error
		DeleteOffer(c *fiber.Ctx) error
	}

	offerHandler struct {
		offerService offer.OfferService
		validator    *validator.Validate
	}
)

func NewOfferHandler(offerService offer.OfferService, validator *validator.Validate) OfferHandler {
	return &offerHandler{
		offerService: offerService,
		validator:    validator,
	}
}

func (h *offerHandler) GetOffers(c *fiber.Ctx) error {
	offers, err := h.offerService.GetOffers(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetOffers, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"offers": offers}, fiber.StatusOK, domain.MessageSuccessGetOffers)
}

func (h *offerHandler) CreateOffer(c *fiber.Ctx) error {
	req := new(domain.CreateOfferRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedValidation, err)
	}

	result, err := h.offerService.CreateOffer(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidValidUntil) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedValidation, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedCreateOffer, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"offer": result}, fiber.StatusCreated, domain.MessageSuccessCreateOffer)
}

func (h *offerHandler) UpdateOffer(c *fiber.Ctx) error {
	offerID := c.Params("id")
	req := new(domain.UpdateOfferRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedValidation, err)
	}

	result, err := h.offerService.UpdateOffer(c.Context(), offerID, *req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrOfferNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageOfferNotFound, err)
		case errors.Is(err, domain.ErrInvalidValidUntil):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedValidation, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUpdateOffer, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"offer": result}, fiber.StatusOK, domain.MessageSuccessUpdateOffer)
}

func (h *offerHandler) DeleteOffer(c *fiber.Ctx) error {
	offerID := c.Params("id")

	if err := h.offerService.DeleteOffer(c.Context(), offerID); err != nil {
		if errors.Is(err, domain.ErrOfferNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageOfferNotFound, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedDeleteOffer, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteOffer)
}
