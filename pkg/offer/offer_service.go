package offer

import (
	"context"
	"errors"
	"time"

	"Restaurant-Backend/domain"
	"Restaurant-Backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	OfferService interface {
		GetOffers(ctx context.Context) ([]domain.OfferResponse, error)
		CreateOffer(ctx context.Context, req domain.CreateOfferRequest) (domain.OfferResponse, error)
		UpdateOffer(ctx context.Context, id string, req domain.UpdateOfferRequest) (domain.OfferResponse, error)
		DeleteOffer(ctx context.Context, id string) error
	}

	offerService struct {
		offerRepository OfferRepository
	}
)

func NewOfferService(offerRepository OfferRepository) OfferService {
	return &offerService{offerRepository: offerRepository}
}

func (s *offerService) GetOffers(ctx context.Context) ([]domain.OfferResponse, error) {
	offers, err := s.offerRepository.GetActiveOffers(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.OfferResponse, 0, len(offers))
	for _, offer := range offers {
		response = append(response, offerToResponse(offer))
	}
	return response, nil
}

func (s *offerService) CreateOffer(ctx context.Context, req domain.CreateOfferRequest) (domain.OfferResponse, error) {
	validUntil, err := parseValidUntil(req.ValidUntil)
	if err != nil {
		return domain.OfferResponse{}, err
	}

	offer := &entities.Offer{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Discount:    req.Discount,
		ValidUntil:  validUntil,
		IsActive:    true,
	}
	offer.UpdatedAt = time.Now()

	if err := s.offerRepository.CreateOffer(ctx, offer); err != nil {
		return domain.OfferResponse{}, err
	}

	return offerToResponse(offer), nil
}

func (s *offerService) UpdateOffer(ctx context.Context, id string, req domain.UpdateOfferRequest) (domain.OfferResponse, error) {
	// A malformed id can never match an offer; short-circuit before Postgres
	// rejects the uuid cast.
	if _, err := uuid.Parse(id); err != nil {
		return domain.OfferResponse{}, domain.ErrOfferNotFound
	}

	offer, err := s.offerRepository.GetOfferByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.OfferResponse{}, domain.ErrOfferNotFound
		}
		return domain.OfferResponse{}, err
	}

	if req.Title != "" {
		offer.Title = req.Title
	}
	if req.Description != "" {
		offer.Description = req.Description
	}
	if req.ImageURL != "" {
		offer.ImageURL = req.ImageURL
	}
	if req.Discount != "" {
		offer.Discount = req.Discount
	}
	if req.ValidUntil != "" {
		validUntil, err := parseValidUntil(req.ValidUntil)
		if err != nil {
			return domain.OfferResponse{}, err
		}
		offer.ValidUntil = validUntil
	}
	offer.UpdatedAt = time.Now()

	if err := s.offerRepository.UpdateOffer(ctx, offer); err != nil {
		return domain.OfferResponse{}, err
	}

	return offerToResponse(offer), nil
}

func (s *offerService) DeleteOffer(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrOfferNotFound
	}

	if err := s.offerRepository.SoftDeleteOffer(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrOfferNotFound
		}
		return err
	}
	return nil
}

func parseValidUntil(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, domain.ErrInvalidValidUntil
	}
	return &parsed, nil
}

func offerToResponse(offer *entities.Offer) domain.OfferResponse {
	return domain.OfferResponse{
		ID:          offer.ID.String(),
		Title:       offer.Title,
		Description: offer.Description,
		ImageURL:    offer.ImageURL,
		Discount:    offer.Discount,
		ValidUntil:  offer.ValidUntil,
		IsActive:    offer.IsActive,
		CreatedAt:   offer.CreatedAt,
		UpdatedAt:   offer.UpdatedAt,
	}
}
