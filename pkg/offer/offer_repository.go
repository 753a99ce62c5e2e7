package offer

import (
	"context"
	"time"

	"Restaurant-Backend/entities"

	"gorm.io/gorm"
)

type (
	OfferRepository interface {
		GetActiveOffers(ctx context.Context) ([]*entities.Offer, error)
		GetOfferByID(ctx context.Context, id string) (*entities.Offer, error)
		CreateOffer(ctx context.Context, offer *entities.Offer) error
		UpdateOffer(ctx context.Context, offer *entities.Offer) error
		SoftDeleteOffer(ctx context.Context, id string) error
	}

	offerRepository struct {
		db *gorm.DB
	}
)

func NewOfferRepository(db *gorm.DB) OfferRepository {
	return &offerRepository{db: db}
}

func (r *offerRepository) GetActiveOffers(ctx context.Context) ([]*entities.Offer, error) {
	var offers []*entities.Offer
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at desc").
		Find(&offers).Error; err != nil {
		return nil, err
	}
	return offers, nil
}

func (r *offerRepository) GetOfferByID(ctx context.Context, id string) (*entities.Offer, error) {
	var offer entities.Offer
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&offer).Error; err != nil {
		return nil, err
	}
	return &offer, nil
}

func (r *offerRepository) CreateOffer(ctx context.Context, offer *entities.Offer) error {
	return r.db.WithContext(ctx).Create(offer).Error
}

func (r *offerRepository) UpdateOffer(ctx context.Context, offer *entities.Offer) error {
	return r.db.WithContext(ctx).Save(offer).Error
}

func (r *offerRepository) SoftDeleteOffer(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Model(&entities.Offer{}).
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
