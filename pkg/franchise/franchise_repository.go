package franchise

import (
	"context"

	"Restaurant-Backend/entities"

	"gorm.io/gorm"
)

type (
	FranchiseRepository interface {
		CreateApplication(ctx context.Context, application *entities.FranchiseApplication) error
		GetApplications(ctx context.Context) ([]*entities.FranchiseApplication, error)
		GetApplicationByID(ctx context.Context, id string) (*entities.FranchiseApplication, error)
		UpdateApplication(ctx context.Context, application *entities.FranchiseApplication) error
	}

	franchiseRepository struct {
		db *gorm.DB
	}
)

func NewFranchiseRepository(db *gorm.DB) FranchiseRepository {
	return &franchiseRepository{db: db}
}

func (r *franchiseRepository) CreateApplication(ctx context.Context, application *entities.FranchiseApplication) error {
	return r.db.WithContext(ctx).Create(application).Error
}

func (r *franchiseRepository) GetApplications(ctx context.Context) ([]*entities.FranchiseApplication, error) {
	var applications []*entities.FranchiseApplication
	if err := r.db.WithContext(ctx).
		Order("created_at desc").
		Find(&applications).Error; err != nil {
		return nil, err
	}
	return applications, nil
}

func (r *franchiseRepository) GetApplicationByID(ctx context.Context, id string) (*entities.FranchiseApplication, error) {
	var application entities.FranchiseApplication
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&application).Error; err != nil {
		return nil, err
	}
	return &application, nil
}

func (r *franchiseRepository) UpdateApplication(ctx context.Context, application *entities.FranchiseApplication) error {
	return r.db.WithContext(ctx).Save(application).Error
}
