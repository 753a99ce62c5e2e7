package franchise

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"Restaurant-Backend/domain"
	"Restaurant-Backend/entities"
	"Restaurant-Backend/internal/utils/mailing"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	FranchiseService interface {
		ApplyFranchise(ctx context.Context, req domain.ApplyFranchiseRequest) (domain.FranchiseApplicationResponse, error)
		GetApplications(ctx context.Context) ([]domain.FranchiseApplicationResponse, error)
		UpdateApplicationStatus(ctx context.Context, id string, req domain.UpdateApplicationStatusRequest) (domain.FranchiseApplicationResponse, error)
	}

	franchiseService struct {
		franchiseRepository FranchiseRepository
	}
)

func NewFranchiseService(franchiseRepository FranchiseRepository) FranchiseService {
	return &franchiseService{franchiseRepository: franchiseRepository}
}

func (s *franchiseService) ApplyFranchise(ctx context.Context, req domain.ApplyFranchiseRequest) (domain.FranchiseApplicationResponse, error) {
	application := &entities.FranchiseApplication{
		FullName:        req.FullName,
		Email:           req.Email,
		Phone:           req.Phone,
		City:            req.City,
		InvestmentRange: req.InvestmentRange,
		Message:         req.Message,
		Status:          "pending",
	}
	application.UpdatedAt = time.Now()

	if err := s.franchiseRepository.CreateApplication(ctx, application); err != nil {
		return domain.FranchiseApplicationResponse{}, err
	}

	// Acknowledgment mail is best effort; intake already succeeded.
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Thanks for your interest in opening a franchise in %s. Our team will reach out to you shortly.</p>",
		application.FullName, application.City,
	)
	if err := mailing.SendMail(application.Email, "We received your franchise application", body); err != nil {
		log.Printf("franchise acknowledgment mail to %s failed: %v", application.Email, err)
	}

	return applicationToResponse(application), nil
}

func (s *franchiseService) GetApplications(ctx context.Context) ([]domain.FranchiseApplicationResponse, error) {
	applications, err := s.franchiseRepository.GetApplications(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.FranchiseApplicationResponse, 0, len(applications))
	for _, application := range applications {
		response = append(response, applicationToResponse(application))
	}
	return response, nil
}

func (s *franchiseService) UpdateApplicationStatus(ctx context.Context, id string, req domain.UpdateApplicationStatusRequest) (domain.FranchiseApplicationResponse, error) {
	// A malformed id can never match an application; short-circuit before
	// Postgres rejects the uuid cast.
	if _, err := uuid.Parse(id); err != nil {
		return domain.FranchiseApplicationResponse{}, domain.ErrApplicationNotFound
	}

	application, err := s.franchiseRepository.GetApplicationByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FranchiseApplicationResponse{}, domain.ErrApplicationNotFound
		}
		return domain.FranchiseApplicationResponse{}, err
	}

	application.Status = req.Status
	application.UpdatedAt = time.Now()

	if err := s.franchiseRepository.UpdateApplication(ctx, application); err != nil {
		return domain.FranchiseApplicationResponse{}, err
	}

	return applicationToResponse(application), nil
}

func applicationToResponse(application *entities.FranchiseApplication) domain.FranchiseApplicationResponse {
	return domain.FranchiseApplicationResponse{
		ID:              application.ID.String(),
		FullName:        application.FullName,
		Email:           application.Email,
		Phone:           application.Phone,
		City:            application.City,
		InvestmentRange: application.InvestmentRange,
		Message:         application.Message,
		Status:          application.Status,
		CreatedAt:       application.CreatedAt,
		UpdatedAt:       application.UpdatedAt,
	}
}
