package services

import (
	"context"

	"github.com/bde-polytech/backend/internal/app/models"
	"github.com/bde-polytech/backend/internal/app/models/dto"
	"github.com/bde-polytech/backend/internal/app/repositories"
	"github.com/bde-polytech/backend/internal/pkg/logger"
	"github.com/bde-polytech/backend/internal/pkg/metrics"
)

// OrganizationService handles organization business logic
type OrganizationService struct {
	organizationRepo *repositories.OrganizationRepository
	metrics          *metrics.Metrics
}

// NewOrganizationService creates a new OrganizationService
func NewOrganizationService(organizationRepo *repositories.OrganizationRepository, m *metrics.Metrics) *OrganizationService {
	return &OrganizationService{
		organizationRepo: organizationRepo,
		metrics:          m,
	}
}

// Create creates an organization with its specialties and owner account.
func (s *OrganizationService) Create(ctx context.Context, req *dto.CreateOrganizationRequest) (*models.Organization, error) {
	specialties := make([]models.Specialty, len(req.Specialties))
	for i, sp := range req.Specialties {
		specialties[i] = models.Specialty{
			Name:    sp.Name,
			MinYear: sp.MinYear,
			MaxYear: sp.MaxYear,
		}
	}

	org := &models.Organization{
		UUID:        req.UUID,
		Name:        req.Name,
		Specialties: specialties,
	}

	owner := &models.UnregisteredUser{
		UUID:        req.OwnerUUID,
		Email:       req.OwnerEmail,
		BDEUUID:     req.UUID,
		Permissions: models.AllPermissions(),
		Member:      true,
	}

	if err := s.organizationRepo.Create(ctx, org, owner); err != nil {
		return nil, err
	}

	s.metrics.OrganizationsCreated.Inc()
	logger.Info().Str("bdeUUID", org.UUID).Str("bdeName", org.Name).Msg("Organization created")
	return org, nil
}

// GetAll returns every organization with its specialties.
func (s *OrganizationService) GetAll(ctx context.Context) ([]*models.Organization, error) {
	return s.organizationRepo.GetAll(ctx)
}

// GetByUUID returns a single organization.
func (s *OrganizationService) GetByUUID(ctx context.Context, uuid string) (*models.Organization, error) {
	return s.organizationRepo.GetByUUID(ctx, uuid)
}

// Delete removes an organization.
func (s *OrganizationService) Delete(ctx context.Context, uuid string) error {
	return s.organizationRepo.Delete(ctx, uuid)
}
