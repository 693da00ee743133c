package services

import (
	"context"
	"fmt"

	"github.com/bde-polytech/backend/internal/app/models"
	"github.com/bde-polytech/backend/internal/app/models/dto"
	"github.com/bde-polytech/backend/internal/app/repositories"
	"github.com/bde-polytech/backend/internal/pkg/apperrors"
	"github.com/bde-polytech/backend/internal/pkg/auth"
	"github.com/bde-polytech/backend/internal/pkg/email"
	"github.com/bde-polytech/backend/internal/pkg/logger"
	"github.com/bde-polytech/backend/internal/pkg/metrics"
)

// UserService handles membership business logic
type UserService struct {
	userRepo         *repositories.UserRepository
	userRequestRepo  *repositories.UserRequestRepository
	organizationRepo *repositories.OrganizationRepository
	mailingService   email.MailingService
	metrics          *metrics.Metrics
}

// NewUserService creates a new UserService
func NewUserService(
	userRepo *repositories.UserRepository,
	userRequestRepo *repositories.UserRequestRepository,
	organizationRepo *repositories.OrganizationRepository,
	mailingService email.MailingService,
	m *metrics.Metrics,
) *UserService {
	return &UserService{
		userRepo:         userRepo,
		userRequestRepo:  userRequestRepo,
		organizationRepo: organizationRepo,
		mailingService:   mailingService,
		metrics:          m,
	}
}

// RegisterRequest records a join request for an organization. The requested
// year must fall inside the chosen specialty's range.
func (s *UserService) RegisterRequest(ctx context.Context, req *dto.RegisterUserRequest) error {
	org, err := s.organizationRepo.GetByUUID(ctx, req.BDEUUID)
	if err != nil {
		return err
	}

	if err := checkSpecialtyYear(org, req.SpecialtyName, req.SpecialtyYear); err != nil {
		return err
	}

	request := &models.UserRequest{
		Email:         req.Email,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		BDEUUID:       req.BDEUUID,
		SpecialtyName: req.SpecialtyName,
		SpecialtyYear: req.SpecialtyYear,
	}

	if err := s.userRequestRepo.Create(ctx, request); err != nil {
		return err
	}

	s.metrics.RequestsRegistered.Inc()
	return nil
}

// ListRequests returns the pending join requests of an organization.
func (s *UserService) ListRequests(ctx context.Context, bdeUUID string) ([]*models.UserRequest, error) {
	return s.userRequestRepo.GetAllForOrganization(ctx, bdeUUID)
}

// ProcessRequest accepts or refuses a pending join request. On acceptance the
// created account is invited by mail; mail delivery happens out of band and a
// failure there never fails the acceptance.
func (s *UserService) ProcessRequest(ctx context.Context, req *dto.ProcessUserRequest) error {
	user, err := s.userRequestRepo.Process(ctx, req.Email, req.BDEUUID, req.Accepted)
	if err != nil {
		return err
	}

	if !req.Accepted {
		s.metrics.RequestsProcessed.WithLabelValues("refused").Inc()
		return nil
	}

	s.metrics.RequestsProcessed.WithLabelValues("accepted").Inc()

	go func(toEmail, userUUID string) {
		if err := s.mailingService.SendRegistrationMail(toEmail, userUUID); err != nil {
			logger.Error().Err(err).Str("toEmail", toEmail).Msg("Failed to send registration mail")
		}
	}(user.Email, user.UUID)

	return nil
}

// FinishRegistration completes an approved account with its credentials. The
// account must still be unregistered; completing twice is rejected.
func (s *UserService) FinishRegistration(ctx context.Context, userUUID string, req *dto.FinishRegistrationRequest) error {
	pending, err := s.userRepo.GetUnregisteredByUUID(ctx, userUUID)
	if err != nil {
		return err
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return err
	}

	user := &models.RegisteredUser{
		UUID:          pending.UUID,
		Email:         pending.Email,
		BDEUUID:       pending.BDEUUID,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Password:      hashed,
		SpecialtyName: req.SpecialtyName,
		SpecialtyYear: req.SpecialtyYear,
	}

	if err := s.userRepo.FinishRegistration(ctx, user); err != nil {
		return err
	}

	logger.Info().Str("userUUID", userUUID).Msg("User registration completed")
	return nil
}

// GetByUUID returns one account.
func (s *UserService) GetByUUID(ctx context.Context, userUUID string) (*models.User, error) {
	return s.userRepo.GetByUUID(ctx, userUUID)
}

// GetAll returns every account.
func (s *UserService) GetAll(ctx context.Context) ([]*models.User, error) {
	return s.userRepo.GetAll(ctx)
}

// GetAllForOrganization returns the accounts of one organization.
func (s *UserService) GetAllForOrganization(ctx context.Context, bdeUUID string) ([]*models.User, error) {
	return s.userRepo.GetAllForOrganization(ctx, bdeUUID)
}

// checkSpecialtyYear validates that the specialty exists in the organization
// and that year falls inside its inclusive range.
func checkSpecialtyYear(org *models.Organization, specialtyName string, year int) error {
	for _, specialty := range org.Specialties {
		if specialty.Name != specialtyName {
			continue
		}
		if year < specialty.MinYear || year > specialty.MaxYear {
			return apperrors.NewCustomError(apperrors.ErrValidationFailed,
				fmt.Sprintf("year %d is outside the %s range [%d, %d]",
					year, specialty.Name, specialty.MinYear, specialty.MaxYear))
		}
		return nil
	}
	return apperrors.ErrInvalidSpecialty
}
