package services

import (
	"github.com/bde-polytech/backend/internal/app/repositories"
	"github.com/bde-polytech/backend/internal/config"
	"github.com/bde-polytech/backend/internal/pkg/auth"
	"github.com/bde-polytech/backend/internal/pkg/email"
	"github.com/bde-polytech/backend/internal/pkg/metrics"
)

// Services contains all application services
type Services struct {
	OrganizationService *OrganizationService
	UserService         *UserService
	AuthService         *AuthService
	EventService        *EventService
	BookingService      *BookingService
	VoteService         *VoteService
}

// NewServices creates and wires all services
func NewServices(
	repos *repositories.Repositories,
	cfg *config.Config,
	jwtService *auth.JWTService,
	mailingService email.MailingService,
	appMetrics *metrics.Metrics,
) *Services {
	return &Services{
		OrganizationService: NewOrganizationService(repos.OrganizationRepository, appMetrics),
		UserService:         NewUserService(repos.UserRepository, repos.UserRequestRepository, repos.OrganizationRepository, mailingService, appMetrics),
		AuthService:         NewAuthService(repos.UserRepository, jwtService),
		EventService:        NewEventService(repos.EventRepository),
		BookingService:      NewBookingService(repos.BookingRepository, appMetrics),
		VoteService:         NewVoteService(repos.VoteRepository, appMetrics),
	}
}
