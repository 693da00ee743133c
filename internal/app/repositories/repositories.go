package repositories

import (
	"github.com/bde-polytech/backend/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	OrganizationRepository *OrganizationRepository
	UserRepository         *UserRepository
	UserRequestRepository  *UserRequestRepository
	EventRepository        *EventRepository
	BookingRepository      *BookingRepository
	VoteRepository         *VoteRepository
}

// NewRepositories initializes all repositories
func NewRepositories(database *db.PostgresDB) *Repositories {
	return &Repositories{
		OrganizationRepository: NewOrganizationRepository(database),
		UserRepository:         NewUserRepository(database),
		UserRequestRepository:  NewUserRequestRepository(database),
		EventRepository:        NewEventRepository(database),
		BookingRepository:      NewBookingRepository(database),
		VoteRepository:         NewVoteRepository(database),
	}
}
