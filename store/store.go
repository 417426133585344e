package store

import (
	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"

	"github.com/bitmark-inc/volunteer-api/filter"
	"github.com/bitmark-inc/volunteer-api/schema"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "store")
}

// VolunteerCore is the main datastore of the volunteer service
type VolunteerCore interface {
	Ping() error

	// Service
	ListServices() ([]schema.VolunteerService, error)
	CreateService(name string) (*schema.VolunteerService, error)
	CheckServicesExist(ids []uuid.UUID) error

	// Ticket
	CreateTicket(requester uuid.UUID, input schema.TicketInput) (*schema.TicketResult, error)
	GetTicket(id uuid.UUID) (*schema.TicketResult, error)
	FilterTickets(spec filter.TicketSpec, limit, offset int) ([]schema.TicketResult, error)
	UpdateTicket(requester, id uuid.UUID, input schema.TicketInput) (*schema.TicketResult, error)
	SetTicketServices(requester, id uuid.UUID, servicesIDs []uuid.UUID) (*schema.TicketResult, error)
	DeleteTicket(requester, id uuid.UUID) error
	CancelTicket(requester, id uuid.UUID) error
	FinishTicket(requester, id uuid.UUID) error

	// Volunteer profile
	CreateProfile(requester uuid.UUID, input schema.VolunteerProfileInput) (*schema.ProfileResult, error)
	GetProfile(id uuid.UUID) (*schema.ProfileResult, error)
	GetProfileByUser(userID uuid.UUID) (*schema.ProfileResult, error)
	FilterProfiles(spec filter.ProfileSpec, limit, offset int) ([]schema.ProfileResult, error)
	UpdateProfile(requester, id uuid.UUID, input schema.VolunteerProfileInput) (*schema.ProfileResult, error)
	SetProfileServices(requester, id uuid.UUID, servicesIDs []uuid.UUID) (*schema.ProfileResult, error)

	// Review
	AddReview(reviewer uuid.UUID, input schema.ReviewInput) (*schema.VolunteerReview, error)

	// City
	ListCities() ([]string, error)
}

// VolunteerStore is an implementation of VolunteerCore
type VolunteerStore struct {
	ormDB *gorm.DB

	services Repository[schema.VolunteerService]
	tickets  Repository[schema.Ticket]
	profiles Repository[schema.VolunteerProfile]
	reviews  Repository[schema.VolunteerReview]
}

func NewVolunteerStore(ormDB *gorm.DB) *VolunteerStore {
	return &VolunteerStore{
		ormDB:    ormDB,
		services: NewRepository[schema.VolunteerService](ormDB, "volunteer service"),
		tickets:  NewRepository[schema.Ticket](ormDB, "ticket"),
		profiles: NewRepository[schema.VolunteerProfile](ormDB, "volunteer profile"),
		reviews:  NewRepository[schema.VolunteerReview](ormDB, "volunteer review"),
	}
}

// Ping is to check the storage health status
func (s *VolunteerStore) Ping() error {
	return s.ormDB.DB().Ping()
}
