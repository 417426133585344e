package schema

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
)

const (
	VolunteerServiceTable = "volunteer_services"
	TicketServiceTable    = "ticket_to_service"
	ProfileServiceTable   = "profile_to_service"
)

// VolunteerService is a service category shared by tickets and profiles
type VolunteerService struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"-"`
}

func (VolunteerService) TableName() string {
	return VolunteerServiceTable
}

func (s *VolunteerService) BeforeCreate(scope *gorm.Scope) error {
	return assignID(scope, s.ID)
}

func assignID(scope *gorm.Scope, id uuid.UUID) error {
	if id != uuid.Nil {
		return nil
	}
	return scope.SetColumn("ID", uuid.New())
}
