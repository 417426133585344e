package schema

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
)

const (
	TicketTable = "tickets"

	TICKET_PENDING  = "PENDING"
	TICKET_CANCELED = "CANCELED"
	TICKET_FINISHED = "FINISHED"
)

// Ticket is a help request posted by a user
type Ticket struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID      uuid.UUID `gorm:"type:uuid"`
	Title       string
	Description string
	LocationX   float64
	LocationY   float64
	City        string
	ValidUntil  time.Time
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Ticket) TableName() string {
	return TicketTable
}

func (t *Ticket) BeforeCreate(scope *gorm.Scope) error {
	if t.Status == "" {
		if err := scope.SetColumn("Status", TICKET_PENDING); err != nil {
			return err
		}
	}
	return assignID(scope, t.ID)
}

// TicketInput is the writable part of a ticket
type TicketInput struct {
	Title       string      `json:"title" binding:"required,max=100"`
	Description string      `json:"description" binding:"required,max=1000"`
	Location    *Location   `json:"location" binding:"required"`
	City        string      `json:"city" binding:"max=100"`
	ValidUntil  time.Time   `json:"valid_until" binding:"required"`
	ServicesIDs []uuid.UUID `json:"services_ids"`
}

// Validate checks what the binding tags cannot express
func (in TicketInput) Validate() error {
	return in.Location.Validate()
}

// Ticket builds a new pending ticket owned by userID
func (in TicketInput) Ticket(userID uuid.UUID) Ticket {
	x, y := in.Location.Point()
	return Ticket{
		UserID:      userID,
		Title:       in.Title,
		Description: in.Description,
		LocationX:   x,
		LocationY:   y,
		City:        in.City,
		ValidUntil:  in.ValidUntil,
		Status:      TICKET_PENDING,
	}
}

// Columns returns the columns overwritten by an update
func (in TicketInput) Columns() map[string]interface{} {
	x, y := in.Location.Point()
	return map[string]interface{}{
		"title":       in.Title,
		"description": in.Description,
		"location_x":  x,
		"location_y":  y,
		"city":        in.City,
		"valid_until": in.ValidUntil,
	}
}

// TicketResult is the public shape of a ticket
type TicketResult struct {
	ID          uuid.UUID          `json:"id"`
	Title       string             `json:"title"`
	UserID      uuid.UUID          `json:"user_id"`
	Location    Location           `json:"location"`
	City        string             `json:"city"`
	Description string             `json:"description"`
	ValidUntil  time.Time          `json:"valid_until"`
	Status      string             `json:"status"`
	Services    []VolunteerService `json:"services"`
}

// NewTicketResult maps a stored ticket and its bound services to the public shape
func NewTicketResult(t Ticket, services []VolunteerService) TicketResult {
	if services == nil {
		services = []VolunteerService{}
	}

	return TicketResult{
		ID:          t.ID,
		Title:       t.Title,
		UserID:      t.UserID,
		Location:    LocationFromPoint(t.LocationX, t.LocationY),
		City:        t.City,
		Description: t.Description,
		ValidUntil:  t.ValidUntil,
		Status:      t.Status,
		Services:    services,
	}
}
