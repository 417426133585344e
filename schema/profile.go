package schema

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
)

const (
	VolunteerProfileTable = "volunteer_profiles"
)

// VolunteerProfile describes what a volunteer offers, where and when
type VolunteerProfile struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID      uuid.UUID `gorm:"type:uuid"`
	LocationX   float64
	LocationY   float64
	AreaSize    float64
	City        string
	WorkingFrom TimeOfDay `gorm:"type:time"`
	WorkingTo   TimeOfDay `gorm:"type:time"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (VolunteerProfile) TableName() string {
	return VolunteerProfileTable
}

func (p *VolunteerProfile) BeforeCreate(scope *gorm.Scope) error {
	return assignID(scope, p.ID)
}

// VolunteerProfileInput is the writable part of a volunteer profile
type VolunteerProfileInput struct {
	Location    *Location   `json:"location" binding:"required"`
	AreaSize    float64     `json:"area_size" binding:"min=0"`
	WorkingFrom TimeOfDay   `json:"working_from"`
	WorkingTo   TimeOfDay   `json:"working_to"`
	City        string      `json:"city" binding:"max=100"`
	ServicesIDs []uuid.UUID `json:"services_ids"`
}

// Validate checks what the binding tags cannot express
func (in VolunteerProfileInput) Validate() error {
	if err := in.Location.Validate(); err != nil {
		return err
	}
	if !in.WorkingFrom.Before(in.WorkingTo) {
		return fmt.Errorf("working_from %s must be before working_to %s", in.WorkingFrom, in.WorkingTo)
	}
	return nil
}

func (in VolunteerProfileInput) Profile(userID uuid.UUID) VolunteerProfile {
	x, y := in.Location.Point()
	return VolunteerProfile{
		UserID:      userID,
		LocationX:   x,
		LocationY:   y,
		AreaSize:    in.AreaSize,
		City:        in.City,
		WorkingFrom: in.WorkingFrom,
		WorkingTo:   in.WorkingTo,
	}
}

func (in VolunteerProfileInput) Columns() map[string]interface{} {
	x, y := in.Location.Point()
	return map[string]interface{}{
		"location_x":   x,
		"location_y":   y,
		"area_size":    in.AreaSize,
		"city":         in.City,
		"working_from": in.WorkingFrom,
		"working_to":   in.WorkingTo,
	}
}

// ProfileResult is the public shape of a volunteer profile
type ProfileResult struct {
	ID          uuid.UUID          `json:"id"`
	UserID      uuid.UUID          `json:"user_id"`
	Location    Location           `json:"location"`
	AreaSize    float64            `json:"area_size"`
	WorkingFrom TimeOfDay          `json:"working_from"`
	WorkingTo   TimeOfDay          `json:"working_to"`
	City        string             `json:"city"`
	Rate        float64            `json:"rate"`
	Services    []VolunteerService `json:"services"`
}

// NewProfileResult maps a stored profile, its services and its aggregated
// rate to the public shape. A missing rate is reported as 0.
func NewProfileResult(p VolunteerProfile, services []VolunteerService, rate *float64) ProfileResult {
	if services == nil {
		services = []VolunteerService{}
	}

	var r float64
	if rate != nil {
		r = *rate
	}

	return ProfileResult{
		ID:          p.ID,
		UserID:      p.UserID,
		Location:    LocationFromPoint(p.LocationX, p.LocationY),
		AreaSize:    p.AreaSize,
		WorkingFrom: p.WorkingFrom,
		WorkingTo:   p.WorkingTo,
		City:        p.City,
		Rate:        r,
		Services:    services,
	}
}
