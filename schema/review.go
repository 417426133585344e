package schema

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
)

const (
	VolunteerReviewTable = "volunteer_reviews"
)

type VolunteerReview struct {
	ID                 uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	ReviewerID         uuid.UUID `json:"reviewer_id" gorm:"type:uuid"`
	VolunteerProfileID uuid.UUID `json:"volunteer_profile_id" gorm:"type:uuid"`
	Rate               int       `json:"rate"`
	Text               string    `json:"text"`
	CreatedAt          time.Time `json:"created_at"`
}

func (VolunteerReview) TableName() string {
	return VolunteerReviewTable
}

func (r *VolunteerReview) BeforeCreate(scope *gorm.Scope) error {
	return assignID(scope, r.ID)
}

type ReviewInput struct {
	VolunteerProfileID uuid.UUID `json:"volunteer_profile_id" binding:"required"`
	Rating             int       `json:"rating" binding:"required,min=1,max=5"`
	Text               string    `json:"text" binding:"max=100"`
}
