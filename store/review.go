package store

import (
	"github.com/google/uuid"

	"github.com/bitmark-inc/volunteer-api/schema"
)

// AddReview rates a volunteer profile on behalf of the reviewer
func (s *VolunteerStore) AddReview(reviewer uuid.UUID, input schema.ReviewInput) (*schema.VolunteerReview, error) {
	if _, err := s.profiles.GetByID(input.VolunteerProfileID); err != nil {
		return nil, err
	}

	review := schema.VolunteerReview{
		ReviewerID:         reviewer,
		VolunteerProfileID: input.VolunteerProfileID,
		Rate:               input.Rating,
		Text:               input.Text,
	}

	if err := s.reviews.Create(&review); err != nil {
		return nil, err
	}

	return &review, nil
}
