package store

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"

	"github.com/bitmark-inc/volunteer-api/filter"
	"github.com/bitmark-inc/volunteer-api/schema"
)

const profileOwnerColumn = "volunteer_profile_id"

// profileRow is a profile joined with the average of its review rates
type profileRow struct {
	schema.VolunteerProfile
	Rate *float64
}

// ratedProfiles selects profiles together with their average rate. Profiles
// without any review get a rate of 0.
func ratedProfiles(db *gorm.DB) *gorm.DB {
	return db.Table(schema.VolunteerProfileTable).
		Select(fmt.Sprintf("%s.*, COALESCE(r.rate, 0) AS rate", schema.VolunteerProfileTable)).
		Joins(fmt.Sprintf(
			`LEFT JOIN (SELECT volunteer_profile_id, AVG(rate)::float8 AS rate FROM %s GROUP BY volunteer_profile_id) r
			ON r.volunteer_profile_id = %s.id`,
			schema.VolunteerReviewTable, schema.VolunteerProfileTable,
		))
}

// CreateProfile creates the volunteer profile of the requester. A user owns
// at most one profile.
func (s *VolunteerStore) CreateProfile(requester uuid.UUID, input schema.VolunteerProfileInput) (*schema.ProfileResult, error) {
	profile := input.Profile(requester)

	if err := s.ormDB.Transaction(func(tx *gorm.DB) error {
		if err := checkServicesExist(tx, input.ServicesIDs); err != nil {
			return err
		}

		if err := s.profiles.With(tx).Create(&profile); err != nil {
			return err
		}

		return bindServices(tx, schema.ProfileServiceTable, profileOwnerColumn, profile.ID, input.ServicesIDs)
	}); err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"profile":   profile.ID,
		"requester": requester,
	}).Info("volunteer profile created")

	return s.GetProfile(profile.ID)
}

func (s *VolunteerStore) GetProfile(id uuid.UUID) (*schema.ProfileResult, error) {
	return s.getProfile("id", id)
}

// GetProfileByUser returns the profile owned by a user
func (s *VolunteerStore) GetProfileByUser(userID uuid.UUID) (*schema.ProfileResult, error) {
	return s.getProfile("user_id", userID)
}

func (s *VolunteerStore) getProfile(column string, value uuid.UUID) (*schema.ProfileResult, error) {
	var rows []profileRow
	if err := ratedProfiles(s.ormDB).
		Where(fmt.Sprintf("%s.%s = ?", schema.VolunteerProfileTable, column), value).
		Limit(1).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: volunteer profile with %s %s", ErrNotFound, column, value)
	}

	results, err := s.profileResults(rows)
	if err != nil {
		return nil, err
	}
	return &results[0], nil
}

// FilterProfiles returns the profiles matching spec, ordered by creation time
// then id
func (s *VolunteerStore) FilterProfiles(spec filter.ProfileSpec, limit, offset int) ([]schema.ProfileResult, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	var rows []profileRow
	if err := ratedProfiles(s.ormDB).
		Scopes(spec.Compile().Scope).
		Order(fmt.Sprintf("%[1]s.created_at, %[1]s.id", schema.VolunteerProfileTable)).
		Limit(limit).
		Offset(offset).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	return s.profileResults(rows)
}

// UpdateProfile overwrites the profile of the requester in place and replaces
// its services in one transaction
func (s *VolunteerStore) UpdateProfile(requester, id uuid.UUID, input schema.VolunteerProfileInput) (*schema.ProfileResult, error) {
	if err := s.ormDB.Transaction(func(tx *gorm.DB) error {
		profiles := s.profiles.With(tx)

		if _, err := profiles.GetBy(ownedProfile(requester, id)); err != nil {
			return err
		}

		if err := checkServicesExist(tx, input.ServicesIDs); err != nil {
			return err
		}

		if _, err := profiles.Update(id, input.Columns()); err != nil {
			return err
		}

		return bindServices(tx, schema.ProfileServiceTable, profileOwnerColumn, id, input.ServicesIDs)
	}); err != nil {
		return nil, err
	}

	return s.GetProfile(id)
}

// SetProfileServices replaces the services offered by a profile of the requester
func (s *VolunteerStore) SetProfileServices(requester, id uuid.UUID, servicesIDs []uuid.UUID) (*schema.ProfileResult, error) {
	if err := s.ormDB.Transaction(func(tx *gorm.DB) error {
		if _, err := s.profiles.With(tx).GetBy(ownedProfile(requester, id)); err != nil {
			return err
		}

		if err := checkServicesExist(tx, servicesIDs); err != nil {
			return err
		}

		return bindServices(tx, schema.ProfileServiceTable, profileOwnerColumn, id, servicesIDs)
	}); err != nil {
		return nil, err
	}

	return s.GetProfile(id)
}

func ownedProfile(requester, id uuid.UUID) map[string]interface{} {
	return map[string]interface{}{
		"id":      id,
		"user_id": requester,
	}
}

func (s *VolunteerStore) profileResults(rows []profileRow) ([]schema.ProfileResult, error) {
	ids := make([]uuid.UUID, len(rows))
	for i, r := range rows {
		ids[i] = r.ID
	}

	services, err := servicesOf(s.ormDB, schema.ProfileServiceTable, profileOwnerColumn, ids)
	if err != nil {
		return nil, err
	}

	results := make([]schema.ProfileResult, len(rows))
	for i, r := range rows {
		results[i] = schema.NewProfileResult(r.VolunteerProfile, services[r.ID], r.Rate)
	}

	return results, nil
}
