package store

import (
	"errors"

	"github.com/google/uuid"

	"github.com/bitmark-inc/volunteer-api/filter"
	"github.com/bitmark-inc/volunteer-api/schema"
)

func timeOfDay(s string) *schema.TimeOfDay {
	t, err := schema.ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return &t
}

func (s *StoreTestSuite) TestCreateProfileOncePerUser() {
	owner := uuid.New()
	profile := s.createProfile(owner, schema.Location{1, 2}, 3, "08:00", "18:00", s.alpha)

	s.Equal(owner, profile.UserID)
	s.Equal(schema.Location{1, 2}, profile.Location)
	s.Equal("08:00:00", profile.WorkingFrom.String())
	s.Equal("18:00:00", profile.WorkingTo.String())
	s.Equal(0.0, profile.Rate)

	_, err := s.store.CreateProfile(owner, schema.VolunteerProfileInput{
		Location:    &schema.Location{0, 0},
		WorkingFrom: *timeOfDay("08:00"),
		WorkingTo:   *timeOfDay("09:00"),
		City:        "Kyiv",
	})
	s.True(errors.Is(err, ErrAlreadyExists))
}

func (s *StoreTestSuite) TestGetProfileNotFound() {
	_, err := s.store.GetProfile(uuid.New())
	s.True(errors.Is(err, ErrNotFound))

	_, err = s.store.GetProfileByUser(uuid.New())
	s.True(errors.Is(err, ErrNotFound))
}

func (s *StoreTestSuite) TestGetProfileByUser() {
	owner := uuid.New()
	profile := s.createProfile(owner, schema.Location{0, 0}, 1, "08:00", "18:00")

	got, err := s.store.GetProfileByUser(owner)
	s.NoError(err)
	s.Equal(profile.ID, got.ID)
	s.NotNil(got.Services)
}

func (s *StoreTestSuite) TestProfileRate() {
	profile := s.createProfile(uuid.New(), schema.Location{0, 0}, 1, "08:00", "18:00")
	unrated := s.createProfile(uuid.New(), schema.Location{0, 0}, 1, "08:00", "18:00")

	for _, rating := range []int{3, 5} {
		_, err := s.store.AddReview(uuid.New(), schema.ReviewInput{
			VolunteerProfileID: profile.ID,
			Rating:             rating,
			Text:               "thanks",
		})
		s.NoError(err)
	}

	got, err := s.store.GetProfile(profile.ID)
	s.NoError(err)
	s.Equal(4.0, got.Rate)

	profiles, err := s.store.FilterProfiles(filter.ProfileSpec{}, 10, 0)
	s.NoError(err)
	s.Equal([]uuid.UUID{profile.ID, unrated.ID}, profileIDs(profiles), "reviews never multiply profile rows")
	s.Equal(4.0, profiles[0].Rate)
	s.Equal(0.0, profiles[1].Rate)
}

func (s *StoreTestSuite) TestAddReviewUnknownProfile() {
	_, err := s.store.AddReview(uuid.New(), schema.ReviewInput{
		VolunteerProfileID: uuid.New(),
		Rating:             5,
	})
	s.True(errors.Is(err, ErrNotFound))
}

func (s *StoreTestSuite) TestFilterProfilesAreaSize() {
	near := s.createProfile(uuid.New(), schema.Location{0, 0}, 5, "08:00", "18:00")
	s.createProfile(uuid.New(), schema.Location{0, 0}, 4.99, "08:00", "18:00")

	query := schema.Location{3, 4}
	profiles, err := s.store.FilterProfiles(filter.ProfileSpec{
		Common: filter.Common{Location: &query},
	}, 10, 0)
	s.NoError(err)
	s.Equal([]uuid.UUID{near.ID}, profileIDs(profiles), "each volunteer covers its own area size")
}

func (s *StoreTestSuite) TestFilterProfilesWorkingHours() {
	profile := s.createProfile(uuid.New(), schema.Location{0, 0}, 1, "08:00", "18:00")

	cases := []struct {
		from, to string
		match    bool
	}{
		{"09:00", "17:00", true},
		{"08:00", "18:00", true},
		{"07:00", "10:00", false},
		{"17:00", "19:00", false},
	}

	for _, c := range cases {
		profiles, err := s.store.FilterProfiles(filter.ProfileSpec{
			WorkingFrom: timeOfDay(c.from),
			WorkingTo:   timeOfDay(c.to),
		}, 10, 0)
		s.NoError(err)
		if c.match {
			s.Equal([]uuid.UUID{profile.ID}, profileIDs(profiles), "%s-%s", c.from, c.to)
		} else {
			s.Empty(profiles, "%s-%s", c.from, c.to)
		}
	}
}

func (s *StoreTestSuite) TestFilterProfilesServicesSuperset() {
	all := s.createProfile(uuid.New(), schema.Location{0, 0}, 1, "08:00", "18:00", s.alpha, s.bravo, s.charlie)
	s.createProfile(uuid.New(), schema.Location{0, 0}, 1, "08:00", "18:00", s.alpha)

	profiles, err := s.store.FilterProfiles(filter.ProfileSpec{
		Common: filter.Common{ServicesIDs: []uuid.UUID{s.alpha, s.bravo}},
	}, 10, 0)
	s.NoError(err)
	s.Equal([]uuid.UUID{all.ID}, profileIDs(profiles))
	s.Len(profiles[0].Services, 3)
}

func (s *StoreTestSuite) TestUpdateProfile() {
	owner := uuid.New()
	profile := s.createProfile(owner, schema.Location{0, 0}, 1, "08:00", "18:00", s.alpha)

	input := schema.VolunteerProfileInput{
		Location:    &schema.Location{5, 6},
		AreaSize:    10,
		WorkingFrom: *timeOfDay("10:00"),
		WorkingTo:   *timeOfDay("12:30"),
		City:        "Dnipro",
		ServicesIDs: []uuid.UUID{s.bravo},
	}

	_, err := s.store.UpdateProfile(uuid.New(), profile.ID, input)
	s.True(errors.Is(err, ErrNotFound))

	updated, err := s.store.UpdateProfile(owner, profile.ID, input)
	s.NoError(err)
	s.Equal(profile.ID, updated.ID)
	s.Equal(schema.Location{5, 6}, updated.Location)
	s.Equal(10.0, updated.AreaSize)
	s.Equal("12:30:00", updated.WorkingTo.String())
	s.Equal([]uuid.UUID{s.bravo}, serviceIDs(updated.Services))
}

func (s *StoreTestSuite) TestSetProfileServices() {
	owner := uuid.New()
	profile := s.createProfile(owner, schema.Location{0, 0}, 1, "08:00", "18:00", s.alpha)
	other := s.createProfile(uuid.New(), schema.Location{0, 0}, 1, "08:00", "18:00", s.alpha)

	updated, err := s.store.SetProfileServices(owner, profile.ID, []uuid.UUID{s.bravo, s.charlie})
	s.NoError(err)
	s.Equal([]uuid.UUID{s.bravo, s.charlie}, serviceIDs(updated.Services))

	updated, err = s.store.SetProfileServices(owner, profile.ID, []uuid.UUID{})
	s.NoError(err)
	s.Empty(updated.Services)

	got, err := s.store.GetProfile(other.ID)
	s.NoError(err)
	s.Equal([]uuid.UUID{s.alpha}, serviceIDs(got.Services))
}
