package store

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/bitmark-inc/volunteer-api/schema"
)

func (s *StoreTestSuite) TestListServicesIncludesDefaults() {
	services, err := s.store.ListServices()
	s.NoError(err)

	names := make([]string, 0, len(services))
	for _, v := range services {
		names = append(names, v.Name)
	}

	s.Subset(names, []string{"Alpha", "Bravo", "Carrying rubble", "Charlie", "Cleaning", "Cooking", "Delivery", "Laundry"})
}

func (s *StoreTestSuite) TestCheckServicesExist() {
	s.NoError(s.store.CheckServicesExist(nil))
	s.NoError(s.store.CheckServicesExist([]uuid.UUID{s.alpha, s.bravo, s.alpha}))

	missing := uuid.New()
	err := s.store.CheckServicesExist([]uuid.UUID{s.alpha, missing})
	s.True(errors.Is(err, ErrServicesNotExist))
	s.True(errors.Is(err, ErrNotFound))
	s.Contains(err.Error(), missing.String())
	s.NotContains(err.Error(), s.alpha.String())
}

func (s *StoreTestSuite) TestListCities() {
	now := time.Now()
	s.createTicket(uuid.New(), schema.Location{0, 0}, "Lviv", now)
	s.createTicket(uuid.New(), schema.Location{0, 0}, "Kharkiv", now)
	s.createTicket(uuid.New(), schema.Location{0, 0}, "Lviv", now)
	s.createProfile(uuid.New(), schema.Location{0, 0}, 1, "08:00", "18:00")

	cities, err := s.store.ListCities()
	s.NoError(err)
	s.Equal([]string{"Kharkiv", "Kyiv", "Lviv"}, cities)
}
