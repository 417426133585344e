package store

import (
	"fmt"

	"github.com/bitmark-inc/volunteer-api/schema"
)

// ListCities returns the distinct cities of every ticket and volunteer profile
func (s *VolunteerStore) ListCities() ([]string, error) {
	var rows []struct {
		City string
	}

	if err := s.ormDB.Raw(fmt.Sprintf(
		`SELECT city FROM %s UNION SELECT city FROM %s ORDER BY city`,
		schema.TicketTable, schema.VolunteerProfileTable,
	)).Scan(&rows).Error; err != nil {
		return nil, err
	}

	cities := make([]string, 0, len(rows))
	for _, r := range rows {
		cities = append(cities, r.City)
	}

	return cities, nil
}
