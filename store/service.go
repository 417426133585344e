package store

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/bitmark-inc/volunteer-api/filter"
	"github.com/bitmark-inc/volunteer-api/schema"
)

// ListServices returns every volunteer service ordered by name
func (s *VolunteerStore) ListServices() ([]schema.VolunteerService, error) {
	services := []schema.VolunteerService{}
	if err := s.ormDB.Order("name, id").Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// CreateService registers a new service category
func (s *VolunteerStore) CreateService(name string) (*schema.VolunteerService, error) {
	service := schema.VolunteerService{Name: name}
	if err := s.services.Create(&service); err != nil {
		return nil, err
	}
	return &service, nil
}

// CheckServicesExist returns ErrServicesNotExist naming every id that has
// no matching service.
func (s *VolunteerStore) CheckServicesExist(ids []uuid.UUID) error {
	return checkServicesExist(s.ormDB, ids)
}

func checkServicesExist(db *gorm.DB, ids []uuid.UUID) error {
	wanted := filter.UUIDStrings(ids)
	if len(wanted) == 0 {
		return nil
	}

	var found []schema.VolunteerService
	if err := db.Where("id = ANY(?::uuid[])", pq.Array(wanted)).Find(&found).Error; err != nil {
		return err
	}

	existing := make(map[string]struct{}, len(found))
	for _, service := range found {
		existing[service.ID.String()] = struct{}{}
	}

	missing := []string{}
	for _, id := range wanted {
		if _, ok := existing[id]; !ok {
			missing = append(missing, id)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: [%s]", ErrServicesNotExist, strings.Join(missing, ", "))
	}

	return nil
}

// bindServices replaces every service association of a single owner. Only the
// rows of ownerID are deleted. An empty ids clears the associations.
func bindServices(tx *gorm.DB, table, ownerColumn string, ownerID uuid.UUID, ids []uuid.UUID) error {
	if err := tx.Exec(
		fmt.Sprintf("DELETE FROM %s WHERE %s = ?", table, ownerColumn),
		ownerID,
	).Error; err != nil {
		return translate(err, table)
	}

	wanted := filter.UUIDStrings(ids)
	if len(wanted) == 0 {
		return nil
	}

	if err := tx.Exec(
		fmt.Sprintf(`INSERT INTO %s (%s, volunteer_service_id)
		SELECT ?::uuid, service_id FROM unnest(?::uuid[]) AS service_id`, table, ownerColumn),
		ownerID,
		pq.Array(wanted),
	).Error; err != nil {
		return translate(err, table)
	}

	log.WithFields(logrus.Fields{
		"table":    table,
		"owner":    ownerID,
		"services": wanted,
	}).Debug("services bound")

	return nil
}

type serviceRow struct {
	OwnerID uuid.UUID
	ID      uuid.UUID
	Name    string
}

// servicesOf loads the services bound to each owner in a single query
func servicesOf(db *gorm.DB, table, ownerColumn string, ownerIDs []uuid.UUID) (map[uuid.UUID][]schema.VolunteerService, error) {
	services := make(map[uuid.UUID][]schema.VolunteerService, len(ownerIDs))
	if len(ownerIDs) == 0 {
		return services, nil
	}

	var rows []serviceRow
	if err := db.Raw(
		fmt.Sprintf(`SELECT j.%[1]s AS owner_id, v.id, v.name FROM %[2]s j
		JOIN volunteer_services v ON v.id = j.volunteer_service_id
		WHERE j.%[1]s = ANY(?::uuid[])
		ORDER BY v.name, v.id`, ownerColumn, table),
		pq.Array(filter.UUIDStrings(ownerIDs)),
	).Scan(&rows).Error; err != nil {
		return nil, err
	}

	for _, r := range rows {
		services[r.OwnerID] = append(services[r.OwnerID], schema.VolunteerService{ID: r.ID, Name: r.Name})
	}

	return services, nil
}
