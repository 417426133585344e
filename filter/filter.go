// Package filter compiles search specifications for tickets and volunteer
// profiles into a conjunction of SQL predicates. Nothing is executed here.
package filter

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	"github.com/lib/pq"

	"github.com/bitmark-inc/volunteer-api/schema"
)

var (
	ErrInvalidFilter = fmt.Errorf("invalid filter")
)

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidFilter, fmt.Sprintf(format, args...))
}

// Predicate is a single SQL condition with its bind variables
type Predicate struct {
	Clause string
	Args   []interface{}
}

// Predicates is a conjunction of predicates. An empty conjunction matches everything.
type Predicates []Predicate

// Scope applies every predicate as a WHERE condition
func (p Predicates) Scope(db *gorm.DB) *gorm.DB {
	for _, predicate := range p {
		db = db.Where(predicate.Clause, predicate.Args...)
	}
	return db
}

// Common holds the filters both searches understand
type Common struct {
	Location    *schema.Location
	City        string
	OwnerID     *uuid.UUID
	ServicesIDs []uuid.UUID
}

func (c Common) validate() error {
	if c.Location != nil {
		if err := c.Location.Validate(); err != nil {
			return invalid("%s", err)
		}
	}
	return nil
}

func (c Common) equality(table string) Predicates {
	var p Predicates
	if c.City != "" {
		p = append(p, Predicate{Clause: table + ".city = ?", Args: []interface{}{c.City}})
	}
	if c.OwnerID != nil {
		p = append(p, Predicate{Clause: table + ".user_id = ?", Args: []interface{}{*c.OwnerID}})
	}
	return p
}

// distance accepts rows whose stored point lies within radius of the query
// location. radius is either a bind variable or a column expression.
func distance(table string, loc schema.Location, radius string, args ...interface{}) Predicate {
	x, y := loc.Point()
	clause := fmt.Sprintf(
		"sqrt(power(%[1]s.location_x - ?, 2) + power(%[1]s.location_y - ?, 2)) <= %[2]s",
		table, radius,
	)
	return Predicate{Clause: clause, Args: append([]interface{}{x, y}, args...)}
}

// superset accepts rows bound to every service in ids. The join table is
// grouped per owner before the containment test so that multiple services
// never multiply the owner rows.
func superset(table, joinTable, ownerColumn string, ids []uuid.UUID) Predicate {
	clause := fmt.Sprintf(
		"%s.id IN (SELECT %[3]s FROM %[2]s GROUP BY %[3]s HAVING array_agg(volunteer_service_id) @> ?::uuid[])",
		table, joinTable, ownerColumn,
	)
	return Predicate{Clause: clause, Args: []interface{}{pq.Array(UUIDStrings(ids))}}
}

// UUIDStrings converts ids to their canonical string form, dropping duplicates
func UUIDStrings(ids []uuid.UUID) []string {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	s := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		s = append(s, id.String())
	}
	return s
}
