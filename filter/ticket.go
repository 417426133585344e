package filter

import (
	"time"

	"github.com/bitmark-inc/volunteer-api/schema"
)

// TicketSpec is what a volunteer searches tickets with. Radius is supplied by
// the caller and only meaningful together with a location.
type TicketSpec struct {
	Common
	Radius    *float64
	ValidFrom *time.Time
	ValidTo   *time.Time
}

func (s TicketSpec) Validate() error {
	if err := s.Common.validate(); err != nil {
		return err
	}

	if s.Radius != nil {
		if s.Location == nil {
			return invalid("area size is given without a location")
		}
		if *s.Radius < 0 {
			return invalid("negative area size %v", *s.Radius)
		}
	}

	if s.ValidFrom != nil && s.ValidTo != nil && s.ValidFrom.After(*s.ValidTo) {
		return invalid("valid_from %s is after valid_to %s", s.ValidFrom, s.ValidTo)
	}

	return nil
}

// Compile builds the predicates of a ticket search. Only pending tickets are
// ever matched.
func (s TicketSpec) Compile() Predicates {
	t := schema.TicketTable

	p := Predicates{
		{Clause: t + ".status = ?", Args: []interface{}{schema.TICKET_PENDING}},
	}
	p = append(p, s.equality(t)...)

	if s.Location != nil {
		var radius float64
		if s.Radius != nil {
			radius = *s.Radius
		}
		p = append(p, distance(t, *s.Location, "?", radius))
	}

	if s.ValidFrom != nil {
		p = append(p, Predicate{Clause: t + ".valid_until >= ?", Args: []interface{}{*s.ValidFrom}})
	}
	if s.ValidTo != nil {
		p = append(p, Predicate{Clause: t + ".valid_until <= ?", Args: []interface{}{*s.ValidTo}})
	}

	if len(s.ServicesIDs) > 0 {
		p = append(p, superset(t, schema.TicketServiceTable, "ticket_id", s.ServicesIDs))
	}

	return p
}
