package filter

import (
	"github.com/bitmark-inc/volunteer-api/schema"
)

// ProfileSpec is what a requester searches volunteers with. There is no
// caller radius: each volunteer decides how far they travel with its own
// area size.
type ProfileSpec struct {
	Common
	WorkingFrom *schema.TimeOfDay
	WorkingTo   *schema.TimeOfDay
}

func (s ProfileSpec) Validate() error {
	if err := s.Common.validate(); err != nil {
		return err
	}

	if s.WorkingFrom != nil && s.WorkingTo != nil && s.WorkingTo.Before(*s.WorkingFrom) {
		return invalid("working_from %s is after working_to %s", s.WorkingFrom, s.WorkingTo)
	}

	return nil
}

// Compile builds the predicates of a profile search. The working hours of a
// volunteer must cover the whole requested window.
func (s ProfileSpec) Compile() Predicates {
	t := schema.VolunteerProfileTable

	p := s.equality(t)

	if s.Location != nil {
		p = append(p, distance(t, *s.Location, t+".area_size"))
	}

	if s.WorkingFrom != nil {
		p = append(p, Predicate{Clause: t + ".working_from <= ?", Args: []interface{}{*s.WorkingFrom}})
	}
	if s.WorkingTo != nil {
		p = append(p, Predicate{Clause: t + ".working_to >= ?", Args: []interface{}{*s.WorkingTo}})
	}

	if len(s.ServicesIDs) > 0 {
		p = append(p, superset(t, schema.ProfileServiceTable, "volunteer_profile_id", s.ServicesIDs))
	}

	return p
}
