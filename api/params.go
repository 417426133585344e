package api

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bitmark-inc/volunteer-api/filter"
	"github.com/bitmark-inc/volunteer-api/schema"
)

type commonQueryParams struct {
	pagingQueryParams
	City   string `form:"city"`
	UserID string `form:"user_id"`
}

type ticketQueryParams struct {
	commonQueryParams
	AreaSize  *float64   `form:"area_size"`
	ValidFrom *time.Time `form:"valid_from" time_format:"2006-01-02T15:04:05Z07:00"`
	ValidTo   *time.Time `form:"valid_to" time_format:"2006-01-02T15:04:05Z07:00"`
}

type profileQueryParams struct {
	commonQueryParams
	WorkingFrom string `form:"working_from"`
	WorkingTo   string `form:"working_to"`
}

// parseLocation reads a location given either as two repeated values
// (location=1.5&location=2.5) or as a single comma separated pair.
func parseLocation(c *gin.Context) (*schema.Location, error) {
	values := c.QueryArray("location")
	if len(values) == 0 {
		return nil, nil
	}
	if len(values) == 1 {
		values = strings.Split(values[0], ",")
	}
	if len(values) != 2 {
		return nil, fmt.Errorf("location needs exactly two coordinates")
	}

	var loc schema.Location
	for i, v := range values {
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid coordinate %q", v)
		}
		loc[i] = f
	}

	return &loc, loc.Validate()
}

// parseServicesIDs accepts repeated services_ids values, each of which can
// also be a comma separated list
func parseServicesIDs(c *gin.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for _, value := range c.QueryArray("services_ids") {
		for _, v := range strings.Split(value, ",") {
			if v = strings.TrimSpace(v); v == "" {
				continue
			}
			id, err := uuid.Parse(v)
			if err != nil {
				return nil, fmt.Errorf("invalid service id %q", v)
			}
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func parseTimeOfDay(s string) (*schema.TimeOfDay, error) {
	if s == "" {
		return nil, nil
	}
	t, err := schema.ParseTimeOfDay(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// common parses the filters shared by both searches and normalizes the page number
func (p *commonQueryParams) common(c *gin.Context) (filter.Common, error) {
	var common filter.Common

	switch {
	case p.PageNumber == 0:
		p.PageNumber = 1
	case p.PageNumber < 0:
		return common, fmt.Errorf("page_number must be positive")
	}

	loc, err := parseLocation(c)
	if err != nil {
		return common, err
	}

	ids, err := parseServicesIDs(c)
	if err != nil {
		return common, err
	}

	common.Location = loc
	common.ServicesIDs = ids
	common.City = p.City

	if p.UserID != "" {
		owner, err := uuid.Parse(p.UserID)
		if err != nil {
			return common, fmt.Errorf("invalid user id %q", p.UserID)
		}
		common.OwnerID = &owner
	}

	return common, nil
}

func (p *ticketQueryParams) spec(c *gin.Context) (filter.TicketSpec, error) {
	common, err := p.common(c)
	if err != nil {
		return filter.TicketSpec{}, err
	}

	return filter.TicketSpec{
		Common:    common,
		Radius:    p.AreaSize,
		ValidFrom: p.ValidFrom,
		ValidTo:   p.ValidTo,
	}, nil
}

func (p *profileQueryParams) spec(c *gin.Context) (filter.ProfileSpec, error) {
	common, err := p.common(c)
	if err != nil {
		return filter.ProfileSpec{}, err
	}

	from, err := parseTimeOfDay(p.WorkingFrom)
	if err != nil {
		return filter.ProfileSpec{}, err
	}

	to, err := parseTimeOfDay(p.WorkingTo)
	if err != nil {
		return filter.ProfileSpec{}, err
	}

	return filter.ProfileSpec{
		Common:      common,
		WorkingFrom: from,
		WorkingTo:   to,
	}, nil
}

// pathID parses a uuid path parameter
func pathID(c *gin.Context, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Param(name))
}
