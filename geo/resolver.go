package geo

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"googlemaps.github.io/maps"

	"github.com/bitmark-inc/volunteer-api/schema"
)

var (
	ErrNoCityFound = fmt.Errorf("no city found")
)

const resolveTimeout = 5 * time.Second

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "geo")
}

// CityResolver - interface for finding the city label of a location
type CityResolver interface {
	City(schema.Location) (string, error)
}

type GeocodingCityResolver struct {
	client *maps.Client
}

func NewGeocodingCityResolver(client *maps.Client) *GeocodingCityResolver {
	return &GeocodingCityResolver{
		client: client,
	}
}

// City reverse geocodes loc and returns its locality. When no locality is
// known the second level administrative area is used instead.
func (g *GeocodingCityResolver) City(loc schema.Location) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), resolveTimeout)
	defer cancel()

	geos, err := g.client.Geocode(ctx, &maps.GeocodingRequest{
		LatLng: &maps.LatLng{
			Lat: loc.Latitude(),
			Lng: loc.Longitude(),
		},
		ResultType: []string{"locality|administrative_area_level_2"},
		Language:   "en",
	})
	if nil != err {
		log.WithError(err).WithField("location", loc).Error("reverse geocoding")
		return "", err
	}

	var locality, level2 string
	for _, result := range geos {
		for _, a := range result.AddressComponents {
			if len(a.Types) == 0 {
				continue
			}
			switch a.Types[0] {
			case "locality":
				if locality == "" {
					locality = a.LongName
				}
			case "administrative_area_level_2":
				if level2 == "" {
					level2 = a.LongName
				}
			}
		}
	}

	switch {
	case locality != "":
		return locality, nil
	case level2 != "":
		return level2, nil
	default:
		return "", ErrNoCityFound
	}
}
