package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/volunteer-api/geo"
	"github.com/bitmark-inc/volunteer-api/schema"
)

// resolveCity fills an empty city label from the location. It returns false
// when the response has been aborted.
func (s *Server) resolveCity(c *gin.Context, city *string, loc schema.Location) bool {
	if *city != "" {
		return true
	}

	if s.cityResolver == nil {
		abortWithEncoding(c, http.StatusBadRequest, errorUnknownCity)
		return false
	}

	name, err := s.cityResolver.City(loc)
	if err != nil {
		if errors.Is(err, geo.ErrNoCityFound) {
			abortWithEncoding(c, http.StatusBadRequest, errorUnknownCity, err)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return false
	}

	*city = name
	return true
}

// listCities lists every city label known by tickets and volunteer profiles
func (s *Server) listCities(c *gin.Context) {
	cities, err := s.store.ListCities()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"cities": cities})
}
