package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bitmark-inc/volunteer-api/schema"
)

// listProfiles is the API for requesters to search volunteers
func (s *Server) listProfiles(c *gin.Context) {
	var params profileQueryParams
	if err := c.BindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	spec, err := params.spec(c)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, withDetail(errorInvalidParameters, err), err)
		return
	}

	limit, offset := limitOffset(params.PageNumber, s.pageSize)
	profiles, err := s.store.FilterProfiles(spec, limit, offset)
	if err != nil {
		abortWithStoreError(c, err, errorProfileNotFound, errorProfileExists)
		return
	}

	c.JSON(http.StatusOK, newPage(profiles, params.PageNumber, s.pageSize))
}

func (s *Server) getProfile(c *gin.Context) {
	id, err := pathID(c, "profileID")
	if err != nil {
		abortWithEncoding(c, http.StatusNotFound, errorProfileNotFound, err)
		return
	}

	profile, err := s.store.GetProfile(id)
	if err != nil {
		abortWithStoreError(c, err, errorProfileNotFound, errorProfileExists)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// myProfile returns the volunteer profile of the requester
func (s *Server) myProfile(c *gin.Context) {
	profile, err := s.store.GetProfileByUser(requesterOf(c))
	if err != nil {
		abortWithStoreError(c, err, errorProfileNotFound, errorProfileExists)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (s *Server) bindProfileInput(c *gin.Context, input *schema.VolunteerProfileInput) bool {
	if err := c.BindJSON(input); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return false
	}

	if err := input.Validate(); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, withDetail(errorInvalidParameters, err), err)
		return false
	}

	if !checkServicesCount(c, input.ServicesIDs) {
		return false
	}

	return s.resolveCity(c, &input.City, *input.Location)
}

// createProfile is the API for a user to become a volunteer
func (s *Server) createProfile(c *gin.Context) {
	var input schema.VolunteerProfileInput
	if !s.bindProfileInput(c, &input) {
		return
	}

	profile, err := s.store.CreateProfile(requesterOf(c), input)
	if err != nil {
		abortWithStoreError(c, err, errorProfileNotFound, errorProfileExists)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (s *Server) updateProfile(c *gin.Context) {
	id, err := pathID(c, "profileID")
	if err != nil {
		abortWithEncoding(c, http.StatusNotFound, errorProfileNotFound, err)
		return
	}

	var input schema.VolunteerProfileInput
	if !s.bindProfileInput(c, &input) {
		return
	}

	profile, err := s.store.UpdateProfile(requesterOf(c), id, input)
	if err != nil {
		abortWithStoreError(c, err, errorProfileNotFound, errorProfileExists)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// setProfileServices replaces the services a volunteer offers
func (s *Server) setProfileServices(c *gin.Context) {
	id, err := pathID(c, "profileID")
	if err != nil {
		abortWithEncoding(c, http.StatusNotFound, errorProfileNotFound, err)
		return
	}

	var params struct {
		ServicesIDs []uuid.UUID `json:"services_ids"`
	}
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if !checkServicesCount(c, params.ServicesIDs) {
		return
	}

	profile, err := s.store.SetProfileServices(requesterOf(c), id, params.ServicesIDs)
	if err != nil {
		abortWithStoreError(c, err, errorProfileNotFound, errorProfileExists)
		return
	}

	c.JSON(http.StatusOK, profile)
}
