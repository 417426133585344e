package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/volunteer-api/schema"
)

// addReview is the API for rating a volunteer
func (s *Server) addReview(c *gin.Context) {
	var input schema.ReviewInput
	if err := c.BindJSON(&input); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	review, err := s.store.AddReview(requesterOf(c), input)
	if err != nil {
		abortWithStoreError(c, err, errorProfileNotFound, errorAlreadyExists)
		return
	}

	c.JSON(http.StatusOK, review)
}
