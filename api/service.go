package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// listServices is the API for listing every volunteer service
func (s *Server) listServices(c *gin.Context) {
	services, err := s.store.ListServices()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"services": services})
}

// createService is the admin API for adding a volunteer service
func (s *Server) createService(c *gin.Context) {
	var params struct {
		Name string `json:"name" binding:"required,max=100"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	service, err := s.store.CreateService(params.Name)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, service)
}
