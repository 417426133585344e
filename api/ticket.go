package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bitmark-inc/volunteer-api/consts"
	"github.com/bitmark-inc/volunteer-api/schema"
)

// listTickets is the API for volunteers to search pending tickets
func (s *Server) listTickets(c *gin.Context) {
	var params ticketQueryParams
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
	tickets, err := s.store.FilterTickets(spec, limit, offset)
	if err != nil {
		abortWithStoreError(c, err, errorTicketNotFound, errorAlreadyExists)
		return
	}

	c.JSON(http.StatusOK, newPage(tickets, params.PageNumber, s.pageSize))
}

func (s *Server) getTicket(c *gin.Context) {
	id, err := pathID(c, "ticketID")
	if err != nil {
		abortWithEncoding(c, http.StatusNotFound, errorTicketNotFound, err)
		return
	}

	ticket, err := s.store.GetTicket(id)
	if err != nil {
		abortWithStoreError(c, err, errorTicketNotFound, errorAlreadyExists)
		return
	}

	c.JSON(http.StatusOK, ticket)
}

// bindTicketInput reads and checks a ticket from the request body. It returns
// false when the response has been aborted.
func (s *Server) bindTicketInput(c *gin.Context, input *schema.TicketInput) bool {
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

// createTicket is the API for asking help from volunteers
func (s *Server) createTicket(c *gin.Context) {
	var input schema.TicketInput
	if !s.bindTicketInput(c, &input) {
		return
	}

	ticket, err := s.store.CreateTicket(requesterOf(c), input)
	if err != nil {
		abortWithStoreError(c, err, errorTicketNotFound, errorAlreadyExists)
		return
	}

	c.JSON(http.StatusOK, ticket)
}

// updateTicket is the API for the owner to edit a pending ticket
func (s *Server) updateTicket(c *gin.Context) {
	id, err := pathID(c, "ticketID")
	if err != nil {
		abortWithEncoding(c, http.StatusNotFound, errorTicketNotFound, err)
		return
	}

	var input schema.TicketInput
	if !s.bindTicketInput(c, &input) {
		return
	}

	ticket, err := s.store.UpdateTicket(requesterOf(c), id, input)
	if err != nil {
		abortWithStoreError(c, err, errorTicketNotFound, errorAlreadyExists)
		return
	}

	c.JSON(http.StatusOK, ticket)
}

// setTicketServices replaces the services required by a pending ticket
func (s *Server) setTicketServices(c *gin.Context) {
	id, err := pathID(c, "ticketID")
	if err != nil {
		abortWithEncoding(c, http.StatusNotFound, errorTicketNotFound, err)
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

	ticket, err := s.store.SetTicketServices(requesterOf(c), id, params.ServicesIDs)
	if err != nil {
		abortWithStoreError(c, err, errorTicketNotFound, errorAlreadyExists)
		return
	}

	c.JSON(http.StatusOK, ticket)
}

func (s *Server) deleteTicket(c *gin.Context) {
	s.closeTicket(c, s.store.DeleteTicket)
}

func (s *Server) cancelTicket(c *gin.Context) {
	s.closeTicket(c, s.store.CancelTicket)
}

func (s *Server) finishTicket(c *gin.Context) {
	s.closeTicket(c, s.store.FinishTicket)
}

func (s *Server) closeTicket(c *gin.Context, action func(requester, id uuid.UUID) error) {
	id, err := pathID(c, "ticketID")
	if err != nil {
		abortWithEncoding(c, http.StatusNotFound, errorTicketNotFound, err)
		return
	}

	if err := action(requesterOf(c), id); err != nil {
		abortWithStoreError(c, err, errorTicketNotFound, errorAlreadyExists)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

// checkServicesCount limits how many services a ticket or a profile binds
func checkServicesCount(c *gin.Context, ids []uuid.UUID) bool {
	if len(ids) > consts.MAX_SERVICES_PER_ENTITY {
		err := fmt.Errorf("at most %d services are allowed", consts.MAX_SERVICES_PER_ENTITY)
		abortWithEncoding(c, http.StatusBadRequest, withDetail(errorInvalidParameters, err), err)
		return false
	}
	return true
}
