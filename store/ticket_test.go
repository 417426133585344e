package store

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/bitmark-inc/volunteer-api/filter"
	"github.com/bitmark-inc/volunteer-api/schema"
)

func (s *StoreTestSuite) TestCreateAndGetTicket() {
	owner := uuid.New()
	created := s.createTicket(owner, schema.Location{1.5, -2.25}, "Lviv", time.Now().Add(time.Hour), s.bravo, s.alpha)

	s.Equal(schema.TICKET_PENDING, created.Status)
	s.Equal(owner, created.UserID)
	s.Equal(schema.Location{1.5, -2.25}, created.Location)
	s.Equal([]uuid.UUID{s.alpha, s.bravo}, serviceIDs(created.Services))

	ticket, err := s.store.GetTicket(created.ID)
	s.NoError(err)
	s.Equal(created.ID, ticket.ID)
	s.Equal(created.Location, ticket.Location)
	s.Len(ticket.Services, 2)
}

func (s *StoreTestSuite) TestCreateTicketWithUnknownServices() {
	_, err := s.store.CreateTicket(uuid.New(), schema.TicketInput{
		Title:       "t",
		Description: "d",
		Location:    &schema.Location{0, 0},
		City:        "Lviv",
		ValidUntil:  time.Now(),
		ServicesIDs: []uuid.UUID{s.alpha, uuid.New()},
	})
	s.True(errors.Is(err, ErrServicesNotExist))

	tickets, err := s.store.FilterTickets(filter.TicketSpec{}, 10, 0)
	s.NoError(err)
	s.Empty(tickets, "the ticket must not be created without its services")
}

func (s *StoreTestSuite) TestGetTicketNotFound() {
	_, err := s.store.GetTicket(uuid.New())
	s.True(errors.Is(err, ErrNotFound))
}

func (s *StoreTestSuite) TestFilterTicketsDistanceBoundary() {
	ticket := s.createTicket(uuid.New(), schema.Location{0, 0}, "Lviv", time.Now())
	query := schema.Location{3, 4}

	tickets, err := s.store.FilterTickets(filter.TicketSpec{
		Common: filter.Common{Location: &query},
		Radius: radius(5.0),
	}, 10, 0)
	s.NoError(err)
	s.Equal([]uuid.UUID{ticket.ID}, ticketIDs(tickets))

	tickets, err = s.store.FilterTickets(filter.TicketSpec{
		Common: filter.Common{Location: &query},
		Radius: radius(4.99),
	}, 10, 0)
	s.NoError(err)
	s.Empty(tickets)
}

func (s *StoreTestSuite) TestFilterTicketsLocationWithoutRadius() {
	ticket := s.createTicket(uuid.New(), schema.Location{3, 4}, "Lviv", time.Now())
	s.createTicket(uuid.New(), schema.Location{3, 4.5}, "Lviv", time.Now())

	same := schema.Location{3, 4}
	tickets, err := s.store.FilterTickets(filter.TicketSpec{
		Common: filter.Common{Location: &same},
	}, 10, 0)
	s.NoError(err)
	s.Equal([]uuid.UUID{ticket.ID}, ticketIDs(tickets))
}

func (s *StoreTestSuite) TestFilterTicketsServicesSuperset() {
	all := s.createTicket(uuid.New(), schema.Location{0, 0}, "Lviv", time.Now(), s.alpha, s.bravo, s.charlie)
	s.createTicket(uuid.New(), schema.Location{0, 0}, "Lviv", time.Now(), s.alpha)
	s.createTicket(uuid.New(), schema.Location{0, 0}, "Lviv", time.Now())

	tickets, err := s.store.FilterTickets(filter.TicketSpec{
		Common: filter.Common{ServicesIDs: []uuid.UUID{s.alpha, s.bravo}},
	}, 10, 0)
	s.NoError(err)
	s.Equal([]uuid.UUID{all.ID}, ticketIDs(tickets), "one row per ticket whatever the number of services")
	s.Len(tickets[0].Services, 3)

	tickets, err = s.store.FilterTickets(filter.TicketSpec{}, 10, 0)
	s.NoError(err)
	s.Len(tickets, 3)
}

func (s *StoreTestSuite) TestFilterTicketsPendingOnly() {
	owner := uuid.New()
	pending := s.createTicket(owner, schema.Location{0, 0}, "Lviv", time.Now())
	canceled := s.createTicket(owner, schema.Location{0, 0}, "Lviv", time.Now())
	finished := s.createTicket(owner, schema.Location{0, 0}, "Lviv", time.Now())

	s.NoError(s.store.CancelTicket(owner, canceled.ID))
	s.NoError(s.store.FinishTicket(owner, finished.ID))

	tickets, err := s.store.FilterTickets(filter.TicketSpec{
		Common: filter.Common{OwnerID: &owner},
	}, 10, 0)
	s.NoError(err)
	s.Equal([]uuid.UUID{pending.ID}, ticketIDs(tickets))

	_, err = s.store.GetTicket(canceled.ID)
	s.True(errors.Is(err, ErrNotFound))
}

func (s *StoreTestSuite) TestCloseTicketIsTerminal() {
	owner := uuid.New()
	ticket := s.createTicket(owner, schema.Location{0, 0}, "Lviv", time.Now())

	s.True(errors.Is(s.store.CancelTicket(uuid.New(), ticket.ID), ErrNotFound), "only the owner closes a ticket")
	s.NoError(s.store.CancelTicket(owner, ticket.ID))
	s.True(errors.Is(s.store.FinishTicket(owner, ticket.ID), ErrNotFound))
	s.True(errors.Is(s.store.CancelTicket(owner, ticket.ID), ErrNotFound))

	_, err := s.store.SetTicketServices(owner, ticket.ID, []uuid.UUID{s.alpha})
	s.True(errors.Is(err, ErrNotFound), "a closed ticket is not editable")
}

func (s *StoreTestSuite) TestFilterTicketsValidWindow() {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	early := s.createTicket(uuid.New(), schema.Location{0, 0}, "Lviv", base)
	middle := s.createTicket(uuid.New(), schema.Location{0, 0}, "Lviv", base.Add(24*time.Hour))
	late := s.createTicket(uuid.New(), schema.Location{0, 0}, "Lviv", base.Add(48*time.Hour))

	from := base.Add(time.Hour)
	to := base.Add(24 * time.Hour)

	tickets, err := s.store.FilterTickets(filter.TicketSpec{ValidFrom: &from, ValidTo: &to}, 10, 0)
	s.NoError(err)
	s.Equal([]uuid.UUID{middle.ID}, ticketIDs(tickets), "both bounds are inclusive")

	tickets, err = s.store.FilterTickets(filter.TicketSpec{ValidFrom: &from}, 10, 0)
	s.NoError(err)
	s.Equal([]uuid.UUID{middle.ID, late.ID}, ticketIDs(tickets))

	tickets, err = s.store.FilterTickets(filter.TicketSpec{ValidTo: &to}, 10, 0)
	s.NoError(err)
	s.Equal([]uuid.UUID{early.ID, middle.ID}, ticketIDs(tickets))
}

func (s *StoreTestSuite) TestFilterTicketsCityAndOwner() {
	owner := uuid.New()
	mine := s.createTicket(owner, schema.Location{0, 0}, "Lviv", time.Now())
	s.createTicket(owner, schema.Location{0, 0}, "Kyiv", time.Now())
	s.createTicket(uuid.New(), schema.Location{0, 0}, "Lviv", time.Now())

	tickets, err := s.store.FilterTickets(filter.TicketSpec{
		Common: filter.Common{City: "Lviv", OwnerID: &owner},
	}, 10, 0)
	s.NoError(err)
	s.Equal([]uuid.UUID{mine.ID}, ticketIDs(tickets))

	stranger := uuid.New()
	tickets, err = s.store.FilterTickets(filter.TicketSpec{
		Common: filter.Common{OwnerID: &stranger},
	}, 10, 0)
	s.NoError(err)
	s.Empty(tickets)
}

func (s *StoreTestSuite) TestFilterTicketsInvalidSpec() {
	_, err := s.store.FilterTickets(filter.TicketSpec{Radius: radius(1)}, 10, 0)
	s.True(errors.Is(err, filter.ErrInvalidFilter))
}

func (s *StoreTestSuite) TestFilterTicketsPaging() {
	for i := 0; i < 51; i++ {
		s.createTicket(uuid.New(), schema.Location{0, 0}, "Lviv", time.Now())
	}

	first, err := s.store.FilterTickets(filter.TicketSpec{}, 51, 0)
	s.NoError(err)
	s.Len(first, 51)

	second, err := s.store.FilterTickets(filter.TicketSpec{}, 51, 50)
	s.NoError(err)
	s.Len(second, 1)
	s.Equal(first[50].ID, second[0].ID, "ordering is stable across pages")
}

func (s *StoreTestSuite) TestSetTicketServices() {
	owner := uuid.New()
	ticket := s.createTicket(owner, schema.Location{0, 0}, "Lviv", time.Now(), s.alpha)
	other := s.createTicket(uuid.New(), schema.Location{0, 0}, "Lviv", time.Now(), s.alpha)

	for i := 0; i < 2; i++ {
		updated, err := s.store.SetTicketServices(owner, ticket.ID, []uuid.UUID{s.bravo, s.charlie, s.bravo})
		s.NoError(err)
		s.Equal([]uuid.UUID{s.bravo, s.charlie}, serviceIDs(updated.Services))
	}

	updated, err := s.store.SetTicketServices(owner, ticket.ID, nil)
	s.NoError(err)
	s.NotNil(updated.Services)
	s.Empty(updated.Services)

	got, err := s.store.GetTicket(ticket.ID)
	s.NoError(err)
	s.Empty(got.Services)

	got, err = s.store.GetTicket(other.ID)
	s.NoError(err)
	s.Equal([]uuid.UUID{s.alpha}, serviceIDs(got.Services), "only the services of the given ticket are replaced")
}

func (s *StoreTestSuite) TestSetTicketServicesRollback() {
	owner := uuid.New()
	ticket := s.createTicket(owner, schema.Location{0, 0}, "Lviv", time.Now(), s.alpha)

	_, err := s.store.SetTicketServices(owner, ticket.ID, []uuid.UUID{s.bravo, uuid.New()})
	s.True(errors.Is(err, ErrServicesNotExist))

	got, err := s.store.GetTicket(ticket.ID)
	s.NoError(err)
	s.Equal([]uuid.UUID{s.alpha}, serviceIDs(got.Services))
}

func (s *StoreTestSuite) TestUpdateTicket() {
	owner := uuid.New()
	ticket := s.createTicket(owner, schema.Location{0, 0}, "Lviv", time.Now(), s.alpha)

	input := schema.TicketInput{
		Title:       "new title",
		Description: "new description",
		Location:    &schema.Location{7, 8},
		City:        "Odesa",
		ValidUntil:  time.Now().Add(time.Hour),
		ServicesIDs: []uuid.UUID{s.charlie},
	}

	_, err := s.store.UpdateTicket(uuid.New(), ticket.ID, input)
	s.True(errors.Is(err, ErrNotFound))

	updated, err := s.store.UpdateTicket(owner, ticket.ID, input)
	s.NoError(err)
	s.Equal("new title", updated.Title)
	s.Equal(schema.Location{7, 8}, updated.Location)
	s.Equal("Odesa", updated.City)
	s.Equal([]uuid.UUID{s.charlie}, serviceIDs(updated.Services))
}

func (s *StoreTestSuite) TestDeleteTicket() {
	owner := uuid.New()
	ticket := s.createTicket(owner, schema.Location{0, 0}, "Lviv", time.Now(), s.alpha)
	other := s.createTicket(owner, schema.Location{0, 0}, "Lviv", time.Now(), s.alpha)

	s.True(errors.Is(s.store.DeleteTicket(uuid.New(), ticket.ID), ErrNotFound))
	s.NoError(s.store.DeleteTicket(owner, ticket.ID))
	s.True(errors.Is(s.store.DeleteTicket(owner, ticket.ID), ErrNotFound))

	got, err := s.store.GetTicket(other.ID)
	s.NoError(err)
	s.Len(got.Services, 1)
}
