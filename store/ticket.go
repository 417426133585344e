package store

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"

	"github.com/bitmark-inc/volunteer-api/filter"
	"github.com/bitmark-inc/volunteer-api/schema"
)

const ticketOwnerColumn = "ticket_id"

// CreateTicket creates a pending ticket and binds its required services in
// one transaction
func (s *VolunteerStore) CreateTicket(requester uuid.UUID, input schema.TicketInput) (*schema.TicketResult, error) {
	ticket := input.Ticket(requester)

	if err := s.ormDB.Transaction(func(tx *gorm.DB) error {
		if err := checkServicesExist(tx, input.ServicesIDs); err != nil {
			return err
		}

		if err := s.tickets.With(tx).Create(&ticket); err != nil {
			return err
		}

		return bindServices(tx, schema.TicketServiceTable, ticketOwnerColumn, ticket.ID, input.ServicesIDs)
	}); err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"ticket":    ticket.ID,
		"requester": requester,
	}).Info("ticket created")

	return s.ticketResult(s.ormDB, ticket)
}

// GetTicket returns a ticket which is still pending
func (s *VolunteerStore) GetTicket(id uuid.UUID) (*schema.TicketResult, error) {
	ticket, err := s.tickets.GetBy(map[string]interface{}{
		"id":     id,
		"status": schema.TICKET_PENDING,
	})
	if err != nil {
		return nil, err
	}

	return s.ticketResult(s.ormDB, *ticket)
}

// FilterTickets returns the pending tickets matching spec, ordered by creation
// time then id
func (s *VolunteerStore) FilterTickets(spec filter.TicketSpec, limit, offset int) ([]schema.TicketResult, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	var tickets []schema.Ticket
	if err := s.ormDB.
		Scopes(spec.Compile().Scope).
		Order(fmt.Sprintf("%[1]s.created_at, %[1]s.id", schema.TicketTable)).
		Limit(limit).
		Offset(offset).
		Find(&tickets).Error; err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, len(tickets))
	for i, t := range tickets {
		ids[i] = t.ID
	}

	services, err := servicesOf(s.ormDB, schema.TicketServiceTable, ticketOwnerColumn, ids)
	if err != nil {
		return nil, err
	}

	results := make([]schema.TicketResult, len(tickets))
	for i, t := range tickets {
		results[i] = schema.NewTicketResult(t, services[t.ID])
	}

	return results, nil
}

// UpdateTicket overwrites a pending ticket of the requester and replaces its
// services in one transaction
func (s *VolunteerStore) UpdateTicket(requester, id uuid.UUID, input schema.TicketInput) (*schema.TicketResult, error) {
	var ticket *schema.Ticket

	if err := s.ormDB.Transaction(func(tx *gorm.DB) error {
		tickets := s.tickets.With(tx)

		if _, err := tickets.GetBy(ownedPendingTicket(requester, id)); err != nil {
			return err
		}

		if err := checkServicesExist(tx, input.ServicesIDs); err != nil {
			return err
		}

		t, err := tickets.Update(id, input.Columns())
		if err != nil {
			return err
		}
		ticket = t

		return bindServices(tx, schema.TicketServiceTable, ticketOwnerColumn, id, input.ServicesIDs)
	}); err != nil {
		return nil, err
	}

	return s.ticketResult(s.ormDB, *ticket)
}

// SetTicketServices replaces the services required by a pending ticket of the
// requester
func (s *VolunteerStore) SetTicketServices(requester, id uuid.UUID, servicesIDs []uuid.UUID) (*schema.TicketResult, error) {
	var ticket *schema.Ticket

	if err := s.ormDB.Transaction(func(tx *gorm.DB) error {
		t, err := s.tickets.With(tx).GetBy(ownedPendingTicket(requester, id))
		if err != nil {
			return err
		}
		ticket = t

		if err := checkServicesExist(tx, servicesIDs); err != nil {
			return err
		}

		return bindServices(tx, schema.TicketServiceTable, ticketOwnerColumn, id, servicesIDs)
	}); err != nil {
		return nil, err
	}

	return s.ticketResult(s.ormDB, *ticket)
}

// DeleteTicket removes a ticket of the requester together with its service
// associations
func (s *VolunteerStore) DeleteTicket(requester, id uuid.UUID) error {
	return s.ormDB.Transaction(func(tx *gorm.DB) error {
		tickets := s.tickets.With(tx)

		if _, err := tickets.GetBy(map[string]interface{}{
			"id":      id,
			"user_id": requester,
		}); err != nil {
			return err
		}

		if err := bindServices(tx, schema.TicketServiceTable, ticketOwnerColumn, id, nil); err != nil {
			return err
		}

		return tickets.DeleteByID(id)
	})
}

// CancelTicket moves a pending ticket of the requester to `CANCELED`
func (s *VolunteerStore) CancelTicket(requester, id uuid.UUID) error {
	return s.closeTicket(requester, id, schema.TICKET_CANCELED)
}

// FinishTicket moves a pending ticket of the requester to `FINISHED`
func (s *VolunteerStore) FinishTicket(requester, id uuid.UUID) error {
	return s.closeTicket(requester, id, schema.TICKET_FINISHED)
}

// closeTicket updates the status only when the ticket is owned by the
// requester and is still `PENDING`. A closed ticket never reopens.
func (s *VolunteerStore) closeTicket(requester, id uuid.UUID, status string) error {
	result := s.ormDB.Model(&schema.Ticket{}).
		Where("id = ? AND user_id = ? AND status = ?", id, requester, schema.TICKET_PENDING).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: pending ticket %s of %s", ErrNotFound, id, requester)
	}

	return nil
}

func ownedPendingTicket(requester, id uuid.UUID) map[string]interface{} {
	return map[string]interface{}{
		"id":      id,
		"user_id": requester,
		"status":  schema.TICKET_PENDING,
	}
}

func (s *VolunteerStore) ticketResult(db *gorm.DB, ticket schema.Ticket) (*schema.TicketResult, error) {
	services, err := servicesOf(db, schema.TicketServiceTable, ticketOwnerColumn, []uuid.UUID{ticket.ID})
	if err != nil {
		return nil, err
	}

	result := schema.NewTicketResult(ticket, services[ticket.ID])
	return &result, nil
}
