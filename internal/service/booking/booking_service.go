package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Domenick1991/booktofly/internal/auth"
	"github.com/Domenick1991/booktofly/internal/domain"
	"github.com/Domenick1991/booktofly/internal/repository"
)

type BookingUseCase interface {
	Book(ctx context.Context, input BookTicketInput, caller auth.Identity) (*domain.Ticket, error)
	ListByUsername(ctx context.Context, username string, caller auth.Identity) ([]domain.Ticket, error)
}

type BookTicketInput struct {
	FlightNumber  string
	PassengerName string
	PassengerAge  int
	DateOfJourney time.Time
}

type BookingService struct {
	tickets repository.TicketRepository
	flights repository.FlightRepository
	log     *zap.Logger
}

func NewBookingService(tickets repository.TicketRepository, flights repository.FlightRepository, log *zap.Logger) *BookingService {
	return &BookingService{tickets: tickets, flights: flights, log: log}
}

// Book resolves the flight, snapshots its name/source/destination onto a new
// ticket and ties it to the verified caller. The username is never taken from
// client input. The booking id is assigned by storage.
func (s *BookingService) Book(ctx context.Context, input BookTicketInput, caller auth.Identity) (*domain.Ticket, error) {
	flight, err := s.flights.GetByNumber(ctx, input.FlightNumber)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: flight with FlightNumber %s", domain.ErrNotFound, input.FlightNumber)
		}
		return nil, err
	}

	ticket := &domain.Ticket{
		FlightNumber:  flight.FlightNumber,
		PassengerName: input.PassengerName,
		PassengerAge:  input.PassengerAge,
		DateOfJourney: input.DateOfJourney,
		Username:      caller.Subject,
		FlightName:    flight.FlightName,
		Source:        flight.Source,
		Destination:   flight.Destination,
	}
	if err := ticket.ValidatePassenger(); err != nil {
		return nil, err
	}

	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, err
	}

	s.log.Info("ticket booked",
		zap.Int64("booking_id", ticket.BookingID),
		zap.String("flight_number", ticket.FlightNumber),
		zap.String("username", ticket.Username))
	return ticket, nil
}

// ListByUsername returns the tickets booked under the given username. A User
// token may only list its own tickets; an Admin may list anyone's. Zero
// tickets is a not-found condition.
func (s *BookingService) ListByUsername(ctx context.Context, username string, caller auth.Identity) ([]domain.Ticket, error) {
	if caller.Role != auth.RoleAdmin && !strings.EqualFold(caller.Subject, username) {
		s.log.Warn("ticket listing denied",
			zap.String("subject", caller.Subject),
			zap.String("requested", username))
		return nil, fmt.Errorf("%w: tickets of another user", domain.ErrForbidden)
	}

	tickets, err := s.tickets.ListByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if len(tickets) == 0 {
		return nil, fmt.Errorf("%w: no tickets found for the user with username %s", domain.ErrNotFound, username)
	}
	return tickets, nil
}

var _ BookingUseCase = (*BookingService)(nil)
