package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Domenick1991/booktofly/internal/domain"
)

type TicketRepository interface {
	Create(ctx context.Context, ticket *domain.Ticket) error
	ListByUsername(ctx context.Context, username string) ([]domain.Ticket, error)
}

type PGTicketRepository struct {
	db *pgxpool.Pool
}

func NewTicketRepository(db *pgxpool.Pool) TicketRepository {
	return &PGTicketRepository{db: db}
}

// Create persists the ticket and fills BookingID from the identity column.
func (r *PGTicketRepository) Create(ctx context.Context, ticket *domain.Ticket) error {
	return r.db.QueryRow(ctx, `INSERT INTO tickets (flight_number, passenger_name, passenger_age, date_of_journey, username, flight_name, source, destination)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING booking_id`,
		ticket.FlightNumber, ticket.PassengerName, ticket.PassengerAge, ticket.DateOfJourney, ticket.Username, ticket.FlightName, ticket.Source, ticket.Destination).
		Scan(&ticket.BookingID)
}

func (r *PGTicketRepository) ListByUsername(ctx context.Context, username string) ([]domain.Ticket, error) {
	rows, err := r.db.Query(ctx, `SELECT booking_id, flight_number, passenger_name, passenger_age, date_of_journey, username, flight_name, source, destination
		FROM tickets WHERE lower(username) = lower($1) ORDER BY booking_id`, username)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tickets := make([]domain.Ticket, 0)
	for rows.Next() {
		var t domain.Ticket
		if err := rows.Scan(&t.BookingID, &t.FlightNumber, &t.PassengerName, &t.PassengerAge, &t.DateOfJourney, &t.Username, &t.FlightName, &t.Source, &t.Destination); err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}
	return tickets, rows.Err()
}

var _ TicketRepository = (*PGTicketRepository)(nil)
