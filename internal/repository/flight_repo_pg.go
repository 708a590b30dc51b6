package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Domenick1991/booktofly/internal/domain"
)

type FlightRepository interface {
	ListByPrefix(ctx context.Context, prefix string) ([]domain.Flight, error)
	GetByNumber(ctx context.Context, flightNumber string) (*domain.Flight, error)
	Create(ctx context.Context, flight *domain.Flight) error
	Update(ctx context.Context, flight *domain.Flight) error
	Delete(ctx context.Context, flightNumber string) error
}

type PGFlightRepository struct {
	db *pgxpool.Pool
}

func NewFlightRepository(db *pgxpool.Pool) FlightRepository {
	return &PGFlightRepository{db: db}
}

const flightColumns = `flight_number, flight_name, source, destination, available_seats, ticket_price::float8, departure_time::text, arrival_time::text, flight_type`

func (r *PGFlightRepository) ListByPrefix(ctx context.Context, prefix string) ([]domain.Flight, error) {
	rows, err := r.db.Query(ctx, `SELECT `+flightColumns+` FROM flight_details WHERE flight_number LIKE $1 || '%' ORDER BY flight_number`, prefix)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flights := make([]domain.Flight, 0)
	for rows.Next() {
		var f domain.Flight
		if err := rows.Scan(&f.FlightNumber, &f.FlightName, &f.Source, &f.Destination, &f.AvailableSeats, &f.TicketPrice, &f.DepartureTime, &f.ArrivalTime, &f.FlightType); err != nil {
			return nil, err
		}
		flights = append(flights, f)
	}
	return flights, rows.Err()
}

func (r *PGFlightRepository) GetByNumber(ctx context.Context, flightNumber string) (*domain.Flight, error) {
	row := r.db.QueryRow(ctx, `SELECT `+flightColumns+` FROM flight_details WHERE flight_number = $1`, flightNumber)
	var f domain.Flight
	if err := row.Scan(&f.FlightNumber, &f.FlightName, &f.Source, &f.Destination, &f.AvailableSeats, &f.TicketPrice, &f.DepartureTime, &f.ArrivalTime, &f.FlightType); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &f, nil
}

func (r *PGFlightRepository) Create(ctx context.Context, flight *domain.Flight) error {
	_, err := r.db.Exec(ctx, `INSERT INTO flight_details (flight_number, flight_name, source, destination, available_seats, ticket_price, departure_time, arrival_time, flight_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7::time, $8::time, $9)`,
		flight.FlightNumber, flight.FlightName, flight.Source, flight.Destination, flight.AvailableSeats, flight.TicketPrice, flight.DepartureTime, flight.ArrivalTime, flight.FlightType)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return err
	}
	return nil
}

func (r *PGFlightRepository) Update(ctx context.Context, flight *domain.Flight) error {
	res, err := r.db.Exec(ctx, `UPDATE flight_details SET flight_name=$2, source=$3, destination=$4, available_seats=$5, ticket_price=$6, departure_time=$7::time, arrival_time=$8::time, flight_type=$9
		WHERE flight_number=$1`,
		flight.FlightNumber, flight.FlightName, flight.Source, flight.Destination, flight.AvailableSeats, flight.TicketPrice, flight.DepartureTime, flight.ArrivalTime, flight.FlightType)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PGFlightRepository) Delete(ctx context.Context, flightNumber string) error {
	res, err := r.db.Exec(ctx, `DELETE FROM flight_details WHERE flight_number = $1`, flightNumber)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

var _ FlightRepository = (*PGFlightRepository)(nil)
