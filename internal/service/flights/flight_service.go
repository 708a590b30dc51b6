package flights

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Domenick1991/booktofly/internal/domain"
	"github.com/Domenick1991/booktofly/internal/repository"
)

type FlightUseCase interface {
	ListByType(ctx context.Context, flightType string) ([]domain.Flight, error)
	GetByNumber(ctx context.Context, flightNumber string) (*domain.Flight, error)
	Create(ctx context.Context, flight *domain.Flight) (*domain.Flight, error)
	Update(ctx context.Context, flightNumber string, flight *domain.Flight) error
	Delete(ctx context.Context, flightNumber string) error
}

type FlightService struct {
	repo repository.FlightRepository
	log  *zap.Logger
}

func NewFlightService(repo repository.FlightRepository, log *zap.Logger) *FlightService {
	return &FlightService{repo: repo, log: log}
}

// ListByType accepts "IF" or "DF" (case-insensitive, trimmed) and returns all
// flights with that prefix. Zero matches is a not-found condition, not an
// empty success.
func (s *FlightService) ListByType(ctx context.Context, flightType string) ([]domain.Flight, error) {
	code := strings.ToUpper(strings.TrimSpace(flightType))
	if code != "IF" && code != "DF" {
		return nil, fmt.Errorf("%w: enter IF for International Flight or DF for Domestic Flight", domain.ErrValidation)
	}

	flights, err := s.repo.ListByPrefix(ctx, code)
	if err != nil {
		return nil, err
	}
	if len(flights) == 0 {
		return nil, fmt.Errorf("%w: flight type %s", domain.ErrNotFound, code)
	}
	return flights, nil
}

func (s *FlightService) GetByNumber(ctx context.Context, flightNumber string) (*domain.Flight, error) {
	flight, err := s.repo.GetByNumber(ctx, flightNumber)
	if err != nil {
		return nil, err
	}
	return flight, nil
}

// Create validates the record, derives the flight type from the number prefix
// (never trusting client input for it) and persists. A duplicate flight
// number surfaces as ErrConflict from the primary-key constraint.
func (s *FlightService) Create(ctx context.Context, flight *domain.Flight) (*domain.Flight, error) {
	flightType, err := domain.DeriveFlightType(flight.FlightNumber)
	if err != nil {
		return nil, err
	}
	flight.FlightType = flightType

	if err := flight.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, flight); err != nil {
		return nil, err
	}
	s.log.Info("flight created", zap.String("flight_number", flight.FlightNumber), zap.String("flight_type", string(flight.FlightType)))
	return flight, nil
}

// Update replaces all mutable fields of an existing flight. The path number
// must match the body number, and the type is re-derived from the prefix the
// same way Create does.
func (s *FlightService) Update(ctx context.Context, flightNumber string, flight *domain.Flight) error {
	if flightNumber != flight.FlightNumber {
		return fmt.Errorf("%w: flight number in the URL does not match the flight number in the body", domain.ErrValidation)
	}

	flightType, err := domain.DeriveFlightType(flight.FlightNumber)
	if err != nil {
		return err
	}
	flight.FlightType = flightType

	if err := flight.Validate(); err != nil {
		return err
	}

	if err := s.repo.Update(ctx, flight); err != nil {
		return err
	}
	s.log.Info("flight updated", zap.String("flight_number", flight.FlightNumber))
	return nil
}

// Delete removes the flight. Tickets referencing it keep their denormalized
// snapshot, so no cascade check is needed.
func (s *FlightService) Delete(ctx context.Context, flightNumber string) error {
	if err := s.repo.Delete(ctx, flightNumber); err != nil {
		return err
	}
	s.log.Info("flight deleted", zap.String("flight_number", flightNumber))
	return nil
}

var _ FlightUseCase = (*FlightService)(nil)
