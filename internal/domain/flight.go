package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

type FlightType string

const (
	FlightTypeDomestic      FlightType = "Domestic Flight"
	FlightTypeInternational FlightType = "International Flight"
)

var flightNumberPattern = regexp.MustCompile(`^(DF|IF)[0-9]{1,4}$`)

// Flight is a row of the flight inventory. Departure and arrival are
// times of day in "15:04:05" form, not timestamps.
type Flight struct {
	FlightNumber   string
	FlightName     string
	Source         string
	Destination    string
	AvailableSeats int
	TicketPrice    float64
	DepartureTime  string
	ArrivalTime    string
	FlightType     FlightType
}

// DeriveFlightType returns the type encoded in the flight-number prefix.
// The prefix is authoritative: a client-supplied type is never trusted.
func DeriveFlightType(flightNumber string) (FlightType, error) {
	if !flightNumberPattern.MatchString(flightNumber) {
		return "", fmt.Errorf("%w: flight number must start with 'DF' or 'IF' followed by 1 to 4 digits", ErrValidation)
	}
	if strings.HasPrefix(flightNumber, "DF") {
		return FlightTypeDomestic, nil
	}
	return FlightTypeInternational, nil
}

func (f *Flight) Validate() error {
	if _, err := DeriveFlightType(f.FlightNumber); err != nil {
		return err
	}
	if f.FlightName == "" || len(f.FlightName) > 100 {
		return fmt.Errorf("%w: flight name is required and cannot exceed 100 characters", ErrValidation)
	}
	if f.Source == "" || len(f.Source) > 50 {
		return fmt.Errorf("%w: source is required and cannot exceed 50 characters", ErrValidation)
	}
	if f.Destination == "" || len(f.Destination) > 50 {
		return fmt.Errorf("%w: destination is required and cannot exceed 50 characters", ErrValidation)
	}
	if f.AvailableSeats < 1 || f.AvailableSeats > 500 {
		return fmt.Errorf("%w: available seats should be between 1 and 500", ErrValidation)
	}
	if f.TicketPrice < 1000 || f.TicketPrice > 50000 {
		return fmt.Errorf("%w: ticket price should be between 1000 and 50000", ErrValidation)
	}
	if err := validateTimeOfDay(f.DepartureTime); err != nil {
		return fmt.Errorf("%w: invalid departure time %q, expected HH:MM:SS", ErrValidation, f.DepartureTime)
	}
	if err := validateTimeOfDay(f.ArrivalTime); err != nil {
		return fmt.Errorf("%w: invalid arrival time %q, expected HH:MM:SS", ErrValidation, f.ArrivalTime)
	}
	return nil
}

func validateTimeOfDay(value string) error {
	_, err := time.Parse("15:04:05", value)
	return err
}
