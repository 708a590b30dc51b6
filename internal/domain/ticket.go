package domain

import (
	"fmt"
	"regexp"
	"time"
)

var passengerNamePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z' -]{1,49}$`)

// Ticket is a booked seat. FlightName, Source, Destination and Username are
// denormalized at booking time: they are a snapshot and do not track later
// edits to the flight. FlightNumber is a soft reference, not a DB constraint.
type Ticket struct {
	BookingID     int64
	FlightNumber  string
	PassengerName string
	PassengerAge  int
	DateOfJourney time.Time
	Username      string
	FlightName    string
	Source        string
	Destination   string
}

func (t *Ticket) ValidatePassenger() error {
	if !passengerNamePattern.MatchString(t.PassengerName) {
		return fmt.Errorf("%w: invalid name format, only English letters, spaces, apostrophes and hyphens are allowed", ErrValidation)
	}
	if t.PassengerAge < 18 || t.PassengerAge > 110 {
		return fmt.Errorf("%w: age should be within 18 to 110", ErrValidation)
	}
	if t.DateOfJourney.IsZero() {
		return fmt.Errorf("%w: date of journey is required", ErrValidation)
	}
	return nil
}
