package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDeriveFlightType(t *testing.T) {
	tests := []struct {
		number  string
		want    FlightType
		wantErr bool
	}{
		{number: "DF1", want: FlightTypeDomestic},
		{number: "IF1234", want: FlightTypeInternational},
		{number: "DF12345", wantErr: true},
		{number: "XX1", wantErr: true},
		{number: "DF", wantErr: true},
		{number: "df1", wantErr: true},
	}

	for _, tc := range tests {
		got, err := DeriveFlightType(tc.number)
		if tc.wantErr {
			assert.ErrorIs(t, err, ErrValidation, tc.number)
			continue
		}
		assert.NoError(t, err, tc.number)
		assert.Equal(t, tc.want, got, tc.number)
	}
}

func TestFlightValidate(t *testing.T) {
	valid := func() Flight {
		return Flight{
			FlightNumber:   "DF1",
			FlightName:     "Air Alpha",
			Source:         "Delhi",
			Destination:    "Mumbai",
			AvailableSeats: 120,
			TicketPrice:    4500,
			DepartureTime:  "10:30:00",
			ArrivalTime:    "12:45:00",
		}
	}

	f := valid()
	assert.NoError(t, f.Validate())

	tests := []struct {
		name   string
		mutate func(*Flight)
	}{
		{"zero seats", func(f *Flight) { f.AvailableSeats = 0 }},
		{"too many seats", func(f *Flight) { f.AvailableSeats = 501 }},
		{"price too low", func(f *Flight) { f.TicketPrice = 999 }},
		{"price too high", func(f *Flight) { f.TicketPrice = 50001 }},
		{"empty name", func(f *Flight) { f.FlightName = "" }},
		{"empty source", func(f *Flight) { f.Source = "" }},
		{"malformed departure", func(f *Flight) { f.DepartureTime = "25:00:00" }},
		{"timestamp instead of time of day", func(f *Flight) { f.ArrivalTime = "2026-01-01T12:00:00Z" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := valid()
			tc.mutate(&f)
			assert.ErrorIs(t, f.Validate(), ErrValidation)
		})
	}
}

func TestTicketValidatePassenger(t *testing.T) {
	valid := func() Ticket {
		return Ticket{
			FlightNumber:  "DF1",
			PassengerName: "John O'Neil-Smith",
			PassengerAge:  30,
			DateOfJourney: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		}
	}

	tkt := valid()
	assert.NoError(t, tkt.ValidatePassenger())

	tests := []struct {
		name   string
		mutate func(*Ticket)
	}{
		{"underage", func(t *Ticket) { t.PassengerAge = 17 }},
		{"too old", func(t *Ticket) { t.PassengerAge = 111 }},
		{"empty name", func(t *Ticket) { t.PassengerName = "" }},
		{"name with digits", func(t *Ticket) { t.PassengerName = "John 2nd" }},
		{"name starting with apostrophe", func(t *Ticket) { t.PassengerName = "'John" }},
		{"zero journey date", func(t *Ticket) { t.DateOfJourney = time.Time{} }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tkt := valid()
			tc.mutate(&tkt)
			assert.ErrorIs(t, tkt.ValidatePassenger(), ErrValidation)
		})
	}
}
