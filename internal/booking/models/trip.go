package models

import "time"

// Trip is a catalog entry clients register for. Trips are managed outside this
// service and are read-only here.
type Trip struct {
	ID          int       `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	DateFrom    time.Time `db:"date_from" json:"dateFrom"`
	DateTo      time.Time `db:"date_to" json:"dateTo"`
	MaxPeople   int       `db:"max_people" json:"maxPeople"`
}

// HasStartedBy reports whether the trip starts at or before now.
func (t *Trip) HasStartedBy(now time.Time) bool {
	return !t.DateFrom.After(now)
}

// Country is a destination a trip visits.
type Country struct {
	ID   int    `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// TripDetails is a trip joined with its countries and registered clients.
type TripDetails struct {
	Trip      Trip
	Countries []Country
	Clients   []Client
}

// TripSummary is the externally visible shape of a trip listing entry.
type TripSummary struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	DateFrom    time.Time        `json:"dateFrom"`
	DateTo      time.Time        `json:"dateTo"`
	MaxPeople   int              `json:"maxPeople"`
	Countries   []CountrySummary `json:"countries"`
	Clients     []ClientSummary  `json:"clients"`
}

type CountrySummary struct {
	Name string `json:"name"`
}

type ClientSummary struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}
