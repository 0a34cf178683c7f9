package models

import "time"

// Client is a traveller. Pesel is unique across all clients.
type Client struct {
	ID        int    `db:"id" json:"id"`
	FirstName string `db:"first_name" json:"firstName"`
	LastName  string `db:"last_name" json:"lastName"`
	Email     string `db:"email" json:"email"`
	Telephone string `db:"telephone" json:"telephone"`
	Pesel     string `db:"pesel" json:"pesel"`
}

// Registration joins one client to one trip. (ClientID, TripID) is unique.
type Registration struct {
	ClientID     int        `db:"client_id" json:"clientId"`
	TripID       int        `db:"trip_id" json:"tripId"`
	RegisteredAt time.Time  `db:"registered_at" json:"registeredAt"`
	PaymentDate  *time.Time `db:"payment_date" json:"paymentDate,omitempty"`
}
