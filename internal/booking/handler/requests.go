package handler

import (
	"time"

	"tripapp/internal/booking/models"
)

// RegisterClientRequest is the JSON body of POST /api/trips/{idTrip}/clients.
type RegisterClientRequest struct {
	IDTrip      int        `json:"idTrip"`
	TripName    string     `json:"tripName"`
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	Email       string     `json:"email"`
	Telephone   string     `json:"telephone"`
	Pesel       string     `json:"pesel"`
	PaymentDate *time.Time `json:"paymentDate,omitempty"`
}

func (r *RegisterClientRequest) toModel() models.RegistrationRequest {
	return models.RegistrationRequest{
		TripID:      r.IDTrip,
		TripName:    r.TripName,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Email:       r.Email,
		Telephone:   r.Telephone,
		Pesel:       r.Pesel,
		PaymentDate: r.PaymentDate,
	}
}

// ClientTripsResponse answers GET /api/clients/{id}/trips.
type ClientTripsResponse struct {
	HasTrips bool `json:"hasTrips"`
}
