package models

import (
	"strings"
	"time"

	dErrors "tripapp/pkg/domain-errors"
)

// maxFieldLength matches the width of the client columns.
const maxFieldLength = 120

// RegistrationRequest asks for a new client to be registered for a trip.
type RegistrationRequest struct {
	TripID      int
	TripName    string
	FirstName   string
	LastName    string
	Email       string
	Telephone   string
	Pesel       string
	PaymentDate *time.Time
}

// Normalize trims whitespace from the client fields. TripName is kept verbatim
// because it must match the stored trip name exactly.
func (r *RegistrationRequest) Normalize() {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Email = strings.TrimSpace(r.Email)
	r.Telephone = strings.TrimSpace(r.Telephone)
	r.Pesel = strings.TrimSpace(r.Pesel)
}

// Validate checks the request shape. Business rules are enforced by the service.
func (r *RegistrationRequest) Validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"tripName", r.TripName},
		{"firstName", r.FirstName},
		{"lastName", r.LastName},
		{"email", r.Email},
		{"telephone", r.Telephone},
		{"pesel", r.Pesel},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return dErrors.New(dErrors.CodeValidation, f.name+" is required")
		}
		if len(f.value) > maxFieldLength {
			return dErrors.New(dErrors.CodeValidation, f.name+" exceeds max length")
		}
	}
	if !isPlausibleEmail(r.Email) {
		return dErrors.New(dErrors.CodeValidation, "email is invalid")
	}
	return nil
}

// NewClient builds the client record described by the request.
func (r *RegistrationRequest) NewClient() *Client {
	return &Client{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Telephone: r.Telephone,
		Pesel:     r.Pesel,
	}
}

func isPlausibleEmail(email string) bool {
	at := strings.IndexByte(email, '@')
	if at <= 0 || at == len(email)-1 {
		return false
	}
	return !strings.ContainsAny(email, " \t") && strings.Count(email, "@") == 1
}
