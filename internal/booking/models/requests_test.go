package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "tripapp/pkg/domain-errors"
)

func validRegistration() RegistrationRequest {
	return RegistrationRequest{
		TripID:    1,
		TripName:  "Lisbon",
		FirstName: "Anna",
		LastName:  "Kowalska",
		Email:     "anna@example.com",
		Telephone: "600100200",
		Pesel:     "90010112345",
	}
}

func TestRegistrationRequestValidate(t *testing.T) {
	t.Run("valid request passes", func(t *testing.T) {
		req := validRegistration()
		assert.NoError(t, req.Validate())
	})

	t.Run("normalize trims before validate", func(t *testing.T) {
		req := validRegistration()
		req.FirstName = "  Anna "
		req.Pesel = " 90010112345\t"
		req.Normalize()
		require.NoError(t, req.Validate())
		assert.Equal(t, "Anna", req.FirstName)
		assert.Equal(t, "90010112345", req.Pesel)
	})

	t.Run("normalize leaves trip name verbatim", func(t *testing.T) {
		req := validRegistration()
		req.TripName = "Lisbon "
		req.Normalize()
		require.NoError(t, req.Validate())
		assert.Equal(t, "Lisbon ", req.TripName)
	})

	t.Run("blank trip name is required", func(t *testing.T) {
		req := validRegistration()
		req.TripName = "   "
		req.Normalize()
		err := req.Validate()
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	})

	cases := map[string]func(r *RegistrationRequest){
		"missing trip name":    func(r *RegistrationRequest) { r.TripName = "" },
		"missing pesel":        func(r *RegistrationRequest) { r.Pesel = "" },
		"overlong last name":   func(r *RegistrationRequest) { r.LastName = strings.Repeat("x", 121) },
		"email without domain": func(r *RegistrationRequest) { r.Email = "anna@" },
		"email without at":     func(r *RegistrationRequest) { r.Email = "anna.example.com" },
		"email with two ats":   func(r *RegistrationRequest) { r.Email = "a@b@c" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			req := validRegistration()
			mutate(&req)
			err := req.Validate()
			require.Error(t, err)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
		})
	}

	t.Run("max length is accepted", func(t *testing.T) {
		req := validRegistration()
		req.LastName = strings.Repeat("x", 120)
		assert.NoError(t, req.Validate())
	})
}

func TestNewClientCopiesFields(t *testing.T) {
	req := validRegistration()
	c := req.NewClient()
	assert.Zero(t, c.ID)
	assert.Equal(t, req.Email, c.Email)
	assert.Equal(t, req.Telephone, c.Telephone)
	assert.Equal(t, req.Pesel, c.Pesel)
}
