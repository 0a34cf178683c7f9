package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/cucumber/godog"
)

// TestContext interface defines the methods needed from the main test context
type TestContext interface {
	POST(path string, body any) error
	GET(path string) error
	DELETE(path string) error
	GetLastResponseStatus() int
	GetLastResponseBody() []byte
}

// RegisterSteps registers trip listing, registration and client deletion steps.
func RegisterSteps(ctx *godog.ScenarioContext, tc TestContext) {
	steps := &bookingSteps{tc: tc}

	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		steps.pesel = ""
		return ctx, nil
	})

	ctx.Step(`^a PESEL nobody has used$`, steps.freshPesel)
	ctx.Step(`^I register that PESEL for trip (\d+) named "([^"]*)"$`, steps.registerForTrip)
	ctx.Step(`^I register PESEL "([^"]*)" for trip (\d+) named "([^"]*)"$`, steps.registerPeselForTrip)
	ctx.Step(`^I request page (\d+) of trips with page size (\d+)$`, steps.requestPage)
	ctx.Step(`^the page should list (\d+) trips$`, steps.pageShouldList)
	ctx.Step(`^I delete client (\d+)$`, steps.deleteClient)
	ctx.Step(`^I ask whether client (\d+) has trips$`, steps.askHasTrips)
}

type bookingSteps struct {
	tc    TestContext
	pesel string
}

type registerClientRequest struct {
	IDTrip      int       `json:"idTrip"`
	TripName    string    `json:"tripName"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email"`
	Telephone   string    `json:"telephone"`
	Pesel       string    `json:"pesel"`
	PaymentDate time.Time `json:"paymentDate"`
}

type tripPage struct {
	PageNum  int               `json:"pageNum"`
	PageSize int               `json:"pageSize"`
	AllPages int               `json:"allPages"`
	Data     []json.RawMessage `json:"data"`
}

func (s *bookingSteps) freshPesel() error {
	s.pesel = fmt.Sprintf("%011d", rand.Int64N(1e11))
	return nil
}

func (s *bookingSteps) registerForTrip(tripID int, name string) error {
	if s.pesel == "" {
		return fmt.Errorf("no PESEL chosen for this scenario")
	}
	return s.registerPeselForTrip(s.pesel, tripID, name)
}

func (s *bookingSteps) registerPeselForTrip(pesel string, tripID int, name string) error {
	return s.tc.POST(fmt.Sprintf("/api/trips/%d/clients", tripID), registerClientRequest{
		IDTrip:      tripID,
		TripName:    name,
		FirstName:   "Ewa",
		LastName:    "Lis",
		Email:       "ewa.lis@example.com",
		Telephone:   "+48 511 222 333",
		Pesel:       pesel,
		PaymentDate: time.Now().UTC(),
	})
}

func (s *bookingSteps) requestPage(page, size int) error {
	return s.tc.GET(fmt.Sprintf("/api/trips?page=%d&pageSize=%d", page, size))
}

func (s *bookingSteps) pageShouldList(n int) error {
	var page tripPage
	if err := json.Unmarshal(s.tc.GetLastResponseBody(), &page); err != nil {
		return fmt.Errorf("decode trip page: %w", err)
	}
	if len(page.Data) != n {
		return fmt.Errorf("expected %d trips, got %d", n, len(page.Data))
	}
	return nil
}

func (s *bookingSteps) deleteClient(id int) error {
	return s.tc.DELETE(fmt.Sprintf("/api/clients/%d", id))
}

func (s *bookingSteps) askHasTrips(id int) error {
	return s.tc.GET(fmt.Sprintf("/api/clients/%d/trips", id))
}
