package store

import (
	"time"

	"tripapp/internal/booking/models"
)

// SeedDemoCatalog fills an empty store with a small catalog relative to now:
// two trips already under way or finished and three upcoming ones, plus one
// client registered for an upcoming trip.
func SeedDemoCatalog(s *InMemory, now time.Time) {
	day := 24 * time.Hour
	portugal := models.Country{ID: 1, Name: "Portugal"}
	spain := models.Country{ID: 2, Name: "Spain"}
	italy := models.Country{ID: 3, Name: "Italy"}
	norway := models.Country{ID: 4, Name: "Norway"}
	poland := models.Country{ID: 5, Name: "Poland"}

	s.AddTrip(models.Trip{
		ID: 1, Name: "Iberian Coast", Description: "Lisbon to Seville by rail",
		DateFrom: now.Add(-30 * day), DateTo: now.Add(-20 * day), MaxPeople: 20,
	}, portugal, spain)
	s.AddTrip(models.Trip{
		ID: 2, Name: "Tatra Weekend", Description: "Hiking above Zakopane",
		DateFrom: now.Add(-1 * day), DateTo: now.Add(2 * day), MaxPeople: 12,
	}, poland)
	s.AddTrip(models.Trip{
		ID: 3, Name: "Tuscan Hills", Description: "Florence, Siena and the Chianti roads",
		DateFrom: now.Add(21 * day), DateTo: now.Add(28 * day), MaxPeople: 16,
	}, italy)
	s.AddTrip(models.Trip{
		ID: 4, Name: "Fjord Cruise", Description: "Bergen to Geiranger",
		DateFrom: now.Add(45 * day), DateTo: now.Add(52 * day), MaxPeople: 30,
	}, norway)
	s.AddTrip(models.Trip{
		ID: 5, Name: "Mediterranean Loop", Description: "Barcelona, Rome and back",
		DateFrom: now.Add(90 * day), DateTo: now.Add(104 * day), MaxPeople: 40,
	}, spain, italy)

	paid := now.Add(-2 * day)
	s.AddRegisteredClient(models.Client{
		FirstName: "Jan", LastName: "Nowak", Email: "jan.nowak@example.com",
		Telephone: "+48 501 234 567", Pesel: "85030412345",
	}, models.Registration{TripID: 3, RegisteredAt: now.Add(-3 * day), PaymentDate: &paid})
}
