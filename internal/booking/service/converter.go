package service

import "tripapp/internal/booking/models"

// ToTripSummary maps a joined trip to its external shape. It allocates fresh
// slices and never touches the input.
func ToTripSummary(d models.TripDetails) models.TripSummary {
	countries := make([]models.CountrySummary, 0, len(d.Countries))
	for _, c := range d.Countries {
		countries = append(countries, models.CountrySummary{Name: c.Name})
	}
	clients := make([]models.ClientSummary, 0, len(d.Clients))
	for _, c := range d.Clients {
		clients = append(clients, models.ClientSummary{FirstName: c.FirstName, LastName: c.LastName})
	}
	return models.TripSummary{
		Name:        d.Trip.Name,
		Description: d.Trip.Description,
		DateFrom:    d.Trip.DateFrom,
		DateTo:      d.Trip.DateTo,
		MaxPeople:   d.Trip.MaxPeople,
		Countries:   countries,
		Clients:     clients,
	}
}

func ToTripSummaries(details []models.TripDetails) []models.TripSummary {
	out := make([]models.TripSummary, 0, len(details))
	for _, d := range details {
		out = append(out, ToTripSummary(d))
	}
	return out
}
