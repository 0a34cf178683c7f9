package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"tripapp/internal/booking/models"
	"tripapp/internal/booking/service"
	"tripapp/pkg/platform/sentinel"
)

type registrationKey struct {
	clientID int
	tripID   int
}

// InMemory keeps the catalog, clients and registrations in process. Uniqueness
// of PESEL and of (client, trip) is re-checked under the lock at Commit, so two
// racing sessions cannot both succeed.
type InMemory struct {
	mu            sync.RWMutex
	trips         map[int]models.Trip
	countries     map[int]models.Country
	tripCountries map[int][]int
	clients       map[int]models.Client
	registrations map[registrationKey]models.Registration
	nextClientID  int
}

func NewInMemory() *InMemory {
	return &InMemory{
		trips:         make(map[int]models.Trip),
		countries:     make(map[int]models.Country),
		tripCountries: make(map[int][]int),
		clients:       make(map[int]models.Client),
		registrations: make(map[registrationKey]models.Registration),
		nextClientID:  1,
	}
}

// AddTrip places a trip and its countries in the catalog.
func (s *InMemory) AddTrip(trip models.Trip, countries ...models.Country) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trips[trip.ID] = trip
	ids := make([]int, 0, len(countries))
	for _, c := range countries {
		s.countries[c.ID] = c
		ids = append(ids, c.ID)
	}
	s.tripCountries[trip.ID] = ids
}

// AddRegisteredClient stores a client together with its registrations, bypassing
// the workflow. Used for seeding.
func (s *InMemory) AddRegisteredClient(client models.Client, registrations ...models.Registration) models.Client {
	s.mu.Lock()
	defer s.mu.Unlock()
	if client.ID == 0 {
		client.ID = s.nextClientID
	}
	if client.ID >= s.nextClientID {
		s.nextClientID = client.ID + 1
	}
	s.clients[client.ID] = client
	for _, r := range registrations {
		r.ClientID = client.ID
		s.registrations[registrationKey{clientID: client.ID, tripID: r.TripID}] = r
	}
	return client
}

// Begin opens a session whose inserts stay private until Commit.
func (s *InMemory) Begin(ctx context.Context) (service.Repository, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &memorySession{store: s}, nil
}

func (s *InMemory) ListTripsPage(ctx context.Context, offset, limit int) ([]models.TripDetails, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	trips := s.sortedTrips(false)
	total := len(trips)
	start := min(max(offset, 0), total)
	end := min(start+limit, total)

	out := make([]models.TripDetails, 0, end-start)
	for _, t := range trips[start:end] {
		out = append(out, s.detailsLocked(t))
	}
	return out, total, nil
}

func (s *InMemory) ListAllTrips(ctx context.Context) ([]models.TripDetails, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	trips := s.sortedTrips(true)
	out := make([]models.TripDetails, 0, len(trips))
	for _, t := range trips {
		out = append(out, s.detailsLocked(t))
	}
	return out, nil
}

func (s *InMemory) sortedTrips(ascending bool) []models.Trip {
	trips := make([]models.Trip, 0, len(s.trips))
	for _, t := range s.trips {
		trips = append(trips, t)
	}
	sort.Slice(trips, func(i, j int) bool {
		if trips[i].DateFrom.Equal(trips[j].DateFrom) {
			return trips[i].ID < trips[j].ID
		}
		if ascending {
			return trips[i].DateFrom.Before(trips[j].DateFrom)
		}
		return trips[i].DateFrom.After(trips[j].DateFrom)
	})
	return trips
}

func (s *InMemory) detailsLocked(t models.Trip) models.TripDetails {
	d := models.TripDetails{Trip: t}
	for _, id := range s.tripCountries[t.ID] {
		d.Countries = append(d.Countries, s.countries[id])
	}
	for key := range s.registrations {
		if key.tripID == t.ID {
			d.Clients = append(d.Clients, s.clients[key.clientID])
		}
	}
	sort.Slice(d.Clients, func(i, j int) bool { return d.Clients[i].ID < d.Clients[j].ID })
	return d
}

func (s *InMemory) clientByPeselLocked(pesel string) (models.Client, bool) {
	for _, c := range s.clients {
		if c.Pesel == pesel {
			return c, true
		}
	}
	return models.Client{}, false
}

func (s *InMemory) hasRegistrationsLocked(clientID int) bool {
	for key := range s.registrations {
		if key.clientID == clientID {
			return true
		}
	}
	return false
}

// memorySession is the request-scoped Repository over InMemory.
type memorySession struct {
	store         *InMemory
	clients       []models.Client
	registrations []models.Registration
}

func (m *memorySession) FindTripByID(ctx context.Context, tripID int) (*models.Trip, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.store.mu.RLock()
	defer m.store.mu.RUnlock()
	t, ok := m.store.trips[tripID]
	if !ok {
		return nil, fmt.Errorf("trip %d: %w", tripID, sentinel.ErrNotFound)
	}
	return &t, nil
}

func (m *memorySession) ClientExistsWithPesel(ctx context.Context, pesel string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	m.store.mu.RLock()
	defer m.store.mu.RUnlock()
	_, ok := m.store.clientByPeselLocked(pesel)
	return ok, nil
}

func (m *memorySession) IsClientRegisteredForTrip(ctx context.Context, tripID int, pesel string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	m.store.mu.RLock()
	defer m.store.mu.RUnlock()
	c, ok := m.store.clientByPeselLocked(pesel)
	if !ok {
		return false, nil
	}
	_, registered := m.store.registrations[registrationKey{clientID: c.ID, tripID: tripID}]
	return registered, nil
}

// InsertClient reserves an id immediately; reserved ids are never reused even
// if the session is abandoned.
func (m *memorySession) InsertClient(ctx context.Context, client *models.Client) (*models.Client, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.store.mu.Lock()
	staged := *client
	staged.ID = m.store.nextClientID
	m.store.nextClientID++
	m.store.mu.Unlock()

	m.clients = append(m.clients, staged)
	out := staged
	return &out, nil
}

func (m *memorySession) InsertRegistration(ctx context.Context, registration *models.Registration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.registrations = append(m.registrations, *registration)
	return nil
}

func (m *memorySession) Commit(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s := m.store
	s.mu.Lock()
	defer s.mu.Unlock()

	staged := make(map[int]bool, len(m.clients))
	peselsInBatch := make(map[string]bool, len(m.clients))
	for _, c := range m.clients {
		if _, taken := s.clientByPeselLocked(c.Pesel); taken || peselsInBatch[c.Pesel] {
			return 0, fmt.Errorf("pesel %s: %w", c.Pesel, sentinel.ErrDuplicate)
		}
		peselsInBatch[c.Pesel] = true
		staged[c.ID] = true
	}
	keys := make(map[registrationKey]bool, len(m.registrations))
	for _, r := range m.registrations {
		key := registrationKey{clientID: r.ClientID, tripID: r.TripID}
		if _, dup := s.registrations[key]; dup || keys[key] {
			return 0, fmt.Errorf("registration client=%d trip=%d: %w", r.ClientID, r.TripID, sentinel.ErrConflict)
		}
		if _, ok := s.trips[r.TripID]; !ok {
			return 0, fmt.Errorf("registration trip %d: %w", r.TripID, sentinel.ErrConflict)
		}
		if _, ok := s.clients[r.ClientID]; !ok && !staged[r.ClientID] {
			return 0, fmt.Errorf("registration client %d: %w", r.ClientID, sentinel.ErrConflict)
		}
		keys[key] = true
	}

	for _, c := range m.clients {
		s.clients[c.ID] = c
	}
	for _, r := range m.registrations {
		s.registrations[registrationKey{clientID: r.ClientID, tripID: r.TripID}] = r
	}
	affected := len(m.clients) + len(m.registrations)
	m.clients = nil
	m.registrations = nil
	return affected, nil
}

func (m *memorySession) ClientExists(ctx context.Context, clientID int) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	m.store.mu.RLock()
	defer m.store.mu.RUnlock()
	_, ok := m.store.clients[clientID]
	return ok, nil
}

func (m *memorySession) ClientHasRegistrations(ctx context.Context, clientID int) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	m.store.mu.RLock()
	defer m.store.mu.RUnlock()
	return m.store.hasRegistrationsLocked(clientID), nil
}

// DeleteClient executes immediately. A client that still owns registrations is
// refused with sentinel.ErrConflict, mirroring the foreign key in Postgres.
func (m *memorySession) DeleteClient(ctx context.Context, clientID int) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	if _, ok := m.store.clients[clientID]; !ok {
		return false, nil
	}
	if m.store.hasRegistrationsLocked(clientID) {
		return false, fmt.Errorf("client %d: %w", clientID, sentinel.ErrConflict)
	}
	delete(m.store.clients, clientID)
	return true, nil
}
