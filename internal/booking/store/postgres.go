package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"golang.org/x/sync/errgroup"

	"tripapp/internal/booking/models"
	"tripapp/internal/booking/service"
	"tripapp/pkg/platform/sentinel"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	peselConstraint       = "clients_pesel_key"
)

const tripColumns = `id, name, description, date_from, date_to, max_people`

// Postgres persists clients and registrations in Postgres. Trips and countries
// are provisioned externally and only read here.
type Postgres struct {
	db *sqlx.DB
}

func NewPostgres(db *sqlx.DB) *Postgres {
	return &Postgres{db: db}
}

// Begin opens a session. Reads go straight to the pool; inserts are staged and
// written in a single transaction at Commit.
func (p *Postgres) Begin(ctx context.Context) (service.Repository, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &pgSession{db: p.db}, nil
}

// ListTripsPage loads one page ordered by start date, newest first. The count
// and the page query run concurrently.
func (p *Postgres) ListTripsPage(ctx context.Context, offset, limit int) ([]models.TripDetails, int, error) {
	var (
		total int
		trips []models.Trip
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := p.db.GetContext(gctx, &total, `SELECT COUNT(*) FROM trips`); err != nil {
			return fmt.Errorf("count trips: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		query := `SELECT ` + tripColumns + ` FROM trips ORDER BY date_from DESC, id LIMIT $1 OFFSET $2`
		if err := p.db.SelectContext(gctx, &trips, query, limit, offset); err != nil {
			return fmt.Errorf("select trips page: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	details, err := p.withDetails(ctx, trips)
	if err != nil {
		return nil, 0, err
	}
	return details, total, nil
}

// ListAllTrips loads every trip ordered by start date, earliest first.
func (p *Postgres) ListAllTrips(ctx context.Context) ([]models.TripDetails, error) {
	var trips []models.Trip
	query := `SELECT ` + tripColumns + ` FROM trips ORDER BY date_from ASC, id`
	if err := p.db.SelectContext(ctx, &trips, query); err != nil {
		return nil, fmt.Errorf("select trips: %w", err)
	}
	return p.withDetails(ctx, trips)
}

type tripCountryRow struct {
	TripID int `db:"trip_id"`
	models.Country
}

type tripClientRow struct {
	TripID int `db:"trip_id"`
	models.Client
}

// withDetails joins countries and registered clients onto trips, preserving order.
func (p *Postgres) withDetails(ctx context.Context, trips []models.Trip) ([]models.TripDetails, error) {
	out := make([]models.TripDetails, len(trips))
	if len(trips) == 0 {
		return out, nil
	}
	ids := make([]int64, len(trips))
	index := make(map[int]int, len(trips))
	for i, t := range trips {
		ids[i] = int64(t.ID)
		index[t.ID] = i
		out[i].Trip = t
	}

	var (
		countries []tripCountryRow
		clients   []tripClientRow
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		query := `SELECT ct.trip_id, c.id, c.name
			FROM country_trips ct JOIN countries c ON c.id = ct.country_id
			WHERE ct.trip_id = ANY($1) ORDER BY c.id`
		if err := p.db.SelectContext(gctx, &countries, query, pq.Array(ids)); err != nil {
			return fmt.Errorf("select trip countries: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		query := `SELECT ct.trip_id, c.id, c.first_name, c.last_name, c.email, c.telephone, c.pesel
			FROM client_trips ct JOIN clients c ON c.id = ct.client_id
			WHERE ct.trip_id = ANY($1) ORDER BY c.id`
		if err := p.db.SelectContext(gctx, &clients, query, pq.Array(ids)); err != nil {
			return fmt.Errorf("select trip clients: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, row := range countries {
		i := index[row.TripID]
		out[i].Countries = append(out[i].Countries, row.Country)
	}
	for _, row := range clients {
		i := index[row.TripID]
		out[i].Clients = append(out[i].Clients, row.Client)
	}
	return out, nil
}

type pgSession struct {
	db            *sqlx.DB
	clients       []models.Client
	registrations []models.Registration
}

func (s *pgSession) FindTripByID(ctx context.Context, tripID int) (*models.Trip, error) {
	var t models.Trip
	err := s.db.GetContext(ctx, &t, `SELECT `+tripColumns+` FROM trips WHERE id = $1`, tripID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("trip %d: %w", tripID, sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("find trip %d: %w", tripID, err)
	}
	return &t, nil
}

func (s *pgSession) ClientExistsWithPesel(ctx context.Context, pesel string) (bool, error) {
	return s.exists(ctx, `SELECT EXISTS (SELECT 1 FROM clients WHERE pesel = $1)`, pesel)
}

func (s *pgSession) IsClientRegisteredForTrip(ctx context.Context, tripID int, pesel string) (bool, error) {
	return s.exists(ctx, `SELECT EXISTS (
		SELECT 1 FROM client_trips ct JOIN clients c ON c.id = ct.client_id
		WHERE ct.trip_id = $1 AND c.pesel = $2)`, tripID, pesel)
}

// InsertClient reserves the id from the clients sequence so the registration can
// reference it before anything is written.
func (s *pgSession) InsertClient(ctx context.Context, client *models.Client) (*models.Client, error) {
	var id int
	if err := s.db.GetContext(ctx, &id, `SELECT nextval(pg_get_serial_sequence('clients', 'id'))`); err != nil {
		return nil, fmt.Errorf("reserve client id: %w", err)
	}
	staged := *client
	staged.ID = id
	s.clients = append(s.clients, staged)
	out := staged
	return &out, nil
}

func (s *pgSession) InsertRegistration(_ context.Context, registration *models.Registration) error {
	s.registrations = append(s.registrations, *registration)
	return nil
}

func (s *pgSession) Commit(ctx context.Context) (affected int, err error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for i := range s.clients {
		res, err := tx.NamedExecContext(ctx, `INSERT INTO clients (id, first_name, last_name, email, telephone, pesel)
			VALUES (:id, :first_name, :last_name, :email, :telephone, :pesel)`, &s.clients[i])
		if err != nil {
			return 0, translate(err, "insert client")
		}
		affected += rowsAffected(res)
	}
	for i := range s.registrations {
		res, err := tx.NamedExecContext(ctx, `INSERT INTO client_trips (client_id, trip_id, registered_at, payment_date)
			VALUES (:client_id, :trip_id, :registered_at, :payment_date)`, &s.registrations[i])
		if err != nil {
			return 0, translate(err, "insert registration")
		}
		affected += rowsAffected(res)
	}
	if err := tx.Commit(); err != nil {
		return 0, translate(err, "commit")
	}
	s.clients = nil
	s.registrations = nil
	return affected, nil
}

func (s *pgSession) ClientExists(ctx context.Context, clientID int) (bool, error) {
	return s.exists(ctx, `SELECT EXISTS (SELECT 1 FROM clients WHERE id = $1)`, clientID)
}

func (s *pgSession) ClientHasRegistrations(ctx context.Context, clientID int) (bool, error) {
	return s.exists(ctx, `SELECT EXISTS (SELECT 1 FROM client_trips WHERE client_id = $1)`, clientID)
}

func (s *pgSession) DeleteClient(ctx context.Context, clientID int) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM clients WHERE id = $1`, clientID)
	if err != nil {
		return false, translate(err, "delete client")
	}
	return rowsAffected(res) > 0, nil
}

func (s *pgSession) exists(ctx context.Context, query string, args ...any) (bool, error) {
	var ok bool
	if err := s.db.GetContext(ctx, &ok, query, args...); err != nil {
		return false, fmt.Errorf("exists query: %w", err)
	}
	return ok, nil
}

// translate maps constraint violations onto sentinel.ErrConflict and keeps the
// driver error reachable for logging. Only the PESEL unique key becomes
// sentinel.ErrDuplicate.
func translate(err error, op string) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch {
		case pqErr.Code == pgUniqueViolation && pqErr.Constraint == peselConstraint:
			return fmt.Errorf("%s: %w", op, sentinel.ErrDuplicate)
		case pqErr.Code == pgUniqueViolation, pqErr.Code == pgForeignKeyViolation:
			return fmt.Errorf("%s: %w: %s", op, sentinel.ErrConflict, pqErr.Constraint)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

func rowsAffected(res sql.Result) int {
	n, err := res.RowsAffected()
	if err != nil {
		return 0
	}
	return int(n)
}
