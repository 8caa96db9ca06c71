package servers

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a server does not exist or is not owned by
// the requesting user.
var ErrNotFound = errors.New("server not found")

// Server is a persisted registry row.
type Server struct {
	ID       string
	Name     string
	OwnerID  string
	LastSeen *time.Time
}

// Store manages the servers table.
type Store struct {
	db *sql.DB
}

// NewStore wraps an existing *sql.DB connection pool.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Create registers a new server for the given owner. The identifier is
// assigned here and last_seen is set to the current clock.
func (s *Store) Create(ctx context.Context, ownerID, name string) (*Server, error) {
	now := time.Now().UTC()
	srv := &Server{
		ID:       uuid.New().String(),
		Name:     name,
		OwnerID:  ownerID,
		LastSeen: &now,
	}

	if _, err := s.db.ExecContext(ctx, queryInsertServer, srv.ID, srv.Name, srv.OwnerID, now); err != nil {
		return nil, fmt.Errorf("insert server: %w", err)
	}
	return srv, nil
}

// GetOwned loads a server scoped to its owner. Returns ErrNotFound both for
// identifiers that do not exist and for servers owned by someone else.
func (s *Store) GetOwned(ctx context.Context, serverID, ownerID string) (*Server, error) {
	var (
		srv      Server
		lastSeen sql.NullTime
	)
	err := s.db.QueryRowContext(ctx, queryServerOwned, serverID, ownerID).Scan(
		&srv.ID, &srv.Name, &srv.OwnerID, &lastSeen,
	)
	switch {
	case err == sql.ErrNoRows:
		return nil, ErrNotFound
	case err != nil:
		return nil, fmt.Errorf("get server %s: %w", serverID, err)
	}
	if lastSeen.Valid {
		srv.LastSeen = &lastSeen.Time
	}
	return &srv, nil
}

// ListByOwner returns every server registered by the owner, ordered by id.
func (s *Store) ListByOwner(ctx context.Context, ownerID string) ([]Server, error) {
	rows, err := s.db.QueryContext(ctx, queryServersByOwner, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list servers: %w", err)
	}
	defer rows.Close()

	var out []Server
	for rows.Next() {
		var (
			srv      Server
			lastSeen sql.NullTime
		)
		if err := rows.Scan(&srv.ID, &srv.Name, &srv.OwnerID, &lastSeen); err != nil {
			return nil, fmt.Errorf("scan server: %w", err)
		}
		if lastSeen.Valid {
			srv.LastSeen = &lastSeen.Time
		}
		out = append(out, srv)
	}
	return out, rows.Err()
}
