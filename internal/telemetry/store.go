package telemetry

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrServerNotFound is returned when a reading addresses an unknown server.
var ErrServerNotFound = errors.New("server not found")

// DataPoint is one row of the query response: either a raw reading or an
// aggregation bucket keyed by its start time. Channels without a value
// serialize as null.
type DataPoint struct {
	Timestamp   time.Time `json:"timestamp"`
	Temperature *float64  `json:"temperature"`
	Humidity    *float64  `json:"humidity"`
	Voltage     *float64  `json:"voltage"`
	Current     *float64  `json:"current"`
}

// Filter narrows a query. All fields are optional and conjunctive; Channel
// must be validated against Channels before the filter reaches the store.
type Filter struct {
	ServerID string
	Start    *time.Time
	End      *time.Time
	Channel  string
}

// Store manages the sensor_data table.
type Store struct {
	db *sql.DB
}

// NewStore wraps an existing *sql.DB connection pool.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// ---------------------------------------------------------------------------
// Ingest
// ---------------------------------------------------------------------------

// Insert appends one reading and refreshes the owning server's last_seen in
// a single transaction. last_seen gets the server clock, not the reading's
// own timestamp. Returns ErrServerNotFound without side effects when the
// server does not exist.
func (s *Store) Insert(ctx context.Context, r Reading) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var ok bool
	err = tx.QueryRowContext(ctx, queryTouchServer, r.ServerID, time.Now().UTC()).Scan(&ok)
	switch {
	case err == sql.ErrNoRows:
		return ErrServerNotFound
	case err != nil:
		return fmt.Errorf("touch server %s: %w", r.ServerID, err)
	}

	_, err = tx.ExecContext(ctx, queryInsertReading,
		uuid.New().String(),
		r.ServerID,
		r.Timestamp,
		nullFloat(r.Temperature),
		nullFloat(r.Humidity),
		nullFloat(r.Voltage),
		nullFloat(r.Current),
	)
	if err != nil {
		return fmt.Errorf("insert reading: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Query
// ---------------------------------------------------------------------------

// Query returns readings for servers owned by ownerID, narrowed by the
// filter, ordered by timestamp ascending.
func (s *Store) Query(ctx context.Context, ownerID string, f Filter) ([]DataPoint, error) {
	where, args := whereClause(ownerID, f)
	q := querySelectBase + where + "\nORDER BY d.timestamp ASC"

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query readings: %w", err)
	}
	defer rows.Close()

	return scanPoints(rows)
}

// QueryAggregated buckets matching readings with date_trunc at the given
// level and averages each channel per bucket, ordered by bucket start
// ascending. level must be validated against AggregationLevels by the
// caller — it is interpolated into the SQL.
func (s *Store) QueryAggregated(ctx context.Context, ownerID string, f Filter, level string) ([]DataPoint, error) {
	where, args := whereClause(ownerID, f)
	q := fmt.Sprintf(queryAggregateBase, level) + where + "\nGROUP BY 1\nORDER BY 1 ASC"

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query aggregated readings: %w", err)
	}
	defer rows.Close()

	return scanPoints(rows)
}

// whereClause builds the WHERE part shared by both read paths. Ownership
// scoping is always the first condition; every caller value is a bind
// parameter. The channel name is safe to splice because it was checked
// against the Channels enum.
func whereClause(ownerID string, f Filter) (string, []any) {
	conds := []string{"s.owner_id = $1"}
	args := []any{ownerID}

	if f.ServerID != "" {
		args = append(args, f.ServerID)
		conds = append(conds, fmt.Sprintf("d.server_id = $%d", len(args)))
	}
	if f.Start != nil {
		args = append(args, *f.Start)
		conds = append(conds, fmt.Sprintf("d.timestamp >= $%d", len(args)))
	}
	if f.End != nil {
		args = append(args, *f.End)
		conds = append(conds, fmt.Sprintf("d.timestamp <= $%d", len(args)))
	}
	if f.Channel != "" {
		conds = append(conds, fmt.Sprintf("d.%s IS NOT NULL", f.Channel))
	}

	return "\nWHERE " + strings.Join(conds, "\n  AND "), args
}

func scanPoints(rows *sql.Rows) ([]DataPoint, error) {
	var out []DataPoint
	for rows.Next() {
		var (
			p                                       DataPoint
			temperature, humidity, voltage, current sql.NullFloat64
		)
		if err := rows.Scan(&p.Timestamp, &temperature, &humidity, &voltage, &current); err != nil {
			return nil, fmt.Errorf("scan reading: %w", err)
		}
		p.Temperature = floatPtr(temperature)
		p.Humidity = floatPtr(humidity)
		p.Voltage = floatPtr(voltage)
		p.Current = floatPtr(current)
		out = append(out, p)
	}
	return out, rows.Err()
}

func nullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}

func floatPtr(n sql.NullFloat64) *float64 {
	if !n.Valid {
		return nil
	}
	v := n.Float64
	return &v
}
