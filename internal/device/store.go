package device

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Record is the persisted snapshot of a registered device. The id is the
// registry-minted device id; the rest mirrors the model at snapshot time.
type Record struct {
	ID        string
	Name      string
	Kind      Kind
	Location  string
	State     State
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Snapshot builds a Record for dev under the given registry id.
func Snapshot(id string, dev Device) *Record {
	now := time.Now().UTC()
	return &Record{
		ID:        id,
		Name:      dev.Name(),
		Kind:      dev.Kind(),
		Location:  dev.Location(),
		State:     dev.State(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Rehydrate rebuilds a live device model from the stored snapshot.
func (r *Record) Rehydrate() (Device, error) {
	var (
		dev Device
		err error
	)
	switch r.Kind {
	case KindLight:
		dev, err = NewLight(r.Name, r.Location)
	case KindShutter:
		dev, err = NewShutter(r.Name, r.Location)
	case KindSensor:
		dev, err = NewSensor(r.Name, r.Location)
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidKind, r.Kind)
	}
	if err != nil {
		return nil, err
	}

	if len(r.State) > 0 {
		if err := dev.ApplyState(r.State); err != nil {
			return nil, fmt.Errorf("restoring state for %q: %w", r.ID, err)
		}
	}
	return dev, nil
}

// Store defines the interface for device snapshot persistence.
// This abstraction allows for different implementations (SQLite, fake)
// and enables unit testing without database dependencies.
type Store interface {
	// GetByID retrieves a snapshot by device id.
	// Returns ErrNotFound if the id does not exist.
	GetByID(ctx context.Context, id string) (*Record, error)

	// List retrieves all snapshots, ordered by name.
	List(ctx context.Context) ([]Record, error)

	// Save inserts a new snapshot.
	// Returns ErrExists if the id is already present.
	Save(ctx context.Context, rec *Record) error

	// UpdateState replaces the stored state for a device.
	// Returns ErrNotFound if the id does not exist.
	UpdateState(ctx context.Context, id string, state State) error

	// Delete removes a snapshot by id.
	// Returns ErrNotFound if the id does not exist.
	Delete(ctx context.Context, id string) error

	// DeleteAll removes every snapshot.
	DeleteAll(ctx context.Context) error
}

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite-backed store.
// The db parameter should be an open SQLite connection with the devices
// table migrated.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// GetByID retrieves a snapshot by device id.
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (*Record, error) {
	query := `
		SELECT id, name, kind, location, state, created_at, updated_at
		FROM devices
		WHERE id = ?`

	rec, err := scanRecord(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("querying device by id: %w", err)
	}
	return rec, nil
}

// List retrieves all snapshots, ordered by name.
func (s *SQLiteStore) List(ctx context.Context) ([]Record, error) {
	query := `
		SELECT id, name, kind, location, state, created_at, updated_at
		FROM devices
		ORDER BY name`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying devices: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning device: %w", err)
		}
		records = append(records, *rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating devices: %w", err)
	}
	return records, nil
}

// Save inserts a new snapshot.
func (s *SQLiteStore) Save(ctx context.Context, rec *Record) error {
	stateJSON, err := json.Marshal(rec.State)
	if err != nil {
		return fmt.Errorf("marshalling state: %w", err)
	}

	now := time.Now().UTC()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = now
	}
	rec.UpdatedAt = now

	query := `
		INSERT INTO devices (id, name, kind, location, state, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err = s.db.ExecContext(ctx, query,
		rec.ID,
		rec.Name,
		string(rec.Kind),
		rec.Location,
		string(stateJSON),
		rec.CreatedAt.Format(time.RFC3339),
		rec.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return ErrExists
		}
		return fmt.Errorf("inserting device: %w", err)
	}
	return nil
}

// UpdateState replaces the stored state for a device.
func (s *SQLiteStore) UpdateState(ctx context.Context, id string, state State) error {
	stateJSON, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshalling state: %w", err)
	}

	query := `
		UPDATE devices
		SET state = ?, updated_at = ?
		WHERE id = ?`

	result, err := s.db.ExecContext(ctx, query,
		string(stateJSON),
		time.Now().UTC().Format(time.RFC3339),
		id,
	)
	if err != nil {
		return fmt.Errorf("updating device state: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a snapshot by id.
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM devices WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting device: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteAll removes every snapshot.
func (s *SQLiteStore) DeleteAll(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM devices"); err != nil {
		return fmt.Errorf("deleting devices: %w", err)
	}
	return nil
}

// rowScanner is an interface that sql.Row and sql.Rows both implement.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanRecord scans a single row into a Record.
func scanRecord(row rowScanner) (*Record, error) {
	var (
		rec       Record
		kind      string
		stateJSON string
		createdAt string
		updatedAt string
	)

	if err := row.Scan(&rec.ID, &rec.Name, &kind, &rec.Location, &stateJSON, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	rec.Kind = Kind(kind)

	if stateJSON != "" {
		if err := json.Unmarshal([]byte(stateJSON), &rec.State); err != nil {
			return nil, fmt.Errorf("unmarshalling state: %w", err)
		}
	}

	// Timestamps are written by us in RFC3339; parse errors mean a
	// corrupted row and should surface.
	var err error
	if rec.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if rec.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}

	return &rec, nil
}

// isUniqueConstraintError checks if an error is a SQLite unique
// constraint violation.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "unique constraint")
}
