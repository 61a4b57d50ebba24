package database

import (
	"context"
	"embed"
	"testing"
	"time"
)

//go:embed testdata/*.sql
var testMigrationsFS embed.FS

// withTestMigrations points the migration runner at the testdata
// fixtures (a split version of the devices schema) for one test.
func withTestMigrations(t *testing.T) {
	t.Helper()
	origFS, origDir := MigrationsFS, MigrationsDir
	t.Cleanup(func() {
		MigrationsFS = origFS
		MigrationsDir = origDir
	})
	MigrationsFS = testMigrationsFS
	MigrationsDir = "testdata"
}

func TestMigrate(t *testing.T) {
	withTestMigrations(t)

	db := openTestDB(t)
	defer db.Close() //nolint:errcheck

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Migrate(ctx); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}

	// The devices table and its kind index come from separate
	// migrations; both existing proves they ran, the index proves
	// they ran in version order.
	var name string
	err := db.QueryRowContext(ctx,
		"SELECT name FROM sqlite_master WHERE type='table' AND name='devices'",
	).Scan(&name)
	if err != nil {
		t.Fatalf("devices table not created: %v", err)
	}
	err = db.QueryRowContext(ctx,
		"SELECT name FROM sqlite_master WHERE type='index' AND name='idx_devices_kind'",
	).Scan(&name)
	if err != nil {
		t.Fatalf("idx_devices_kind not created: %v", err)
	}

	// The migrated schema accepts a device row.
	_, err = db.ExecContext(ctx,
		`INSERT INTO devices (id, name, kind, state, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		"dev-1", "Desk Lamp", "light", `{"on":false}`,
		"2026-03-01T00:00:00Z", "2026-03-01T00:00:00Z",
	)
	if err != nil {
		t.Fatalf("inserting device into migrated schema: %v", err)
	}

	applied, pending, err := db.GetMigrationStatus(ctx)
	if err != nil {
		t.Fatalf("GetMigrationStatus() error = %v", err)
	}
	if len(applied) != 2 {
		t.Errorf("applied migrations = %d, want 2", len(applied))
	}
	if len(pending) != 0 {
		t.Errorf("pending migrations = %d, want 0", len(pending))
	}

	// Startup runs Migrate unconditionally, so re-running must be a no-op.
	if err := db.Migrate(ctx); err != nil {
		t.Fatalf("second Migrate() error = %v", err)
	}
}

func TestMigrate_NoMigrations(t *testing.T) {
	origFS, origDir := MigrationsFS, MigrationsDir
	t.Cleanup(func() {
		MigrationsFS = origFS
		MigrationsDir = origDir
	})
	MigrationsFS = embed.FS{}
	MigrationsDir = "."

	db := openTestDB(t)
	defer db.Close() //nolint:errcheck

	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate() with no migrations error = %v", err)
	}
}

func TestGetMigrationStatus_BeforeMigrate(t *testing.T) {
	withTestMigrations(t)

	db := openTestDB(t)
	defer db.Close() //nolint:errcheck

	ctx := context.Background()
	if err := db.createMigrationsTable(ctx); err != nil {
		t.Fatalf("createMigrationsTable() error = %v", err)
	}

	applied, pending, err := db.GetMigrationStatus(ctx)
	if err != nil {
		t.Fatalf("GetMigrationStatus() error = %v", err)
	}
	if len(applied) != 0 {
		t.Errorf("applied = %d before migrating, want 0", len(applied))
	}
	if len(pending) != 2 {
		t.Errorf("pending = %d before migrating, want 2", len(pending))
	}
}

func TestParseMigrationFilename(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		wantVersion string
		wantName    string
		wantOk      bool
	}{
		{
			name:        "valid migration",
			filename:    "20260301_000000_create_devices.up.sql",
			wantVersion: "20260301_000000",
			wantName:    "create_devices",
			wantOk:      true,
		},
		{
			name:        "multi-word description",
			filename:    "20260315_093000_add_device_indexes.up.sql",
			wantVersion: "20260315_093000",
			wantName:    "add_device_indexes",
			wantOk:      true,
		},
		{
			name:     "down migrations are skipped",
			filename: "20260301_000000_create_devices.down.sql",
			wantOk:   false,
		},
		{
			name:     "missing direction",
			filename: "20260301_000000_create_devices.sql",
			wantOk:   false,
		},
		{
			name:     "not a sql file",
			filename: "README.md",
			wantOk:   false,
		},
		{
			name:     "no description",
			filename: "20260301_000000.up.sql",
			wantOk:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			version, name, ok := parseMigrationFilename(tt.filename)
			if ok != tt.wantOk {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOk)
			}
			if !ok {
				return
			}
			if version != tt.wantVersion {
				t.Errorf("version = %q, want %q", version, tt.wantVersion)
			}
			if name != tt.wantName {
				t.Errorf("name = %q, want %q", name, tt.wantName)
			}
		})
	}
}
