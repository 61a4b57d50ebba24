// Package database opens and migrates the SQLite file backing the
// Domus device store.
//
// The connection is tuned for SQLite's single-writer model: one pooled
// connection, WAL journaling when enabled, and a busy timeout instead
// of surfacing lock errors. Schema changes ship as embedded, forward
// only *.up.sql migrations applied on startup; each runs in its own
// transaction and is recorded in schema_migrations.
//
//	db, err := database.Open(database.Config{Path: cfg.Database.Path})
//	if err != nil {
//		return err
//	}
//	defer db.Close()
//	if err := db.Migrate(ctx); err != nil {
//		return err
//	}
//
// All access goes through parameterised statements; the database file
// is chmodded to owner read/write.
package database
