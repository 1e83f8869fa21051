package database

import (
	"embed"
	"fmt"

	"steward/pkg/logging"
)

//go:embed schema/*.sql
var schemaFS embed.FS

// EnsureSchema applies the embedded schema to the database. Statements are
// written to be idempotent (CREATE TABLE IF NOT EXISTS, ON CONFLICT DO NOTHING)
// so this is safe to run on every startup.
func EnsureSchema(db PostgresConn, logger logging.Logger) error {
	entries, err := schemaFS.ReadDir("schema")
	if err != nil {
		return fmt.Errorf("failed to read embedded schema: %w", err)
	}

	for _, entry := range entries {
		content, err := schemaFS.ReadFile("schema/" + entry.Name())
		if err != nil {
			return fmt.Errorf("failed to read schema file %s: %w", entry.Name(), err)
		}
		if _, err := db.Exec(string(content)); err != nil {
			return fmt.Errorf("failed to apply schema file %s: %w", entry.Name(), err)
		}
		logger.WithField("file", entry.Name()).Debug("Applied schema file")
	}

	return nil
}
