package sqlite

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/GuiaBolso/darwin"
	"github.com/diegoclair/sqlmigrator"
)

//go:embed sql/*.sql
var SqlFiles embed.FS

// Migrate applies the embedded recurring_slots and shifts migrations in order.
func Migrate(db *sql.DB) error {
	migrator := sqlmigrator.New(db, darwin.SqliteDialect{})

	if err := migrator.Migrate(SqlFiles, "sql"); err != nil {
		return fmt.Errorf("failed to migrate shift schema: %w", err)
	}
	return nil
}
