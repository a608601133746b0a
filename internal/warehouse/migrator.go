package warehouse

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"

	_ "github.com/aggroot/pokertools/internal/warehouse/migrations"
)

var migrationSetupOnce sync.Once

func runMigrations(db *sql.DB) error {
	var setupErr error
	migrationSetupOnce.Do(func() {
		setupErr = goose.SetDialect("sqlite3")
	})
	if setupErr != nil {
		return fmt.Errorf("setup goose: %w", setupErr)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}
