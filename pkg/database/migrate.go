package database

import (
	"database/sql"
	"fmt"
	"sync"

	"blogdb/pkg/config"
	"blogdb/pkg/database/migrations"
	"blogdb/pkg/logger"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"
)

// goose keeps its dialect, filesystem and logger in package globals.
var gooseMu sync.Mutex

func gooseDialect(driver string) (string, error) {
	switch driver {
	case config.DriverPostgres:
		return "postgres", nil
	case config.DriverSQLite:
		return "sqlite3", nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", driver)
	}
}

// RunMigrations executes a goose command (up, down, status, reset) against
// the migrations embedded for driver.
func RunMigrations(db *sql.DB, driver, command string, log *logger.Logger) error {
	dialect, err := gooseDialect(driver)
	if err != nil {
		return err
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(log)
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}

	switch command {
	case "up":
		err = goose.Up(db, driver)
	case "down":
		err = goose.Down(db, driver)
	case "reset":
		err = goose.Reset(db, driver)
	case "status":
		err = goose.Status(db, driver)
	default:
		return fmt.Errorf("unknown migration command %q", command)
	}
	if err != nil {
		return fmt.Errorf("failed to run migrations (%s): %w", command, err)
	}
	return nil
}

// Migrate applies all pending migrations on an open gorm connection.
func Migrate(db *gorm.DB, driver string, log *logger.Logger) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	return RunMigrations(sqlDB, driver, "up", log)
}
