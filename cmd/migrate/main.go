package main

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"blogdb/pkg/config"
	"blogdb/pkg/database"
	"blogdb/pkg/logger"

	_ "github.com/glebarez/go-sqlite"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
)

func main() {
	var (
		dir     = flag.String("dir", "pkg/database/migrations", "root directory with per-driver migration files (used with create command)")
		command = flag.String("command", "up", "migration command (up, down, reset, status, create)")
		name    = flag.String("name", "", "name for new migration (used with create command)")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	appLog := logger.NewWithOptions(logger.Options{Level: cfg.LogLevel, File: cfg.LogFile, Console: true})

	if err := run(cfg, *command, *dir, *name, appLog); err != nil {
		appLog.Error("Migration failed: %v", err)
		os.Exit(1)
	}
}

// run owns the connection so it is closed before main exits.
func run(cfg *config.Config, command, dir, name string, appLog *logger.Logger) error {
	db, err := openDB(cfg)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if command == "create" {
		if name == "" {
			return errors.New("name is required for create command")
		}
		// New files go to the working tree, not the embedded set.
		goose.SetBaseFS(nil)
		target := filepath.Join(dir, cfg.DBDriver)
		if err := goose.Create(db, target, name, "sql"); err != nil {
			return fmt.Errorf("failed to create migration: %w", err)
		}
		appLog.Info("Created migration: %s in %s", name, target)
		return nil
	}

	if err := database.RunMigrations(db, cfg.DBDriver, command, appLog); err != nil {
		return err
	}
	appLog.Info("Migration command %q completed", command)
	return nil
}

func openDB(cfg *config.Config) (*sql.DB, error) {
	switch cfg.DBDriver {
	case config.DriverPostgres:
		return sql.Open("postgres", cfg.PostgresDSN())
	case config.DriverSQLite:
		return sql.Open("sqlite", cfg.SQLitePath+"?_pragma=foreign_keys(1)")
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DBDriver)
	}
}
