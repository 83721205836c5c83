package main

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"

	"ticketfront/internal/config"
	"ticketfront/internal/logging"
)

func main() {
	dir := flag.String("dir", "migrations", "directory holding the SQL migrations")
	flag.Parse()

	if flag.NArg() != 1 || (flag.Arg(0) != "up" && flag.Arg(0) != "down") {
		fmt.Fprintln(os.Stderr, "Usage: migrate [-dir migrations] up|down")
		os.Exit(2)
	}

	// The server store backend does not matter here; only the database settings do.
	os.Setenv("STORE_BACKEND", config.BackendPostgres)
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal(err, "load config")
	}
	logging.SetGlobalLogger(logging.New(logging.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format}))

	db, err := sql.Open("postgres", cfg.Database.URL)
	if err != nil {
		logging.Fatal(err, "failed to connect to database")
	}
	defer db.Close()

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		logging.Fatal(err, "failed to create postgres driver")
	}

	absPath, err := filepath.Abs(*dir)
	if err != nil {
		logging.Fatal(err, "failed to resolve migrations directory")
	}
	sourceURL := fmt.Sprintf("file://%s", filepath.ToSlash(absPath))

	m, err := migrate.NewWithDatabaseInstance(sourceURL, "postgres", driver)
	if err != nil {
		logging.Fatal(err, "failed to create migrate instance")
	}

	if flag.Arg(0) == "up" {
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			logging.Fatal(err, "failed to run migrations")
		}
		logging.Info("migrations applied successfully")
		return
	}

	if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		logging.Fatal(err, "failed to roll back migrations")
	}
	logging.Info("migrations rolled back successfully")
}
