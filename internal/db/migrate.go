package db

import (
	"errors"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/samber/oops"
)

// Migrate applies all pending migrations found in migrationsPath.
func Migrate(connString string, migrationsPath string) error {
	m, err := migrate.New("file://"+migrationsPath, connString)
	if err != nil {
		return oops.In("migrate").With("path", migrationsPath).Wrapf(err, "could not connect to DB for applying migrations")
	}
	defer m.Close()

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return oops.In("migrate").With("path", migrationsPath).Wrapf(err, "could not apply DB migrations")
	}
	return nil
}
