package db

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v4/pgxpool"
)

const (
	TestPostgresqlURLEnv  = "TEST_POSTGRESQL_URL"
	TestMigrationsPathEnv = "TEST_MIGRATIONS_PATH"

	// relative to the store packages under internal/db
	defaultTestMigrationsPath = "../../../migrations"
)

func CreateTestPool() *pgxpool.Pool {
	connString := os.Getenv(TestPostgresqlURLEnv)
	if connString == "" {
		panic("TEST_POSTGRESQL_URL must be set.")
	}
	migrationsPath := os.Getenv(TestMigrationsPathEnv)
	if migrationsPath == "" {
		migrationsPath = defaultTestMigrationsPath
	}
	if err := Migrate(connString, migrationsPath); err != nil {
		panic(fmt.Sprintf("Could not apply DB migrations %v.", err))
	}

	pool, err := pgxpool.Connect(context.Background(), connString)
	if err != nil {
		panic("Could not connect to the database.")
	}
	return pool
}

func TruncateTables(pool *pgxpool.Pool) {
	_, err := pool.Exec(context.Background(), "TRUNCATE \"user\", confirmation_token, password_reset_token")
	if err != nil {
		panic("Could not truncate DB tables.")
	}
}
