package database

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	dbdriver "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	src "github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func restoreGlobals() {
	pgxpoolNew = pgxpool.New
	sqlOpenDB = sql.Open
	postgresWithInstanceFn = postgres.WithInstance
	iofsNewFn = func(f fs.FS, dir string) (src.Driver, error) { return iofs.New(f, dir) }
	migrateNewWithInstance = func(sourceName string, sourceDriver src.Driver, databaseName string, databaseDriver dbdriver.Driver) (migrateInstance, error) {
		return migrate.NewWithInstance(sourceName, sourceDriver, databaseName, databaseDriver)
	}
}

type fakeMigrator struct {
	upErr   error
	downErr error
}

func (f *fakeMigrator) Up() error   { return f.upErr }
func (f *fakeMigrator) Down() error { return f.downErr }

func stubMigrator(t *testing.T, m migrateInstance) {
	t.Helper()
	sqlOpenDB = func(driverName, dataSourceName string) (*sql.DB, error) {
		require.Equal(t, "pgx", driverName)
		return sql.OpenDB(nil), nil
	}
	postgresWithInstanceFn = func(instance *sql.DB, config *postgres.Config) (dbdriver.Driver, error) {
		return nil, nil
	}
	migrateNewWithInstance = func(sourceName string, sourceDriver src.Driver, databaseName string, databaseDriver dbdriver.Driver) (migrateInstance, error) {
		require.Equal(t, "iofs", sourceName)
		require.Equal(t, "postgres", databaseName)
		return m, nil
	}
}

func TestNewPgxPool(t *testing.T) {
	t.Run("pool error", func(t *testing.T) {
		defer restoreGlobals()
		pgxpoolNew = func(ctx context.Context, connString string) (*pgxpool.Pool, error) {
			return nil, fmt.Errorf("bad dsn")
		}
		_, err := NewPgxPool(context.Background(), "postgres://bad")
		require.ErrorContains(t, err, "bad dsn")
	})

	t.Run("success", func(t *testing.T) {
		defer restoreGlobals()
		pool := &pgxpool.Pool{}
		pgxpoolNew = func(ctx context.Context, connString string) (*pgxpool.Pool, error) {
			require.Equal(t, "postgres://ok", connString)
			return pool, nil
		}
		db, err := NewPgxPool(context.Background(), "postgres://ok")
		require.NoError(t, err)
		require.Equal(t, pool, db)
	})
}

func TestRunMigrations(t *testing.T) {
	t.Run("open error", func(t *testing.T) {
		defer restoreGlobals()
		sqlOpenDB = func(driverName, dataSourceName string) (*sql.DB, error) {
			return nil, fmt.Errorf("open failed")
		}
		require.ErrorContains(t, RunMigrations("postgres://x"), "open failed")
	})

	t.Run("driver error", func(t *testing.T) {
		defer restoreGlobals()
		sqlOpenDB = func(driverName, dataSourceName string) (*sql.DB, error) {
			return sql.OpenDB(nil), nil
		}
		postgresWithInstanceFn = func(instance *sql.DB, config *postgres.Config) (dbdriver.Driver, error) {
			return nil, fmt.Errorf("driver failed")
		}
		require.ErrorContains(t, RunMigrations("postgres://x"), "driver failed")
	})

	t.Run("up error", func(t *testing.T) {
		defer restoreGlobals()
		stubMigrator(t, &fakeMigrator{upErr: fmt.Errorf("up failed")})
		require.ErrorContains(t, RunMigrations("postgres://x"), "up failed")
	})

	t.Run("no change is not an error", func(t *testing.T) {
		defer restoreGlobals()
		stubMigrator(t, &fakeMigrator{upErr: migrate.ErrNoChange})
		require.NoError(t, RunMigrations("postgres://x"))
	})

	t.Run("success", func(t *testing.T) {
		defer restoreGlobals()
		stubMigrator(t, &fakeMigrator{})
		require.NoError(t, RunMigrations("postgres://x"))
	})
}

func TestRollbackAll(t *testing.T) {
	t.Run("down error", func(t *testing.T) {
		defer restoreGlobals()
		stubMigrator(t, &fakeMigrator{downErr: fmt.Errorf("down failed")})
		require.ErrorContains(t, RollbackAll("postgres://x"), "down failed")
	})

	t.Run("no change is not an error", func(t *testing.T) {
		defer restoreGlobals()
		stubMigrator(t, &fakeMigrator{downErr: migrate.ErrNoChange})
		require.NoError(t, RollbackAll("postgres://x"))
	})
}

func TestEmbeddedMigrationsPresent(t *testing.T) {
	entries, err := migrationsFS.ReadDir("migrations")
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	for _, e := range entries {
		require.Regexp(t, `^\d{6}_.+\.(up|down)\.sql$`, e.Name())
	}
}
