package db

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withMockDB(t *testing.T) sqlmock.Sqlmock {
	t.Helper()
	mockDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)

	prev := openDB
	openDB = func(name, dsn string) (*sql.DB, error) {
		return mockDB, nil
	}
	t.Cleanup(func() {
		openDB = prev
		mockDB.Close()
	})
	return mock
}

func TestConnectRejectsEmptyURL(t *testing.T) {
	_, err := Connect(context.Background(), "  ", DefaultServerOptions())
	require.Error(t, err)
}

func TestConnectPingsDatabase(t *testing.T) {
	mock := withMockDB(t)
	mock.ExpectPing()

	db, err := Connect(context.Background(), "postgres://example", DefaultServerOptions())
	require.NoError(t, err)
	require.NotNil(t, db)
	assert.Equal(t, 10, db.Stats().MaxOpenConnections)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestConnectReturnsPingFailure(t *testing.T) {
	mock := withMockDB(t)
	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	mock.ExpectClose()

	_, err := Connect(context.Background(), "postgres://example", DefaultServerOptions())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ping database")
}

func TestOptionsFromEnvAppliesOverrides(t *testing.T) {
	t.Setenv("DB_MAX_OPEN_CONNS", "7")
	t.Setenv("DB_MAX_IDLE_CONNS", "3")
	t.Setenv("DB_CONN_MAX_LIFETIME", "20m")
	t.Setenv("DB_CONN_MAX_IDLE_TIME", "45s")
	t.Setenv("DB_PING_TIMEOUT", "1s")

	opts := OptionsFromEnv(DefaultServerOptions())
	assert.Equal(t, 7, opts.MaxOpenConns)
	assert.Equal(t, 3, opts.MaxIdleConns)
	assert.Equal(t, 20*time.Minute, opts.ConnMaxLifetime)
	assert.Equal(t, 45*time.Second, opts.ConnMaxIdleTime)
	assert.Equal(t, time.Second, opts.PingTimeout)
}

func TestOptionsFromEnvIgnoresInvalidValues(t *testing.T) {
	t.Setenv("DB_MAX_OPEN_CONNS", "lots")
	t.Setenv("DB_PING_TIMEOUT", "soon")

	opts := OptionsFromEnv(DefaultMigrateOptions())
	assert.Equal(t, 1, opts.MaxOpenConns)
	assert.Equal(t, 5*time.Second, opts.PingTimeout)
}

func TestMigrationsAreEmbedded(t *testing.T) {
	entries, err := migrationFiles.ReadDir(migrationsDir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Equal(t, []string{"00001_create_resumes.sql", "00002_create_users.sql"}, names)

	body, err := migrationFiles.ReadFile(migrationsDir + "/00001_create_resumes.sql")
	require.NoError(t, err)
	assert.Contains(t, string(body), "UNIQUE (owner_id, version)")
}

func TestMigrateDownNeedsDatabase(t *testing.T) {
	assert.Error(t, MigrateDown(context.Background(), nil))
	assert.Error(t, MigrationStatus(context.Background(), nil))
	assert.NoError(t, RunMigrations(context.Background(), nil))
}
