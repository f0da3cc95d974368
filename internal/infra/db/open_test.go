package db

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"articlehub/internal/resilience/retry"
)

func TestDefaultConnectionConfig(t *testing.T) {
	cfg := DefaultConnectionConfig()

	assert.Equal(t, 25, cfg.MaxOpenConns)
	assert.Equal(t, 10, cfg.MaxIdleConns)
	assert.Equal(t, 1*time.Hour, cfg.ConnMaxLifetime)
	assert.Equal(t, 30*time.Minute, cfg.ConnMaxIdleTime)
}

func TestGetConnectionConfigFromEnv(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want ConnectionConfig
	}{
		{
			name: "defaults",
			env:  map[string]string{},
			want: DefaultConnectionConfig(),
		},
		{
			name: "custom values",
			env: map[string]string{
				"DB_MAX_OPEN_CONNS":     "50",
				"DB_MAX_IDLE_CONNS":     "20",
				"DB_CONN_MAX_LIFETIME":  "2h",
				"DB_CONN_MAX_IDLE_TIME": "10m",
			},
			want: ConnectionConfig{MaxOpenConns: 50, MaxIdleConns: 20, ConnMaxLifetime: 2 * time.Hour, ConnMaxIdleTime: 10 * time.Minute},
		},
		{
			name: "invalid and non-positive ignored",
			env: map[string]string{
				"DB_MAX_OPEN_CONNS":    "lots",
				"DB_MAX_IDLE_CONNS":    "-1",
				"DB_CONN_MAX_LIFETIME": "0s",
			},
			want: DefaultConnectionConfig(),
		},
		{
			name: "idle capped at open",
			env: map[string]string{
				"DB_MAX_OPEN_CONNS": "4",
				"DB_MAX_IDLE_CONNS": "8",
			},
			want: ConnectionConfig{MaxOpenConns: 4, MaxIdleConns: 4, ConnMaxLifetime: time.Hour, ConnMaxIdleTime: 30 * time.Minute},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, k := range []string{"DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS", "DB_CONN_MAX_LIFETIME", "DB_CONN_MAX_IDLE_TIME"} {
				t.Setenv(k, tt.env[k])
			}
			assert.Equal(t, tt.want, getConnectionConfigFromEnv())
		})
	}
}

func TestOpen_MissingDSN(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	db, err := Open(context.Background())
	assert.Nil(t, db)
	assert.ErrorIs(t, err, ErrMissingDSN)
}

func TestWaitForDB_RetriesUntilPingSucceeds(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	mock.ExpectPing().WillReturnError(errors.New("the database system is starting up"))
	mock.ExpectPing()

	rc := retry.DBConfig()
	rc.InitialDelay = time.Millisecond
	rc.MaxDelay = time.Millisecond

	require.NoError(t, waitForDB(context.Background(), db, rc))
	assert.NoError(t, mock.ExpectationsWereMet())
}
