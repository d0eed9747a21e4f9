package health

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckWithoutDatabase(t *testing.T) {
	st, ok := NewService(nil).Check(context.Background())
	assert.True(t, ok)
	assert.Equal(t, Status{Status: "OK", Message: "Resume Builder API is running", Storage: "memory"}, st)
}

func TestCheckPingsDatabase(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectPing()
	st, ok := NewService(db).Check(context.Background())
	assert.True(t, ok)
	assert.Equal(t, "postgres", st.Storage)

	mock.ExpectPing().WillReturnError(errors.New("down"))
	st, ok = NewService(db).Check(context.Background())
	assert.False(t, ok)
	assert.Equal(t, "DEGRADED", st.Status)
	require.NoError(t, mock.ExpectationsWereMet())
}
