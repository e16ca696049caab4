package repository

import (
	"context"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/tahfidz-api/internal/models"
)

func TestAttendanceRepositoryUpsert(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewAttendanceRepository(db)

	day := time.Date(2024, 9, 2, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("INSERT INTO attendance_records").
		WithArgs(anyArgs(6)...).
		WillReturnRows(sqlmock.NewRows([]string{"id", "learner_id", "date", "status", "note", "created_at"}).
			AddRow("a-1", "l-1", day, "S", nil, day))

	stored, err := repo.Upsert(context.Background(), &models.AttendanceRecord{LearnerID: "l-1", Date: day, Status: models.AttendanceStatusSick})
	require.NoError(t, err)
	assert.Equal(t, "a-1", stored.ID)
	assert.Equal(t, models.AttendanceStatusSick, stored.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}
