package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/tahfidz-api/internal/models"
)

func TestCheckpointRepositoryListByLearnerWithRange(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewCheckpointRepository(db)

	from := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	columns := []string{"id", "learner_id", "examiner_id", "stage", "date", "juz", "verse_range", "total_verses", "total_pages", "total_lines",
		"fluency", "error_count", "tajweed_note", "articulation_note", "outcome", "needs_review", "verses_to_repeat", "note", "completed_at", "created_at"}
	rows := sqlmock.NewRows(columns).
		AddRow("c-1", "l-1", "u-1", 2, from, 30, "An-Naba 1-40", 40, 1, nil, 85, 2, "mad jelas", nil, "PASSED", false, nil, nil, from, from)
	mock.ExpectQuery(regexp.QuoteMeta("FROM checkpoint_exams WHERE learner_id = $1 AND date >= $2 AND date <= $3 ORDER BY date DESC, created_at DESC")).
		WithArgs("l-1", from, to).
		WillReturnRows(rows)

	exams, err := repo.ListByLearner(context.Background(), "l-1", &from, &to)
	require.NoError(t, err)
	require.Len(t, exams, 1)
	assert.Equal(t, models.StagePage, exams[0].Stage)
	assert.True(t, exams[0].Passed())
	require.NotNil(t, exams[0].TajweedNote)
	assert.Equal(t, "mad jelas", *exams[0].TajweedNote)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckpointRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewCheckpointRepository(db)

	mock.ExpectExec("INSERT INTO checkpoint_exams").
		WithArgs(anyArgs(20)...).
		WillReturnResult(sqlmock.NewResult(1, 1))

	exam := &models.CheckpointExam{LearnerID: "l-1", ExaminerID: "u-1", Stage: models.StageLines, Date: time.Now(), Outcome: models.OutcomePassed}
	require.NoError(t, repo.Create(context.Background(), exam))
	assert.NotEmpty(t, exam.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
