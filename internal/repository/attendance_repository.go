package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/tahfidz-api/internal/models"
)

const attendanceColumns = "id, learner_id, date, status, note, created_at"

// AttendanceRepository stores daily halaqah attendance.
type AttendanceRepository struct {
	db *sqlx.DB
}

// NewAttendanceRepository constructs an AttendanceRepository.
func NewAttendanceRepository(db *sqlx.DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

// Upsert records attendance for a learner and day, replacing an earlier entry for the same day.
func (r *AttendanceRepository) Upsert(ctx context.Context, record *models.AttendanceRecord) (*models.AttendanceRecord, error) {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}
	query := `INSERT INTO attendance_records (id, learner_id, date, status, note, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (learner_id, date)
DO UPDATE SET status = EXCLUDED.status, note = EXCLUDED.note
RETURNING id, learner_id, date, status, note, created_at`
	var stored models.AttendanceRecord
	if err := r.db.GetContext(ctx, &stored, query, record.ID, record.LearnerID, record.Date, record.Status, record.Note, record.CreatedAt); err != nil {
		return nil, fmt.Errorf("upsert attendance: %w", err)
	}
	return &stored, nil
}

// ListByLearner returns a learner's attendance oldest first, optionally bounded by date.
func (r *AttendanceRepository) ListByLearner(ctx context.Context, learnerID string, from, to *time.Time) ([]models.AttendanceRecord, error) {
	conditions := []string{"learner_id = $1"}
	args := []interface{}{learnerID}
	conditions, args = appendDateRange(conditions, args, "date", from, to)
	query := fmt.Sprintf("SELECT %s FROM attendance_records WHERE %s ORDER BY date ASC", attendanceColumns, strings.Join(conditions, " AND "))

	var records []models.AttendanceRecord
	if err := r.db.SelectContext(ctx, &records, query, args...); err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	return records, nil
}
