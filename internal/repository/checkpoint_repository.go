package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/tahfidz-api/internal/models"
)

const checkpointColumns = `id, learner_id, examiner_id, stage, date, juz, verse_range, total_verses, total_pages, total_lines,
        fluency, error_count, tajweed_note, articulation_note, outcome, needs_review, verses_to_repeat, note, completed_at, created_at`

// CheckpointRepository stores staged checkpoint exams.
type CheckpointRepository struct {
	db *sqlx.DB
}

// NewCheckpointRepository constructs a CheckpointRepository.
func NewCheckpointRepository(db *sqlx.DB) *CheckpointRepository {
	return &CheckpointRepository{db: db}
}

// Create inserts a checkpoint exam.
func (r *CheckpointRepository) Create(ctx context.Context, exam *models.CheckpointExam) error {
	if exam.ID == "" {
		exam.ID = uuid.NewString()
	}
	if exam.CreatedAt.IsZero() {
		exam.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO checkpoint_exams (id, learner_id, examiner_id, stage, date, juz, verse_range, total_verses, total_pages, total_lines,
        fluency, error_count, tajweed_note, articulation_note, outcome, needs_review, verses_to_repeat, note, completed_at, created_at)
        VALUES (:id, :learner_id, :examiner_id, :stage, :date, :juz, :verse_range, :total_verses, :total_pages, :total_lines,
        :fluency, :error_count, :tajweed_note, :articulation_note, :outcome, :needs_review, :verses_to_repeat, :note, :completed_at, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, exam); err != nil {
		return fmt.Errorf("create checkpoint exam: %w", err)
	}
	return nil
}

// FindByID fetches a checkpoint exam by ID.
func (r *CheckpointRepository) FindByID(ctx context.Context, id string) (*models.CheckpointExam, error) {
	query := fmt.Sprintf("SELECT %s FROM checkpoint_exams WHERE id = $1", checkpointColumns)
	var exam models.CheckpointExam
	if err := r.db.GetContext(ctx, &exam, query, id); err != nil {
		return nil, err
	}
	return &exam, nil
}

// ListByLearner returns a learner's exams newest first, optionally bounded by date.
func (r *CheckpointRepository) ListByLearner(ctx context.Context, learnerID string, from, to *time.Time) ([]models.CheckpointExam, error) {
	conditions := []string{"learner_id = $1"}
	args := []interface{}{learnerID}
	conditions, args = appendDateRange(conditions, args, "date", from, to)
	query := fmt.Sprintf("SELECT %s FROM checkpoint_exams WHERE %s ORDER BY date DESC, created_at DESC", checkpointColumns, strings.Join(conditions, " AND "))

	var exams []models.CheckpointExam
	if err := r.db.SelectContext(ctx, &exams, query, args...); err != nil {
		return nil, fmt.Errorf("list checkpoint exams: %w", err)
	}
	return exams, nil
}

// Delete removes a checkpoint exam recorded in error.
func (r *CheckpointRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM checkpoint_exams WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete checkpoint exam: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
