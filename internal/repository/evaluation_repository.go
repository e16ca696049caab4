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

const evaluationColumns = "id, learner_id, examiner_id, date, tajweed_score, articulation_score, fluency_score, tajweed_note, articulation_note, created_at"

// EvaluationRepository stores examiner evaluations.
type EvaluationRepository struct {
	db *sqlx.DB
}

// NewEvaluationRepository constructs an EvaluationRepository.
func NewEvaluationRepository(db *sqlx.DB) *EvaluationRepository {
	return &EvaluationRepository{db: db}
}

// Create inserts an evaluation.
func (r *EvaluationRepository) Create(ctx context.Context, evaluation *models.Evaluation) error {
	if evaluation.ID == "" {
		evaluation.ID = uuid.NewString()
	}
	if evaluation.CreatedAt.IsZero() {
		evaluation.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO evaluations (id, learner_id, examiner_id, date, tajweed_score, articulation_score, fluency_score, tajweed_note, articulation_note, created_at)
        VALUES (:id, :learner_id, :examiner_id, :date, :tajweed_score, :articulation_score, :fluency_score, :tajweed_note, :articulation_note, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, evaluation); err != nil {
		return fmt.Errorf("create evaluation: %w", err)
	}
	return nil
}

// ListByLearner returns a learner's evaluations oldest first, optionally bounded by date.
func (r *EvaluationRepository) ListByLearner(ctx context.Context, learnerID string, from, to *time.Time) ([]models.Evaluation, error) {
	conditions := []string{"learner_id = $1"}
	args := []interface{}{learnerID}
	conditions, args = appendDateRange(conditions, args, "date", from, to)
	query := fmt.Sprintf("SELECT %s FROM evaluations WHERE %s ORDER BY date ASC, created_at ASC", evaluationColumns, strings.Join(conditions, " AND "))

	var evaluations []models.Evaluation
	if err := r.db.SelectContext(ctx, &evaluations, query, args...); err != nil {
		return nil, fmt.Errorf("list evaluations: %w", err)
	}
	return evaluations, nil
}
