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

const recitationColumns = "id, learner_id, examiner_id, date, juz, verse_range, fluency, status, note, created_at"

// RecitationRepository stores routine recitation submissions.
type RecitationRepository struct {
	db *sqlx.DB
}

// NewRecitationRepository constructs a RecitationRepository.
func NewRecitationRepository(db *sqlx.DB) *RecitationRepository {
	return &RecitationRepository{db: db}
}

// Create inserts a recitation session.
func (r *RecitationRepository) Create(ctx context.Context, session *models.RecitationSession) error {
	if session.ID == "" {
		session.ID = uuid.NewString()
	}
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO recitation_sessions (id, learner_id, examiner_id, date, juz, verse_range, fluency, status, note, created_at)
        VALUES (:id, :learner_id, :examiner_id, :date, :juz, :verse_range, :fluency, :status, :note, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, session); err != nil {
		return fmt.Errorf("create recitation session: %w", err)
	}
	return nil
}

// ListByLearner returns a learner's sessions newest first, optionally bounded by date.
func (r *RecitationRepository) ListByLearner(ctx context.Context, learnerID string, from, to *time.Time) ([]models.RecitationSession, error) {
	conditions := []string{"learner_id = $1"}
	args := []interface{}{learnerID}
	conditions, args = appendDateRange(conditions, args, "date", from, to)
	query := fmt.Sprintf("SELECT %s FROM recitation_sessions WHERE %s ORDER BY date DESC, created_at DESC", recitationColumns, strings.Join(conditions, " AND "))

	var sessions []models.RecitationSession
	if err := r.db.SelectContext(ctx, &sessions, query, args...); err != nil {
		return nil, fmt.Errorf("list recitation sessions: %w", err)
	}
	return sessions, nil
}
