package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/tahfidz-api/internal/models"
)

const learnerColumns = "l.id, l.name, l.enrollment_no, l.group_id, l.guardian_id, l.enrolled_at, l.status, l.created_at, l.updated_at"

// LearnerRepository manages persistence for learner records.
type LearnerRepository struct {
	db *sqlx.DB
}

// NewLearnerRepository constructs a LearnerRepository.
func NewLearnerRepository(db *sqlx.DB) *LearnerRepository {
	return &LearnerRepository{db: db}
}

// List returns learners matching the provided filters.
func (r *LearnerRepository) List(ctx context.Context, filter models.LearnerFilter) ([]models.Learner, int, error) {
	base := "FROM learners l"
	args := []interface{}{}
	conditions := []string{"1=1"}

	if filter.GroupID != "" {
		conditions = append(conditions, fmt.Sprintf("l.group_id = $%d", len(args)+1))
		args = append(args, filter.GroupID)
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("l.status = $%d", len(args)+1))
		args = append(args, *filter.Status)
	}
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(LOWER(l.name) LIKE $%d OR LOWER(l.enrollment_no) LIKE $%d)", len(args)+1, len(args)+1))
		args = append(args, "%"+strings.ToLower(filter.Search)+"%")
	}

	base = fmt.Sprintf("%s WHERE %s", base, strings.Join(conditions, " AND "))

	allowedSorts := map[string]string{
		"name":          "l.name",
		"enrollment_no": "l.enrollment_no",
		"enrolled_at":   "l.enrolled_at",
		"created_at":    "l.created_at",
	}
	column, ok := allowedSorts[filter.SortBy]
	if !ok {
		column = "l.name"
	}
	order := strings.ToUpper(filter.SortOrder)
	if order != "ASC" && order != "DESC" {
		order = "ASC"
	}
	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 || size > 100 {
		size = 20
	}
	offset := (page - 1) * size

	query := fmt.Sprintf("SELECT %s %s ORDER BY %s %s LIMIT %d OFFSET %d", learnerColumns, base, column, order, size, offset)

	var learners []models.Learner
	if err := r.db.SelectContext(ctx, &learners, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list learners: %w", err)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) "+base, args...); err != nil {
		return nil, 0, fmt.Errorf("count learners: %w", err)
	}
	return learners, total, nil
}

// ListActive returns every active learner, optionally restricted to one group, in enrollment order.
func (r *LearnerRepository) ListActive(ctx context.Context, groupID string) ([]models.Learner, error) {
	query := fmt.Sprintf("SELECT %s FROM learners l WHERE l.status = $1", learnerColumns)
	args := []interface{}{models.LearnerStatusActive}
	if groupID != "" {
		query += " AND l.group_id = $2"
		args = append(args, groupID)
	}
	query += " ORDER BY l.enrollment_no ASC, l.id ASC"

	var learners []models.Learner
	if err := r.db.SelectContext(ctx, &learners, query, args...); err != nil {
		return nil, fmt.Errorf("list active learners: %w", err)
	}
	return learners, nil
}

// FindByID fetches a learner by ID.
func (r *LearnerRepository) FindByID(ctx context.Context, id string) (*models.Learner, error) {
	query := fmt.Sprintf("SELECT %s FROM learners l WHERE l.id = $1", learnerColumns)
	var learner models.Learner
	if err := r.db.GetContext(ctx, &learner, query, id); err != nil {
		return nil, err
	}
	return &learner, nil
}

// ExistsByEnrollmentNo checks whether an enrollment number is taken.
func (r *LearnerRepository) ExistsByEnrollmentNo(ctx context.Context, enrollmentNo string) (bool, error) {
	var exists int
	err := r.db.GetContext(ctx, &exists, "SELECT 1 FROM learners WHERE enrollment_no = $1 LIMIT 1", enrollmentNo)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("check enrollment no: %w", err)
	}
	return true, nil
}

// Create inserts a new learner record.
func (r *LearnerRepository) Create(ctx context.Context, learner *models.Learner) error {
	if learner.ID == "" {
		learner.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if learner.CreatedAt.IsZero() {
		learner.CreatedAt = now
	}
	learner.UpdatedAt = now
	const query = `INSERT INTO learners (id, name, enrollment_no, group_id, guardian_id, enrolled_at, status, created_at, updated_at)
        VALUES (:id, :name, :enrollment_no, :group_id, :guardian_id, :enrolled_at, :status, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, learner); err != nil {
		return fmt.Errorf("create learner: %w", err)
	}
	return nil
}

// UpdateStatus toggles a learner between active and inactive.
func (r *LearnerRepository) UpdateStatus(ctx context.Context, id string, status models.LearnerStatus) error {
	const query = `UPDATE learners SET status = $2, updated_at = $3 WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id, status, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("update learner status: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
