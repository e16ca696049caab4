package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/tahfidz-api/internal/models"
)

// HalaqahRepository reads study circles and their supervising examiner.
type HalaqahRepository struct {
	db *sqlx.DB
}

// NewHalaqahRepository constructs a HalaqahRepository.
func NewHalaqahRepository(db *sqlx.DB) *HalaqahRepository {
	return &HalaqahRepository{db: db}
}

// FindByID fetches a group with its examiner's display name resolved.
func (r *HalaqahRepository) FindByID(ctx context.Context, id string) (*models.HalaqahGroup, error) {
	const query = `SELECT g.id, g.name, g.examiner_id, u.full_name AS examiner_name
        FROM halaqah_groups g
        LEFT JOIN users u ON u.id = g.examiner_id
        WHERE g.id = $1`
	var group models.HalaqahGroup
	if err := r.db.GetContext(ctx, &group, query, id); err != nil {
		return nil, err
	}
	return &group, nil
}
