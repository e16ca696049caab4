package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/tahfidz-api/internal/models"
	appErrors "github.com/noah-isme/tahfidz-api/pkg/errors"
)

type learnerRepository interface {
	List(ctx context.Context, filter models.LearnerFilter) ([]models.Learner, int, error)
	FindByID(ctx context.Context, id string) (*models.Learner, error)
	ExistsByEnrollmentNo(ctx context.Context, enrollmentNo string) (bool, error)
	Create(ctx context.Context, learner *models.Learner) error
	UpdateStatus(ctx context.Context, id string, status models.LearnerStatus) error
}

type learnerLookup interface {
	FindByID(ctx context.Context, id string) (*models.Learner, error)
}

// CreateLearnerRequest holds payload for enrolling a learner.
type CreateLearnerRequest struct {
	Name         string    `json:"name" validate:"required"`
	EnrollmentNo string    `json:"enrollment_no" validate:"required"`
	GroupID      string    `json:"group_id" validate:"required"`
	GuardianID   *string   `json:"guardian_id"`
	EnrolledAt   time.Time `json:"enrolled_at" validate:"required"`
}

// LearnerService handles learner use-cases.
type LearnerService struct {
	repo      learnerRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewLearnerService constructs the learner service.
func NewLearnerService(repo learnerRepository, validate *validator.Validate, logger *zap.Logger) *LearnerService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LearnerService{repo: repo, validator: validate, logger: logger}
}

// List returns learners and pagination metadata.
func (s *LearnerService) List(ctx context.Context, filter models.LearnerFilter) ([]models.Learner, *models.Pagination, error) {
	if filter.Status != nil && !filter.Status.Valid() {
		return nil, nil, appErrors.Validation("invalid learner status")
	}
	learners, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list learners")
	}
	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 || size > 100 {
		size = 20
	}
	return learners, &models.Pagination{Page: page, PageSize: size, TotalCount: total}, nil
}

// Get returns one learner.
func (s *LearnerService) Get(ctx context.Context, id string) (*models.Learner, error) {
	return loadLearner(ctx, s.repo, id)
}

// Create enrolls a new, active learner.
func (s *LearnerService) Create(ctx context.Context, req CreateLearnerRequest) (*models.Learner, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid learner payload")
	}
	exists, err := s.repo.ExistsByEnrollmentNo(ctx, req.EnrollmentNo)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to validate enrollment number")
	}
	if exists {
		return nil, appErrors.Clone(appErrors.ErrConflict, "enrollment number already used")
	}
	learner := &models.Learner{
		Name:         req.Name,
		EnrollmentNo: req.EnrollmentNo,
		GroupID:      req.GroupID,
		GuardianID:   req.GuardianID,
		EnrolledAt:   req.EnrolledAt,
		Status:       models.LearnerStatusActive,
	}
	if err := s.repo.Create(ctx, learner); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create learner")
	}
	s.logger.Sugar().Infow("learner enrolled", "learner_id", learner.ID, "group_id", learner.GroupID)
	return learner, nil
}

// SetStatus activates or deactivates a learner. Inactive learners are left out of bulk runs.
func (s *LearnerService) SetStatus(ctx context.Context, id string, status models.LearnerStatus) (*models.Learner, error) {
	if !status.Valid() {
		return nil, appErrors.Validation("invalid learner status")
	}
	learner, err := loadLearner(ctx, s.repo, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update learner status")
	}
	learner.Status = status
	return learner, nil
}

func loadLearner(ctx context.Context, repo learnerLookup, id string) (*models.Learner, error) {
	if id == "" {
		return nil, appErrors.Validation("learner id is required")
	}
	learner, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "learner not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load learner")
	}
	return learner, nil
}
