package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/tahfidz-api/internal/models"
	appErrors "github.com/noah-isme/tahfidz-api/pkg/errors"
)

type recitationRepository interface {
	recitationLister
	Create(ctx context.Context, session *models.RecitationSession) error
}

// CreateRecitationRequest describes a routine submission. Either fluency or error_count is required;
// a bare error count is converted with one point deducted per slip.
type CreateRecitationRequest struct {
	LearnerID  string  `json:"learner_id" validate:"required"`
	Date       string  `json:"date" validate:"required"`
	Juz        int     `json:"juz" validate:"required,min=1,max=30"`
	VerseRange string  `json:"verse_range" validate:"required"`
	Fluency    *int    `json:"fluency" validate:"omitempty,min=0,max=100"`
	ErrorCount *int    `json:"error_count" validate:"omitempty,min=0"`
	Status     string  `json:"status" validate:"required,recitation_status"`
	Note       *string `json:"note"`
}

// RecitationService records daily and weekly setoran.
type RecitationService struct {
	learners  learnerLookup
	repo      recitationRepository
	progress  progressInvalidator
	validator *validator.Validate
	logger    *zap.Logger
}

// NewRecitationService constructs the recitation service.
func NewRecitationService(learners learnerLookup, repo recitationRepository, progress progressInvalidator, validate *validator.Validate, logger *zap.Logger) *RecitationService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	svc := &RecitationService{learners: learners, repo: repo, progress: progress, validator: validate, logger: logger}
	svc.validator.RegisterValidation("recitation_status", func(fl validator.FieldLevel) bool {
		return models.RecitationStatus(strings.ToUpper(fl.Field().String())).Valid()
	})
	return svc
}

// Create stores a recitation session examined by examinerID.
func (s *RecitationService) Create(ctx context.Context, examinerID string, req CreateRecitationRequest) (*models.RecitationSession, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid recitation payload")
	}
	date, err := parseDay("date", req.Date)
	if err != nil {
		return nil, err
	}
	var fluency int
	switch {
	case req.Fluency != nil:
		fluency = *req.Fluency
	case req.ErrorCount != nil:
		fluency = FluencyFromErrors(100, *req.ErrorCount)
	default:
		return nil, appErrors.Validation("fluency or error_count is required")
	}
	if _, err := loadLearner(ctx, s.learners, req.LearnerID); err != nil {
		return nil, err
	}

	session := &models.RecitationSession{
		LearnerID:  req.LearnerID,
		ExaminerID: examinerID,
		Date:       date,
		Juz:        req.Juz,
		VerseRange: req.VerseRange,
		Fluency:    fluency,
		Status:     models.RecitationStatus(strings.ToUpper(req.Status)),
		Note:       req.Note,
	}
	if err := s.repo.Create(ctx, session); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to record recitation")
	}
	if s.progress != nil {
		s.progress.Invalidate(ctx, session.LearnerID)
	}
	return session, nil
}

// List returns a learner's sessions in the range, newest first.
func (s *RecitationService) List(ctx context.Context, learnerID string, r DateRange) ([]models.RecitationSession, error) {
	if _, err := loadLearner(ctx, s.learners, learnerID); err != nil {
		return nil, err
	}
	sessions, err := s.repo.ListByLearner(ctx, learnerID, r.From, r.To)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list recitations")
	}
	return sessions, nil
}
