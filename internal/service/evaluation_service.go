package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/tahfidz-api/internal/models"
	appErrors "github.com/noah-isme/tahfidz-api/pkg/errors"
)

type evaluationRepository interface {
	evaluationLister
	Create(ctx context.Context, evaluation *models.Evaluation) error
}

// CreateEvaluationRequest describes a scored evaluation with free-text notes.
type CreateEvaluationRequest struct {
	LearnerID         string  `json:"learner_id" validate:"required"`
	Date              string  `json:"date" validate:"required"`
	TajweedScore      int     `json:"tajweed_score" validate:"min=0,max=100"`
	ArticulationScore int     `json:"articulation_score" validate:"min=0,max=100"`
	FluencyScore      int     `json:"fluency_score" validate:"min=0,max=100"`
	TajweedNote       *string `json:"tajweed_note"`
	ArticulationNote  *string `json:"articulation_note"`
}

// EvaluationService records tajweed and makhraj evaluations.
type EvaluationService struct {
	learners  learnerLookup
	repo      evaluationRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewEvaluationService constructs the evaluation service.
func NewEvaluationService(learners learnerLookup, repo evaluationRepository, validate *validator.Validate, logger *zap.Logger) *EvaluationService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EvaluationService{learners: learners, repo: repo, validator: validate, logger: logger}
}

// Create stores an evaluation made by examinerID.
func (s *EvaluationService) Create(ctx context.Context, examinerID string, req CreateEvaluationRequest) (*models.Evaluation, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid evaluation payload")
	}
	date, err := parseDay("date", req.Date)
	if err != nil {
		return nil, err
	}
	if _, err := loadLearner(ctx, s.learners, req.LearnerID); err != nil {
		return nil, err
	}
	evaluation := &models.Evaluation{
		LearnerID:         req.LearnerID,
		ExaminerID:        examinerID,
		Date:              date,
		TajweedScore:      req.TajweedScore,
		ArticulationScore: req.ArticulationScore,
		FluencyScore:      req.FluencyScore,
		TajweedNote:       req.TajweedNote,
		ArticulationNote:  req.ArticulationNote,
	}
	if err := s.repo.Create(ctx, evaluation); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to record evaluation")
	}
	return evaluation, nil
}

// List returns a learner's evaluations in the range.
func (s *EvaluationService) List(ctx context.Context, learnerID string, r DateRange) ([]models.Evaluation, error) {
	if _, err := loadLearner(ctx, s.learners, learnerID); err != nil {
		return nil, err
	}
	evaluations, err := s.repo.ListByLearner(ctx, learnerID, r.From, r.To)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list evaluations")
	}
	return evaluations, nil
}
