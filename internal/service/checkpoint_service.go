package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/tahfidz-api/internal/models"
	appErrors "github.com/noah-isme/tahfidz-api/pkg/errors"
)

type checkpointRepository interface {
	checkpointLister
	Create(ctx context.Context, exam *models.CheckpointExam) error
	FindByID(ctx context.Context, id string) (*models.CheckpointExam, error)
	Delete(ctx context.Context, id string) error
}

type checkpointObserver interface {
	ObserveCheckpointExam(stage models.CheckpointStage, outcome models.CheckpointOutcome)
}

// RecordCheckpointRequest describes one staged mastery sitting.
type RecordCheckpointRequest struct {
	LearnerID        string  `json:"learner_id" validate:"required"`
	Stage            int     `json:"stage" validate:"required,min=1,max=5"`
	Date             string  `json:"date" validate:"required"`
	Juz              int     `json:"juz" validate:"required,min=1,max=30"`
	VerseRange       string  `json:"verse_range" validate:"required"`
	TotalVerses      int     `json:"total_verses" validate:"min=0"`
	TotalPages       int     `json:"total_pages" validate:"min=0"`
	TotalLines       *int    `json:"total_lines" validate:"omitempty,min=0"`
	Fluency          *int    `json:"fluency" validate:"omitempty,min=0,max=100"`
	ErrorCount       int     `json:"error_count" validate:"min=0"`
	TajweedNote      *string `json:"tajweed_note"`
	ArticulationNote *string `json:"articulation_note"`
	Outcome          string  `json:"outcome" validate:"required,checkpoint_outcome"`
	VersesToRepeat   *string `json:"verses_to_repeat"`
	Note             *string `json:"note"`
}

// CheckpointService records checkpoint exams behind the stage gate.
type CheckpointService struct {
	learners  learnerLookup
	repo      checkpointRepository
	progress  progressInvalidator
	observer  checkpointObserver
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewCheckpointService constructs the checkpoint service.
func NewCheckpointService(learners learnerLookup, repo checkpointRepository, progress progressInvalidator, observer checkpointObserver, validate *validator.Validate, logger *zap.Logger) *CheckpointService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	svc := &CheckpointService{learners: learners, repo: repo, progress: progress, observer: observer, validator: validate, logger: logger, now: time.Now}
	svc.validator.RegisterValidation("checkpoint_outcome", func(fl validator.FieldLevel) bool {
		return models.CheckpointOutcome(strings.ToUpper(fl.Field().String())).Valid()
	})
	return svc
}

// CheckEligibility consults the gate over the learner's full history.
func (s *CheckpointService) CheckEligibility(ctx context.Context, learnerID string, stage models.CheckpointStage) (*Eligibility, error) {
	if !stage.Valid() {
		return nil, appErrors.Validation("stage must be between 1 and 5")
	}
	if _, err := loadLearner(ctx, s.learners, learnerID); err != nil {
		return nil, err
	}
	history, err := s.repo.ListByLearner(ctx, learnerID, nil, nil)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load checkpoint history")
	}
	eligibility := CheckEligibility(learnerID, stage, history)
	return &eligibility, nil
}

// Record stores an exam after the gate admits the stage and a passed verdict clears its threshold.
func (s *CheckpointService) Record(ctx context.Context, examinerID string, req RecordCheckpointRequest) (*models.CheckpointExam, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid checkpoint payload")
	}
	date, err := parseDay("date", req.Date)
	if err != nil {
		return nil, err
	}
	stage := models.CheckpointStage(req.Stage)
	outcome := models.CheckpointOutcome(strings.ToUpper(req.Outcome))
	fluency := FluencyFromErrors(100, req.ErrorCount)
	if req.Fluency != nil {
		fluency = *req.Fluency
	}
	if outcome == models.OutcomePassed && !MeetsThreshold(stage, fluency, req.ErrorCount) {
		threshold, _ := ThresholdFor(stage)
		return nil, appErrors.Validation(fmt.Sprintf("passed outcome at stage %d requires fluency >= %d and at most %d errors",
			stage, threshold.MinFluency, threshold.MaxErrors))
	}

	eligibility, err := s.CheckEligibility(ctx, req.LearnerID, stage)
	if err != nil {
		return nil, err
	}
	if !eligibility.Ready {
		return nil, appErrors.Clone(appErrors.ErrNotEligible, eligibility.Message)
	}

	completedAt := s.now().UTC()
	exam := &models.CheckpointExam{
		LearnerID:        req.LearnerID,
		ExaminerID:       examinerID,
		Stage:            stage,
		Date:             date,
		Juz:              req.Juz,
		VerseRange:       req.VerseRange,
		TotalVerses:      req.TotalVerses,
		TotalPages:       req.TotalPages,
		TotalLines:       req.TotalLines,
		Fluency:          fluency,
		ErrorCount:       req.ErrorCount,
		TajweedNote:      req.TajweedNote,
		ArticulationNote: req.ArticulationNote,
		Outcome:          outcome,
		NeedsReview:      outcome == models.OutcomeFailed && hasText(req.VersesToRepeat),
		VersesToRepeat:   req.VersesToRepeat,
		Note:             req.Note,
		CompletedAt:      &completedAt,
	}
	if err := s.repo.Create(ctx, exam); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to record checkpoint exam")
	}
	if s.observer != nil {
		s.observer.ObserveCheckpointExam(stage, outcome)
	}
	if s.progress != nil {
		s.progress.Invalidate(ctx, exam.LearnerID)
	}
	s.logger.Sugar().Infow("checkpoint exam recorded",
		"learner_id", exam.LearnerID,
		"stage", int(stage),
		"outcome", outcome,
		"fluency", fluency,
	)
	return exam, nil
}

// History returns a learner's exams newest first.
func (s *CheckpointService) History(ctx context.Context, learnerID string, r DateRange) ([]models.CheckpointExam, error) {
	if _, err := loadLearner(ctx, s.learners, learnerID); err != nil {
		return nil, err
	}
	exams, err := s.repo.ListByLearner(ctx, learnerID, r.From, r.To)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list checkpoint exams")
	}
	return exams, nil
}

// Delete removes an exam recorded in error.
func (s *CheckpointService) Delete(ctx context.Context, id string) error {
	exam, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "checkpoint exam not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load checkpoint exam")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "checkpoint exam not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete checkpoint exam")
	}
	if s.progress != nil {
		s.progress.Invalidate(ctx, exam.LearnerID)
	}
	s.logger.Sugar().Warnw("checkpoint exam deleted", "exam_id", id, "learner_id", exam.LearnerID, "stage", int(exam.Stage))
	return nil
}

func hasText(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}
