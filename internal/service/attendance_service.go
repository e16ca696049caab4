package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/tahfidz-api/internal/models"
	appErrors "github.com/noah-isme/tahfidz-api/pkg/errors"
)

type attendanceRepository interface {
	attendanceLister
	Upsert(ctx context.Context, record *models.AttendanceRecord) (*models.AttendanceRecord, error)
}

// RecordAttendanceRequest marks one learner for one day.
type RecordAttendanceRequest struct {
	LearnerID string  `json:"learner_id" validate:"required"`
	Date      string  `json:"date" validate:"required"`
	Status    string  `json:"status" validate:"required,attendance_status"`
	Note      *string `json:"note"`
}

// AttendanceService coordinates halaqah attendance.
type AttendanceService struct {
	learners  learnerLookup
	repo      attendanceRepository
	progress  progressInvalidator
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAttendanceService constructs the attendance service.
func NewAttendanceService(learners learnerLookup, repo attendanceRepository, progress progressInvalidator, validate *validator.Validate, logger *zap.Logger) *AttendanceService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	svc := &AttendanceService{learners: learners, repo: repo, progress: progress, validator: validate, logger: logger}
	svc.validator.RegisterValidation("attendance_status", func(fl validator.FieldLevel) bool {
		return models.AttendanceStatus(strings.ToUpper(fl.Field().String())).Valid()
	})
	return svc
}

// Record upserts attendance for the learner and day.
func (s *AttendanceService) Record(ctx context.Context, req RecordAttendanceRequest) (*models.AttendanceRecord, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid attendance payload")
	}
	date, err := parseDay("date", req.Date)
	if err != nil {
		return nil, err
	}
	if _, err := loadLearner(ctx, s.learners, req.LearnerID); err != nil {
		return nil, err
	}
	stored, err := s.repo.Upsert(ctx, &models.AttendanceRecord{
		LearnerID: req.LearnerID,
		Date:      date,
		Status:    models.AttendanceStatus(strings.ToUpper(req.Status)),
		Note:      req.Note,
	})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to record attendance")
	}
	if s.progress != nil {
		s.progress.Invalidate(ctx, req.LearnerID)
	}
	return stored, nil
}

// List returns attendance for the learner in the range.
func (s *AttendanceService) List(ctx context.Context, learnerID string, r DateRange) ([]models.AttendanceRecord, error) {
	if _, err := loadLearner(ctx, s.learners, learnerID); err != nil {
		return nil, err
	}
	records, err := s.repo.ListByLearner(ctx, learnerID, r.From, r.To)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list attendance")
	}
	return records, nil
}

// Summary counts attendance per status in the range.
func (s *AttendanceService) Summary(ctx context.Context, learnerID string, r DateRange) (models.AttendanceSummary, error) {
	records, err := s.List(ctx, learnerID, r)
	if err != nil {
		return models.AttendanceSummary{}, err
	}
	return SummarizeAttendance(records), nil
}
