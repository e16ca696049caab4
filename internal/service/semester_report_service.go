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

	"github.com/noah-isme/tahfidz-api/internal/dto"
	"github.com/noah-isme/tahfidz-api/internal/models"
	appErrors "github.com/noah-isme/tahfidz-api/pkg/errors"
)

type semesterReportRepository interface {
	Exists(ctx context.Context, key models.ReportKey) (bool, error)
	Create(ctx context.Context, report *models.SemesterReport) error
	GetByID(ctx context.Context, id string) (*models.SemesterReport, error)
	ListByLearner(ctx context.Context, learnerID string) ([]models.SemesterReport, error)
	UpdateNarrative(ctx context.Context, report *models.SemesterReport) error
	MarkPrinted(ctx context.Context, id string, at time.Time) error
	Delete(ctx context.Context, id string) error
}

type learnerRoster interface {
	learnerLookup
	ListActive(ctx context.Context, groupID string) ([]models.Learner, error)
}

type halaqahLookup interface {
	FindByID(ctx context.Context, id string) (*models.HalaqahGroup, error)
}

// SemesterReportServiceParams groups constructor dependencies.
type SemesterReportServiceParams struct {
	Reports     semesterReportRepository
	Learners    learnerRoster
	Groups      halaqahLookup
	Evaluations evaluationLister
	Checkpoints checkpointLister
	Attendance  attendanceLister
	Aggregator  *ReportAggregator
	Locks       *ReportLocks
	Observer    reportOutcomeObserver
	Validator   *validator.Validate
	Logger      *zap.Logger
	Bulk        BulkReportRunnerConfig
}

// SemesterReportService runs single and bulk semester report generation and the report follow-up workflow.
type SemesterReportService struct {
	reports     semesterReportRepository
	learners    learnerRoster
	groups      halaqahLookup
	evaluations evaluationLister
	checkpoints checkpointLister
	attendance  attendanceLister
	aggregator  *ReportAggregator
	locks       *ReportLocks
	runner      *BulkReportRunner
	observer    reportOutcomeObserver
	validator   *validator.Validate
	logger      *zap.Logger
	now         func() time.Time
}

// NewSemesterReportService constructs the service. Single and bulk modes share one lock table.
func NewSemesterReportService(params SemesterReportServiceParams) *SemesterReportService {
	if params.Aggregator == nil {
		params.Aggregator = NewReportAggregator(nil)
	}
	if params.Locks == nil {
		params.Locks = NewReportLocks()
	}
	if params.Validator == nil {
		params.Validator = validator.New()
	}
	if params.Logger == nil {
		params.Logger = zap.NewNop()
	}
	svc := &SemesterReportService{
		reports:     params.Reports,
		learners:    params.Learners,
		groups:      params.Groups,
		evaluations: params.Evaluations,
		checkpoints: params.Checkpoints,
		attendance:  params.Attendance,
		aggregator:  params.Aggregator,
		locks:       params.Locks,
		observer:    params.Observer,
		validator:   params.Validator,
		logger:      params.Logger,
		now:         time.Now,
	}
	svc.runner = NewBulkReportRunner(params.Aggregator, params.Locks, params.Observer, params.Logger, params.Bulk)
	svc.validator.RegisterValidation("semester", func(fl validator.FieldLevel) bool {
		return normalizeSemester(fl.Field().String()).Valid()
	})
	return svc
}

// Generate creates one report. A second request for the same triple fails with DUPLICATE_REPORT.
func (s *SemesterReportService) Generate(ctx context.Context, actorID string, req dto.GenerateSemesterReportRequest) (*models.SemesterReport, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid semester report payload")
	}
	semester := normalizeSemester(req.Semester)
	if _, err := ResolvePeriod(req.AcademicYear, semester); err != nil {
		return nil, err
	}
	learner, err := loadLearner(ctx, s.learners, req.LearnerID)
	if err != nil {
		return nil, err
	}

	report, err := GenerateAndSave(ctx, s.aggregator, s.locks, s.sourceFor(actorID), *learner, req.AcademicYear, semester)
	if err != nil {
		if errors.Is(err, appErrors.ErrDuplicateReport) {
			s.observe(ReportOutcomeSkipped)
			return nil, appErrors.Clone(appErrors.ErrDuplicateReport,
				fmt.Sprintf("semester report for %s %s already exists", req.AcademicYear, semester))
		}
		s.observe(ReportOutcomeFailed)
		var appErr *appErrors.Error
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to generate semester report")
	}
	s.observe(ReportOutcomeCreated)
	s.logger.Sugar().Infow("semester report generated",
		"report_id", report.ID,
		"learner_id", report.LearnerID,
		"academic_year", report.AcademicYear,
		"semester", report.Semester,
	)
	return report, nil
}

// Bulk generates reports for every active learner, optionally within one group, and returns the tally.
func (s *SemesterReportService) Bulk(ctx context.Context, actorID string, req dto.BulkSemesterReportRequest) (models.BulkReportResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.BulkReportResult{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid bulk report payload")
	}
	semester := normalizeSemester(req.Semester)
	if _, err := ResolvePeriod(req.AcademicYear, semester); err != nil {
		return models.BulkReportResult{}, err
	}
	groupID := ""
	if req.GroupID != nil {
		groupID = *req.GroupID
	}
	learners, err := s.learners.ListActive(ctx, groupID)
	if err != nil {
		return models.BulkReportResult{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list active learners")
	}
	return s.runner.Run(ctx, learners, req.AcademicYear, semester, s.sourceFor(actorID))
}

// Get returns a stored report.
func (s *SemesterReportService) Get(ctx context.Context, id string) (*models.SemesterReport, error) {
	report, err := s.reports.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "semester report not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load semester report")
	}
	return report, nil
}

// ListByLearner returns the learner's reports, latest period first.
func (s *SemesterReportService) ListByLearner(ctx context.Context, learnerID string) ([]dto.SemesterReportSummary, error) {
	if _, err := loadLearner(ctx, s.learners, learnerID); err != nil {
		return nil, err
	}
	reports, err := s.reports.ListByLearner(ctx, learnerID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list semester reports")
	}
	summaries := make([]dto.SemesterReportSummary, 0, len(reports))
	for _, r := range reports {
		summaries = append(summaries, dto.NewSemesterReportSummary(r))
	}
	return summaries, nil
}

// UpdateNarrative stores achievements, comment and recommendation. Derived statistics stay frozen.
func (s *SemesterReportService) UpdateNarrative(ctx context.Context, id string, req dto.UpdateReportNarrativeRequest) (*models.SemesterReport, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid report narrative payload")
	}
	report, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Achievements != nil {
		achievements := make(models.StringList, 0, len(*req.Achievements))
		for _, a := range *req.Achievements {
			if trimmed := strings.TrimSpace(a); trimmed != "" {
				achievements = append(achievements, trimmed)
			}
		}
		report.Achievements = achievements
	}
	if req.ExaminerComment != nil {
		report.ExaminerComment = strings.TrimSpace(*req.ExaminerComment)
	}
	if req.Recommendation != nil {
		report.Recommendation = strings.TrimSpace(*req.Recommendation)
	}
	if err := s.reports.UpdateNarrative(ctx, report); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "semester report not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update semester report")
	}
	return report, nil
}

// MarkPrinted stamps the print time; every call re-stamps.
func (s *SemesterReportService) MarkPrinted(ctx context.Context, id string) (*models.SemesterReport, error) {
	report, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	at := s.now().UTC()
	if err := s.reports.MarkPrinted(ctx, id, at); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "semester report not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to mark semester report printed")
	}
	report.PrintedAt = &at
	return report, nil
}

// Delete removes a report, freeing its triple for regeneration.
func (s *SemesterReportService) Delete(ctx context.Context, id string) error {
	report, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	unlock := s.locks.Lock(models.ReportKey{LearnerID: report.LearnerID, AcademicYear: report.AcademicYear, Semester: report.Semester})
	defer unlock()
	if err := s.reports.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "semester report not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete semester report")
	}
	s.logger.Sugar().Warnw("semester report deleted", "report_id", id, "learner_id", report.LearnerID)
	return nil
}

func (s *SemesterReportService) observe(outcome string) {
	if s.observer != nil {
		s.observer.ObserveSemesterReport(outcome)
	}
}

func (s *SemesterReportService) sourceFor(actorID string) ReportDataSource {
	return &reportSource{svc: s, actorID: actorID}
}

// reportSource binds the repositories to one acting user for a generation call.
type reportSource struct {
	svc     *SemesterReportService
	actorID string
}

func (r *reportSource) ReportExists(ctx context.Context, key models.ReportKey) (bool, error) {
	return r.svc.reports.Exists(ctx, key)
}

func (r *reportSource) LoadReportInput(ctx context.Context, learner models.Learner, academicYear string, semester models.Semester) (*ReportInput, error) {
	window, err := ResolvePeriod(academicYear, semester)
	if err != nil {
		return nil, err
	}
	from, to := window.Start, window.End

	evaluations, err := r.svc.evaluations.ListByLearner(ctx, learner.ID, &from, &to)
	if err != nil {
		return nil, fmt.Errorf("list evaluations: %w", err)
	}
	exams, err := r.svc.checkpoints.ListByLearner(ctx, learner.ID, &from, &to)
	if err != nil {
		return nil, fmt.Errorf("list checkpoint exams: %w", err)
	}
	attendance, err := r.svc.attendance.ListByLearner(ctx, learner.ID, &from, &to)
	if err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}

	input := &ReportInput{
		Learner:         &learner,
		AcademicYear:    academicYear,
		Semester:        semester,
		Evaluations:     evaluations,
		CheckpointExams: exams,
		Attendance:      attendance,
		CreatedBy:       r.actorID,
	}
	if learner.GroupID != "" && r.svc.groups != nil {
		group, err := r.svc.groups.FindByID(ctx, learner.GroupID)
		switch {
		case err == nil:
			input.GroupName = group.Name
			if group.ExaminerName != nil {
				input.ExaminerName = *group.ExaminerName
			}
		case errors.Is(err, sql.ErrNoRows):
		default:
			return nil, fmt.Errorf("load halaqah group: %w", err)
		}
	}
	return input, nil
}

func (r *reportSource) SaveReport(ctx context.Context, report *models.SemesterReport) error {
	return r.svc.reports.Create(ctx, report)
}

func normalizeSemester(raw string) models.Semester {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "ODD", "GANJIL", "1":
		return models.SemesterOdd
	case "EVEN", "GENAP", "2":
		return models.SemesterEven
	default:
		return models.Semester(strings.ToUpper(raw))
	}
}
