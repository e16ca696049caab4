package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/noah-isme/tahfidz-api/internal/models"
	appErrors "github.com/noah-isme/tahfidz-api/pkg/errors"
)

// Outcomes reported to the metrics observer.
const (
	ReportOutcomeCreated = "created"
	ReportOutcomeSkipped = "skipped"
	ReportOutcomeFailed  = "failed"
)

// ReportDataSource is the I/O boundary the runner drives for each learner.
type ReportDataSource interface {
	ReportExists(ctx context.Context, key models.ReportKey) (bool, error)
	LoadReportInput(ctx context.Context, learner models.Learner, academicYear string, semester models.Semester) (*ReportInput, error)
	SaveReport(ctx context.Context, report *models.SemesterReport) error
}

type reportOutcomeObserver interface {
	ObserveSemesterReport(outcome string)
}

// BulkReportRunnerConfig tunes bulk generation.
type BulkReportRunnerConfig struct {
	// Concurrency above one generates several learners at once; the default is sequential.
	Concurrency int
}

// BulkReportRunner generates semester reports for many learners with per-learner failure isolation.
type BulkReportRunner struct {
	aggregator *ReportAggregator
	locks      *ReportLocks
	observer   reportOutcomeObserver
	logger     *zap.Logger
	cfg        BulkReportRunnerConfig
}

// NewBulkReportRunner constructs a runner. Share locks with the single-report workflow.
func NewBulkReportRunner(aggregator *ReportAggregator, locks *ReportLocks, observer reportOutcomeObserver, logger *zap.Logger, cfg BulkReportRunnerConfig) *BulkReportRunner {
	if aggregator == nil {
		aggregator = NewReportAggregator(nil)
	}
	if locks == nil {
		locks = NewReportLocks()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 1
	}
	return &BulkReportRunner{aggregator: aggregator, locks: locks, observer: observer, logger: logger, cfg: cfg}
}

type learnerOutcome struct {
	outcome string
	reason  string
}

// Run processes learners in input order. A malformed period fails the whole call up front;
// every other failure is tallied against its learner and the batch carries on.
func (r *BulkReportRunner) Run(ctx context.Context, learners []models.Learner, academicYear string, semester models.Semester, source ReportDataSource) (models.BulkReportResult, error) {
	if _, err := ResolvePeriod(academicYear, semester); err != nil {
		return models.BulkReportResult{}, err
	}

	outcomes := make([]learnerOutcome, len(learners))
	if r.cfg.Concurrency == 1 {
		for i := range learners {
			outcomes[i] = r.runOne(ctx, learners[i], academicYear, semester, source)
		}
	} else {
		var g errgroup.Group
		g.SetLimit(r.cfg.Concurrency)
		for i := range learners {
			i := i
			g.Go(func() error {
				outcomes[i] = r.runOne(ctx, learners[i], academicYear, semester, source)
				return nil
			})
		}
		_ = g.Wait()
	}

	var result models.BulkReportResult
	for i, o := range outcomes {
		switch o.outcome {
		case ReportOutcomeCreated:
			result.SuccessCount++
		case ReportOutcomeSkipped:
			result.SkipCount++
		default:
			result.ErrorCount++
			result.Failures = append(result.Failures, models.BulkReportFailure{LearnerID: learners[i].ID, Reason: o.reason})
		}
		if r.observer != nil {
			r.observer.ObserveSemesterReport(o.outcome)
		}
	}

	r.logger.Sugar().Infow("bulk semester reports finished",
		"academic_year", academicYear,
		"semester", semester,
		"success", result.SuccessCount,
		"skipped", result.SkipCount,
		"failed", result.ErrorCount,
	)
	return result, nil
}

func (r *BulkReportRunner) runOne(ctx context.Context, learner models.Learner, academicYear string, semester models.Semester, source ReportDataSource) (out learnerOutcome) {
	defer func() {
		if rec := recover(); rec != nil {
			out = learnerOutcome{outcome: ReportOutcomeFailed, reason: fmt.Sprintf("panic: %v", rec)}
		}
		if out.outcome == ReportOutcomeFailed {
			r.logger.Sugar().Warnw("semester report failed", "learner_id", learner.ID, "academic_year", academicYear, "semester", semester, "reason", out.reason)
		}
	}()

	if learner.ID == "" {
		return learnerOutcome{outcome: ReportOutcomeFailed, reason: "learner is required"}
	}
	report, err := GenerateAndSave(ctx, r.aggregator, r.locks, source, learner, academicYear, semester)
	switch {
	case err == nil && report != nil:
		return learnerOutcome{outcome: ReportOutcomeCreated}
	case errors.Is(err, appErrors.ErrDuplicateReport):
		return learnerOutcome{outcome: ReportOutcomeSkipped}
	default:
		return learnerOutcome{outcome: ReportOutcomeFailed, reason: failureReason(err)}
	}
}

// GenerateAndSave holds the triple's lock across existence check, aggregation and write.
// It returns the stored report, or ErrDuplicateReport when the triple already has one.
func GenerateAndSave(ctx context.Context, aggregator *ReportAggregator, locks *ReportLocks, source ReportDataSource, learner models.Learner, academicYear string, semester models.Semester) (*models.SemesterReport, error) {
	key := models.ReportKey{LearnerID: learner.ID, AcademicYear: academicYear, Semester: semester}
	unlock := locks.Lock(key)
	defer unlock()

	exists, err := source.ReportExists(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("check existing report: %w", err)
	}
	if exists {
		return nil, appErrors.ErrDuplicateReport
	}
	input, err := source.LoadReportInput(ctx, learner, academicYear, semester)
	if err != nil {
		return nil, fmt.Errorf("load report input: %w", err)
	}
	if input == nil {
		return nil, fmt.Errorf("load report input: no data for learner %s", learner.ID)
	}
	report, err := aggregator.Generate(*input)
	if err != nil {
		return nil, err
	}
	if err := source.SaveReport(ctx, report); err != nil {
		if errors.Is(err, appErrors.ErrDuplicateReport) {
			return nil, err
		}
		return nil, fmt.Errorf("save report: %w", err)
	}
	return report, nil
}

func failureReason(err error) string {
	if err == nil {
		return "report was not created"
	}
	return err.Error()
}
