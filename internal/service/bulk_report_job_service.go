package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/tahfidz-api/internal/dto"
	"github.com/noah-isme/tahfidz-api/internal/models"
	appErrors "github.com/noah-isme/tahfidz-api/pkg/errors"
	"github.com/noah-isme/tahfidz-api/pkg/jobs"
)

// BulkReportJobType tags queued bulk runs.
const BulkReportJobType = "semester_report_bulk"

type bulkJobEnqueuer interface {
	Enqueue(job jobs.Job) error
}

type bulkReportGenerator interface {
	Bulk(ctx context.Context, actorID string, req dto.BulkSemesterReportRequest) (models.BulkReportResult, error)
}

type bulkJobObserver interface {
	ObserveBulkJob(status models.ReportStatus)
}

// BulkReportJobConfig governs job state retention and retries.
type BulkReportJobConfig struct {
	ResultTTL  time.Duration
	MaxRetries int
}

// bulkJobStore keeps job state in the cache under bulk-report-job:<id>.
type bulkJobStore struct {
	cache *CacheService
	ttl   time.Duration
}

func bulkJobKey(id string) string {
	return "bulk-report-job:" + id
}

func (s bulkJobStore) load(ctx context.Context, id string) (*models.BulkReportJob, error) {
	var job models.BulkReportJob
	hit, err := s.cache.Get(ctx, bulkJobKey(id), &job)
	if err != nil {
		return nil, err
	}
	if !hit {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "bulk report job not found")
	}
	return &job, nil
}

func (s bulkJobStore) save(ctx context.Context, job *models.BulkReportJob) error {
	return s.cache.Set(ctx, bulkJobKey(job.ID), job, s.ttl)
}

func newBulkJobStore(cache *CacheService, cfg BulkReportJobConfig) bulkJobStore {
	if cfg.ResultTTL <= 0 {
		cfg.ResultTTL = 24 * time.Hour
	}
	return bulkJobStore{cache: cache, ttl: cfg.ResultTTL}
}

// BulkReportJobService accepts bulk runs for background processing and reports their state.
type BulkReportJobService struct {
	store  bulkJobStore
	queue  bulkJobEnqueuer
	logger *zap.Logger
	now    func() time.Time
}

// NewBulkReportJobService constructs the job service. Jobs need an enabled cache to hold their state.
func NewBulkReportJobService(cache *CacheService, queue bulkJobEnqueuer, logger *zap.Logger, cfg BulkReportJobConfig) *BulkReportJobService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BulkReportJobService{store: newBulkJobStore(cache, cfg), queue: queue, logger: logger, now: time.Now}
}

// Enqueue validates the period, stores a QUEUED job and hands it to the queue.
func (s *BulkReportJobService) Enqueue(ctx context.Context, actorID string, req dto.BulkSemesterReportRequest) (*dto.BulkReportJobResponse, error) {
	if !s.store.cache.Enabled() || s.queue == nil {
		return nil, appErrors.Clone(appErrors.ErrUnavailable, "background report jobs require the cache")
	}
	semester := normalizeSemester(req.Semester)
	if _, err := ResolvePeriod(req.AcademicYear, semester); err != nil {
		return nil, err
	}
	job := &models.BulkReportJob{
		ID:           uuid.NewString(),
		AcademicYear: req.AcademicYear,
		Semester:     semester,
		GroupID:      req.GroupID,
		Status:       models.ReportStatusQueued,
		CreatedBy:    actorID,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.store.save(ctx, job); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store bulk report job")
	}
	if err := s.queue.Enqueue(jobs.Job{ID: job.ID, Type: BulkReportJobType}); err != nil {
		msg := "failed to enqueue job"
		finished := s.now().UTC()
		job.Status = models.ReportStatusFailed
		job.Error = &msg
		job.FinishedAt = &finished
		_ = s.store.save(ctx, job)
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to enqueue bulk report job")
	}
	s.logger.Sugar().Infow("bulk report job queued", "job_id", job.ID, "academic_year", job.AcademicYear, "semester", job.Semester)
	return &dto.BulkReportJobResponse{ID: job.ID, Status: job.Status}, nil
}

// Status returns the job's current state and, once finished, its tally.
func (s *BulkReportJobService) Status(ctx context.Context, id string) (*models.BulkReportJob, error) {
	if !s.store.cache.Enabled() {
		return nil, appErrors.Clone(appErrors.ErrUnavailable, "background report jobs require the cache")
	}
	job, err := s.store.load(ctx, id)
	if err != nil {
		var appErr *appErrors.Error
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load bulk report job")
	}
	return job, nil
}

// BulkReportWorker bridges queue jobs to the bulk runner.
type BulkReportWorker struct {
	store      bulkJobStore
	reports    bulkReportGenerator
	observer   bulkJobObserver
	logger     *zap.Logger
	maxRetries int
	now        func() time.Time
}

// NewBulkReportWorker constructs a worker.
func NewBulkReportWorker(cache *CacheService, reports bulkReportGenerator, observer bulkJobObserver, logger *zap.Logger, cfg BulkReportJobConfig) *BulkReportWorker {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	return &BulkReportWorker{
		store:      newBulkJobStore(cache, cfg),
		reports:    reports,
		observer:   observer,
		logger:     logger,
		maxRetries: cfg.MaxRetries,
		now:        time.Now,
	}
}

// Handle processes a queue job. Validation failures are permanent; others are retried up to the limit.
func (w *BulkReportWorker) Handle(ctx context.Context, job jobs.Job) error {
	record, err := w.store.load(ctx, job.ID)
	if err != nil {
		return jobs.Permanent(fmt.Errorf("load bulk report job %s: %w", job.ID, err))
	}
	record.Status = models.ReportStatusProcessing
	record.Error = nil
	if err := w.store.save(ctx, record); err != nil {
		return err
	}

	result, err := w.reports.Bulk(ctx, record.CreatedBy, dto.BulkSemesterReportRequest{
		AcademicYear: record.AcademicYear,
		Semester:     string(record.Semester),
		GroupID:      record.GroupID,
	})
	if err != nil {
		msg := err.Error()
		record.Error = &msg
		permanent := isClientError(err)
		if permanent || job.Attempt >= w.maxRetries {
			w.finish(ctx, record, models.ReportStatusFailed)
			if permanent {
				return jobs.Permanent(err)
			}
			return err
		}
		record.Status = models.ReportStatusQueued
		if saveErr := w.store.save(ctx, record); saveErr != nil {
			w.logger.Sugar().Warnw("failed to mark job queued", "job_id", job.ID, "error", saveErr)
		}
		return err
	}

	record.Result = &result
	w.finish(ctx, record, models.ReportStatusFinished)
	return nil
}

func (w *BulkReportWorker) finish(ctx context.Context, record *models.BulkReportJob, status models.ReportStatus) {
	finished := w.now().UTC()
	record.Status = status
	record.FinishedAt = &finished
	if err := w.store.save(ctx, record); err != nil {
		w.logger.Sugar().Warnw("failed to store job result", "job_id", record.ID, "status", status, "error", err)
	}
	if w.observer != nil {
		w.observer.ObserveBulkJob(status)
	}
}

func isClientError(err error) bool {
	var appErr *appErrors.Error
	return errors.As(err, &appErr) && appErr.Status >= http.StatusBadRequest && appErr.Status < http.StatusInternalServerError
}
