package service

import (
	"context"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/tahfidz-api/internal/models"
	appErrors "github.com/noah-isme/tahfidz-api/pkg/errors"
)

type checkpointLister interface {
	ListByLearner(ctx context.Context, learnerID string, from, to *time.Time) ([]models.CheckpointExam, error)
}

type recitationLister interface {
	ListByLearner(ctx context.Context, learnerID string, from, to *time.Time) ([]models.RecitationSession, error)
}

type evaluationLister interface {
	ListByLearner(ctx context.Context, learnerID string, from, to *time.Time) ([]models.Evaluation, error)
}

type attendanceLister interface {
	ListByLearner(ctx context.Context, learnerID string, from, to *time.Time) ([]models.AttendanceRecord, error)
}

type progressInvalidator interface {
	Invalidate(ctx context.Context, learnerID string)
}

// ProgressService serves the live learner dashboard over the full record history.
type ProgressService struct {
	learners    learnerLookup
	checkpoints checkpointLister
	recitations recitationLister
	attendance  attendanceLister
	cache       *CacheService
	ttl         time.Duration
	logger      *zap.Logger
	now         func() time.Time
}

// NewProgressService constructs the progress service. A nil cache disables caching.
func NewProgressService(learners learnerLookup, checkpoints checkpointLister, recitations recitationLister, attendance attendanceLister, cache *CacheService, ttl time.Duration, logger *zap.Logger) *ProgressService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProgressService{
		learners:    learners,
		checkpoints: checkpoints,
		recitations: recitations,
		attendance:  attendance,
		cache:       cache,
		ttl:         ttl,
		logger:      logger,
		now:         time.Now,
	}
}

func progressCacheKey(learnerID string) string {
	return "progress:" + learnerID
}

// Get returns the learner's progress and whether it was served from cache.
func (s *ProgressService) Get(ctx context.Context, learnerID string) (*models.LearnerProgress, bool, error) {
	if _, err := loadLearner(ctx, s.learners, learnerID); err != nil {
		return nil, false, err
	}
	key := progressCacheKey(learnerID)
	var cached models.LearnerProgress
	if hit, err := s.cache.Get(ctx, key, &cached); err == nil && hit {
		return &cached, true, nil
	}

	exams, err := s.checkpoints.ListByLearner(ctx, learnerID, nil, nil)
	if err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load checkpoint history")
	}
	sessions, err := s.recitations.ListByLearner(ctx, learnerID, nil, nil)
	if err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load recitations")
	}
	records, err := s.attendance.ListByLearner(ctx, learnerID, nil, nil)
	if err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load attendance")
	}

	progress := buildProgress(learnerID, exams, sessions, records)
	progress.GeneratedAt = s.now().UTC()
	if err := s.cache.Set(ctx, key, progress, s.ttl); err != nil {
		s.logger.Sugar().Warnw("progress cache write failed", "learner_id", learnerID, "error", err)
	}
	return progress, false, nil
}

// Invalidate drops the cached dashboard after any write for the learner.
func (s *ProgressService) Invalidate(ctx context.Context, learnerID string) {
	if s == nil {
		return
	}
	if err := s.cache.Delete(ctx, progressCacheKey(learnerID)); err != nil {
		s.logger.Sugar().Warnw("progress cache invalidation failed", "learner_id", learnerID, "error", err)
	}
}

func buildProgress(learnerID string, exams []models.CheckpointExam, sessions []models.RecitationSession, records []models.AttendanceRecord) *models.LearnerProgress {
	progress := &models.LearnerProgress{
		LearnerID:     learnerID,
		PassedByStage: make(map[models.CheckpointStage]int),
		MasteredJuz:   []int(masteredJuz(exams)),
	}
	for stage := models.FirstStage; stage <= models.FinalStage; stage++ {
		progress.PassedByStage[stage] = 0
	}
	for _, exam := range exams {
		if exam.LearnerID == learnerID && exam.Passed() && exam.Stage.Valid() {
			progress.PassedByStage[exam.Stage]++
		}
	}
	if highest, ok := HighestPassedStage(learnerID, exams); ok {
		progress.HighestPassedStage = &highest
	}
	if next, ok := NextStage(learnerID, exams); ok {
		progress.NextStage = &next
	}

	total := 0
	for i := range sessions {
		session := sessions[i]
		if session.LearnerID != learnerID {
			continue
		}
		progress.RecitationCount++
		total += session.Fluency
		if progress.LastRecitationAt == nil || session.Date.After(*progress.LastRecitationAt) {
			date := session.Date
			progress.LastRecitationAt = &date
		}
	}
	if progress.RecitationCount > 0 {
		progress.RecitationAverageFluency = int(math.Round(float64(total) / float64(progress.RecitationCount)))
	}
	progress.Attendance = SummarizeAttendance(records)
	return progress
}
