package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/tahfidz-api/internal/models"
	appErrors "github.com/noah-isme/tahfidz-api/pkg/errors"
)

func newCheckpointServiceForTest() (*CheckpointService, *mockCheckpointRepo, *invalidationRecorder, *checkpointCounter) {
	learners := newMockLearnerRepo(activeLearner("l-1", "g-1"))
	repo := &mockCheckpointRepo{}
	progress := &invalidationRecorder{}
	counter := &checkpointCounter{}
	return NewCheckpointService(learners, repo, progress, counter, nil, nil), repo, progress, counter
}

func checkpointRequest(stage int, outcome string) RecordCheckpointRequest {
	return RecordCheckpointRequest{
		LearnerID:  "l-1",
		Stage:      stage,
		Date:       "2024-09-10",
		Juz:        30,
		VerseRange: "An-Naba 1-10",
		ErrorCount: 1,
		Outcome:    outcome,
	}
}

func TestCheckpointServiceRecordStageOne(t *testing.T) {
	svc, repo, progress, counter := newCheckpointServiceForTest()

	exam, err := svc.Record(context.Background(), "examiner-1", checkpointRequest(1, "passed"))
	require.NoError(t, err)
	assert.Equal(t, models.OutcomePassed, exam.Outcome)
	assert.Equal(t, 99, exam.Fluency)
	assert.Equal(t, "examiner-1", exam.ExaminerID)
	assert.NotNil(t, exam.CompletedAt)
	assert.Len(t, repo.exams, 1)
	assert.Equal(t, []string{"l-1"}, progress.learners)
	assert.Equal(t, 1, counter.counts["1/PASSED"])
}

func TestCheckpointServiceRecordRejectsIneligibleStage(t *testing.T) {
	svc, repo, _, _ := newCheckpointServiceForTest()

	_, err := svc.Record(context.Background(), "examiner-1", checkpointRequest(3, "PASSED"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrNotEligible))
	assert.Contains(t, err.Error(), "requires a passed stage 2 exam")
	assert.Empty(t, repo.exams)
}

func TestCheckpointServiceRecordUnlocksNextStage(t *testing.T) {
	svc, _, _, _ := newCheckpointServiceForTest()
	ctx := context.Background()

	_, err := svc.Record(ctx, "examiner-1", checkpointRequest(1, "FAILED"))
	require.NoError(t, err)
	eligibility, err := svc.CheckEligibility(ctx, "l-1", models.StagePage)
	require.NoError(t, err)
	assert.False(t, eligibility.Ready)

	_, err = svc.Record(ctx, "examiner-1", checkpointRequest(1, "PASSED"))
	require.NoError(t, err)
	eligibility, err = svc.CheckEligibility(ctx, "l-1", models.StagePage)
	require.NoError(t, err)
	assert.True(t, eligibility.Ready)

	_, err = svc.Record(ctx, "examiner-1", checkpointRequest(2, "PASSED"))
	require.NoError(t, err)
}

func TestCheckpointServicePassedMustMeetThreshold(t *testing.T) {
	svc, repo, _, _ := newCheckpointServiceForTest()

	req := checkpointRequest(1, "PASSED")
	req.Fluency = intPtr(65)
	_, err := svc.Record(context.Background(), "examiner-1", req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrValidation))

	req = checkpointRequest(1, "PASSED")
	req.ErrorCount = 4
	_, err = svc.Record(context.Background(), "examiner-1", req)
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
	assert.Empty(t, repo.exams)
}

func TestCheckpointServiceFailedWithRepeatNeedsReview(t *testing.T) {
	svc, _, _, _ := newCheckpointServiceForTest()

	req := checkpointRequest(1, "FAILED")
	req.ErrorCount = 9
	verses := "An-Naba 5-7"
	req.VersesToRepeat = &verses
	exam, err := svc.Record(context.Background(), "examiner-1", req)
	require.NoError(t, err)
	assert.True(t, exam.NeedsReview)
	assert.Equal(t, 91, exam.Fluency)
}

func TestCheckpointServiceRejectsBadPayload(t *testing.T) {
	svc, _, _, _ := newCheckpointServiceForTest()

	req := checkpointRequest(6, "PASSED")
	_, err := svc.Record(context.Background(), "examiner-1", req)
	assert.True(t, errors.Is(err, appErrors.ErrValidation))

	req = checkpointRequest(1, "MAYBE")
	_, err = svc.Record(context.Background(), "examiner-1", req)
	assert.True(t, errors.Is(err, appErrors.ErrValidation))

	req = checkpointRequest(1, "PASSED")
	req.Date = "10/09/2024"
	_, err = svc.Record(context.Background(), "examiner-1", req)
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
}

func TestCheckpointServiceUnknownLearner(t *testing.T) {
	svc, _, _, _ := newCheckpointServiceForTest()

	_, err := svc.CheckEligibility(context.Background(), "ghost", models.StageLines)
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))

	_, err = svc.CheckEligibility(context.Background(), "l-1", models.CheckpointStage(0))
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
}

func TestCheckpointServiceDelete(t *testing.T) {
	svc, repo, progress, _ := newCheckpointServiceForTest()
	ctx := context.Background()

	exam, err := svc.Record(ctx, "examiner-1", checkpointRequest(1, "PASSED"))
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, exam.ID))
	assert.Empty(t, repo.exams)
	assert.Equal(t, []string{"l-1", "l-1"}, progress.learners)

	err = svc.Delete(ctx, exam.ID)
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))
}
