package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/tahfidz-api/internal/models"
)

func passedExam(learnerID string, stage models.CheckpointStage) models.CheckpointExam {
	return models.CheckpointExam{LearnerID: learnerID, Stage: stage, Outcome: models.OutcomePassed}
}

func failedExam(learnerID string, stage models.CheckpointStage) models.CheckpointExam {
	return models.CheckpointExam{LearnerID: learnerID, Stage: stage, Outcome: models.OutcomeFailed}
}

func TestCheckEligibilityStageOneAlwaysOpen(t *testing.T) {
	result := CheckEligibility("l-1", models.StageLines, nil)
	assert.True(t, result.Ready)
	assert.Equal(t, models.StageLines, result.Stage)
}

func TestCheckEligibilityInvalidStage(t *testing.T) {
	for _, stage := range []models.CheckpointStage{0, 6, -1} {
		result := CheckEligibility("l-1", stage, []models.CheckpointExam{passedExam("l-1", 5)})
		assert.False(t, result.Ready)
		assert.Equal(t, "invalid stage", result.Message)
	}
}

func TestCheckEligibilityCleanPassChain(t *testing.T) {
	history := []models.CheckpointExam{
		passedExam("l-1", models.StageLines),
		passedExam("l-1", models.StagePage),
		passedExam("l-1", models.StageFivePage),
		passedExam("l-1", models.StageHalfJuz),
	}
	assert.True(t, CheckEligibility("l-1", models.StageFullJuz, history).Ready)

	withoutStageFour := history[:3]
	result := CheckEligibility("l-1", models.StageFullJuz, withoutStageFour)
	assert.False(t, result.Ready)
	assert.Contains(t, result.Message, "stage 4")
}

func TestCheckEligibilityIgnoresFailuresAndOtherLearners(t *testing.T) {
	history := []models.CheckpointExam{
		failedExam("l-1", models.StageLines),
		passedExam("l-2", models.StageLines),
	}
	assert.False(t, CheckEligibility("l-1", models.StagePage, history).Ready)
	assert.True(t, CheckEligibility("l-2", models.StagePage, history).Ready)
}

func TestCheckEligibilityMonotonic(t *testing.T) {
	// Any passed exam at N-1 anywhere in history opens N, regardless of later failures.
	history := []models.CheckpointExam{
		passedExam("l-1", models.StagePage),
		failedExam("l-1", models.StagePage),
		failedExam("l-1", models.StagePage),
	}
	for stage := models.FirstStage; stage <= models.FinalStage; stage++ {
		result := CheckEligibility("l-1", stage, history)
		switch stage {
		case models.StageLines, models.StageFivePage:
			assert.True(t, result.Ready, "stage %d", stage)
		default:
			assert.False(t, result.Ready, "stage %d", stage)
		}
	}
}

func TestNextStage(t *testing.T) {
	next, ok := NextStage("l-1", nil)
	require.True(t, ok)
	assert.Equal(t, models.StageLines, next)

	next, ok = NextStage("l-1", []models.CheckpointExam{passedExam("l-1", 1), passedExam("l-1", 3)})
	require.True(t, ok)
	assert.Equal(t, models.StageHalfJuz, next)

	_, ok = NextStage("l-1", []models.CheckpointExam{passedExam("l-1", models.StageFullJuz)})
	assert.False(t, ok)

	highest, ok := HighestPassedStage("l-1", []models.CheckpointExam{failedExam("l-1", 4)})
	assert.False(t, ok)
	assert.Zero(t, highest)
}
