package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/tahfidz-api/internal/models"
)

func TestFluencyFromErrors(t *testing.T) {
	assert.Equal(t, 95, FluencyFromErrors(100, 5))
	assert.Equal(t, 0, FluencyFromErrors(10, 40))
	assert.Equal(t, 100, FluencyFromErrors(120, 0))
	assert.Equal(t, 100, FluencyFromErrors(100, -3))
}

func TestMeetsThreshold(t *testing.T) {
	assert.True(t, MeetsThreshold(models.StageLines, 70, 3))
	assert.False(t, MeetsThreshold(models.StageLines, 69, 0))
	assert.False(t, MeetsThreshold(models.StageLines, 90, 4))
	assert.True(t, MeetsThreshold(models.StageFullJuz, 80, 20))
	assert.False(t, MeetsThreshold(models.CheckpointStage(6), 100, 0))

	for stage := models.FirstStage; stage <= models.FinalStage; stage++ {
		_, ok := ThresholdFor(stage)
		assert.True(t, ok, "stage %d has a threshold", stage)
	}
}
