package service

import "github.com/noah-isme/tahfidz-api/internal/models"

// StageThreshold is the minimum bar a sitting must clear to be marked passed.
type StageThreshold struct {
	MinFluency int `json:"min_fluency"`
	MaxErrors  int `json:"max_errors"`
}

// Longer stages tolerate more slips but demand steadier fluency.
var stageThresholds = map[models.CheckpointStage]StageThreshold{
	models.StageLines:    {MinFluency: 70, MaxErrors: 3},
	models.StagePage:     {MinFluency: 70, MaxErrors: 5},
	models.StageFivePage: {MinFluency: 75, MaxErrors: 8},
	models.StageHalfJuz:  {MinFluency: 75, MaxErrors: 12},
	models.StageFullJuz:  {MinFluency: 80, MaxErrors: 20},
}

// FluencyFromErrors deducts one point per error from base, clamped to 0..100.
func FluencyFromErrors(base, errorCount int) int {
	return clampScore(base - errorCount)
}

// ThresholdFor returns the pass bar for a stage.
func ThresholdFor(stage models.CheckpointStage) (StageThreshold, bool) {
	t, ok := stageThresholds[stage]
	return t, ok
}

// MeetsThreshold reports whether both the fluency and error bars hold.
func MeetsThreshold(stage models.CheckpointStage, fluency, errorCount int) bool {
	t, ok := ThresholdFor(stage)
	if !ok {
		return false
	}
	return fluency >= t.MinFluency && errorCount <= t.MaxErrors
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
