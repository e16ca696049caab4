package service

import (
	"fmt"

	"github.com/noah-isme/tahfidz-api/internal/models"
)

// Eligibility is the gate's answer for one target stage.
type Eligibility struct {
	Stage   models.CheckpointStage `json:"stage"`
	Ready   bool                   `json:"ready"`
	Message string                 `json:"message"`
}

// CheckEligibility decides whether learnerID may sit target given their full exam history.
// Stage 1 is always open; stage N needs at least one passed exam at stage N-1.
// Mastery is never period-scoped. The function is a pure query and never fails.
func CheckEligibility(learnerID string, target models.CheckpointStage, history []models.CheckpointExam) Eligibility {
	if !target.Valid() {
		return Eligibility{Stage: target, Ready: false, Message: "invalid stage"}
	}
	if target == models.FirstStage {
		return Eligibility{Stage: target, Ready: true, Message: "stage 1 is always open"}
	}
	prev := target - 1
	if hasPassed(learnerID, prev, history) {
		return Eligibility{Stage: target, Ready: true, Message: fmt.Sprintf("stage %d passed", prev)}
	}
	return Eligibility{
		Stage:   target,
		Ready:   false,
		Message: fmt.Sprintf("stage %d requires a passed stage %d exam (%s)", target, prev, prev.Label()),
	}
}

// HighestPassedStage returns the furthest stage the learner has passed, if any.
func HighestPassedStage(learnerID string, history []models.CheckpointExam) (models.CheckpointStage, bool) {
	var highest models.CheckpointStage
	for _, exam := range history {
		if exam.LearnerID != learnerID || !exam.Passed() || !exam.Stage.Valid() {
			continue
		}
		if exam.Stage > highest {
			highest = exam.Stage
		}
	}
	return highest, highest != 0
}

// NextStage is the stage after the highest one passed. A learner who passed
// the final stage has no next stage.
func NextStage(learnerID string, history []models.CheckpointExam) (models.CheckpointStage, bool) {
	highest, ok := HighestPassedStage(learnerID, history)
	if !ok {
		return models.FirstStage, true
	}
	if highest == models.FinalStage {
		return 0, false
	}
	return highest + 1, true
}

func hasPassed(learnerID string, stage models.CheckpointStage, history []models.CheckpointExam) bool {
	for _, exam := range history {
		if exam.LearnerID == learnerID && exam.Stage == stage && exam.Passed() {
			return true
		}
	}
	return false
}
