package models

import "time"

// LearnerProgress is the live dashboard view over a learner's full history.
type LearnerProgress struct {
	LearnerID          string                  `json:"learner_id"`
	HighestPassedStage *CheckpointStage        `json:"highest_passed_stage,omitempty"`
	NextStage          *CheckpointStage        `json:"next_stage,omitempty"`
	PassedByStage      map[CheckpointStage]int `json:"passed_by_stage"`
	MasteredJuz        []int                   `json:"mastered_juz"`

	RecitationCount          int        `json:"recitation_count"`
	RecitationAverageFluency int        `json:"recitation_average_fluency"`
	LastRecitationAt         *time.Time `json:"last_recitation_at,omitempty"`

	Attendance  AttendanceSummary `json:"attendance"`
	GeneratedAt time.Time         `json:"generated_at"`
}
