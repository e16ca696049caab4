package models

import "time"

// Evaluation scores tajweed, makhraj and fluency in one sitting.
type Evaluation struct {
	ID                string    `db:"id" json:"id"`
	LearnerID         string    `db:"learner_id" json:"learner_id"`
	ExaminerID        string    `db:"examiner_id" json:"examiner_id"`
	Date              time.Time `db:"date" json:"date"`
	TajweedScore      int       `db:"tajweed_score" json:"tajweed_score"`
	ArticulationScore int       `db:"articulation_score" json:"articulation_score"`
	FluencyScore      int       `db:"fluency_score" json:"fluency_score"`
	TajweedNote       *string   `db:"tajweed_note" json:"tajweed_note,omitempty"`
	ArticulationNote  *string   `db:"articulation_note" json:"articulation_note,omitempty"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
}
