package models

import "time"

// RecitationStatus tags how a routine submission went.
type RecitationStatus string

const (
	RecitationStatusFluent  RecitationStatus = "LANCAR"
	RecitationStatusRepeat  RecitationStatus = "ULANG"
	RecitationStatusPending RecitationStatus = "BELUM"
)

// Valid returns true when the status is a supported value.
func (s RecitationStatus) Valid() bool {
	switch s {
	case RecitationStatusFluent, RecitationStatusRepeat, RecitationStatusPending:
		return true
	default:
		return false
	}
}

// RecitationSession is one daily or weekly setoran.
type RecitationSession struct {
	ID         string           `db:"id" json:"id"`
	LearnerID  string           `db:"learner_id" json:"learner_id"`
	ExaminerID string           `db:"examiner_id" json:"examiner_id"`
	Date       time.Time        `db:"date" json:"date"`
	Juz        int              `db:"juz" json:"juz"`
	VerseRange string           `db:"verse_range" json:"verse_range"`
	Fluency    int              `db:"fluency" json:"fluency"`
	Status     RecitationStatus `db:"status" json:"status"`
	Note       *string          `db:"note" json:"note,omitempty"`
	CreatedAt  time.Time        `db:"created_at" json:"created_at"`
}
