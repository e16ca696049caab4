package models

import "time"

// CheckpointStage is one of the five ordered tasmi' marhalah milestones.
type CheckpointStage int

const (
	StageLines    CheckpointStage = 1 // 3-5 lines
	StagePage     CheckpointStage = 2 // one page
	StageFivePage CheckpointStage = 3 // five pages
	StageHalfJuz  CheckpointStage = 4
	StageFullJuz  CheckpointStage = 5
)

// FirstStage and FinalStage bound the progression.
const (
	FirstStage = StageLines
	FinalStage = StageFullJuz
)

// Valid returns true for stages 1 through 5.
func (s CheckpointStage) Valid() bool {
	return s >= FirstStage && s <= FinalStage
}

// Label returns the human description of the stage.
func (s CheckpointStage) Label() string {
	switch s {
	case StageLines:
		return "3-5 lines"
	case StagePage:
		return "one page"
	case StageFivePage:
		return "five pages"
	case StageHalfJuz:
		return "half juz"
	case StageFullJuz:
		return "full juz"
	default:
		return "unknown"
	}
}

// CheckpointOutcome is the examiner's verdict.
type CheckpointOutcome string

const (
	OutcomePassed CheckpointOutcome = "PASSED"
	OutcomeFailed CheckpointOutcome = "FAILED"
)

// Valid returns true when the outcome is a supported value.
func (o CheckpointOutcome) Valid() bool {
	return o == OutcomePassed || o == OutcomeFailed
}

// CheckpointExam is an append-only record of one staged mastery sitting.
type CheckpointExam struct {
	ID               string            `db:"id" json:"id"`
	LearnerID        string            `db:"learner_id" json:"learner_id"`
	ExaminerID       string            `db:"examiner_id" json:"examiner_id"`
	Stage            CheckpointStage   `db:"stage" json:"stage"`
	Date             time.Time         `db:"date" json:"date"`
	Juz              int               `db:"juz" json:"juz"`
	VerseRange       string            `db:"verse_range" json:"verse_range"`
	TotalVerses      int               `db:"total_verses" json:"total_verses"`
	TotalPages       int               `db:"total_pages" json:"total_pages"`
	TotalLines       *int              `db:"total_lines" json:"total_lines,omitempty"`
	Fluency          int               `db:"fluency" json:"fluency"`
	ErrorCount       int               `db:"error_count" json:"error_count"`
	TajweedNote      *string           `db:"tajweed_note" json:"tajweed_note,omitempty"`
	ArticulationNote *string           `db:"articulation_note" json:"articulation_note,omitempty"`
	Outcome          CheckpointOutcome `db:"outcome" json:"outcome"`
	NeedsReview      bool              `db:"needs_review" json:"needs_review"`
	VersesToRepeat   *string           `db:"verses_to_repeat" json:"verses_to_repeat,omitempty"`
	Note             *string           `db:"note" json:"note,omitempty"`
	CompletedAt      *time.Time        `db:"completed_at" json:"completed_at,omitempty"`
	CreatedAt        time.Time         `db:"created_at" json:"created_at"`
}

// Passed reports whether the examiner passed the sitting.
func (e CheckpointExam) Passed() bool {
	return e.Outcome == OutcomePassed
}
