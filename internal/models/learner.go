package models

import "time"

// LearnerStatus reports whether a learner is still enrolled in a halaqah.
type LearnerStatus string

const (
	LearnerStatusActive   LearnerStatus = "ACTIVE"
	LearnerStatusInactive LearnerStatus = "INACTIVE"
)

// Valid returns true when the status is a supported value.
func (s LearnerStatus) Valid() bool {
	return s == LearnerStatusActive || s == LearnerStatusInactive
}

// Learner is a santri memorising the Quran in one halaqah group.
type Learner struct {
	ID           string        `db:"id" json:"id"`
	Name         string        `db:"name" json:"name"`
	EnrollmentNo string        `db:"enrollment_no" json:"enrollment_no"`
	GroupID      string        `db:"group_id" json:"group_id"`
	GuardianID   *string       `db:"guardian_id" json:"guardian_id,omitempty"`
	EnrolledAt   time.Time     `db:"enrolled_at" json:"enrolled_at"`
	Status       LearnerStatus `db:"status" json:"status"`
	CreatedAt    time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time     `db:"updated_at" json:"updated_at"`
}

// Active reports whether the learner takes part in bulk runs.
func (l Learner) Active() bool {
	return l.Status == LearnerStatusActive
}

// LearnerFilter encapsulates allowed search parameters for listing learners.
type LearnerFilter struct {
	Search    string
	GroupID   string
	Status    *LearnerStatus
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

// Pagination contains pagination metadata returned in list responses.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalCount int `json:"total_count"`
}
