package models

import "time"

// AttendanceStatus represents the status for attendance records.
type AttendanceStatus string

const (
	AttendanceStatusPresent AttendanceStatus = "H"
	AttendanceStatusExcused AttendanceStatus = "I"
	AttendanceStatusSick    AttendanceStatus = "S"
	AttendanceStatusAbsent  AttendanceStatus = "A"
)

// Valid returns true when the status is a supported value.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendanceStatusPresent, AttendanceStatusSick, AttendanceStatusExcused, AttendanceStatusAbsent:
		return true
	default:
		return false
	}
}

// AttendanceRecord is one learner's attendance for one day.
type AttendanceRecord struct {
	ID        string           `db:"id" json:"id"`
	LearnerID string           `db:"learner_id" json:"learner_id"`
	Date      time.Time        `db:"date" json:"date"`
	Status    AttendanceStatus `db:"status" json:"status"`
	Note      *string          `db:"note" json:"note,omitempty"`
	CreatedAt time.Time        `db:"created_at" json:"created_at"`
}

// AttendanceSummary counts attendance per status.
type AttendanceSummary struct {
	Present    int `json:"present"`
	Excused    int `json:"excused"`
	Sick       int `json:"sick"`
	Absent     int `json:"absent"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}
