package models

import "time"

// ReportStatus captures background job lifecycle states.
type ReportStatus string

const (
	ReportStatusQueued     ReportStatus = "QUEUED"
	ReportStatusProcessing ReportStatus = "PROCESSING"
	ReportStatusFinished   ReportStatus = "FINISHED"
	ReportStatusFailed     ReportStatus = "FAILED"
)

// BulkReportFailure records why one learner could not get a report.
type BulkReportFailure struct {
	LearnerID string `json:"learner_id"`
	Reason    string `json:"reason"`
}

// BulkReportResult tallies one bulk generation run.
type BulkReportResult struct {
	SuccessCount int                 `json:"success_count"`
	SkipCount    int                 `json:"skip_count"`
	ErrorCount   int                 `json:"error_count"`
	Failures     []BulkReportFailure `json:"failures,omitempty"`
}

// Total is the number of learners the run looked at.
func (r BulkReportResult) Total() int {
	return r.SuccessCount + r.SkipCount + r.ErrorCount
}

// BulkReportJob is the cached state of a queued bulk run.
type BulkReportJob struct {
	ID           string            `json:"id"`
	AcademicYear string            `json:"academic_year"`
	Semester     Semester          `json:"semester"`
	GroupID      *string           `json:"group_id,omitempty"`
	Status       ReportStatus      `json:"status"`
	Result       *BulkReportResult `json:"result,omitempty"`
	Error        *string           `json:"error,omitempty"`
	CreatedBy    string            `json:"created_by"`
	CreatedAt    time.Time         `json:"created_at"`
	FinishedAt   *time.Time        `json:"finished_at,omitempty"`
}
