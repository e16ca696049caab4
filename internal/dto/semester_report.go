package dto

import (
	"time"

	"github.com/noah-isme/tahfidz-api/internal/models"
)

// GenerateSemesterReportRequest captures POST /semester-reports payload.
type GenerateSemesterReportRequest struct {
	LearnerID    string `json:"learner_id" validate:"required"`
	AcademicYear string `json:"academic_year" validate:"required"`
	Semester     string `json:"semester" validate:"required,semester"`
}

// BulkSemesterReportRequest captures the bulk generation payload; GroupID narrows the run to one halaqah.
type BulkSemesterReportRequest struct {
	AcademicYear string  `json:"academic_year" validate:"required"`
	Semester     string  `json:"semester" validate:"required,semester"`
	GroupID      *string `json:"group_id,omitempty"`
}

// UpdateReportNarrativeRequest carries the examiner's manual follow-up. Omitted fields are left unchanged.
type UpdateReportNarrativeRequest struct {
	Achievements    *[]string `json:"achievements" validate:"omitempty,max=20,dive,max=200"`
	ExaminerComment *string   `json:"examiner_comment" validate:"omitempty,max=2000"`
	Recommendation  *string   `json:"recommendation" validate:"omitempty,max=2000"`
}

// BulkReportJobResponse is returned after enqueueing a bulk run.
type BulkReportJobResponse struct {
	ID     string              `json:"id"`
	Status models.ReportStatus `json:"status"`
}

// SemesterReportSummary is the list view of a stored report.
type SemesterReportSummary struct {
	ID             string          `json:"id"`
	AcademicYear   string          `json:"academic_year"`
	Semester       models.Semester `json:"semester"`
	TotalJuz       int             `json:"total_juz"`
	AverageFluency int             `json:"average_fluency"`
	Attendance     int             `json:"attendance_percentage"`
	CreatedAt      time.Time       `json:"created_at"`
	PrintedAt      *time.Time      `json:"printed_at,omitempty"`
}

// NewSemesterReportSummary projects a report onto its list view.
func NewSemesterReportSummary(r models.SemesterReport) SemesterReportSummary {
	return SemesterReportSummary{
		ID:             r.ID,
		AcademicYear:   r.AcademicYear,
		Semester:       r.Semester,
		TotalJuz:       r.TotalJuz,
		AverageFluency: r.AverageFluency,
		Attendance:     r.AttendancePercentage,
		CreatedAt:      r.CreatedAt,
		PrintedAt:      r.PrintedAt,
	}
}
