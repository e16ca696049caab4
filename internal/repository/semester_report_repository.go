package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/noah-isme/tahfidz-api/internal/models"
	appErrors "github.com/noah-isme/tahfidz-api/pkg/errors"
)

const uniqueViolation = "23505"

const semesterReportColumns = `id, learner_id, academic_year, semester, learner_name, enrollment_no, group_name, examiner_name,
        mastered_juz, total_juz, total_pages, total_verses, stage1_passed, stage2_passed, stage3_passed, stage4_passed, stage5_passed,
        average_fluency, tajweed_strengths, tajweed_improvements, articulation_strengths, articulation_improvements,
        attendance_present, attendance_excused, attendance_sick, attendance_absent, attendance_total, attendance_percentage,
        checkpoint_details, achievements, examiner_comment, recommendation, created_at, created_by, printed_at`

// SemesterReportRepository persists generated semester reports.
type SemesterReportRepository struct {
	db *sqlx.DB
}

// NewSemesterReportRepository constructs a SemesterReportRepository.
func NewSemesterReportRepository(db *sqlx.DB) *SemesterReportRepository {
	return &SemesterReportRepository{db: db}
}

// Exists reports whether a report was already generated for the key.
func (r *SemesterReportRepository) Exists(ctx context.Context, key models.ReportKey) (bool, error) {
	var exists int
	err := r.db.GetContext(ctx, &exists, "SELECT 1 FROM semester_reports WHERE learner_id = $1 AND academic_year = $2 AND semester = $3 LIMIT 1",
		key.LearnerID, key.AcademicYear, key.Semester)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("check semester report: %w", err)
	}
	return true, nil
}

// Create inserts a report. A second report for the same triple yields ErrDuplicateReport.
func (r *SemesterReportRepository) Create(ctx context.Context, report *models.SemesterReport) error {
	if report.ID == "" {
		report.ID = uuid.NewString()
	}
	if report.CreatedAt.IsZero() {
		report.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO semester_reports (id, learner_id, academic_year, semester, learner_name, enrollment_no, group_name, examiner_name,
        mastered_juz, total_juz, total_pages, total_verses, stage1_passed, stage2_passed, stage3_passed, stage4_passed, stage5_passed,
        average_fluency, tajweed_strengths, tajweed_improvements, articulation_strengths, articulation_improvements,
        attendance_present, attendance_excused, attendance_sick, attendance_absent, attendance_total, attendance_percentage,
        checkpoint_details, achievements, examiner_comment, recommendation, created_at, created_by, printed_at)
        VALUES (:id, :learner_id, :academic_year, :semester, :learner_name, :enrollment_no, :group_name, :examiner_name,
        :mastered_juz, :total_juz, :total_pages, :total_verses, :stage1_passed, :stage2_passed, :stage3_passed, :stage4_passed, :stage5_passed,
        :average_fluency, :tajweed_strengths, :tajweed_improvements, :articulation_strengths, :articulation_improvements,
        :attendance_present, :attendance_excused, :attendance_sick, :attendance_absent, :attendance_total, :attendance_percentage,
        :checkpoint_details, :achievements, :examiner_comment, :recommendation, :created_at, :created_by, :printed_at)`
	if _, err := r.db.NamedExecContext(ctx, query, report); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return appErrors.Clone(appErrors.ErrDuplicateReport, "semester report already exists")
		}
		return fmt.Errorf("create semester report: %w", err)
	}
	return nil
}

// GetByID fetches a report by ID.
func (r *SemesterReportRepository) GetByID(ctx context.Context, id string) (*models.SemesterReport, error) {
	query := fmt.Sprintf("SELECT %s FROM semester_reports WHERE id = $1", semesterReportColumns)
	var report models.SemesterReport
	if err := r.db.GetContext(ctx, &report, query, id); err != nil {
		return nil, err
	}
	return &report, nil
}

// ListByLearner returns a learner's reports, latest period first.
func (r *SemesterReportRepository) ListByLearner(ctx context.Context, learnerID string) ([]models.SemesterReport, error) {
	query := fmt.Sprintf("SELECT %s FROM semester_reports WHERE learner_id = $1 ORDER BY academic_year DESC, semester DESC", semesterReportColumns)
	var reports []models.SemesterReport
	if err := r.db.SelectContext(ctx, &reports, query, learnerID); err != nil {
		return nil, fmt.Errorf("list semester reports: %w", err)
	}
	return reports, nil
}

// UpdateNarrative stores the examiner-authored fields of a report.
func (r *SemesterReportRepository) UpdateNarrative(ctx context.Context, report *models.SemesterReport) error {
	const query = `UPDATE semester_reports SET achievements = :achievements, examiner_comment = :examiner_comment,
        recommendation = :recommendation WHERE id = :id`
	res, err := r.db.NamedExecContext(ctx, query, report)
	if err != nil {
		return fmt.Errorf("update semester report narrative: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// MarkPrinted records when the report was printed.
func (r *SemesterReportRepository) MarkPrinted(ctx context.Context, id string, at time.Time) error {
	res, err := r.db.ExecContext(ctx, "UPDATE semester_reports SET printed_at = $2 WHERE id = $1", id, at)
	if err != nil {
		return fmt.Errorf("mark semester report printed: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes a report so it can be regenerated.
func (r *SemesterReportRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM semester_reports WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete semester report: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
