package service

import (
	"math"
	"sort"
	"time"

	"github.com/noah-isme/tahfidz-api/internal/models"
	appErrors "github.com/noah-isme/tahfidz-api/pkg/errors"
)

// ReportInput carries the already-fetched record streams for one semester report.
// Streams may hold records of other learners or outside the period; they are filtered here.
type ReportInput struct {
	Learner         *models.Learner
	AcademicYear    string
	Semester        models.Semester
	Evaluations     []models.Evaluation
	CheckpointExams []models.CheckpointExam
	Attendance      []models.AttendanceRecord
	GroupName       string
	ExaminerName    string
	CreatedBy       string
}

// Key returns the uniqueness triple of the report this input produces.
func (in ReportInput) Key() models.ReportKey {
	key := models.ReportKey{AcademicYear: in.AcademicYear, Semester: in.Semester}
	if in.Learner != nil {
		key.LearnerID = in.Learner.ID
	}
	return key
}

// ReportAggregator turns record streams into a SemesterReport draft. It performs no I/O.
type ReportAggregator struct {
	classifier *NoteClassifier
	now        func() time.Time
}

// NewReportAggregator constructs an aggregator; a nil classifier uses the default keyword sets.
func NewReportAggregator(classifier *NoteClassifier) *ReportAggregator {
	if classifier == nil {
		classifier = DefaultNoteClassifier()
	}
	return &ReportAggregator{classifier: classifier, now: time.Now}
}

// Generate builds the draft. It fails only on a missing learner or an unparseable period;
// empty streams yield zeroed statistics.
func (a *ReportAggregator) Generate(in ReportInput) (*models.SemesterReport, error) {
	if in.Learner == nil || in.Learner.ID == "" {
		return nil, appErrors.Validation("learner is required")
	}
	window, err := ResolvePeriod(in.AcademicYear, in.Semester)
	if err != nil {
		return nil, err
	}
	learnerID := in.Learner.ID

	exams := make([]models.CheckpointExam, 0, len(in.CheckpointExams))
	for _, exam := range in.CheckpointExams {
		if exam.LearnerID == learnerID && window.Contains(exam.Date) {
			exams = append(exams, exam)
		}
	}
	var tajweedNotes, articulationNotes []*string
	for _, ev := range in.Evaluations {
		if ev.LearnerID == learnerID && window.Contains(ev.Date) {
			tajweedNotes = append(tajweedNotes, ev.TajweedNote)
			articulationNotes = append(articulationNotes, ev.ArticulationNote)
		}
	}
	attendance := make([]models.AttendanceRecord, 0, len(in.Attendance))
	for _, rec := range in.Attendance {
		if rec.LearnerID == learnerID && window.Contains(rec.Date) {
			attendance = append(attendance, rec)
		}
	}

	report := &models.SemesterReport{
		LearnerID:      learnerID,
		AcademicYear:   in.AcademicYear,
		Semester:       in.Semester,
		LearnerName:    in.Learner.Name,
		EnrollmentNo:   in.Learner.EnrollmentNo,
		GroupName:      in.GroupName,
		ExaminerName:   in.ExaminerName,
		MasteredJuz:    masteredJuz(exams),
		AverageFluency: averageFluency(exams),
		Achievements:   models.StringList{},
		CreatedAt:      a.now().UTC(),
		CreatedBy:      in.CreatedBy,
	}
	report.TotalJuz = len(report.MasteredJuz)

	for _, exam := range exams {
		report.TotalPages += exam.TotalPages
		report.TotalVerses += exam.TotalVerses
		if !exam.Passed() {
			continue
		}
		switch exam.Stage {
		case models.StageLines:
			report.Stage1Passed++
		case models.StagePage:
			report.Stage2Passed++
		case models.StageFivePage:
			report.Stage3Passed++
		case models.StageHalfJuz:
			report.Stage4Passed++
		case models.StageFullJuz:
			report.Stage5Passed++
		}
	}

	strengths, improvements := a.classifier.Classify(derefNotes(tajweedNotes))
	report.TajweedStrengths, report.TajweedImprovements = strengths, improvements
	strengths, improvements = a.classifier.Classify(derefNotes(articulationNotes))
	report.ArticulationStrengths, report.ArticulationImprovements = strengths, improvements

	summary := SummarizeAttendance(attendance)
	report.AttendancePresent = summary.Present
	report.AttendanceExcused = summary.Excused
	report.AttendanceSick = summary.Sick
	report.AttendanceAbsent = summary.Absent
	report.AttendanceTotal = summary.Total
	report.AttendancePercentage = summary.Percentage

	sort.SliceStable(exams, func(i, j int) bool { return exams[i].Date.After(exams[j].Date) })
	report.CheckpointDetails = models.CheckpointExamList(exams)

	return report, nil
}

// SummarizeAttendance counts records per status; the percentage is present over total, rounded.
func SummarizeAttendance(records []models.AttendanceRecord) models.AttendanceSummary {
	var summary models.AttendanceSummary
	for _, rec := range records {
		switch rec.Status {
		case models.AttendanceStatusPresent:
			summary.Present++
		case models.AttendanceStatusExcused:
			summary.Excused++
		case models.AttendanceStatusSick:
			summary.Sick++
		case models.AttendanceStatusAbsent:
			summary.Absent++
		default:
			continue
		}
		summary.Total++
	}
	summary.Percentage = roundedPercent(summary.Present, summary.Total)
	return summary
}

// masteredJuz lists distinct juz with a passed full-juz exam, ascending.
func masteredJuz(exams []models.CheckpointExam) models.IntList {
	seen := make(map[int]struct{})
	juz := models.IntList{}
	for _, exam := range exams {
		if exam.Stage != models.StageFullJuz || !exam.Passed() {
			continue
		}
		if _, ok := seen[exam.Juz]; ok {
			continue
		}
		seen[exam.Juz] = struct{}{}
		juz = append(juz, exam.Juz)
	}
	sort.Ints(juz)
	return juz
}

func averageFluency(exams []models.CheckpointExam) int {
	if len(exams) == 0 {
		return 0
	}
	total := 0
	for _, exam := range exams {
		total += exam.Fluency
	}
	return int(math.Round(float64(total) / float64(len(exams))))
}

func roundedPercent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
