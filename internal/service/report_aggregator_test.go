package service

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/tahfidz-api/internal/models"
	appErrors "github.com/noah-isme/tahfidz-api/pkg/errors"
)

func strPtr(s string) *string { return &s }

func fixedAggregator() *ReportAggregator {
	agg := NewReportAggregator(nil)
	agg.now = func() time.Time { return time.Date(2025, time.January, 5, 8, 0, 0, 0, time.UTC) }
	return agg
}

func testLearner(id string) *models.Learner {
	return &models.Learner{ID: id, Name: "Ahmad", EnrollmentNo: "T-001", GroupID: "g-1", Status: models.LearnerStatusActive}
}

func TestReportAggregatorEmptyPeriod(t *testing.T) {
	report, err := fixedAggregator().Generate(ReportInput{
		Learner:      testLearner("l-1"),
		AcademicYear: "2024/2025",
		Semester:     models.SemesterOdd,
		CheckpointExams: []models.CheckpointExam{
			{LearnerID: "l-1", Stage: 5, Juz: 30, Outcome: models.OutcomePassed, Date: day(2024, time.March, 1)},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 0, report.TotalJuz)
	assert.Empty(t, report.MasteredJuz)
	for stage := models.FirstStage; stage <= models.FinalStage; stage++ {
		assert.Zero(t, report.StagePassed(stage))
	}
	assert.Equal(t, 0, report.AverageFluency)
	assert.Equal(t, 0, report.AttendancePercentage)
	assert.Empty(t, report.TajweedStrengths)
	assert.Empty(t, report.TajweedImprovements)
	assert.Empty(t, report.ArticulationStrengths)
	assert.Empty(t, report.ArticulationImprovements)
	assert.Empty(t, report.CheckpointDetails)
	assert.NotNil(t, report.Achievements)
	assert.Empty(t, report.ExaminerComment)
	assert.Empty(t, report.Recommendation)
}

func TestReportAggregatorComputesStatistics(t *testing.T) {
	exams := []models.CheckpointExam{
		{ID: "c1", LearnerID: "l-1", Stage: 5, Juz: 30, Outcome: models.OutcomePassed, Fluency: 90, TotalPages: 20, TotalVerses: 564, Date: day(2024, time.August, 1)},
		{ID: "c2", LearnerID: "l-1", Stage: 5, Juz: 29, Outcome: models.OutcomePassed, Fluency: 85, TotalPages: 20, TotalVerses: 431, Date: day(2024, time.October, 1)},
		{ID: "c3", LearnerID: "l-1", Stage: 5, Juz: 30, Outcome: models.OutcomePassed, Fluency: 88, TotalPages: 20, TotalVerses: 564, Date: day(2024, time.November, 1)},
		{ID: "c4", LearnerID: "l-1", Stage: 5, Juz: 28, Outcome: models.OutcomeFailed, Fluency: 60, TotalPages: 20, TotalVerses: 137, Date: day(2024, time.December, 31)},
		{ID: "c5", LearnerID: "l-1", Stage: 2, Juz: 1, Outcome: models.OutcomePassed, Fluency: 100, TotalPages: 1, TotalVerses: 7, Date: day(2024, time.July, 1)},
		{ID: "out", LearnerID: "l-1", Stage: 5, Juz: 1, Outcome: models.OutcomePassed, Fluency: 10, TotalPages: 20, Date: day(2025, time.January, 1)},
		{ID: "other", LearnerID: "l-2", Stage: 5, Juz: 2, Outcome: models.OutcomePassed, Fluency: 10, TotalPages: 20, Date: day(2024, time.August, 1)},
	}
	evaluations := []models.Evaluation{
		{LearnerID: "l-1", Date: day(2024, time.September, 1), TajweedNote: strPtr("Tajwid sudah baik. Masih perlu latihan."), ArticulationNote: strPtr("Makhraj jelas")},
		{LearnerID: "l-1", Date: day(2024, time.September, 8), TajweedNote: nil, ArticulationNote: strPtr("")},
		{LearnerID: "l-2", Date: day(2024, time.September, 8), TajweedNote: strPtr("Bacaan bagus")},
	}
	attendance := []models.AttendanceRecord{
		{LearnerID: "l-1", Date: day(2024, time.July, 2), Status: models.AttendanceStatusPresent},
		{LearnerID: "l-1", Date: day(2024, time.July, 3), Status: models.AttendanceStatusPresent},
		{LearnerID: "l-1", Date: day(2024, time.July, 4), Status: models.AttendanceStatusSick},
		{LearnerID: "l-1", Date: day(2024, time.July, 5), Status: models.AttendanceStatusExcused},
		{LearnerID: "l-1", Date: day(2024, time.July, 6), Status: models.AttendanceStatusAbsent},
		{LearnerID: "l-1", Date: day(2024, time.July, 7), Status: models.AttendanceStatusPresent},
		{LearnerID: "l-1", Date: day(2025, time.July, 7), Status: models.AttendanceStatusAbsent},
	}

	report, err := fixedAggregator().Generate(ReportInput{
		Learner:         testLearner("l-1"),
		AcademicYear:    "2024/2025",
		Semester:        models.SemesterOdd,
		Evaluations:     evaluations,
		CheckpointExams: exams,
		Attendance:      attendance,
		GroupName:       "Halaqah Al-Fatih",
		ExaminerName:    "Ustadz Hasan",
		CreatedBy:       "admin-1",
	})
	require.NoError(t, err)

	assert.Equal(t, models.IntList{29, 30}, report.MasteredJuz)
	assert.Equal(t, 2, report.TotalJuz)
	assert.Equal(t, 81, report.TotalPages)
	assert.Equal(t, 564+431+564+137+7, report.TotalVerses)
	assert.Equal(t, 1, report.Stage2Passed)
	assert.Equal(t, 3, report.Stage5Passed)
	assert.Equal(t, 0, report.Stage1Passed)
	// (90+85+88+60+100)/5 = 84.6
	assert.Equal(t, 85, report.AverageFluency)

	assert.Equal(t, models.StringList{"Tajwid sudah baik"}, report.TajweedStrengths)
	assert.Equal(t, models.StringList{"Masih perlu latihan"}, report.TajweedImprovements)
	assert.Equal(t, models.StringList{"Makhraj jelas"}, report.ArticulationStrengths)
	assert.Empty(t, report.ArticulationImprovements)

	assert.Equal(t, 3, report.AttendancePresent)
	assert.Equal(t, 1, report.AttendanceSick)
	assert.Equal(t, 1, report.AttendanceExcused)
	assert.Equal(t, 1, report.AttendanceAbsent)
	assert.Equal(t, 6, report.AttendanceTotal)
	assert.Equal(t, 50, report.AttendancePercentage)

	require.Len(t, report.CheckpointDetails, 5)
	ids := make([]string, 0, len(report.CheckpointDetails))
	for _, exam := range report.CheckpointDetails {
		ids = append(ids, exam.ID)
	}
	assert.Equal(t, []string{"c4", "c3", "c2", "c1", "c5"}, ids)

	assert.Equal(t, "Ahmad", report.LearnerName)
	assert.Equal(t, "T-001", report.EnrollmentNo)
	assert.Equal(t, "Halaqah Al-Fatih", report.GroupName)
	assert.Equal(t, "Ustadz Hasan", report.ExaminerName)
	assert.Equal(t, "admin-1", report.CreatedBy)
	assert.Equal(t, time.Date(2025, time.January, 5, 8, 0, 0, 0, time.UTC), report.CreatedAt)
	assert.Empty(t, report.ID)
}

func TestReportAggregatorValidation(t *testing.T) {
	agg := fixedAggregator()
	_, err := agg.Generate(ReportInput{AcademicYear: "2024/2025", Semester: models.SemesterOdd})
	assert.True(t, errors.Is(err, appErrors.ErrValidation))

	_, err = agg.Generate(ReportInput{Learner: testLearner("l-1"), AcademicYear: "2024", Semester: models.SemesterOdd})
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
}

func TestSummarizeAttendanceBounds(t *testing.T) {
	assert.Equal(t, 0, SummarizeAttendance(nil).Percentage)

	all := []models.AttendanceRecord{{Status: models.AttendanceStatusPresent}, {Status: models.AttendanceStatusPresent}}
	assert.Equal(t, 100, SummarizeAttendance(all).Percentage)

	thirds := []models.AttendanceRecord{{Status: "H"}, {Status: "A"}, {Status: "A"}}
	summary := SummarizeAttendance(thirds)
	assert.Equal(t, 33, summary.Percentage)
	assert.Equal(t, 3, summary.Total)

	unknown := []models.AttendanceRecord{{Status: "X"}}
	assert.Equal(t, 0, SummarizeAttendance(unknown).Total)
}
