package models

import "time"

// Semester is one half of an academic year.
type Semester string

const (
	SemesterOdd  Semester = "ODD"
	SemesterEven Semester = "EVEN"
)

// Valid returns true when the semester is a supported value.
func (s Semester) Valid() bool {
	return s == SemesterOdd || s == SemesterEven
}

// SemesterReport is a point-in-time snapshot of one learner's half-year.
// Derived fields are computed once at creation and never refreshed.
type SemesterReport struct {
	ID           string   `db:"id" json:"id"`
	LearnerID    string   `db:"learner_id" json:"learner_id"`
	AcademicYear string   `db:"academic_year" json:"academic_year"`
	Semester     Semester `db:"semester" json:"semester"`

	LearnerName  string `db:"learner_name" json:"learner_name"`
	EnrollmentNo string `db:"enrollment_no" json:"enrollment_no"`
	GroupName    string `db:"group_name" json:"group_name"`
	ExaminerName string `db:"examiner_name" json:"examiner_name"`

	MasteredJuz  IntList `db:"mastered_juz" json:"mastered_juz"`
	TotalJuz     int     `db:"total_juz" json:"total_juz"`
	TotalPages   int     `db:"total_pages" json:"total_pages"`
	TotalVerses  int     `db:"total_verses" json:"total_verses"`
	Stage1Passed int     `db:"stage1_passed" json:"stage1_passed"`
	Stage2Passed int     `db:"stage2_passed" json:"stage2_passed"`
	Stage3Passed int     `db:"stage3_passed" json:"stage3_passed"`
	Stage4Passed int     `db:"stage4_passed" json:"stage4_passed"`
	Stage5Passed int     `db:"stage5_passed" json:"stage5_passed"`

	AverageFluency int `db:"average_fluency" json:"average_fluency"`

	TajweedStrengths         StringList `db:"tajweed_strengths" json:"tajweed_strengths"`
	TajweedImprovements      StringList `db:"tajweed_improvements" json:"tajweed_improvements"`
	ArticulationStrengths    StringList `db:"articulation_strengths" json:"articulation_strengths"`
	ArticulationImprovements StringList `db:"articulation_improvements" json:"articulation_improvements"`

	AttendancePresent    int `db:"attendance_present" json:"attendance_present"`
	AttendanceExcused    int `db:"attendance_excused" json:"attendance_excused"`
	AttendanceSick       int `db:"attendance_sick" json:"attendance_sick"`
	AttendanceAbsent     int `db:"attendance_absent" json:"attendance_absent"`
	AttendanceTotal      int `db:"attendance_total" json:"attendance_total"`
	AttendancePercentage int `db:"attendance_percentage" json:"attendance_percentage"`

	CheckpointDetails CheckpointExamList `db:"checkpoint_details" json:"checkpoint_details"`

	Achievements    StringList `db:"achievements" json:"achievements"`
	ExaminerComment string     `db:"examiner_comment" json:"examiner_comment"`
	Recommendation  string     `db:"recommendation" json:"recommendation"`

	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	CreatedBy string     `db:"created_by" json:"created_by"`
	PrintedAt *time.Time `db:"printed_at" json:"printed_at,omitempty"`
}

// StagePassed returns the pass count recorded for a stage.
func (r SemesterReport) StagePassed(stage CheckpointStage) int {
	switch stage {
	case StageLines:
		return r.Stage1Passed
	case StagePage:
		return r.Stage2Passed
	case StageFivePage:
		return r.Stage3Passed
	case StageHalfJuz:
		return r.Stage4Passed
	case StageFullJuz:
		return r.Stage5Passed
	default:
		return 0
	}
}

// ReportKey identifies the unique (learner, academic year, semester) triple.
type ReportKey struct {
	LearnerID    string
	AcademicYear string
	Semester     Semester
}

// String renders the key for logs and lock maps.
func (k ReportKey) String() string {
	return k.LearnerID + "|" + k.AcademicYear + "|" + string(k.Semester)
}
