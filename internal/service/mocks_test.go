package service

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/noah-isme/tahfidz-api/internal/models"
	appErrors "github.com/noah-isme/tahfidz-api/pkg/errors"
)

type mockLearnerRepo struct {
	mu         sync.Mutex
	learners   map[string]models.Learner
	lastFilter models.LearnerFilter
	listTotal  int
	err        error
}

func newMockLearnerRepo(learners ...models.Learner) *mockLearnerRepo {
	repo := &mockLearnerRepo{learners: map[string]models.Learner{}}
	for _, l := range learners {
		repo.learners[l.ID] = l
	}
	return repo
}

func (m *mockLearnerRepo) List(ctx context.Context, filter models.LearnerFilter) ([]models.Learner, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastFilter = filter
	if m.err != nil {
		return nil, 0, m.err
	}
	out := make([]models.Learner, 0, len(m.learners))
	for _, l := range m.learners {
		out = append(out, l)
	}
	return out, m.listTotal, nil
}

func (m *mockLearnerRepo) FindByID(ctx context.Context, id string) (*models.Learner, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	l, ok := m.learners[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &l, nil
}

func (m *mockLearnerRepo) ListActive(ctx context.Context, groupID string) ([]models.Learner, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := make([]models.Learner, 0)
	for _, l := range m.learners {
		if !l.Active() || (groupID != "" && l.GroupID != groupID) {
			continue
		}
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *mockLearnerRepo) ExistsByEnrollmentNo(ctx context.Context, enrollmentNo string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, l := range m.learners {
		if l.EnrollmentNo == enrollmentNo {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockLearnerRepo) Create(ctx context.Context, learner *models.Learner) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if learner.ID == "" {
		learner.ID = fmt.Sprintf("learner-%d", len(m.learners)+1)
	}
	m.learners[learner.ID] = *learner
	return nil
}

func (m *mockLearnerRepo) UpdateStatus(ctx context.Context, id string, status models.LearnerStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.learners[id]
	if !ok {
		return sql.ErrNoRows
	}
	l.Status = status
	m.learners[id] = l
	return nil
}

type mockCheckpointRepo struct {
	mu      sync.Mutex
	exams   []models.CheckpointExam
	listErr error
}

func (m *mockCheckpointRepo) ListByLearner(ctx context.Context, learnerID string, from, to *time.Time) ([]models.CheckpointExam, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]models.CheckpointExam, 0)
	for _, e := range m.exams {
		if e.LearnerID == learnerID && inRange(e.Date, from, to) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *mockCheckpointRepo) Create(ctx context.Context, exam *models.CheckpointExam) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if exam.ID == "" {
		exam.ID = fmt.Sprintf("exam-%d", len(m.exams)+1)
	}
	m.exams = append(m.exams, *exam)
	return nil
}

func (m *mockCheckpointRepo) FindByID(ctx context.Context, id string) (*models.CheckpointExam, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.exams {
		if e.ID == id {
			exam := e
			return &exam, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *mockCheckpointRepo) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, e := range m.exams {
		if e.ID == id {
			m.exams = append(m.exams[:i], m.exams[i+1:]...)
			return nil
		}
	}
	return sql.ErrNoRows
}

type mockRecitationRepo struct {
	sessions []models.RecitationSession
}

func (m *mockRecitationRepo) ListByLearner(ctx context.Context, learnerID string, from, to *time.Time) ([]models.RecitationSession, error) {
	out := make([]models.RecitationSession, 0)
	for _, s := range m.sessions {
		if s.LearnerID == learnerID && inRange(s.Date, from, to) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *mockRecitationRepo) Create(ctx context.Context, session *models.RecitationSession) error {
	if session.ID == "" {
		session.ID = fmt.Sprintf("recitation-%d", len(m.sessions)+1)
	}
	m.sessions = append(m.sessions, *session)
	return nil
}

type mockEvaluationRepo struct {
	evaluations []models.Evaluation
}

func (m *mockEvaluationRepo) ListByLearner(ctx context.Context, learnerID string, from, to *time.Time) ([]models.Evaluation, error) {
	out := make([]models.Evaluation, 0)
	for _, e := range m.evaluations {
		if e.LearnerID == learnerID && inRange(e.Date, from, to) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *mockEvaluationRepo) Create(ctx context.Context, evaluation *models.Evaluation) error {
	m.evaluations = append(m.evaluations, *evaluation)
	return nil
}

type mockAttendanceRepo struct {
	records []models.AttendanceRecord
}

func (m *mockAttendanceRepo) ListByLearner(ctx context.Context, learnerID string, from, to *time.Time) ([]models.AttendanceRecord, error) {
	out := make([]models.AttendanceRecord, 0)
	for _, r := range m.records {
		if r.LearnerID == learnerID && inRange(r.Date, from, to) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockAttendanceRepo) Upsert(ctx context.Context, record *models.AttendanceRecord) (*models.AttendanceRecord, error) {
	for i, r := range m.records {
		if r.LearnerID == record.LearnerID && r.Date.Equal(record.Date) {
			m.records[i].Status = record.Status
			m.records[i].Note = record.Note
			stored := m.records[i]
			return &stored, nil
		}
	}
	record.ID = fmt.Sprintf("attendance-%d", len(m.records)+1)
	m.records = append(m.records, *record)
	stored := *record
	return &stored, nil
}

type mockGroupRepo struct {
	groups map[string]models.HalaqahGroup
}

func (m *mockGroupRepo) FindByID(ctx context.Context, id string) (*models.HalaqahGroup, error) {
	g, ok := m.groups[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &g, nil
}

type mockSemesterReportRepo struct {
	mu      sync.Mutex
	reports map[string]models.SemesterReport
	printed map[string]time.Time
}

func newMockSemesterReportRepo() *mockSemesterReportRepo {
	return &mockSemesterReportRepo{reports: map[string]models.SemesterReport{}, printed: map[string]time.Time{}}
}

func (m *mockSemesterReportRepo) Exists(ctx context.Context, key models.ReportKey) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.reports {
		if r.LearnerID == key.LearnerID && r.AcademicYear == key.AcademicYear && r.Semester == key.Semester {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockSemesterReportRepo) Create(ctx context.Context, report *models.SemesterReport) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.reports {
		if r.LearnerID == report.LearnerID && r.AcademicYear == report.AcademicYear && r.Semester == report.Semester {
			return appErrors.Clone(appErrors.ErrDuplicateReport, "semester report already exists")
		}
	}
	if report.ID == "" {
		report.ID = fmt.Sprintf("report-%d", len(m.reports)+1)
	}
	m.reports[report.ID] = *report
	return nil
}

func (m *mockSemesterReportRepo) GetByID(ctx context.Context, id string) (*models.SemesterReport, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.reports[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &r, nil
}

func (m *mockSemesterReportRepo) ListByLearner(ctx context.Context, learnerID string) ([]models.SemesterReport, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.SemesterReport, 0)
	for _, r := range m.reports {
		if r.LearnerID == learnerID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AcademicYear > out[j].AcademicYear })
	return out, nil
}

func (m *mockSemesterReportRepo) UpdateNarrative(ctx context.Context, report *models.SemesterReport) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.reports[report.ID]
	if !ok {
		return sql.ErrNoRows
	}
	stored.Achievements = report.Achievements
	stored.ExaminerComment = report.ExaminerComment
	stored.Recommendation = report.Recommendation
	m.reports[report.ID] = stored
	return nil
}

func (m *mockSemesterReportRepo) MarkPrinted(ctx context.Context, id string, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.reports[id]
	if !ok {
		return sql.ErrNoRows
	}
	stored.PrintedAt = &at
	m.reports[id] = stored
	return nil
}

func (m *mockSemesterReportRepo) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.reports[id]; !ok {
		return sql.ErrNoRows
	}
	delete(m.reports, id)
	return nil
}

type invalidationRecorder struct {
	mu       sync.Mutex
	learners []string
}

func (r *invalidationRecorder) Invalidate(ctx context.Context, learnerID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.learners = append(r.learners, learnerID)
}

type checkpointCounter struct {
	counts map[string]int
}

func (c *checkpointCounter) ObserveCheckpointExam(stage models.CheckpointStage, outcome models.CheckpointOutcome) {
	if c.counts == nil {
		c.counts = map[string]int{}
	}
	c.counts[fmt.Sprintf("%d/%s", stage, outcome)]++
}

func inRange(t time.Time, from, to *time.Time) bool {
	if from != nil && t.Before(*from) {
		return false
	}
	if to != nil && t.After(*to) {
		return false
	}
	return true
}

func activeLearner(id, groupID string) models.Learner {
	return models.Learner{ID: id, Name: "Learner " + id, EnrollmentNo: "T-" + id, GroupID: groupID, Status: models.LearnerStatusActive}
}

func intPtr(v int) *int { return &v }
