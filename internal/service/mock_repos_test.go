package service

import (
	"context"
	"sort"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"campus-events/backend/config"
	"campus-events/backend/internal/dto"
	"campus-events/backend/internal/model"
	"campus-events/backend/internal/repository"
	pkgerrors "campus-events/backend/pkg/errors"
)

// ── 共享内存存储：模拟自增主键与外键/唯一约束 ──

type pairKey struct{ studentID, eventID int64 }

type mockStore struct {
	nextID       int64
	colleges     map[int64]*model.College
	students     map[int64]*model.Student
	events       map[int64]*model.Event
	registration map[pairKey]*model.Registration
	attendance   map[pairKey]*model.Attendance
	feedback     map[pairKey]*model.Feedback
	// failWith 非 nil 时所有写操作返回该错误，用于模拟存储层异常
	failWith error
}

func newMockStore() *mockStore {
	return &mockStore{
		colleges:     make(map[int64]*model.College),
		students:     make(map[int64]*model.Student),
		events:       make(map[int64]*model.Event),
		registration: make(map[pairKey]*model.Registration),
		attendance:   make(map[pairKey]*model.Attendance),
		feedback:     make(map[pairKey]*model.Feedback),
	}
}

func (s *mockStore) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *mockStore) refsExist(studentID, eventID int64) bool {
	_, okS := s.students[studentID]
	_, okE := s.events[eventID]
	return okS && okE
}

// ── Mock CollegeRepository ──

type mockCollegeRepo struct{ store *mockStore }

func (m *mockCollegeRepo) Create(_ context.Context, c *model.College) error {
	if m.store.failWith != nil {
		return m.store.failWith
	}
	c.CollegeID = m.store.id()
	m.store.colleges[c.CollegeID] = c
	return nil
}

func (m *mockCollegeRepo) GetByID(_ context.Context, id int64) (*model.College, error) {
	if c, ok := m.store.colleges[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCollegeRepo) List(_ context.Context) ([]model.College, error) {
	var result []model.College
	for _, c := range m.store.colleges {
		result = append(result, *c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CollegeID < result[j].CollegeID })
	return result, nil
}

// ── Mock StudentRepository ──

type mockStudentRepo struct{ store *mockStore }

func (m *mockStudentRepo) Create(_ context.Context, s *model.Student) error {
	if m.store.failWith != nil {
		return m.store.failWith
	}
	if _, ok := m.store.colleges[s.CollegeID]; !ok {
		return pkgerrors.ErrInvalidReference
	}
	s.StudentID = m.store.id()
	m.store.students[s.StudentID] = s
	return nil
}

func (m *mockStudentRepo) GetByID(_ context.Context, id int64) (*model.Student, error) {
	if s, ok := m.store.students[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStudentRepo) List(_ context.Context, collegeID *int64) ([]model.Student, error) {
	var result []model.Student
	for _, s := range m.store.students {
		if collegeID != nil && s.CollegeID != *collegeID {
			continue
		}
		result = append(result, *s)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].StudentID < result[j].StudentID })
	return result, nil
}

// ── Mock EventRepository ──

type mockEventRepo struct{ store *mockStore }

func (m *mockEventRepo) Create(_ context.Context, e *model.Event) error {
	if m.store.failWith != nil {
		return m.store.failWith
	}
	if _, ok := m.store.colleges[e.CollegeID]; !ok {
		return pkgerrors.ErrInvalidReference
	}
	e.EventID = m.store.id()
	m.store.events[e.EventID] = e
	return nil
}

func (m *mockEventRepo) GetByID(_ context.Context, id int64) (*model.Event, error) {
	if e, ok := m.store.events[id]; ok {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEventRepo) List(_ context.Context, eventType string) ([]model.Event, error) {
	var result []model.Event
	for _, e := range m.store.events {
		if eventType != "" && e.Type != eventType {
			continue
		}
		result = append(result, *e)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].EventID < result[j].EventID })
	return result, nil
}

// ── Mock RegistrationRepository ──

type mockRegistrationRepo struct{ store *mockStore }

func (m *mockRegistrationRepo) Create(_ context.Context, r *model.Registration) error {
	if m.store.failWith != nil {
		return m.store.failWith
	}
	if !m.store.refsExist(r.StudentID, r.EventID) {
		return pkgerrors.ErrInvalidReference
	}
	key := pairKey{r.StudentID, r.EventID}
	if _, ok := m.store.registration[key]; ok {
		return pkgerrors.ErrDuplicateKey
	}
	r.RegID = m.store.id()
	m.store.registration[key] = r
	return nil
}

// ── Mock AttendanceRepository ──

type mockAttendanceRepo struct{ store *mockStore }

func (m *mockAttendanceRepo) Upsert(_ context.Context, a *model.Attendance) error {
	if m.store.failWith != nil {
		return m.store.failWith
	}
	if !m.store.refsExist(a.StudentID, a.EventID) {
		return pkgerrors.ErrInvalidReference
	}
	m.store.attendance[pairKey{a.StudentID, a.EventID}] = a
	return nil
}

// ── Mock FeedbackRepository ──

type mockFeedbackRepo struct{ store *mockStore }

func (m *mockFeedbackRepo) Upsert(_ context.Context, f *model.Feedback) error {
	if m.store.failWith != nil {
		return m.store.failWith
	}
	if !m.store.refsExist(f.StudentID, f.EventID) {
		return pkgerrors.ErrInvalidReference
	}
	m.store.feedback[pairKey{f.StudentID, f.EventID}] = f
	return nil
}

// ── Mock ReportRepository ──
// 直接在内存存储上计算，语义与 SQL 聚合一致

type mockReportRepo struct {
	store     *mockStore
	lastLimit int
	err       error
}

func (m *mockReportRepo) EventStats(_ context.Context, eventID int64) (*repository.EventStatsRow, error) {
	if m.err != nil {
		return nil, m.err
	}
	row := &repository.EventStatsRow{}
	for k := range m.store.registration {
		if k.eventID == eventID {
			row.TotalRegistrations++
		}
	}
	for k, a := range m.store.attendance {
		if k.eventID != eventID {
			continue
		}
		row.AttendanceTotal++
		if a.Status == model.AttendancePresent {
			row.AttendancePresent++
		}
	}
	var sum, n float64
	for k, f := range m.store.feedback {
		if k.eventID == eventID {
			sum += float64(f.Rating)
			n++
		}
	}
	if n > 0 {
		avg := sum / n
		row.AverageRating = &avg
	}
	return row, nil
}

func (m *mockReportRepo) Popularity(_ context.Context) ([]repository.PopularityRow, error) {
	if m.err != nil {
		return nil, m.err
	}
	rows := make([]repository.PopularityRow, 0, len(m.store.events))
	for _, e := range m.store.events {
		row := repository.PopularityRow{
			EventID: e.EventID, Title: e.Title, Type: e.Type, Date: e.Date, CollegeID: e.CollegeID,
		}
		for k := range m.store.registration {
			if k.eventID == e.EventID {
				row.TotalRegistrations++
			}
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].TotalRegistrations != rows[j].TotalRegistrations {
			return rows[i].TotalRegistrations > rows[j].TotalRegistrations
		}
		return rows[i].EventID < rows[j].EventID
	})
	return rows, nil
}

func (m *mockReportRepo) StudentParticipation(_ context.Context, studentID int64) (*repository.ParticipationRow, error) {
	if m.err != nil {
		return nil, m.err
	}
	s, ok := m.store.students[studentID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	row := &repository.ParticipationRow{StudentID: s.StudentID, Name: s.Name}
	for k, a := range m.store.attendance {
		if k.studentID == studentID && a.Status == model.AttendancePresent {
			row.EventsAttended++
		}
	}
	return row, nil
}

func (m *mockReportRepo) TopActive(_ context.Context, limit int) ([]repository.TopActiveRow, error) {
	m.lastLimit = limit
	if m.err != nil {
		return nil, m.err
	}
	rows := make([]repository.TopActiveRow, 0, len(m.store.students))
	for _, s := range m.store.students {
		row := repository.TopActiveRow{StudentID: s.StudentID, Name: s.Name}
		for k, a := range m.store.attendance {
			if k.studentID == s.StudentID && a.Status == model.AttendancePresent {
				row.Attended++
			}
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Attended != rows[j].Attended {
			return rows[i].Attended > rows[j].Attended
		}
		return rows[i].StudentID < rows[j].StudentID
	})
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

// ── 测试辅助 ──

type testEnv struct {
	store  *mockStore
	report *mockReportRepo
	repo   *repository.Repository
	logger *zap.Logger
}

func newTestEnv() *testEnv {
	store := newMockStore()
	report := &mockReportRepo{store: store}
	return &testEnv{
		store:  store,
		report: report,
		repo: &repository.Repository{
			College:      &mockCollegeRepo{store: store},
			Student:      &mockStudentRepo{store: store},
			Event:        &mockEventRepo{store: store},
			Registration: &mockRegistrationRepo{store: store},
			Attendance:   &mockAttendanceRepo{store: store},
			Feedback:     &mockFeedbackRepo{store: store},
			Report:       report,
		},
		logger: zap.NewNop(),
	}
}

func (e *testEnv) reportConfig() *config.ReportConfig {
	return &config.ReportConfig{TopActiveDefault: 3, TopActiveMax: 100}
}

func (e *testEnv) addCollege(name string) *model.College {
	c := &model.College{Name: name}
	_ = e.repo.College.Create(context.Background(), c)
	return c
}

func (e *testEnv) addStudent(name string, collegeID int64) *model.Student {
	s := &model.Student{Name: name, Email: name + "@example.com", CollegeID: collegeID}
	_ = e.repo.Student.Create(context.Background(), s)
	return s
}

func (e *testEnv) addEvent(title, eventType string, collegeID int64) *model.Event {
	ev := &model.Event{Title: title, Type: eventType, Date: "2025-09-15", CollegeID: collegeID}
	_ = e.repo.Event.Create(context.Background(), ev)
	return ev
}

func flex(n int64) *dto.FlexInt {
	v := dto.FlexInt(n)
	return &v
}
