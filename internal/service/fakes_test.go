package service

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/ahmadqo/school-attendance/internal/model"
	"github.com/ahmadqo/school-attendance/internal/repository"
	"github.com/ahmadqo/school-attendance/internal/utils"
	"github.com/google/uuid"
)

// In-memory implementations of the repository interfaces. They mirror the SQL
// semantics the services rely on: unique keys, ON CONFLICT upserts, ordering.

type fakeClassRepo struct {
	classes []*model.Class
}

func (r *fakeClassRepo) FindAll(ctx context.Context) ([]*model.Class, error) {
	out := append([]*model.Class(nil), r.classes...)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeClassRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Class, error) {
	for _, c := range r.classes {
		if c.ID == id {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeClassRepo) FindByName(ctx context.Context, name string) (*model.Class, error) {
	for _, c := range r.classes {
		if c.Name == name {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeClassRepo) Create(ctx context.Context, class *model.Class) error {
	for _, c := range r.classes {
		if c.Name == class.Name {
			return repository.ErrDuplicate
		}
	}
	cp := *class
	r.classes = append(r.classes, &cp)
	return nil
}

func (r *fakeClassRepo) Update(ctx context.Context, class *model.Class) (bool, error) {
	for _, c := range r.classes {
		if c.ID == class.ID {
			c.Name = class.Name
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeClassRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	for i, c := range r.classes {
		if c.ID == id {
			r.classes = append(r.classes[:i], r.classes[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeClassRepo) add(name string) *model.Class {
	c := &model.Class{ID: uuid.New(), Name: name}
	r.classes = append(r.classes, c)
	return c
}

type fakeStudentRepo struct {
	students []*model.Student
}

func (r *fakeStudentRepo) FindAll(ctx context.Context, filter model.StudentFilter) ([]*model.Student, error) {
	out := []*model.Student{}
	for _, s := range r.students {
		if filter.ClassID != nil && s.ClassID != *filter.ClassID {
			continue
		}
		if filter.NIS != "" && s.NIS != filter.NIS {
			continue
		}
		if q := strings.ToLower(filter.Search); q != "" &&
			!strings.Contains(strings.ToLower(s.FullName), q) &&
			!strings.Contains(strings.ToLower(s.NIS), q) {
			continue
		}
		cp := *s
		out = append(out, &cp)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].FullName < out[j].FullName })
	return out, nil
}

func (r *fakeStudentRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Student, error) {
	for _, s := range r.students {
		if s.ID == id {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeStudentRepo) FindByNIS(ctx context.Context, nis string) (*model.Student, error) {
	for _, s := range r.students {
		if s.NIS == nis {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeStudentRepo) CountAll(ctx context.Context) (int, error) {
	return len(r.students), nil
}

func (r *fakeStudentRepo) CountByClass(ctx context.Context, classID uuid.UUID) (int, error) {
	n := 0
	for _, s := range r.students {
		if s.ClassID == classID {
			n++
		}
	}
	return n, nil
}

func (r *fakeStudentRepo) Create(ctx context.Context, student *model.Student) error {
	for _, s := range r.students {
		if s.NIS == student.NIS {
			return repository.ErrDuplicate
		}
	}
	cp := *student
	r.students = append(r.students, &cp)
	return nil
}

func (r *fakeStudentRepo) Update(ctx context.Context, student *model.Student) error {
	for _, s := range r.students {
		if s.NIS == student.NIS && s.ID != student.ID {
			return repository.ErrDuplicate
		}
	}
	for _, s := range r.students {
		if s.ID == student.ID {
			s.NIS, s.FullName, s.ClassID = student.NIS, student.FullName, student.ClassID
		}
	}
	return nil
}

func (r *fakeStudentRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	for i, s := range r.students {
		if s.ID == id {
			r.students = append(r.students[:i], r.students[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeStudentRepo) UpdatePhoto(ctx context.Context, id uuid.UUID, photoURL string) error {
	for _, s := range r.students {
		if s.ID == id {
			s.PhotoURL = &photoURL
		}
	}
	return nil
}

func (r *fakeStudentRepo) add(nis, name string, classID uuid.UUID) *model.Student {
	s := &model.Student{ID: uuid.New(), NIS: nis, FullName: name, ClassID: classID}
	r.students = append(r.students, s)
	return s
}

type attendanceKey struct {
	studentID uuid.UUID
	date      string
}

type fakeAttendanceRepo struct {
	mu     sync.Mutex
	rows   map[attendanceKey]*model.Attendance
	writes int
	// extra lets a test inject rows the unique key would normally forbid
	extra []*model.Attendance
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{rows: map[attendanceKey]*model.Attendance{}}
}

func (r *fakeAttendanceRepo) FindByStudentAndDate(ctx context.Context, studentID uuid.UUID, date string) (*model.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a, ok := r.rows[attendanceKey{studentID, date}]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeAttendanceRepo) FindByDate(ctx context.Context, date string) ([]*model.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*model.Attendance{}
	for k, a := range r.rows {
		if k.date == date {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeAttendanceRepo) FindByStudentsInRange(ctx context.Context, studentIDs []uuid.UUID, start, end string) ([]*model.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	wanted := map[uuid.UUID]bool{}
	for _, id := range studentIDs {
		wanted[id] = true
	}
	all := append([]*model.Attendance{}, r.extra...)
	for _, a := range r.rows {
		all = append(all, a)
	}
	out := []*model.Attendance{}
	for _, a := range all {
		if wanted[a.StudentID] && a.Date >= start && a.Date <= end {
			cp := *a
			out = append(out, &cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (r *fakeAttendanceRepo) CheckIn(ctx context.Context, studentID uuid.UUID, date, checkInTime string) (*model.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := attendanceKey{studentID, date}
	if a, ok := r.rows[key]; ok && a.StatusOrEmpty() == model.StatusPresent {
		cp := *a
		return &cp, nil
	}
	status := model.StatusPresent
	clock := checkInTime
	r.rows[key] = &model.Attendance{StudentID: studentID, Date: date, CheckInTime: &clock, Status: &status}
	r.writes++
	cp := *r.rows[key]
	return &cp, nil
}

func (r *fakeAttendanceRepo) Upsert(ctx context.Context, a *model.Attendance) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := attendanceKey{a.StudentID, a.Date}
	cp := *a
	if existing, ok := r.rows[key]; ok && cp.CheckInTime == nil {
		cp.CheckInTime = existing.CheckInTime
	}
	r.rows[key] = &cp
	r.writes++
	return nil
}

func (r *fakeAttendanceRepo) CountByStatus(ctx context.Context, date string) ([]model.StatusCount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	counts := map[string]int{}
	for k, a := range r.rows {
		if k.date == date {
			counts[string(a.StatusOrEmpty())]++
		}
	}
	out := []model.StatusCount{}
	for status, n := range counts {
		out = append(out, model.StatusCount{Status: status, Count: n})
	}
	return out, nil
}

func (r *fakeAttendanceRepo) DeleteByStudent(ctx context.Context, studentID uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for k := range r.rows {
		if k.studentID == studentID {
			delete(r.rows, k)
			n++
		}
	}
	return n, nil
}

func (r *fakeAttendanceRepo) put(studentID uuid.UUID, date string, status model.AttendanceStatus, checkIn string) {
	a := &model.Attendance{StudentID: studentID, Date: date}
	if status != "" {
		a.Status = &status
	}
	if checkIn != "" {
		a.CheckInTime = &checkIn
	}
	r.rows[attendanceKey{studentID, date}] = a
}

func (r *fakeAttendanceRepo) countFor(studentID uuid.UUID) int {
	n := 0
	for k := range r.rows {
		if k.studentID == studentID {
			n++
		}
	}
	return n
}

type fakeAdminRepo struct {
	admins []*model.Admin
}

func (r *fakeAdminRepo) FindByUsername(ctx context.Context, username string) (*model.Admin, error) {
	for _, a := range r.admins {
		if a.Username == username {
			return a, nil
		}
	}
	return nil, nil
}

func (r *fakeAdminRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Admin, error) {
	for _, a := range r.admins {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}

func (r *fakeAdminRepo) Create(ctx context.Context, admin *model.Admin) error {
	r.admins = append(r.admins, admin)
	return nil
}

type fakeSessionRepo struct {
	sessions map[string]string
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: map[string]string{}}
}

func (r *fakeSessionRepo) Create(ctx context.Context, sessionID, adminID string, ttl time.Duration) error {
	r.sessions[sessionID] = adminID
	return nil
}

func (r *fakeSessionRepo) Get(ctx context.Context, sessionID string) (string, error) {
	adminID, ok := r.sessions[sessionID]
	if !ok {
		return "", repository.ErrSessionNotFound
	}
	return adminID, nil
}

func (r *fakeSessionRepo) Touch(ctx context.Context, sessionID string, ttl time.Duration) error {
	if _, ok := r.sessions[sessionID]; !ok {
		return repository.ErrSessionNotFound
	}
	return nil
}

func (r *fakeSessionRepo) Delete(ctx context.Context, sessionID string) error {
	delete(r.sessions, sessionID)
	return nil
}

type fakeStorage struct {
	uploads []string
	deleted []string
}

func (s *fakeStorage) UploadFile(ctx context.Context, folder string, data []byte, contentType string) (*utils.UploadResult, error) {
	if _, ok := utils.AllowedPhotoTypes[contentType]; !ok {
		return nil, errUnsupportedType
	}
	url := "http://minio.local/sias-files/" + folder + "/" + uuid.NewString()
	s.uploads = append(s.uploads, url)
	return &utils.UploadResult{FileURL: url, FileSize: int64(len(data))}, nil
}

func (s *fakeStorage) DeleteFile(ctx context.Context, fileURL string) error {
	s.deleted = append(s.deleted, fileURL)
	return nil
}

var errUnsupportedType = newError(ErrInvalidInput, "tipe file tidak diizinkan")

// fixedClock returns a now func pinned to the given local wall time.
func fixedClock(value string, loc *time.Location) func() time.Time {
	t, err := time.ParseInLocation("2006-01-02 15:04", value, loc)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return t }
}
