package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ahmadqo/school-attendance/internal/model"
	"github.com/ahmadqo/school-attendance/internal/repository"
	"github.com/ahmadqo/school-attendance/internal/utils"
)

const (
	displayNotCheckedIn = "Belum Absen"
	displayCheckedIn    = "Sudah Absen pukul %s"
)

type AttendanceService interface {
	CheckIn(ctx context.Context, nis string) (*model.CheckInResponse, error)
	SetStatus(ctx context.Context, req model.SetStatusRequest) (*model.SetStatusResponse, error)
	Today(ctx context.Context, classID string) (*model.TodayStatus, error)
	StatsToday(ctx context.Context) (*model.TodayStats, error)
}

type attendanceService struct {
	repo        repository.AttendanceRepository
	studentRepo repository.StudentRepository
	classRepo   repository.ClassRepository
	loc         *time.Location
	now         func() time.Time
}

// NewAttendanceService: loc menentukan "hari ini" logis (tanggal kalender lokal sekolah)
func NewAttendanceService(
	repo repository.AttendanceRepository,
	studentRepo repository.StudentRepository,
	classRepo repository.ClassRepository,
	loc *time.Location,
) AttendanceService {
	return &attendanceService{
		repo: repo, studentRepo: studentRepo, classRepo: classRepo,
		loc: loc, now: time.Now,
	}
}

func (s *attendanceService) today() (date string, clock string) {
	return utils.Today(s.now(), s.loc)
}

func (s *attendanceService) findStudentByNIS(ctx context.Context, nis string) (*model.Student, error) {
	student, err := s.studentRepo.FindByNIS(ctx, nis)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, ErrStudentNotFound
	}
	return student, nil
}

func (s *attendanceService) className(ctx context.Context, student *model.Student) (string, error) {
	class, err := s.classRepo.FindByID(ctx, student.ClassID)
	if err != nil || class == nil {
		return "", err
	}
	return class.Name, nil
}

// CheckIn mencatat Hadir untuk hari ini. Check-in kedua di hari yang sama
// mengembalikan jam masuk pertama tanpa menimpanya; status Sakit/Izin hari
// itu ditimpa menjadi Hadir.
func (s *attendanceService) CheckIn(ctx context.Context, nis string) (*model.CheckInResponse, error) {
	student, err := s.findStudentByNIS(ctx, nis)
	if err != nil {
		return nil, err
	}

	className, err := s.className(ctx, student)
	if err != nil {
		return nil, err
	}

	date, clock := s.today()

	existing, err := s.repo.FindByStudentAndDate(ctx, student.ID, date)
	if err != nil {
		return nil, err
	}
	if existing.StatusOrEmpty() == model.StatusPresent {
		return alreadyCheckedIn(student, className, existing), nil
	}

	stored, err := s.repo.CheckIn(ctx, student.ID, date, clock)
	if err != nil {
		return nil, err
	}
	// Kalah balapan dengan check-in lain: jam masuk yang tersimpan berbeda
	if stored.CheckInTime == nil || *stored.CheckInTime != clock {
		return alreadyCheckedIn(student, className, stored), nil
	}

	return &model.CheckInResponse{
		Message:     "Absensi berhasil",
		Name:        student.FullName,
		ClassName:   className,
		Status:      model.StatusPresent,
		CheckInTime: clock,
	}, nil
}

func alreadyCheckedIn(student *model.Student, className string, a *model.Attendance) *model.CheckInResponse {
	checkInTime := "-"
	if a.CheckInTime != nil {
		checkInTime = *a.CheckInTime
	}
	return &model.CheckInResponse{
		Message:     fmt.Sprintf("Sudah absen hari ini pada %s", checkInTime),
		Name:        student.FullName,
		ClassName:   className,
		Status:      model.StatusPresent,
		CheckInTime: checkInTime,
	}
}

// SetStatus menimpa status (student, tanggal) tanpa syarat. Untuk Hadir jam masuk
// default ke jam sekarang; untuk status lain jam masuk hanya ditulis jika dikirim.
func (s *attendanceService) SetStatus(ctx context.Context, req model.SetStatusRequest) (*model.SetStatusResponse, error) {
	if !req.Status.Valid() {
		return nil, ErrInvalidStatus
	}

	date, clock := s.today()
	if req.Date != "" {
		if _, err := utils.ParseDate(req.Date); err != nil {
			return nil, ErrInvalidDate
		}
		date = req.Date
	}

	if req.CheckInTime != nil && !utils.IsValidTime(*req.CheckInTime) {
		return nil, ErrInvalidTime
	}

	student, err := s.findStudentByNIS(ctx, req.NIS)
	if err != nil {
		return nil, err
	}

	status := req.Status
	record := &model.Attendance{
		StudentID:   student.ID,
		Date:        date,
		Status:      &status,
		CheckInTime: req.CheckInTime,
	}
	if status == model.StatusPresent && record.CheckInTime == nil {
		record.CheckInTime = &clock
	}

	if err := s.repo.Upsert(ctx, record); err != nil {
		return nil, err
	}

	return &model.SetStatusResponse{
		Message: "Status tersimpan",
		NIS:     req.NIS,
		Date:    date,
		Status:  status,
	}, nil
}

// Today status tampilan hari ini untuk setiap siswa (opsional per kelas)
func (s *attendanceService) Today(ctx context.Context, classID string) (*model.TodayStatus, error) {
	cid, err := parseOptionalClassID(classID)
	if err != nil {
		return nil, err
	}

	students, err := s.studentRepo.FindAll(ctx, model.StudentFilter{ClassID: cid})
	if err != nil {
		return nil, err
	}

	date, _ := s.today()
	records, err := s.repo.FindByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	byStudent := make(map[string]*model.Attendance, len(records))
	for _, a := range records {
		byStudent[a.StudentID.String()] = a
	}

	roster, err := loadRoster(ctx, s.classRepo)
	if err != nil {
		return nil, err
	}

	rows := make([]model.TodayStatusRow, 0, len(students))
	for _, st := range students {
		rows = append(rows, model.TodayStatusRow{
			Name:        st.FullName,
			NIS:         st.NIS,
			ClassName:   roster.ClassName(st.ClassID),
			StatusToday: displayStatus(byStudent[st.ID.String()]),
		})
	}

	return &model.TodayStatus{Date: date, Data: rows}, nil
}

func displayStatus(a *model.Attendance) string {
	switch status := a.StatusOrEmpty(); status {
	case model.StatusPresent:
		checkInTime := "-"
		if a.CheckInTime != nil {
			checkInTime = *a.CheckInTime
		}
		return fmt.Sprintf(displayCheckedIn, checkInTime)
	case model.StatusSick, model.StatusExcused, model.StatusAbsent:
		return string(status)
	default:
		return displayNotCheckedIn
	}
}

// StatsToday hitungan satu hari untuk seluruh sekolah. Alpha = total siswa
// dikurangi yang tercatat Hadir/Sakit/Izin; berbeda dari derivasi per siswa di rekap.
func (s *attendanceService) StatsToday(ctx context.Context) (*model.TodayStats, error) {
	date, _ := s.today()

	total, err := s.studentRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	counts, err := s.repo.CountByStatus(ctx, date)
	if err != nil {
		return nil, err
	}

	stats := &model.TodayStats{Date: date, Total: total}
	for _, c := range counts {
		switch model.AttendanceStatus(c.Status) {
		case model.StatusPresent:
			stats.Present = c.Count
		case model.StatusSick:
			stats.Sick = c.Count
		case model.StatusExcused:
			stats.Excused = c.Count
		}
	}
	stats.Absent = max(0, total-(stats.Present+stats.Sick+stats.Excused))

	return stats, nil
}
