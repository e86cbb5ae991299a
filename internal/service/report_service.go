package service

import (
	"bytes"
	"context"
	"time"

	"github.com/ahmadqo/school-attendance/internal/model"
	"github.com/ahmadqo/school-attendance/internal/repository"
	"github.com/ahmadqo/school-attendance/internal/utils"
	"github.com/google/uuid"
)

type ReportService interface {
	Summary(ctx context.Context, filter model.ReportFilter) (*model.Report, error)
	SummaryCSV(ctx context.Context, filter model.ReportFilter) ([]byte, error)
	SummaryPDF(ctx context.Context, filter model.ReportFilter) ([]byte, error)
}

type reportService struct {
	attendanceRepo repository.AttendanceRepository
	studentRepo    repository.StudentRepository
	classRepo      repository.ClassRepository
	schoolName     string
	now            func() time.Time
}

func NewReportService(
	attendanceRepo repository.AttendanceRepository,
	studentRepo repository.StudentRepository,
	classRepo repository.ClassRepository,
	schoolName string,
) ReportService {
	return &reportService{
		attendanceRepo: attendanceRepo, studentRepo: studentRepo, classRepo: classRepo,
		schoolName: schoolName, now: time.Now,
	}
}

// Summary rekap Hadir/Sakit/Izin/Alpha per siswa pada rentang [start, end].
//
// Pass pertama menghitung baris Hadir/Sakit/Izin dan mencatat tanggalnya per siswa.
// Baris Alpha atau tanpa status diabaikan. Pass kedua menurunkan Alpha sebagai
// jumlah hari dalam rentang dikurangi tanggal yang tercatat.
func (s *reportService) Summary(ctx context.Context, filter model.ReportFilter) (*model.Report, error) {
	if _, err := utils.ParseDate(filter.Start); err != nil {
		return nil, ErrInvalidDate
	}
	if _, err := utils.ParseDate(filter.End); err != nil {
		return nil, ErrInvalidDate
	}
	start, end, err := utils.ParseDateRange(filter.Start, filter.End)
	if err != nil {
		return nil, ErrInvalidRange
	}

	classID, err := parseOptionalClassID(filter.ClassID)
	if err != nil {
		return nil, err
	}

	students, err := s.studentRepo.FindAll(ctx, model.StudentFilter{ClassID: classID, NIS: filter.NIS})
	if err != nil {
		return nil, err
	}
	if filter.NIS != "" && len(students) == 0 {
		return nil, ErrStudentNotFound
	}

	roster, err := loadRoster(ctx, s.classRepo)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(students))
	rows := make([]model.ReportRow, len(students))
	index := make(map[uuid.UUID]int, len(students))
	recorded := make(map[uuid.UUID]map[string]struct{}, len(students))
	for i, st := range students {
		ids = append(ids, st.ID)
		index[st.ID] = i
		recorded[st.ID] = map[string]struct{}{}
		rows[i] = model.ReportRow{
			NIS:       st.NIS,
			Name:      st.FullName,
			ClassName: roster.ClassName(st.ClassID),
		}
	}

	records, err := s.attendanceRepo.FindByStudentsInRange(ctx, ids, filter.Start, filter.End)
	if err != nil {
		return nil, err
	}

	for _, a := range records {
		i, ok := index[a.StudentID]
		if !ok {
			continue
		}
		switch a.StatusOrEmpty() {
		case model.StatusPresent:
			rows[i].Present++
		case model.StatusSick:
			rows[i].Sick++
		case model.StatusExcused:
			rows[i].Excused++
		default:
			continue
		}
		recorded[a.StudentID][a.Date] = struct{}{}
	}

	totalDays := utils.DaysInclusive(start, end)
	for i, st := range students {
		rows[i].Absent = max(0, totalDays-len(recorded[st.ID]))
	}

	return &model.Report{
		Range: model.ReportRange{Start: filter.Start, End: filter.End},
		Data:  rows,
	}, nil
}

func (s *reportService) SummaryCSV(ctx context.Context, filter model.ReportFilter) ([]byte, error) {
	report, err := s.Summary(ctx, filter)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := utils.WriteReportCSV(&buf, report.Data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *reportService) SummaryPDF(ctx context.Context, filter model.ReportFilter) ([]byte, error) {
	report, err := s.Summary(ctx, filter)
	if err != nil {
		return nil, err
	}

	return utils.GenerateReportPDF(utils.ReportPDFData{
		SchoolName:  s.schoolName,
		Start:       report.Range.Start,
		End:         report.Range.End,
		GeneratedAt: s.now(),
		Rows:        report.Data,
	})
}
