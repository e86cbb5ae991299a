package handler

import (
	"context"
	"errors"

	"github.com/ahmadqo/school-attendance/internal/model"
	"github.com/ahmadqo/school-attendance/internal/service"
	"github.com/ahmadqo/school-attendance/internal/utils"
)

const testToken = "valid-token"

type stubAuth struct {
	loggedOut string
}

func (s *stubAuth) Login(ctx context.Context, req service.LoginRequest) (*service.LoginResponse, error) {
	if req.Username != "admin" || req.Password != "Rahasia123" {
		return nil, service.ErrInvalidCredentials
	}
	return &service.LoginResponse{Token: utils.TokenPair{AccessToken: testToken}}, nil
}

func (s *stubAuth) Logout(ctx context.Context, sessionID string) error {
	s.loggedOut = sessionID
	return nil
}

func (s *stubAuth) RefreshToken(ctx context.Context, refreshToken string) (*utils.TokenPair, error) {
	return nil, service.ErrSessionExpired
}

func (s *stubAuth) Authenticate(ctx context.Context, accessToken string) (*model.JWTClaims, error) {
	if accessToken != testToken {
		return nil, service.ErrSessionExpired
	}
	return &model.JWTClaims{AdminID: "admin-1", Username: "admin", SessionID: "sess-1"}, nil
}

func (s *stubAuth) Register(ctx context.Context, req service.RegisterRequest) (*model.AdminResponse, error) {
	return &model.AdminResponse{Username: req.Username, FullName: req.FullName}, nil
}

func (s *stubAuth) Me(ctx context.Context, adminID string) (*model.AdminResponse, error) {
	return &model.AdminResponse{Username: "admin"}, nil
}

type stubClasses struct {
	deleteErr error
}

func (s *stubClasses) GetAll(ctx context.Context) ([]*model.Class, error) {
	return []*model.Class{}, nil
}

func (s *stubClasses) Create(ctx context.Context, req model.ClassRequest) (*model.Class, error) {
	return &model.Class{Name: req.Name}, nil
}

func (s *stubClasses) Update(ctx context.Context, id string, req model.ClassRequest) (*model.Class, error) {
	return &model.Class{Name: req.Name}, nil
}

func (s *stubClasses) Delete(ctx context.Context, id string) error {
	return s.deleteErr
}

type stubStudents struct{}

func (s *stubStudents) GetAll(ctx context.Context, classID, search string) ([]*model.Student, error) {
	return []*model.Student{}, nil
}

func (s *stubStudents) GetByID(ctx context.Context, id string) (*model.Student, error) {
	return nil, service.ErrStudentNotFound
}

func (s *stubStudents) Create(ctx context.Context, req model.StudentRequest) (*model.Student, error) {
	return &model.Student{NIS: req.NIS, FullName: req.FullName}, nil
}

func (s *stubStudents) Update(ctx context.Context, id string, req model.StudentRequest) (*model.Student, error) {
	return &model.Student{NIS: req.NIS, FullName: req.FullName}, nil
}

func (s *stubStudents) Delete(ctx context.Context, id string) error {
	return nil
}

func (s *stubStudents) UploadPhoto(ctx context.Context, id string, data []byte, contentType string) (*model.Student, error) {
	return &model.Student{}, nil
}

func (s *stubStudents) QRCode(ctx context.Context, id string) ([]byte, *model.Student, error) {
	return []byte("\x89PNG"), &model.Student{NIS: "1001"}, nil
}

type stubAttendance struct {
	lastNIS    string
	lastStatus model.SetStatusRequest
}

func (s *stubAttendance) CheckIn(ctx context.Context, nis string) (*model.CheckInResponse, error) {
	s.lastNIS = nis
	if nis != "1001" {
		return nil, service.ErrStudentNotFound
	}
	return &model.CheckInResponse{
		Message: "Absensi berhasil", Name: "Budi", ClassName: "X-IPA-1",
		Status: model.StatusPresent, CheckInTime: "07:00",
	}, nil
}

func (s *stubAttendance) SetStatus(ctx context.Context, req model.SetStatusRequest) (*model.SetStatusResponse, error) {
	s.lastStatus = req
	return &model.SetStatusResponse{Message: "Status tersimpan", NIS: req.NIS, Status: req.Status}, nil
}

func (s *stubAttendance) Today(ctx context.Context, classID string) (*model.TodayStatus, error) {
	return &model.TodayStatus{Date: "2024-01-10", Data: []model.TodayStatusRow{}}, nil
}

func (s *stubAttendance) StatsToday(ctx context.Context) (*model.TodayStats, error) {
	return nil, errors.New("db down")
}

type stubReport struct{}

func (s *stubReport) Summary(ctx context.Context, filter model.ReportFilter) (*model.Report, error) {
	if filter.Start == "" {
		return nil, service.ErrInvalidDate
	}
	return &model.Report{
		Range: model.ReportRange{Start: filter.Start, End: filter.End},
		Data:  []model.ReportRow{{NIS: "1001", Name: "Budi", ClassName: "X-IPA-1", Present: 1, Absent: 2}},
	}, nil
}

func (s *stubReport) SummaryCSV(ctx context.Context, filter model.ReportFilter) ([]byte, error) {
	return []byte("NIS,Nama,Kelas,Hadir,Sakit,Izin,Alpha\n"), nil
}

func (s *stubReport) SummaryPDF(ctx context.Context, filter model.ReportFilter) ([]byte, error) {
	return []byte("%PDF-1.3"), nil
}
