package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "Hadir"
	StatusSick    AttendanceStatus = "Sakit"
	StatusExcused AttendanceStatus = "Izin"
	StatusAbsent  AttendanceStatus = "Alpha"
)

// Valid true untuk keempat status yang dikenal
func (s AttendanceStatus) Valid() bool {
	switch s {
	case StatusPresent, StatusSick, StatusExcused, StatusAbsent:
		return true
	default:
		return false
	}
}

// Counted true untuk status yang menandai hari sebagai "tercatat" di rekap
func (s AttendanceStatus) Counted() bool {
	return s == StatusPresent || s == StatusSick || s == StatusExcused
}

// Attendance satu baris per (student_id, date). Date berformat YYYY-MM-DD,
// CheckInTime HH:MM. Status nil berarti belum ada status.
type Attendance struct {
	StudentID   uuid.UUID         `db:"student_id"    json:"id_siswa"`
	Date        string            `db:"date"          json:"tanggal"`
	CheckInTime *string           `db:"check_in_time" json:"jam_masuk"`
	Status      *AttendanceStatus `db:"status"        json:"status"`
	CreatedAt   time.Time         `db:"created_at"    json:"-"`
	UpdatedAt   time.Time         `db:"updated_at"    json:"-"`
}

// StatusOrEmpty status sebagai nilai, "" jika NULL
func (a *Attendance) StatusOrEmpty() AttendanceStatus {
	if a == nil || a.Status == nil {
		return ""
	}
	return *a.Status
}

type CheckInRequest struct {
	NIS string `json:"nis" validate:"required"`
}

func (r *CheckInRequest) Sanitize() {
	r.NIS = strings.TrimSpace(r.NIS)
}

type CheckInResponse struct {
	Message     string           `json:"message"`
	Name        string           `json:"nama"`
	ClassName   string           `json:"kelas"`
	Status      AttendanceStatus `json:"status"`
	CheckInTime string           `json:"jam_masuk"`
}

// SetStatusRequest: Date kosong berarti hari ini. CheckInTime nil berarti tidak dikirim.
type SetStatusRequest struct {
	NIS         string           `json:"nis"       validate:"required"`
	Date        string           `json:"tanggal"   validate:"omitempty,datetime=2006-01-02"`
	Status      AttendanceStatus `json:"status"    validate:"required,oneof=Hadir Sakit Izin Alpha"`
	CheckInTime *string          `json:"jam_masuk" validate:"omitempty,datetime=15:04"`
}

func (r *SetStatusRequest) Sanitize() {
	r.NIS = strings.TrimSpace(r.NIS)
	r.Date = strings.TrimSpace(r.Date)
	if r.CheckInTime != nil {
		t := strings.TrimSpace(*r.CheckInTime)
		r.CheckInTime = &t
	}
}

type SetStatusResponse struct {
	Message string           `json:"message"`
	NIS     string           `json:"nis"`
	Date    string           `json:"tanggal"`
	Status  AttendanceStatus `json:"status"`
}

type TodayStatusRow struct {
	Name        string `json:"nama"`
	NIS         string `json:"nis"`
	ClassName   string `json:"kelas"`
	StatusToday string `json:"status_hari_ini"`
}

type TodayStatus struct {
	Date string           `json:"tanggal"`
	Data []TodayStatusRow `json:"data"`
}

// StatusCount hasil agregasi jumlah baris per status untuk satu tanggal
type StatusCount struct {
	Status string `db:"status"`
	Count  int    `db:"count"`
}

type TodayStats struct {
	Date    string `json:"tanggal"`
	Present int    `json:"hadir"`
	Sick    int    `json:"sakit"`
	Excused int    `json:"izin"`
	Absent  int    `json:"alpha"`
	Total   int    `json:"total"`
}
