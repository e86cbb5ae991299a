package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/ahmadqo/school-attendance/internal/model"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// AttendanceRepository menjaga invariant satu baris per (student_id, date)
// lewat constraint attendance_student_date_key dan upsert ON CONFLICT.
type AttendanceRepository interface {
	FindByStudentAndDate(ctx context.Context, studentID uuid.UUID, date string) (*model.Attendance, error)
	FindByDate(ctx context.Context, date string) ([]*model.Attendance, error)
	FindByStudentsInRange(ctx context.Context, studentIDs []uuid.UUID, start, end string) ([]*model.Attendance, error)
	CheckIn(ctx context.Context, studentID uuid.UUID, date, checkInTime string) (*model.Attendance, error)
	Upsert(ctx context.Context, attendance *model.Attendance) error
	CountByStatus(ctx context.Context, date string) ([]model.StatusCount, error)
	DeleteByStudent(ctx context.Context, studentID uuid.UUID) (int64, error)
}

type attendanceRepository struct {
	db *sqlx.DB
}

func NewAttendanceRepository(db *sqlx.DB) AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `student_id, to_char(date, 'YYYY-MM-DD') AS date, check_in_time, status, created_at, updated_at`

func (r *attendanceRepository) FindByStudentAndDate(ctx context.Context, studentID uuid.UUID, date string) (*model.Attendance, error) {
	var a model.Attendance
	err := r.db.GetContext(ctx, &a,
		"SELECT "+attendanceColumns+" FROM attendance WHERE student_id = $1 AND date = $2::date",
		studentID, date,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *attendanceRepository) FindByDate(ctx context.Context, date string) ([]*model.Attendance, error) {
	rows := []*model.Attendance{}
	err := r.db.SelectContext(ctx, &rows,
		"SELECT "+attendanceColumns+" FROM attendance WHERE date = $1::date", date,
	)
	return rows, err
}

func (r *attendanceRepository) FindByStudentsInRange(ctx context.Context, studentIDs []uuid.UUID, start, end string) ([]*model.Attendance, error) {
	rows := []*model.Attendance{}
	if len(studentIDs) == 0 {
		return rows, nil
	}

	query, args, err := sqlx.In(
		"SELECT "+attendanceColumns+` FROM attendance
		WHERE student_id IN (?) AND date BETWEEN ?::date AND ?::date
		ORDER BY date ASC`,
		studentIDs, start, end,
	)
	if err != nil {
		return nil, err
	}

	err = r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...)
	return rows, err
}

// CheckIn menulis status Hadir secara atomik. Baris yang sudah Hadir tidak ditimpa;
// dalam kasus itu baris yang sudah ada dikembalikan apa adanya.
func (r *attendanceRepository) CheckIn(ctx context.Context, studentID uuid.UUID, date, checkInTime string) (*model.Attendance, error) {
	var a model.Attendance
	err := r.db.GetContext(ctx, &a, `
		INSERT INTO attendance (student_id, date, check_in_time, status, created_at, updated_at)
		VALUES ($1, $2::date, $3, $4, NOW(), NOW())
		ON CONFLICT (student_id, date) DO UPDATE SET
			check_in_time = EXCLUDED.check_in_time,
			status        = EXCLUDED.status,
			updated_at    = NOW()
		WHERE attendance.status IS DISTINCT FROM EXCLUDED.status
		RETURNING `+attendanceColumns,
		studentID, date, checkInTime, string(model.StatusPresent),
	)
	if err == nil {
		return &a, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	// Konflik dengan baris Hadir yang sudah ada (mis. check-in bersamaan)
	existing, err := r.FindByStudentAndDate(ctx, studentID, date)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, errors.New("attendance row vanished during check-in")
	}
	return existing, nil
}

// Upsert menimpa status untuk (student_id, date). CheckInTime nil mempertahankan
// jam masuk yang sudah tersimpan.
func (r *attendanceRepository) Upsert(ctx context.Context, a *model.Attendance) error {
	var status *string
	if a.Status != nil {
		s := string(*a.Status)
		status = &s
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO attendance (student_id, date, check_in_time, status, created_at, updated_at)
		VALUES ($1, $2::date, $3, $4, NOW(), NOW())
		ON CONFLICT (student_id, date) DO UPDATE SET
			status        = EXCLUDED.status,
			check_in_time = COALESCE(EXCLUDED.check_in_time, attendance.check_in_time),
			updated_at    = NOW()
	`, a.StudentID, a.Date, a.CheckInTime, status)
	return err
}

func (r *attendanceRepository) CountByStatus(ctx context.Context, date string) ([]model.StatusCount, error) {
	counts := []model.StatusCount{}
	err := r.db.SelectContext(ctx, &counts, `
		SELECT COALESCE(status, '') AS status, COUNT(*) AS count
		FROM attendance
		WHERE date = $1::date
		GROUP BY status
	`, date)
	return counts, err
}

func (r *attendanceRepository) DeleteByStudent(ctx context.Context, studentID uuid.UUID) (int64, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM attendance WHERE student_id = $1", studentID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

var _ AttendanceRepository = (*attendanceRepository)(nil)
