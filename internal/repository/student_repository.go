package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/ahmadqo/school-attendance/internal/model"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type StudentRepository interface {
	FindAll(ctx context.Context, filter model.StudentFilter) ([]*model.Student, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Student, error)
	FindByNIS(ctx context.Context, nis string) (*model.Student, error)
	CountAll(ctx context.Context) (int, error)
	CountByClass(ctx context.Context, classID uuid.UUID) (int, error)
	Create(ctx context.Context, student *model.Student) error
	Update(ctx context.Context, student *model.Student) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	UpdatePhoto(ctx context.Context, id uuid.UUID, photoURL string) error
}

type studentRepository struct {
	db *sqlx.DB
}

func NewStudentRepository(db *sqlx.DB) StudentRepository {
	return &studentRepository{db: db}
}

const studentColumns = "id, nis, full_name, class_id, photo_url, created_at, updated_at"

func (r *studentRepository) FindAll(ctx context.Context, filter model.StudentFilter) ([]*model.Student, error) {
	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.ClassID != nil {
		conditions = append(conditions, fmt.Sprintf("class_id = $%d", argIdx))
		args = append(args, *filter.ClassID)
		argIdx++
	}

	if filter.NIS != "" {
		conditions = append(conditions, fmt.Sprintf("nis = $%d", argIdx))
		args = append(args, filter.NIS)
		argIdx++
	}

	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(full_name ILIKE $%d OR nis ILIKE $%d)", argIdx, argIdx))
		args = append(args, "%"+escapeLike(filter.Search)+"%")
		argIdx++
	}

	query := fmt.Sprintf(
		"SELECT %s FROM students WHERE %s ORDER BY full_name ASC, nis ASC",
		studentColumns, strings.Join(conditions, " AND "),
	)

	students := []*model.Student{}
	if err := r.db.SelectContext(ctx, &students, query, args...); err != nil {
		return nil, err
	}
	return students, nil
}

func (r *studentRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Student, error) {
	return r.findOne(ctx, "SELECT "+studentColumns+" FROM students WHERE id = $1", id)
}

func (r *studentRepository) FindByNIS(ctx context.Context, nis string) (*model.Student, error) {
	return r.findOne(ctx, "SELECT "+studentColumns+" FROM students WHERE nis = $1", nis)
}

func (r *studentRepository) findOne(ctx context.Context, query string, arg interface{}) (*model.Student, error) {
	var student model.Student
	err := r.db.GetContext(ctx, &student, query, arg)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &student, nil
}

func (r *studentRepository) CountAll(ctx context.Context) (int, error) {
	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM students")
	return total, err
}

func (r *studentRepository) CountByClass(ctx context.Context, classID uuid.UUID) (int, error) {
	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM students WHERE class_id = $1", classID)
	return total, err
}

func (r *studentRepository) Create(ctx context.Context, student *model.Student) error {
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO students (id, nis, full_name, class_id, photo_url, created_at, updated_at)
		VALUES (:id, :nis, :full_name, :class_id, :photo_url, NOW(), NOW())
	`, student)
	return mapPgError(err)
}

func (r *studentRepository) Update(ctx context.Context, student *model.Student) error {
	_, err := r.db.NamedExecContext(ctx, `
		UPDATE students SET
			nis = :nis, full_name = :full_name, class_id = :class_id, updated_at = NOW()
		WHERE id = :id
	`, student)
	return mapPgError(err)
}

func (r *studentRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM students WHERE id = $1", id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (r *studentRepository) UpdatePhoto(ctx context.Context, id uuid.UUID, photoURL string) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE students SET photo_url = $1, updated_at = NOW() WHERE id = $2",
		photoURL, id,
	)
	return err
}

// escapeLike agar input pencarian diperlakukan sebagai teks biasa di ILIKE
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

var _ StudentRepository = (*studentRepository)(nil)
