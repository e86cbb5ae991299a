package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/ahmadqo/school-attendance/internal/model"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type ClassRepository interface {
	FindAll(ctx context.Context) ([]*model.Class, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Class, error)
	FindByName(ctx context.Context, name string) (*model.Class, error)
	Create(ctx context.Context, class *model.Class) error
	Update(ctx context.Context, class *model.Class) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type classRepository struct {
	db *sqlx.DB
}

func NewClassRepository(db *sqlx.DB) ClassRepository {
	return &classRepository{db: db}
}

func (r *classRepository) FindAll(ctx context.Context) ([]*model.Class, error) {
	classes := []*model.Class{}
	err := r.db.SelectContext(ctx, &classes,
		"SELECT id, name, created_at, updated_at FROM classes ORDER BY name ASC",
	)
	return classes, err
}

func (r *classRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Class, error) {
	return r.findOne(ctx, "SELECT id, name, created_at, updated_at FROM classes WHERE id = $1", id)
}

func (r *classRepository) FindByName(ctx context.Context, name string) (*model.Class, error) {
	return r.findOne(ctx, "SELECT id, name, created_at, updated_at FROM classes WHERE name = $1", name)
}

func (r *classRepository) findOne(ctx context.Context, query string, arg interface{}) (*model.Class, error) {
	var class model.Class
	err := r.db.GetContext(ctx, &class, query, arg)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &class, nil
}

func (r *classRepository) Create(ctx context.Context, class *model.Class) error {
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO classes (id, name, created_at, updated_at)
		VALUES (:id, :name, NOW(), NOW())
	`, class)
	return mapPgError(err)
}

// Update mengembalikan false jika id tidak ada
func (r *classRepository) Update(ctx context.Context, class *model.Class) (bool, error) {
	res, err := r.db.NamedExecContext(ctx,
		"UPDATE classes SET name = :name, updated_at = NOW() WHERE id = :id", class,
	)
	if err != nil {
		return false, mapPgError(err)
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (r *classRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM classes WHERE id = $1", id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

var _ ClassRepository = (*classRepository)(nil)
