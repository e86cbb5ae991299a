package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/ahmadqo/school-attendance/internal/model"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type AdminRepository interface {
	FindByUsername(ctx context.Context, username string) (*model.Admin, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Admin, error)
	Create(ctx context.Context, admin *model.Admin) error
}

type adminRepository struct {
	db *sqlx.DB
}

func NewAdminRepository(db *sqlx.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) FindByUsername(ctx context.Context, username string) (*model.Admin, error) {
	return r.findOne(ctx, `
		SELECT id, username, password_hash, full_name, is_active, created_at, updated_at
		FROM admins
		WHERE username = $1
		LIMIT 1
	`, username)
}

func (r *adminRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Admin, error) {
	return r.findOne(ctx, `
		SELECT id, username, password_hash, full_name, is_active, created_at, updated_at
		FROM admins
		WHERE id = $1
		LIMIT 1
	`, id)
}

func (r *adminRepository) findOne(ctx context.Context, query string, arg interface{}) (*model.Admin, error) {
	var admin model.Admin
	err := r.db.GetContext(ctx, &admin, query, arg)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // not found, bukan error
		}
		return nil, err
	}
	return &admin, nil
}

func (r *adminRepository) Create(ctx context.Context, admin *model.Admin) error {
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO admins (id, username, password_hash, full_name, is_active, created_at, updated_at)
		VALUES (:id, :username, :password_hash, :full_name, :is_active, NOW(), NOW())
	`, admin)
	return mapPgError(err)
}

var _ AdminRepository = (*adminRepository)(nil)
