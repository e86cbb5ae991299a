package database

import (
	"context"
	"log"
	"strings"

	"github.com/ahmadqo/school-attendance/internal/config"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
)

type Seeder struct {
	db *sqlx.DB
}

func NewSeeder(db *sqlx.DB) *Seeder {
	return &Seeder{db: db}
}

// SeedAdmin membuat akun admin default jika belum ada admin sama sekali
func (s *Seeder) SeedAdmin(ctx context.Context, cfg config.AdminSeedConfig) error {
	var count int
	if err := s.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM admins"); err != nil {
		return err
	}
	if count > 0 {
		log.Println("Admin already exists, skipping seed")
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO admins (id, username, password_hash, full_name, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, TRUE, NOW(), NOW())
	`, uuid.New(), strings.ToLower(cfg.Username), string(hashedPassword), cfg.FullName)
	if err != nil {
		return err
	}

	log.Printf("Default admin created: username=%s (segera ganti password setelah login pertama)", cfg.Username)
	return nil
}
