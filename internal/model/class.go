package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Class struct {
	ID        uuid.UUID `db:"id"         json:"id"`
	Name      string    `db:"name"       json:"nama_kelas"`
	CreatedAt time.Time `db:"created_at" json:"-"`
	UpdatedAt time.Time `db:"updated_at" json:"-"`
}

type ClassRequest struct {
	Name string `json:"nama_kelas" validate:"required,max=100"`
}

func (r *ClassRequest) Sanitize() {
	r.Name = strings.TrimSpace(r.Name)
}
