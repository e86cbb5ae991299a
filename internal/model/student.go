package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Student struct {
	ID        uuid.UUID `db:"id"         json:"id"`
	NIS       string    `db:"nis"        json:"nis"`
	FullName  string    `db:"full_name"  json:"nama_lengkap"`
	ClassID   uuid.UUID `db:"class_id"   json:"id_kelas"`
	PhotoURL  *string   `db:"photo_url"  json:"photo_url"`
	CreatedAt time.Time `db:"created_at" json:"-"`
	UpdatedAt time.Time `db:"updated_at" json:"-"`

	// Diisi oleh roster, bukan kolom tabel
	ClassName string `db:"-" json:"nama_kelas"`
}

type StudentRequest struct {
	NIS      string `json:"nis"          validate:"required,max=30"`
	FullName string `json:"nama_lengkap" validate:"required,max=200"`
	ClassID  string `json:"id_kelas"     validate:"required,uuid"`
}

func (r *StudentRequest) Sanitize() {
	r.NIS = strings.TrimSpace(r.NIS)
	r.FullName = strings.TrimSpace(r.FullName)
	r.ClassID = strings.TrimSpace(r.ClassID)
}

type StudentFilter struct {
	ClassID *uuid.UUID
	NIS     string
	Search  string
}
