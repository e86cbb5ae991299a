package service

import "errors"

// Jenis error layanan; handler memetakan ke HTTP status lewat errors.Is
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
)

// Error membawa pesan untuk pengguna dan jenis error untuk pemetaan status
type Error struct {
	Kind    error
	Message string
	Fields  map[string]string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Is(target error) bool {
	return e.Kind == target
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func newError(kind error, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// ValidationError InvalidInput dengan detail per field
func ValidationError(fields map[string]string) *Error {
	return &Error{Kind: ErrInvalidInput, Message: "Validasi gagal", Fields: fields}
}

var (
	ErrInvalidID       = newError(ErrInvalidInput, "ID tidak valid")
	ErrClassNotFound   = newError(ErrNotFound, "Kelas tidak ditemukan")
	ErrClassNameExists = newError(ErrConflict, "Nama kelas sudah ada")
	ErrClassInUse      = newError(ErrConflict, "Kelas digunakan oleh data siswa")
	ErrClassInvalid    = newError(ErrInvalidInput, "Kelas tidak valid")
	ErrStudentNotFound = newError(ErrNotFound, "Siswa tidak ditemukan")
	ErrNISExists       = newError(ErrConflict, "NIS sudah terdaftar")
	ErrInvalidDate     = newError(ErrInvalidInput, "Format tanggal tidak valid (YYYY-MM-DD)")
	ErrInvalidRange    = newError(ErrInvalidInput, "Rentang tanggal tidak valid")
	ErrInvalidStatus   = newError(ErrInvalidInput, "Status tidak valid (Hadir, Sakit, Izin, Alpha)")
	ErrInvalidTime     = newError(ErrInvalidInput, "Format jam tidak valid (HH:MM)")
)
