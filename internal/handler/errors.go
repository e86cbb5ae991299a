package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/ahmadqo/school-attendance/internal/response"
	"github.com/ahmadqo/school-attendance/internal/service"
	"github.com/ahmadqo/school-attendance/internal/utils"
)

// writeError memetakan error layanan ke HTTP status. Error tak dikenal dicatat
// dan dibalas dengan pesan generik.
func writeError(w http.ResponseWriter, err error, fallback string) {
	var svcErr *service.Error
	switch {
	case errors.Is(err, service.ErrNotFound):
		response.NotFound(w, err.Error())
	case errors.Is(err, service.ErrConflict):
		response.Conflict(w, err.Error())
	case errors.Is(err, service.ErrUnauthorized):
		response.Unauthorized(w, err.Error())
	case errors.Is(err, service.ErrInvalidInput):
		if errors.As(err, &svcErr) && len(svcErr.Fields) > 0 {
			response.BadRequest(w, svcErr.Message, svcErr.Fields)
			return
		}
		response.BadRequest(w, err.Error(), nil)
	default:
		log.Printf("%s: %v", fallback, err)
		response.InternalError(w, fallback)
	}
}

type sanitizer interface {
	Sanitize()
}

// decodeAndValidate decode body JSON, rapikan input, lalu jalankan tag validate.
// false berarti response error sudah ditulis.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := utils.DecodeJSON(r, dst); err != nil {
		response.BadRequest(w, "Format request tidak valid", err.Error())
		return false
	}
	if s, ok := dst.(sanitizer); ok {
		s.Sanitize()
	}
	if errs := utils.Validate(dst); errs.HasErrors() {
		response.BadRequest(w, "Validasi gagal", errs)
		return false
	}
	return true
}
