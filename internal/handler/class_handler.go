package handler

import (
	"net/http"

	"github.com/ahmadqo/school-attendance/internal/model"
	"github.com/ahmadqo/school-attendance/internal/response"
	"github.com/ahmadqo/school-attendance/internal/service"
	"github.com/go-chi/chi/v5"
)

type ClassHandler struct {
	svc service.ClassService
}

func NewClassHandler(svc service.ClassService) *ClassHandler {
	return &ClassHandler{svc: svc}
}

// GetAll godoc
// @Summary      List classes
// @Tags         classes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Router       /classes [get]
func (h *ClassHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	classes, err := h.svc.GetAll(r.Context())
	if err != nil {
		writeError(w, err, "Gagal mengambil data kelas")
		return
	}

	response.Success(w, "Data kelas berhasil diambil", classes)
}

// Create godoc
// @Summary      Create class
// @Tags         classes
// @Accept       json
// @Produce      json
// @Param        request  body      model.ClassRequest  true  "Class"
// @Security     BearerAuth
// @Success      201      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Router       /classes [post]
func (h *ClassHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.ClassRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	class, err := h.svc.Create(r.Context(), req)
	if err != nil {
		writeError(w, err, "Gagal membuat kelas")
		return
	}

	response.Created(w, "Kelas berhasil dibuat", class)
}

// Update godoc
// @Summary      Rename class
// @Tags         classes
// @Accept       json
// @Produce      json
// @Param        id       path      string              true  "Class ID"
// @Param        request  body      model.ClassRequest  true  "Class"
// @Security     BearerAuth
// @Success      200      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Router       /classes/{id} [put]
func (h *ClassHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req model.ClassRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	class, err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		writeError(w, err, "Gagal mengupdate kelas")
		return
	}

	response.Success(w, "Kelas berhasil diupdate", class)
}

// Delete godoc
// @Summary      Delete class
// @Description  Rejected while students still reference the class
// @Tags         classes
// @Produce      json
// @Param        id   path      string  true  "Class ID"
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /classes/{id} [delete]
func (h *ClassHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err, "Gagal menghapus kelas")
		return
	}

	response.Success(w, "Kelas berhasil dihapus", nil)
}
