package handler

import (
	"fmt"
	"io"
	"net/http"

	"github.com/ahmadqo/school-attendance/internal/model"
	"github.com/ahmadqo/school-attendance/internal/response"
	"github.com/ahmadqo/school-attendance/internal/service"
	"github.com/ahmadqo/school-attendance/internal/utils"
	"github.com/go-chi/chi/v5"
)

type StudentHandler struct {
	svc service.StudentService
}

func NewStudentHandler(svc service.StudentService) *StudentHandler {
	return &StudentHandler{svc: svc}
}

// GetAll retrieves students with optional filters
// @Summary      Get all students
// @Description  List students ordered by name
// @Tags         students
// @Produce      json
// @Param        class_id  query    string  false  "Filter by class ID"
// @Param        q         query    string  false  "Search by NIS or name"
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /students [get]
func (h *StudentHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	students, err := h.svc.GetAll(r.Context(), q.Get("class_id"), utils.SanitizeString(q.Get("q")))
	if err != nil {
		writeError(w, err, "Gagal mengambil data siswa")
		return
	}

	response.Success(w, "Data siswa berhasil diambil", students)
}

// GetByID retrieves a student by ID
// @Summary      Get student by ID
// @Tags         students
// @Produce      json
// @Param        id   path      string  true  "Student ID"
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /students/{id} [get]
func (h *StudentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	student, err := h.svc.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err, "Gagal mengambil data siswa")
		return
	}

	response.Success(w, "Data siswa berhasil diambil", student)
}

// Create adds a new student
// @Summary      Create a student
// @Tags         students
// @Accept       json
// @Produce      json
// @Param        request  body      model.StudentRequest  true  "Student"
// @Security     BearerAuth
// @Success      201      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Router       /students [post]
func (h *StudentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.StudentRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	student, err := h.svc.Create(r.Context(), req)
	if err != nil {
		writeError(w, err, "Gagal membuat data siswa")
		return
	}

	response.Created(w, "Data siswa berhasil dibuat", student)
}

// Update modifies an existing student's data
// @Summary      Update a student
// @Tags         students
// @Accept       json
// @Produce      json
// @Param        id       path      string                true  "Student ID"
// @Param        request  body      model.StudentRequest  true  "Student"
// @Security     BearerAuth
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Router       /students/{id} [put]
func (h *StudentHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req model.StudentRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	student, err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		writeError(w, err, "Gagal mengupdate data siswa")
		return
	}

	response.Success(w, "Data siswa berhasil diupdate", student)
}

// Delete removes a student
// @Summary      Delete a student
// @Description  Delete a student together with all attendance records and photo
// @Tags         students
// @Produce      json
// @Param        id   path      string  true  "Student ID"
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /students/{id} [delete]
func (h *StudentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err, "Gagal menghapus data siswa")
		return
	}

	response.Success(w, "Data siswa berhasil dihapus", nil)
}

// UploadPhoto uploads or replaces a student's photo
// @Summary      Upload student photo
// @Description  Upload a JPEG or PNG photo for a student (max 5MB)
// @Tags         students
// @Accept       multipart/form-data
// @Produce      json
// @Param        id     path      string  true  "Student ID"
// @Param        photo  formData  file    true  "Photo file"
// @Security     BearerAuth
// @Success      200    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Router       /students/{id}/photo [post]
func (h *StudentHandler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, utils.MaxPhotoSize)
	if err := r.ParseMultipartForm(utils.MaxPhotoSize); err != nil {
		response.BadRequest(w, "File terlalu besar atau format tidak valid", nil)
		return
	}

	file, header, err := r.FormFile("photo")
	if err != nil {
		response.BadRequest(w, "File foto tidak ditemukan dalam request", nil)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if _, ok := utils.AllowedPhotoTypes[contentType]; !ok {
		response.BadRequest(w, "Format foto hanya JPG dan PNG", nil)
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		response.InternalError(w, "Gagal membaca file")
		return
	}

	student, err := h.svc.UploadPhoto(r.Context(), chi.URLParam(r, "id"), data, contentType)
	if err != nil {
		writeError(w, err, "Gagal mengupload foto")
		return
	}

	response.Success(w, "Foto berhasil diupload", student)
}

// QRCode returns the student's QR card as PNG
// @Summary      Student QR code
// @Description  PNG QR code encoding the NIS, for the check-in kiosk
// @Tags         students
// @Produce      png
// @Param        id   path      string  true  "Student ID"
// @Param        download  query  bool  false  "Send as attachment"
// @Security     BearerAuth
// @Success      200  {file}    binary
// @Failure      404  {object}  response.Response
// @Router       /students/{id}/qrcode [get]
func (h *StudentHandler) QRCode(w http.ResponseWriter, r *http.Request) {
	png, student, err := h.svc.QRCode(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err, "Gagal membuat QR code")
		return
	}

	if r.URL.Query().Get("download") == "true" {
		response.Attachment(w, "image/png", fmt.Sprintf("qr-%s.png", student.NIS), png)
		return
	}
	response.Inline(w, "image/png", png)
}
