package handler

import (
	"net/http"

	"github.com/ahmadqo/school-attendance/internal/model"
	"github.com/ahmadqo/school-attendance/internal/response"
	"github.com/ahmadqo/school-attendance/internal/service"
)

type AttendanceHandler struct {
	svc service.AttendanceService
}

func NewAttendanceHandler(svc service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{svc: svc}
}

// CheckIn godoc
// @Summary      Student check-in
// @Description  Record Hadir for today. Repeated check-ins keep the first time.
// @Tags         attendance
// @Accept       json
// @Produce      json
// @Param        request  body      model.CheckInRequest  true  "NIS"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /attendance/checkin [post]
func (h *AttendanceHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	var req model.CheckInRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.svc.CheckIn(r.Context(), req.NIS)
	if err != nil {
		writeError(w, err, "Gagal mencatat absensi")
		return
	}

	response.Success(w, result.Message, result)
}

// SetStatus godoc
// @Summary      Set attendance status
// @Description  Overwrite the status of a student on a date (default today)
// @Tags         attendance
// @Accept       json
// @Produce      json
// @Param        request  body      model.SetStatusRequest  true  "Status"
// @Security     BearerAuth
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /attendance/status [put]
func (h *AttendanceHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	var req model.SetStatusRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.svc.SetStatus(r.Context(), req)
	if err != nil {
		writeError(w, err, "Gagal menyimpan status")
		return
	}

	response.Success(w, result.Message, result)
}

// Today godoc
// @Summary      Today's status
// @Description  Display status of every student for the school's current date
// @Tags         attendance
// @Produce      json
// @Param        class_id  query    string  false  "Filter by class ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /attendance/today [get]
func (h *AttendanceHandler) Today(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.Today(r.Context(), r.URL.Query().Get("class_id"))
	if err != nil {
		writeError(w, err, "Gagal mengambil status hari ini")
		return
	}

	response.Success(w, "Status hari ini berhasil diambil", result)
}

// StatsToday godoc
// @Summary      Today's statistics
// @Tags         attendance
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /stats/today [get]
func (h *AttendanceHandler) StatsToday(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.StatsToday(r.Context())
	if err != nil {
		writeError(w, err, "Gagal mengambil statistik")
		return
	}

	response.Success(w, "Statistik hari ini berhasil diambil", result)
}
