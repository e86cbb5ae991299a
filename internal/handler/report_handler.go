package handler

import (
	"fmt"
	"net/http"

	"github.com/ahmadqo/school-attendance/internal/model"
	"github.com/ahmadqo/school-attendance/internal/response"
	"github.com/ahmadqo/school-attendance/internal/service"
	"github.com/ahmadqo/school-attendance/internal/utils"
)

type ReportHandler struct {
	svc service.ReportService
}

func NewReportHandler(svc service.ReportService) *ReportHandler {
	return &ReportHandler{svc: svc}
}

func reportFilter(r *http.Request) model.ReportFilter {
	q := r.URL.Query()
	return model.ReportFilter{
		Start:   utils.SanitizeString(q.Get("start")),
		End:     utils.SanitizeString(q.Get("end")),
		ClassID: q.Get("class_id"),
		NIS:     utils.SanitizeString(q.Get("nis")),
	}
}

func reportFilename(filter model.ReportFilter, ext string) string {
	return fmt.Sprintf("rekap-absensi_%s_%s.%s", filter.Start, filter.End, ext)
}

// Summary godoc
// @Summary      Attendance summary
// @Description  Hadir/Sakit/Izin/Alpha per student over an inclusive date range
// @Tags         report
// @Produce      json
// @Param        start     query    string  true   "Start date (YYYY-MM-DD)"
// @Param        end       query    string  true   "End date (YYYY-MM-DD)"
// @Param        class_id  query    string  false  "Filter by class ID"
// @Param        nis       query    string  false  "Single student"
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /report/summary [get]
func (h *ReportHandler) Summary(w http.ResponseWriter, r *http.Request) {
	report, err := h.svc.Summary(r.Context(), reportFilter(r))
	if err != nil {
		writeError(w, err, "Gagal membuat rekap")
		return
	}

	response.Success(w, "Rekap berhasil dibuat", report)
}

// SummaryCSV godoc
// @Summary      Attendance summary (CSV)
// @Tags         report
// @Produce      text/csv
// @Param        start     query    string  true   "Start date (YYYY-MM-DD)"
// @Param        end       query    string  true   "End date (YYYY-MM-DD)"
// @Param        class_id  query    string  false  "Filter by class ID"
// @Param        nis       query    string  false  "Single student"
// @Security     BearerAuth
// @Success      200  {file}    binary
// @Failure      400  {object}  response.Response
// @Router       /report/summary/csv [get]
func (h *ReportHandler) SummaryCSV(w http.ResponseWriter, r *http.Request) {
	filter := reportFilter(r)
	data, err := h.svc.SummaryCSV(r.Context(), filter)
	if err != nil {
		writeError(w, err, "Gagal membuat rekap CSV")
		return
	}

	response.Attachment(w, "text/csv; charset=utf-8", reportFilename(filter, "csv"), data)
}

// SummaryPDF godoc
// @Summary      Attendance summary (PDF)
// @Tags         report
// @Produce      application/pdf
// @Param        start     query    string  true   "Start date (YYYY-MM-DD)"
// @Param        end       query    string  true   "End date (YYYY-MM-DD)"
// @Param        class_id  query    string  false  "Filter by class ID"
// @Param        nis       query    string  false  "Single student"
// @Security     BearerAuth
// @Success      200  {file}    binary
// @Failure      400  {object}  response.Response
// @Router       /report/summary/pdf [get]
func (h *ReportHandler) SummaryPDF(w http.ResponseWriter, r *http.Request) {
	filter := reportFilter(r)
	data, err := h.svc.SummaryPDF(r.Context(), filter)
	if err != nil {
		writeError(w, err, "Gagal membuat rekap PDF")
		return
	}

	response.Attachment(w, "application/pdf", reportFilename(filter, "pdf"), data)
}
