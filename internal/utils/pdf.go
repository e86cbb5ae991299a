package utils

import (
	"bytes"
	"fmt"
	"time"

	"github.com/ahmadqo/school-attendance/internal/model"
	"github.com/jung-kurt/gofpdf"
)

type ReportPDFData struct {
	SchoolName  string
	Start       string
	End         string
	GeneratedAt time.Time
	Rows        []model.ReportRow
}

// GenerateReportPDF merender rekap absensi ke PDF A4 landscape
func GenerateReportPDF(data ReportPDFData) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(false, 15) // pindah halaman diatur manual di loop tabel
	pdf.AddPage()

	// ── Kop ──────────────────────────────────────
	pdf.SetFont("Arial", "B", 14)
	pdf.SetTextColor(0, 51, 102)
	pdf.CellFormat(0, 8, data.SchoolName, "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "B", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 7, "REKAP ABSENSI SISWA", "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Periode: %s s/d %s", formatIndonesianDate(data.Start), formatIndonesianDate(data.End)), "", 1, "C", false, 0, "")

	pdf.SetDrawColor(0, 51, 102)
	pdf.SetLineWidth(0.6)
	pdf.Line(15, pdf.GetY()+2, 282, pdf.GetY()+2)
	pdf.Ln(6)

	// ── Tabel ────────────────────────────────────
	headers := []string{"No", "NIS", "Nama", "Kelas", "Hadir", "Sakit", "Izin", "Alpha"}
	widths := []float64{10, 35, 95, 40, 22, 22, 22, 21}

	writeHeader := func() {
		pdf.SetFont("Arial", "B", 9)
		pdf.SetFillColor(0, 51, 102)
		pdf.SetTextColor(255, 255, 255)
		for i, h := range headers {
			pdf.CellFormat(widths[i], 7, h, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Arial", "", 9)
		pdf.SetTextColor(0, 0, 0)
	}
	writeHeader()

	_, pageHeight := pdf.GetPageSize()
	for i, row := range data.Rows {
		if pdf.GetY()+6 > pageHeight-20 {
			pdf.AddPage()
			writeHeader()
		}

		fill := i%2 == 0
		if fill {
			pdf.SetFillColor(240, 245, 255)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}

		pdf.CellFormat(widths[0], 6, fmt.Sprintf("%d", i+1), "1", 0, "C", fill, 0, "")
		pdf.CellFormat(widths[1], 6, row.NIS, "1", 0, "L", fill, 0, "")
		pdf.CellFormat(widths[2], 6, truncate(row.Name, 55), "1", 0, "L", fill, 0, "")
		pdf.CellFormat(widths[3], 6, truncate(row.ClassName, 22), "1", 0, "C", fill, 0, "")
		pdf.CellFormat(widths[4], 6, fmt.Sprintf("%d", row.Present), "1", 0, "C", fill, 0, "")
		pdf.CellFormat(widths[5], 6, fmt.Sprintf("%d", row.Sick), "1", 0, "C", fill, 0, "")
		pdf.CellFormat(widths[6], 6, fmt.Sprintf("%d", row.Excused), "1", 0, "C", fill, 0, "")
		pdf.CellFormat(widths[7], 6, fmt.Sprintf("%d", row.Absent), "1", 0, "C", fill, 0, "")
		pdf.Ln(-1)
	}

	if len(data.Rows) == 0 {
		pdf.CellFormat(0, 8, "Tidak ada data siswa untuk filter ini.", "1", 1, "C", false, 0, "")
	}

	// ── Footer ───────────────────────────────────
	pdf.SetY(-12)
	pdf.SetFont("Arial", "I", 7)
	pdf.SetTextColor(128, 128, 128)
	pdf.CellFormat(0, 5,
		fmt.Sprintf("Dicetak pada %s", data.GeneratedAt.Format("02/01/2006 15:04")),
		"", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("gagal generate PDF: %w", err)
	}

	return buf.Bytes(), nil
}

var namaBulan = [...]string{"", "Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember"}

func formatIndonesianDate(s string) string {
	t, err := ParseDate(s)
	if err != nil {
		return s
	}
	return fmt.Sprintf("%d %s %d", t.Day(), namaBulan[t.Month()], t.Year())
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
