package utils

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/ahmadqo/school-attendance/internal/model"
)

var reportCSVHeader = []string{"NIS", "Nama", "Kelas", "Hadir", "Sakit", "Izin", "Alpha"}

// WriteReportCSV menulis rekap absensi sebagai CSV dengan header tetap
func WriteReportCSV(w io.Writer, rows []model.ReportRow) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(reportCSVHeader); err != nil {
		return err
	}

	for _, row := range rows {
		record := []string{
			row.NIS,
			row.Name,
			row.ClassName,
			strconv.Itoa(row.Present),
			strconv.Itoa(row.Sick),
			strconv.Itoa(row.Excused),
			strconv.Itoa(row.Absent),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
