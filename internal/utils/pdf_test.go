package utils

import (
	"bytes"
	"testing"
	"time"

	"github.com/ahmadqo/school-attendance/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateReportPDF(t *testing.T) {
	rows := make([]model.ReportRow, 0, 60)
	for i := 0; i < 60; i++ {
		rows = append(rows, model.ReportRow{NIS: "1001", Name: "Budi", ClassName: "X-A", Present: 3, Absent: 2})
	}

	data, err := GenerateReportPDF(ReportPDFData{
		SchoolName:  "SMA Negeri 1",
		Start:       "2024-01-01",
		End:         "2024-01-05",
		GeneratedAt: time.Date(2024, 1, 6, 8, 0, 0, 0, time.UTC),
		Rows:        rows,
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestFormatIndonesianDate(t *testing.T) {
	assert.Equal(t, "17 Agustus 2024", formatIndonesianDate("2024-08-17"))
	assert.Equal(t, "bukan-tanggal", formatIndonesianDate("bukan-tanggal"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "pendek", truncate("pendek", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
}
