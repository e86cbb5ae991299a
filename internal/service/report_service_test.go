package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"

	"github.com/ahmadqo/school-attendance/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reportFixture struct {
	classes    *fakeClassRepo
	students   *fakeStudentRepo
	attendance *fakeAttendanceRepo
	svc        ReportService
}

func newReportFixture() *reportFixture {
	f := &reportFixture{
		classes:    &fakeClassRepo{},
		students:   &fakeStudentRepo{},
		attendance: newFakeAttendanceRepo(),
	}
	f.svc = NewReportService(f.attendance, f.students, f.classes, "SMA Negeri 1")
	return f
}

func TestSummary_ThreeDayExample(t *testing.T) {
	f := newReportFixture()
	class := f.classes.add("X-IPA-1")
	budi := f.students.add("1001", "Budi", class.ID)

	f.attendance.put(budi.ID, "2024-01-01", model.StatusPresent, "07:00")
	f.attendance.put(budi.ID, "2024-01-02", model.StatusSick, "")

	report, err := f.svc.Summary(context.Background(), model.ReportFilter{Start: "2024-01-01", End: "2024-01-03"})
	require.NoError(t, err)

	assert.Equal(t, model.ReportRange{Start: "2024-01-01", End: "2024-01-03"}, report.Range)
	require.Len(t, report.Data, 1)
	assert.Equal(t, model.ReportRow{
		NIS: "1001", Name: "Budi", ClassName: "X-IPA-1",
		Present: 1, Sick: 1, Excused: 0, Absent: 1,
	}, report.Data[0])
}

func TestSummary_NoRecordsIsAllAbsent(t *testing.T) {
	f := newReportFixture()
	class := f.classes.add("X-IPA-1")
	f.students.add("1001", "Budi", class.ID)
	f.students.add("1002", "Siti", class.ID)

	report, err := f.svc.Summary(context.Background(), model.ReportFilter{Start: "2024-02-01", End: "2024-02-07"})
	require.NoError(t, err)

	require.Len(t, report.Data, 2)
	for _, row := range report.Data {
		assert.Equal(t, 0, row.Present+row.Sick+row.Excused)
		assert.Equal(t, 7, row.Absent)
	}
}

func TestSummary_ExplicitAbsentNotDoubleCounted(t *testing.T) {
	f := newReportFixture()
	class := f.classes.add("X-IPA-1")
	budi := f.students.add("1001", "Budi", class.ID)

	f.attendance.put(budi.ID, "2024-01-01", model.StatusPresent, "07:00")
	f.attendance.put(budi.ID, "2024-01-02", model.StatusPresent, "07:03")
	f.attendance.put(budi.ID, "2024-01-03", model.StatusAbsent, "")
	f.attendance.put(budi.ID, "2024-01-04", "", "")

	report, err := f.svc.Summary(context.Background(), model.ReportFilter{Start: "2024-01-01", End: "2024-01-05"})
	require.NoError(t, err)

	row := report.Data[0]
	assert.Equal(t, 2, row.Present)
	assert.Equal(t, 3, row.Absent)
}

func TestSummary_DuplicateDateCountsOnce(t *testing.T) {
	f := newReportFixture()
	class := f.classes.add("X-IPA-1")
	budi := f.students.add("1001", "Budi", class.ID)

	f.attendance.put(budi.ID, "2024-01-01", model.StatusPresent, "07:00")
	sick := model.StatusSick
	f.attendance.extra = append(f.attendance.extra, &model.Attendance{StudentID: budi.ID, Date: "2024-01-01", Status: &sick})

	report, err := f.svc.Summary(context.Background(), model.ReportFilter{Start: "2024-01-01", End: "2024-01-02"})
	require.NoError(t, err)

	row := report.Data[0]
	assert.Equal(t, 1, row.Present)
	assert.Equal(t, 1, row.Sick)
	assert.Equal(t, 1, row.Absent)
}

func TestSummary_IgnoresRecordsOutsideRange(t *testing.T) {
	f := newReportFixture()
	class := f.classes.add("X-IPA-1")
	budi := f.students.add("1001", "Budi", class.ID)

	f.attendance.put(budi.ID, "2023-12-31", model.StatusPresent, "07:00")
	f.attendance.put(budi.ID, "2024-01-02", model.StatusExcused, "")

	report, err := f.svc.Summary(context.Background(), model.ReportFilter{Start: "2024-01-01", End: "2024-01-01"})
	require.NoError(t, err)

	assert.Equal(t, model.ReportRow{NIS: "1001", Name: "Budi", ClassName: "X-IPA-1", Absent: 1}, report.Data[0])
}

func TestSummary_Filters(t *testing.T) {
	f := newReportFixture()
	ipa := f.classes.add("X-IPA-1")
	ips := f.classes.add("X-IPS-1")
	f.students.add("1001", "Budi", ipa.ID)
	f.students.add("1002", "Siti", ipa.ID)
	f.students.add("2001", "Andi", ips.ID)
	ctx := context.Background()

	byClass, err := f.svc.Summary(ctx, model.ReportFilter{Start: "2024-01-01", End: "2024-01-01", ClassID: ips.ID.String()})
	require.NoError(t, err)
	require.Len(t, byClass.Data, 1)
	assert.Equal(t, "2001", byClass.Data[0].NIS)
	assert.Equal(t, "X-IPS-1", byClass.Data[0].ClassName)

	byNIS, err := f.svc.Summary(ctx, model.ReportFilter{Start: "2024-01-01", End: "2024-01-01", NIS: "1002"})
	require.NoError(t, err)
	require.Len(t, byNIS.Data, 1)
	assert.Equal(t, "Siti", byNIS.Data[0].Name)
}

func TestSummary_Errors(t *testing.T) {
	f := newReportFixture()
	class := f.classes.add("X-IPA-1")
	f.students.add("1001", "Budi", class.ID)
	ctx := context.Background()

	tests := []struct {
		name   string
		filter model.ReportFilter
		want   error
	}{
		{"missing start", model.ReportFilter{End: "2024-01-01"}, ErrInvalidDate},
		{"bad format", model.ReportFilter{Start: "2024/01/01", End: "2024-01-02"}, ErrInvalidDate},
		{"end before start", model.ReportFilter{Start: "2024-01-05", End: "2024-01-01"}, ErrInvalidRange},
		{"unknown nis", model.ReportFilter{Start: "2024-01-01", End: "2024-01-02", NIS: "9999"}, ErrStudentNotFound},
		{"bad class id", model.ReportFilter{Start: "2024-01-01", End: "2024-01-02", ClassID: "abc"}, ErrInvalidID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.Summary(ctx, tt.filter)
			assert.Equal(t, tt.want, err)
		})
	}
}

func TestSummary_EmptyRoster(t *testing.T) {
	f := newReportFixture()

	report, err := f.svc.Summary(context.Background(), model.ReportFilter{Start: "2024-01-01", End: "2024-01-31"})
	require.NoError(t, err)
	assert.NotNil(t, report.Data)
	assert.Empty(t, report.Data)
}

func TestSummaryCSV(t *testing.T) {
	f := newReportFixture()
	class := f.classes.add("X-IPA-1")
	budi := f.students.add("1001", "Budi", class.ID)
	f.attendance.put(budi.ID, "2024-01-01", model.StatusPresent, "07:00")

	data, err := f.svc.SummaryCSV(context.Background(), model.ReportFilter{Start: "2024-01-01", End: "2024-01-02"})
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"NIS", "Nama", "Kelas", "Hadir", "Sakit", "Izin", "Alpha"},
		{"1001", "Budi", "X-IPA-1", "1", "0", "0", "1"},
	}, records)
}

func TestSummaryPDF(t *testing.T) {
	f := newReportFixture()
	class := f.classes.add("X-IPA-1")
	f.students.add("1001", "Budi", class.ID)

	data, err := f.svc.SummaryPDF(context.Background(), model.ReportFilter{Start: "2024-01-01", End: "2024-01-02"})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))

	_, err = f.svc.SummaryPDF(context.Background(), model.ReportFilter{Start: "x", End: "y"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
