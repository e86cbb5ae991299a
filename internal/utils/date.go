package utils

import (
	"errors"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// ParseDate parse tanggal YYYY-MM-DD sebagai hari kalender (UTC tengah malam)
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// ParseDateRange memvalidasi format kedua tanggal dan memastikan end >= start
func ParseDateRange(start, end string) (time.Time, time.Time, error) {
	startDate, err := ParseDate(start)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	endDate, err := ParseDate(end)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if endDate.Before(startDate) {
		return time.Time{}, time.Time{}, errors.New("end before start")
	}
	return startDate, endDate, nil
}

// DaysInclusive jumlah hari kalender dari start sampai end, termasuk keduanya
func DaysInclusive(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}

func IsValidTime(s string) bool {
	_, err := time.Parse(TimeLayout, s)
	return err == nil
}

// Today tanggal dan jam "sekarang" di lokasi sekolah
func Today(now time.Time, loc *time.Location) (date string, clock string) {
	local := now.In(loc)
	return local.Format(DateLayout), local.Format(TimeLayout)
}
