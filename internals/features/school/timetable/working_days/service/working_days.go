// file: internals/features/school/timetable/working_days/service/working_days.go
package service

import (
	"time"
)

// CalculateWorkingDays menghitung hari kerja dari start s.d. end inklusif.
// Hari dihitung kalau weekday-nya bukan Sabtu/Minggu. Pure function, tanpa
// akses store. Pengurangan kalender libur belum diimplementasikan.
func CalculateWorkingDays(start, end time.Time) int {
	start = truncateToDate(start)
	end = truncateToDate(end)
	if end.Before(start) {
		return 0
	}

	count := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		wd := d.Weekday()
		if wd != time.Saturday && wd != time.Sunday {
			count++
		}
	}
	return count
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
