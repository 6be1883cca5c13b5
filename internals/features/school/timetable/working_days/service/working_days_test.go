// file: internals/features/school/timetable/working_days/service/working_days_test.go
package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCalculateWorkingDays(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{
			// Senin 5 Jan s.d. Minggu 11 Jan 2026
			name:  "full week counts weekdays only",
			start: date(2026, time.January, 5),
			end:   date(2026, time.January, 11),
			want:  5,
		},
		{
			name:  "single weekday",
			start: date(2026, time.January, 7), // Rabu
			end:   date(2026, time.January, 7),
			want:  1,
		},
		{
			name:  "single saturday",
			start: date(2026, time.January, 10),
			end:   date(2026, time.January, 10),
			want:  0,
		},
		{
			name:  "weekend only",
			start: date(2026, time.January, 10), // Sabtu
			end:   date(2026, time.January, 11), // Minggu
			want:  0,
		},
		{
			name:  "end before start",
			start: date(2026, time.January, 11),
			end:   date(2026, time.January, 5),
			want:  0,
		},
		{
			// 1 Jan 2026 = Kamis; 31 hari, 5 Sabtu + 4 Minggu
			name:  "full month january 2026",
			start: date(2026, time.January, 1),
			end:   date(2026, time.January, 31),
			want:  22,
		},
		{
			name:  "time of day ignored",
			start: time.Date(2026, time.January, 5, 23, 59, 0, 0, time.UTC),
			end:   time.Date(2026, time.January, 9, 0, 1, 0, 0, time.UTC),
			want:  5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateWorkingDays(tt.start, tt.end))
		})
	}
}
