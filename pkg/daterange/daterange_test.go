package daterange

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestNightsBetween(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		expected int
	}{
		{name: "three nights", start: day(2025, 7, 1), end: day(2025, 7, 4), expected: 3},
		{name: "same day", start: day(2025, 7, 1), end: day(2025, 7, 1), expected: 0},
		{name: "reversed", start: day(2025, 7, 4), end: day(2025, 7, 1), expected: 0},
		{name: "time of day ignored", start: time.Date(2025, 7, 1, 23, 59, 0, 0, time.UTC), end: time.Date(2025, 7, 2, 0, 1, 0, 0, time.UTC), expected: 1},
		{name: "month boundary", start: day(2025, 1, 30), end: day(2025, 2, 2), expected: 3},
		{name: "leap year", start: day(2024, 2, 28), end: day(2024, 3, 1), expected: 2},
		{name: "span longer than time.Duration", start: day(1700, 1, 1), end: day(2025, 1, 1), expected: 118704},
		{name: "whole calendar", start: day(1, 1, 2), end: day(9999, 12, 31), expected: 3652057},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NightsBetween(tt.start, tt.end))
		})
	}
}

func TestNightsBetween_IgnoresLocation(t *testing.T) {
	paris, err := time.LoadLocation("Europe/Paris")
	if err != nil {
		t.Skip("tzdata not available")
	}
	// Переход на летнее время 30 марта 2025 не должен влиять на число ночей
	start := time.Date(2025, 3, 29, 15, 0, 0, 0, paris)
	end := time.Date(2025, 3, 31, 11, 0, 0, 0, paris)

	assert.Equal(t, 2, NightsBetween(start, end))
}

func TestEnumerateDays(t *testing.T) {
	days := EnumerateDays(day(2025, 7, 1), day(2025, 7, 4))

	require.Len(t, days, 4)
	assert.Equal(t, day(2025, 7, 1), days[0])
	assert.Equal(t, day(2025, 7, 4), days[3])
	for i := 1; i < len(days); i++ {
		assert.True(t, days[i].After(days[i-1]))
	}

	assert.Equal(t, []time.Time{day(2025, 7, 1)}, EnumerateDays(day(2025, 7, 1), day(2025, 7, 1)))
	assert.Empty(t, EnumerateDays(day(2025, 7, 4), day(2025, 7, 1)))
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                       string
		startA, endA, startB, endB time.Time
		expected                   bool
	}{
		{
			name:   "partial overlap",
			startA: day(2025, 7, 3), endA: day(2025, 7, 6),
			startB: day(2025, 7, 1), endB: day(2025, 7, 4),
			expected: true,
		},
		{
			name:   "back to back after",
			startA: day(2025, 7, 4), endA: day(2025, 7, 6),
			startB: day(2025, 7, 1), endB: day(2025, 7, 4),
			expected: false,
		},
		{
			name:   "back to back before",
			startA: day(2025, 6, 28), endA: day(2025, 7, 1),
			startB: day(2025, 7, 1), endB: day(2025, 7, 4),
			expected: false,
		},
		{
			name:   "contained",
			startA: day(2025, 7, 2), endA: day(2025, 7, 3),
			startB: day(2025, 7, 1), endB: day(2025, 7, 4),
			expected: true,
		},
		{
			name:   "containing",
			startA: day(2025, 6, 1), endA: day(2025, 8, 1),
			startB: day(2025, 7, 1), endB: day(2025, 7, 4),
			expected: true,
		},
		{
			name:   "identical",
			startA: day(2025, 7, 1), endA: day(2025, 7, 4),
			startB: day(2025, 7, 1), endB: day(2025, 7, 4),
			expected: true,
		},
		{
			name:   "disjoint",
			startA: day(2025, 8, 1), endA: day(2025, 8, 4),
			startB: day(2025, 7, 1), endB: day(2025, 7, 4),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Overlaps(tt.startA, tt.endA, tt.startB, tt.endB))
			// Отношение симметрично
			assert.Equal(t, tt.expected, Overlaps(tt.startB, tt.endB, tt.startA, tt.endA))
		})
	}
}

func TestParse(t *testing.T) {
	d, err := Parse("2025-07-01")
	require.NoError(t, err)
	assert.Equal(t, day(2025, 7, 1), d)
	assert.Equal(t, "2025-07-01", Format(d))

	_, err = Parse("01/07/2025")
	assert.ErrorIs(t, err, ErrInvalidDate)
}
