// Package daterange содержит арифметику календарных дат для бронирований.
//
// Все даты приводятся к полуночи UTC перед сравнением, время суток игнорируется.
// Диапазон бронирования полуоткрытый: [start, end) - день выезда не занят,
// поэтому бронирования "встык" не пересекаются.
package daterange

import (
	"errors"
	"time"
)

// DateFormat формат календарной даты в API
const DateFormat = "2006-01-02"

const secondsPerDay = 24 * 60 * 60

// ErrInvalidDate возвращается при ошибке разбора даты
var ErrInvalidDate = errors.New("daterange: invalid date, expected YYYY-MM-DD")

// Truncate отбрасывает время суток, оставляя календарную дату в UTC
func Truncate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Parse разбирает дату формата YYYY-MM-DD
func Parse(s string) (time.Time, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// Format форматирует дату в YYYY-MM-DD
func Format(t time.Time) string {
	return Truncate(t).Format(DateFormat)
}

// NightsBetween количество ночей в [start, end).
// Для end <= start возвращает 0.
func NightsBetween(start, end time.Time) int {
	s, e := Truncate(start), Truncate(end)
	if !e.After(s) {
		return 0
	}
	// Разница через Unix-секунды: time.Duration переполняется после ~292 лет
	return int((e.Unix() - s.Unix()) / secondsPerDay)
}

// EnumerateDays возвращает все календарные дни от start до end включительно, по возрастанию
func EnumerateDays(start, end time.Time) []time.Time {
	s, e := Truncate(start), Truncate(end)
	if e.Before(s) {
		return []time.Time{}
	}

	days := make([]time.Time, 0, NightsBetween(s, e)+1)
	for d := s; !d.After(e); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// Overlaps true, если полуоткрытые интервалы [startA, endA) и [startB, endB) пересекаются.
// startA < endB && endA > startB, неравенства строгие.
func Overlaps(startA, endA, startB, endB time.Time) bool {
	return Truncate(startA).Before(Truncate(endB)) && Truncate(endA).After(Truncate(startB))
}

// IsValid true, если диапазон содержит хотя бы одну ночь
func IsValid(start, end time.Time) bool {
	return NightsBetween(start, end) > 0
}
