// Package dateutil provides date parsing and semester week arithmetic.
package dateutil

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// Validation errors.
var (
	ErrInvalidDateFormat = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidWeekday    = errors.New("weekday must be 1-7 or a day name")
)

// Week is the length of one semester week.
const Week = 7 * 24 * time.Hour

// weekdayMap maps weekday names to time.Weekday values.
var weekdayMap = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ParseDate parses a date string in YYYY-MM-DD format.
// If the string is empty, returns today's date.
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return TruncateToDay(time.Now()), nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return t, nil
}

// ParseStartDate parses a semester start date that can be:
//   - Empty string or "today": relativeTo truncated to midnight
//   - Absolute date: "2025-09-01" (YYYY-MM-DD)
//   - Weekday names: "monday" through "sunday" (that day of the current ISO week)
//
// Past dates are allowed. All inputs are case-insensitive.
func ParseStartDate(s string, relativeTo time.Time) (time.Time, error) {
	today := TruncateToDay(relativeTo)
	input := strings.ToLower(strings.TrimSpace(s))

	if input == "" || input == "today" {
		return today, nil
	}

	if target, ok := weekdayMap[input]; ok {
		monday, _ := WeekRange(today)
		return monday.AddDate(0, 0, WeekdayIndex(target)), nil
	}

	result, err := time.ParseInLocation("2006-01-02", input, relativeTo.Location())
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return result, nil
}

// WeekRange returns the Monday and Sunday of the ISO week containing t.
func WeekRange(t time.Time) (monday, sunday time.Time) {
	t = TruncateToDay(t)
	monday = t.AddDate(0, 0, -WeekdayIndex(t.Weekday()))
	sunday = monday.AddDate(0, 0, 6)
	return monday, sunday
}

// TruncateToDay returns t with time set to midnight.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// WeeksSince returns the number of full 7-day periods from start to now,
// floored and clamped to 0.
func WeeksSince(start, now time.Time) int {
	elapsed := now.Sub(start)
	if elapsed <= 0 {
		return 0
	}
	return int(elapsed / Week)
}

// WeekNumber returns the 1-based semester week containing date, or 0 if date
// is before the semester start. Only calendar days are compared.
func WeekNumber(date, semesterStart time.Time) int {
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	s := time.Date(semesterStart.Year(), semesterStart.Month(), semesterStart.Day(), 0, 0, 0, 0, time.UTC)
	days := int(d.Sub(s).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days/7 + 1
}

// ISOWeekday converts a time.Weekday to 1=Monday ... 7=Sunday.
func ISOWeekday(wd time.Weekday) int {
	if wd == time.Sunday {
		return 7
	}
	return int(wd)
}

// WeekdayIndex converts a time.Weekday to 0=Monday ... 6=Sunday.
func WeekdayIndex(wd time.Weekday) int {
	return ISOWeekday(wd) - 1
}

// ParseWeekday parses "1".."7", a day name or its three-letter prefix into
// 1=Monday ... 7=Sunday.
func ParseWeekday(s string) (int, error) {
	input := strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(input); err == nil {
		if n < 1 || n > 7 {
			return 0, ErrInvalidWeekday
		}
		return n, nil
	}
	if len(input) >= 3 {
		for name, wd := range weekdayMap {
			if strings.HasPrefix(name, input) {
				return ISOWeekday(wd), nil
			}
		}
	}
	return 0, ErrInvalidWeekday
}
