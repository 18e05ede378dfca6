package util

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-day format used by progress records.
// Recurrence tracking works in whole days, never timestamps.
const DateLayout = "2006-01-02"

const clockLayout = "15:04"

// Today returns the current UTC calendar day.
func Today() string {
	return time.Now().UTC().Format(DateLayout)
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected %s", s, DateLayout)
	}
	return t, nil
}

func ValidDate(s string) bool {
	_, err := ParseDate(s)
	return err == nil
}

// ValidClockTime reports whether s is an "HH:MM" wall-clock string,
// as used for habit reminder schedules. Zero padding is required.
func ValidClockTime(s string) bool {
	if len(s) != len(clockLayout) {
		return false
	}
	_, err := time.Parse(clockLayout, s)
	return err == nil
}

// LastNDays returns the n calendar days ending at end, oldest first.
func LastNDays(end string, n int) ([]string, error) {
	t, err := ParseDate(end)
	if err != nil {
		return nil, err
	}
	days := make([]string, 0, n)
	for i := n - 1; i >= 0; i-- {
		days = append(days, t.AddDate(0, 0, -i).Format(DateLayout))
	}
	return days, nil
}
