package pkg

import (
	"fmt"
	"os"
	"time"
	"unsafe"
)

// BytesToString converts bytes slice to a string without extra allocation
func BytesToString(buf []byte) string {
	return *(*string)(unsafe.Pointer(&buf))
}

// PathExists returns whether the given file or directory exists
func PathExists(path string, isDir bool) (bool, error) {
	stat, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	if isDir != stat.IsDir() {
		return false, fmt.Errorf("path %s: is dir = %t, expected %t", path, stat.IsDir(), isDir)
	}
	return true, nil
}

const dayLayout = "2006-01-02"

// ParseDay accepts either a plain date (2006-01-02) or an RFC3339 timestamp
// and returns the calendar day at 00:00 UTC.
func ParseDay(value string) (time.Time, error) {
	if t, err := time.Parse(dayLayout, value); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date [%s], expected YYYY-MM-DD or RFC3339", value)
	}
	return TruncateToDay(t), nil
}

// TruncateToDay returns the UTC midnight of the day t falls on (in UTC).
func TruncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseMonth parses YYYY-MM and returns the first day of that month (UTC).
// Empty value means the current month.
func ParseMonth(value string, now time.Time) (time.Time, error) {
	if value == "" {
		y, m, _ := now.UTC().Date()
		return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC), nil
	}
	t, err := time.Parse("2006-01", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month [%s], expected YYYY-MM", value)
	}
	return t, nil
}

// ParseDayRange parses optional from/to query values (see ParseDay). The
// returned to is exclusive: the day after the given one, so "to" is inclusive
// for the caller.
func ParseDayRange(fromValue, toValue string) (from, to *time.Time, err error) {
	if fromValue != "" {
		f, err := ParseDay(fromValue)
		if err != nil {
			return nil, nil, err
		}
		from = &f
	}
	if toValue != "" {
		t, err := ParseDay(toValue)
		if err != nil {
			return nil, nil, err
		}
		t = t.AddDate(0, 0, 1)
		to = &t
	}
	if from != nil && to != nil && !from.Before(*to) {
		return nil, nil, fmt.Errorf("invalid range, from [%s] is after to [%s]", fromValue, toValue)
	}
	return from, to, nil
}
