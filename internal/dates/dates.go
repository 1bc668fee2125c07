// Package dates normalizes the date encodings accepted across the service
// (typed "d-m-yyyy" strings, ISO-ish strings, spreadsheet serial numbers)
// into a single canonical calendar value.
package dates

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrEmpty marks an absent value; callers with optional date fields treat
	// it differently from a malformed one.
	ErrEmpty = errors.New("date is empty")

	// ErrUnrecognized means no step of the chain accepted the input.
	ErrUnrecognized = errors.New("unrecognized date format")
)

// dayMonthYear is the literal form the UI submits: 1-2 digit day and month,
// 4 digit year, no zero padding required.
var dayMonthYear = regexp.MustCompile(`^(\d{1,2})-(\d{1,2})-(\d{4})$`)

// Layouts tried for the generic-string step, most common first.
var layouts = []string{
	"2006-01-02",
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"1/2/2006",
	"2 Jan 2006",
	"Jan 2, 2006",
}

// Spreadsheet day 0 is 1899-12-30; day 25569 is 1970-01-01.
const serialEpochOffset = 25569

// maxEpochMillis bounds the representable range for serial conversion,
// mirroring the date range the original spreadsheet convention can express.
const maxEpochMillis = 8.64e15

// Normalize converts a raw date representation into a canonical calendar
// date. The chain is ordered: d-m-yyyy literal, generic parseable string,
// spreadsheet serial. Empty input fails with ErrEmpty, anything else
// unrecognized with ErrUnrecognized.
func Normalize(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, ErrEmpty
	}

	if m := dayMonthYear.FindStringSubmatch(s); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), nil
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}

	if t, ok := fromSerial(s); ok {
		return t, nil
	}

	return time.Time{}, ErrUnrecognized
}

// NormalizeOrFallback is the lenient import path: an unusable value yields
// the fallback instead of an error. The bool reports whether the fallback
// was taken so callers can surface it.
func NormalizeOrFallback(raw string, fallback time.Time) (time.Time, bool) {
	t, err := Normalize(raw)
	if err != nil {
		return StartOfDay(fallback), true
	}
	return t, false
}

// fromSerial converts a spreadsheet day count (days since 1899-12-30) to a
// calendar date. Non-numeric, non-finite, and out-of-range values are
// rejected.
func fromSerial(s string) (time.Time, bool) {
	serial, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(serial) || math.IsInf(serial, 0) {
		return time.Time{}, false
	}
	ms := (serial - serialEpochOffset) * 86400 * 1000
	if math.Abs(ms) > maxEpochMillis {
		return time.Time{}, false
	}
	return StartOfDay(time.UnixMilli(int64(ms)).UTC()), true
}

// Format re-serializes a date to the d-m-yyyy literal the transport accepts.
// No zero padding, matching the accepted pattern.
func Format(t time.Time) string {
	return fmt.Sprintf("%d-%d-%d", t.Day(), int(t.Month()), t.Year())
}

// StartOfDay truncates to UTC midnight; due-today comparisons use this
// boundary.
func StartOfDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
