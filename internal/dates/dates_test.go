package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDayMonthYearLiteral(t *testing.T) {
	got, err := Normalize("5-3-2024")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), got)

	got, err = Normalize("15-9-2025")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC), got)

	// Two-digit day and month also match the literal pattern.
	got, err = Normalize("31-12-1999")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(1999, 12, 31, 0, 0, 0, 0, time.UTC), got)
}

func TestNormalizeFormatRoundTrip(t *testing.T) {
	inputs := []string{"5-3-2024", "15-9-2025", "1-1-2000", "31-12-1999", "9-10-2023"}

	for _, in := range inputs {
		got, err := Normalize(in)
		assert.NoError(t, err, in)
		assert.Equal(t, in, Format(got), "round trip for %s", in)
	}
}

func TestNormalizeGenericStrings(t *testing.T) {
	got, err := Normalize("2024-03-05")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), got)

	got, err = Normalize("2024-03-05T10:30:00Z")
	assert.NoError(t, err)
	assert.Equal(t, 2024, got.Year())
	assert.Equal(t, time.March, got.Month())
	assert.Equal(t, 5, got.Day())

	// Slash dates are month-first.
	got, err = Normalize("3/5/2024")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), got)
}

func TestNormalizeSpreadsheetSerial(t *testing.T) {
	// Serial 45000 from the 1899-12-30 epoch is 2023-02-09.
	got, err := Normalize("45000")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2023, 2, 9, 0, 0, 0, 0, time.UTC), got)

	// Day 25569 is the unix epoch itself.
	got, err = Normalize("25569")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC), got)

	// Fractional serials truncate to the calendar day.
	got, err = Normalize("45000.75")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2023, 2, 9, 0, 0, 0, 0, time.UTC), got)
}

func TestNormalizeRejectsBadSerials(t *testing.T) {
	for _, in := range []string{"NaN", "Inf", "-Inf", "+Inf", "1e300", "-1e300"} {
		_, err := Normalize(in)
		assert.ErrorIs(t, err, ErrUnrecognized, in)
	}
}

func TestNormalizeEmptyIsDistinct(t *testing.T) {
	_, err := Normalize("")
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = Normalize("   ")
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = Normalize("not a date")
	assert.ErrorIs(t, err, ErrUnrecognized)
}

func TestNormalizeOrFallback(t *testing.T) {
	ref := time.Date(2025, 6, 1, 14, 30, 0, 0, time.UTC)

	got, defaulted := NormalizeOrFallback("garbage", ref)
	assert.True(t, defaulted)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), got)

	got, defaulted = NormalizeOrFallback("5-3-2024", ref)
	assert.False(t, defaulted)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), got)

	// Empty also falls back on the lenient path.
	_, defaulted = NormalizeOrFallback("", ref)
	assert.True(t, defaulted)
}

func TestFormatNoZeroPadding(t *testing.T) {
	assert.Equal(t, "5-3-2024", Format(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "31-12-1999", Format(time.Date(1999, 12, 31, 0, 0, 0, 0, time.UTC)))
}

func TestStartOfDay(t *testing.T) {
	got := StartOfDay(time.Date(2025, 6, 1, 23, 59, 59, 0, time.UTC))
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), got)
}
