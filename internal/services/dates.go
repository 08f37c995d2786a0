package services

import (
	"log"
	"time"
)

const civilDateLayout = "2006-01-02"

// Calendar math works on YYYY-MM-DD strings interpreted as UTC civil dates.
// The fixed-width zero-padded form makes lexical comparison equivalent to
// chronological comparison, and UTC day arithmetic is immune to DST jumps.

func CivilDate(value time.Time) string {
	return value.In(time.UTC).Format(civilDateLayout)
}

func parseCivilDate(value string) (time.Time, bool) {
	parsed, err := time.ParseInLocation(civilDateLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}

// CivilDateTime converts a canonical date string back to its UTC midnight
// instant, for callers that store dates as time columns.
func CivilDateTime(value string) (time.Time, bool) {
	return parseCivilDate(value)
}

// IsValidCivilDate reports whether value is a well-formed calendar date.
// Write paths use this to reject bad input outright; read paths prefer the
// fallback below.
func IsValidCivilDate(value string) bool {
	_, ok := parseCivilDate(value)
	return ok
}

// ParseCivilDateOrToday returns the canonical form of value, or today's UTC
// date when value is malformed or names an impossible calendar day. The
// fallback is logged because it signals bad upstream data.
func ParseCivilDateOrToday(value string, now time.Time) string {
	parsed, ok := parseCivilDate(value)
	if !ok {
		today := CivilDate(now)
		log.Printf("invalid calendar date %q, falling back to %s", value, today)
		return today
	}
	return parsed.Format(civilDateLayout)
}

func AddDays(date string, days int) string {
	parsed, ok := parseCivilDate(date)
	if !ok {
		return date
	}
	return parsed.AddDate(0, 0, days).Format(civilDateLayout)
}

// StartOfWeek returns the Sunday on or before date.
func StartOfWeek(date string) string {
	parsed, ok := parseCivilDate(date)
	if !ok {
		return date
	}
	return parsed.AddDate(0, 0, -int(parsed.Weekday())).Format(civilDateLayout)
}

// MonthGridStart returns the Sunday on or before the first of the month, the
// anchor of the 42-cell month grid.
func MonthGridStart(year int, month time.Month) string {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return StartOfWeek(first.Format(civilDateLayout))
}
