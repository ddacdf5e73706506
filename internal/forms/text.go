package forms

import (
	"regexp"
	"strings"
	"time"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	wordRun       = regexp.MustCompile(`[\p{L}\p{N}_]+`)
)

// NormalizeWhitespace collapses every whitespace run (newlines included)
// into a single space and trims both ends. The operation is idempotent.
func NormalizeWhitespace(s string) string {
	return whitespaceRun.ReplaceAllString(strings.TrimSpace(s), " ")
}

// Words returns the alphanumeric-run tokens of s, the unit the word-count
// rule operates on.
func Words(s string) []string {
	return wordRun.FindAllString(s, -1)
}

// AgeYears computes full years between birth and today, subtracting one
// year when the birthday has not yet occurred this calendar year.
func AgeYears(today, birth time.Time) int {
	years := today.Year() - birth.Year()
	if monthDayBefore(today, birth) {
		years--
	}
	return years
}

// AgeMonths computes the month delta (current_month - birth_month) mod 12.
// Intentionally independent of the day-of-month and of the year borrow used
// by AgeYears; the export format has always reported it this way.
func AgeMonths(today, birth time.Time) int {
	months := (int(today.Month()) - int(birth.Month())) % 12
	if months < 0 {
		months += 12
	}
	return months
}

// monthDayBefore reports whether today's (month, day) precedes birth's.
func monthDayBefore(today, birth time.Time) bool {
	if today.Month() != birth.Month() {
		return today.Month() < birth.Month()
	}
	return today.Day() < birth.Day()
}
