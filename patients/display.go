package patients

import (
	"fmt"
	"time"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const displayDateLayout = "Jan 2, 2006"

var upper = cases.Upper(language.English)

// ParseDate accepts a calendar date (2006-01-02) or an RFC 3339 timestamp.
func ParseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, value); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", value)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// AgeAt is the number of full years between dob and now. A birthday that has not happened
// yet this year does not count.
func AgeAt(dob time.Time, now time.Time) int {
	age := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		age--
	}
	return age
}

func Age(dateOfBirth string, now time.Time) (int, error) {
	dob, err := ParseDate(dateOfBirth)
	if err != nil {
		return 0, err
	}
	return AgeAt(dob, now), nil
}

// FormatDate renders a date the way the dashboard shows it, e.g. "Jun 15, 2000". Values
// that cannot be parsed are returned unchanged.
func FormatDate(value string) string {
	t, err := ParseDate(value)
	if err != nil {
		return value
	}
	return t.Format(displayDateLayout)
}

// Capitalize upper-cases the first letter and leaves the rest as is.
func Capitalize(value string) string {
	if value == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(value)
	return upper.String(string(r)) + value[size:]
}
