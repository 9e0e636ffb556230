// Package validator holds the pure field predicates applied to booking drafts.
// None of them panic or return errors: malformed input is simply invalid.
package validator

import (
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/m04kA/SMC-CateringService/internal/domain"
)

var (
	nameRe    = regexp.MustCompile(`^[A-Za-z\s]+$`)
	emailRe   = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	contactRe = regexp.MustCompile(`^(09\d{9}|\+639\d{9}|\d{10,13})$`)
)

// dateLayouts are tried in order when parsing an event date
var dateLayouts = []string{
	domain.DateFormat,
	time.RFC3339,
	"2006-01-02T15:04",
}

// ValidName reports whether s, trimmed, is non-empty and made of ASCII letters and whitespace
func ValidName(s string) bool {
	return nameRe.MatchString(strings.TrimSpace(s))
}

// ValidEmail is a coarse local@domain.tld shape check
func ValidEmail(s string) bool {
	return emailRe.MatchString(s)
}

// ValidContact accepts 09XXXXXXXXX, +639XXXXXXXXX or a plain 10-13 digit string
func ValidContact(s string) bool {
	return contactRe.MatchString(strings.TrimSpace(s))
}

// ValidFutureDate reports whether s is a date on or after the day of now.
// Comparison is at day granularity in now's location.
func ValidFutureDate(s string, now time.Time) bool {
	date, ok := ParseDate(s, now.Location())
	if !ok {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return !date.Before(today)
}

// ParseDate parses s with the supported layouts and truncates it to midnight in loc
func ParseDate(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		t, err := time.ParseInLocation(layout, s, loc)
		if err != nil {
			continue
		}
		t = t.In(loc)
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc), true
	}
	return time.Time{}, false
}

// ValidVenue reports whether the venue has any non-blank content
func ValidVenue(s string) bool {
	return strings.TrimSpace(s) != ""
}

// ParseGuests reads a leading integer the way a browser parseInt does:
// "12", " 12 ", "12 pax" all yield 12. ok is false when no digits lead the string
// or the number does not fit in 32 bits.
func ParseGuests(s string) (int, bool) {
	s = strings.TrimSpace(s)
	sign := 1
	if strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		if s[0] == '-' {
			sign = -1
		}
		s = s[1:]
	}

	n, digits := 0, 0
	for _, r := range s {
		if r < '0' || r > '9' {
			break
		}
		n = n*10 + int(r-'0')
		if n > math.MaxInt32 {
			return 0, false
		}
		digits++
	}
	if digits == 0 {
		return 0, false
	}
	return sign * n, true
}

// ValidGuests reports whether s parses to a positive guest count
func ValidGuests(s string) bool {
	n, ok := ParseGuests(s)
	return ok && n > 0
}
