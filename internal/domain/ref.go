package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// BookingRef locates a booking either by its current position or by its stable id
type BookingRef struct {
	Position int
	ID       string
}

// AtPosition refers to the booking currently at the 0-based position.
// Positions shift on every delete or edit.
func AtPosition(position int) BookingRef {
	return BookingRef{Position: position}
}

// WithID refers to a booking by id
func WithID(id string) BookingRef {
	return BookingRef{Position: -1, ID: id}
}

// ByID reports whether the ref addresses a booking by id
func (r BookingRef) ByID() bool {
	return r.ID != ""
}

func (r BookingRef) String() string {
	if r.ByID() {
		return "id=" + r.ID
	}
	return "position=" + strconv.Itoa(r.Position)
}

// ParseBookingRef reads a path segment: all digits is a position, anything else an id
func ParseBookingRef(s string) (BookingRef, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return BookingRef{}, fmt.Errorf("domain: empty booking ref")
	}
	if isDigits(s) {
		position, err := strconv.Atoi(s)
		if err != nil {
			return BookingRef{}, fmt.Errorf("domain: invalid booking position %q: %w", s, err)
		}
		return AtPosition(position), nil
	}
	return WithID(s), nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
