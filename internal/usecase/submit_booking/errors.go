package submit_booking

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных (нет черновика, нет подтверждения)
	ErrInvalidInput = errors.New("submit_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("submit_booking: internal error")
)

// Сообщения об ошибках валидации, показываемые пользователю
const (
	ReasonName      = "Please enter a valid name (letters and spaces only)."
	ReasonEmail     = "Please enter a valid email."
	ReasonContact   = "Please enter a valid contact (09XXXXXXXXX or +639XXXXXXXXX)."
	ReasonEventDate = "Please choose a valid event date (today or later)."
	ReasonVenue     = "Please enter the event venue."
	ReasonGuests    = "Please enter the number of guests."
	ReasonStyle     = "Please choose one of the available styles."
)

// ValidationError первая не прошедшая проверку запись черновика
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("submit_booking: invalid %s: %s", e.Field, e.Reason)
}
