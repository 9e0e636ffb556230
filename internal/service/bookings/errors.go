package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено (NOT_FOUND)
	ErrBookingNotFound = errors.New("bookings.service: booking not found")

	// ErrOutOfRange возвращается, когда позиция вне текущей последовательности (OUT_OF_RANGE)
	ErrOutOfRange = errors.New("bookings.service: position out of range")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("bookings.service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings.service: internal error")
)
