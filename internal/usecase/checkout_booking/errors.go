package checkout_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено по позиции или ID
	ErrBookingNotFound = errors.New("checkout_booking: booking not found")

	// ErrInvalidInput возвращается при отсутствующем запросе
	ErrInvalidInput = errors.New("checkout_booking: invalid input")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("checkout_booking: internal error")
)
