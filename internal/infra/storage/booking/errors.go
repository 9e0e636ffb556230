package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrOutOfRange возвращается, когда позиция вне границ последовательности
	ErrOutOfRange = errors.New("booking.repository: position out of range")

	// ErrLoad возвращается при ошибке чтения документа из хранилища
	ErrLoad = errors.New("booking.repository: failed to load bookings")

	// ErrSave возвращается при ошибке записи документа в хранилище
	ErrSave = errors.New("booking.repository: failed to save bookings")

	// ErrMarshal возвращается при ошибке сериализации бронирований
	ErrMarshal = errors.New("booking.repository: failed to marshal bookings")
)
