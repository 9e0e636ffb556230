package models

import (
	"github.com/m04kA/SMC-CateringService/internal/domain"
	"github.com/m04kA/SMC-CateringService/internal/pricing"
)

// Режимы редактирования
const (
	EditModeRedraft = "redraft" // бронирование удаляется сразу, черновик нужно отправить заново
	EditModeAtomic  = "atomic"  // бронирование остаётся, отправка черновика заменяет его
)

// Response модели

// BookingResponse бронирование вместе с его позицией в полной последовательности
type BookingResponse struct {
	Position int             `json:"position"`
	Booking  *domain.Booking `json:"booking"`
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// EditResponse черновик, открытый для редактирования
type EditResponse struct {
	Draft *domain.Draft `json:"draft"`
	Mode  string        `json:"mode"`
	// Removed true, если бронирование уже удалено из хранилища
	Removed bool `json:"removed"`
}

// DeleteResponse результат удаления
type DeleteResponse struct {
	Deleted bool            `json:"deleted"`
	Booking *domain.Booking `json:"booking,omitempty"`
}

// LivePriceResponse текущая стоимость черновика
type LivePriceResponse struct {
	Total     int               `json:"total"`
	Guests    int               `json:"guests"`
	Breakdown pricing.Breakdown `json:"breakdown"`
}

// Конвертеры из domain в response

// FromDomainBookingList конвертирует список бронирований с позициями по порядку
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
		Total:    len(bookings),
	}
	for i, b := range bookings {
		resp.Bookings = append(resp.Bookings, BookingResponse{Position: i, Booking: b})
	}
	return resp
}
