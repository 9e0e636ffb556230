package checkout_booking

import (
	"time"

	"github.com/m04kA/SMC-CateringService/internal/domain"
	"github.com/m04kA/SMC-CateringService/internal/pricing"
)

// Request модель запроса на оформление чека
type Request struct {
	Ref domain.BookingRef // Позиция или ID бронирования
}

// Receipt чек бронирования, только для отображения
type Receipt struct {
	Position  int               // Текущая позиция бронирования
	Booking   *domain.Booking   // Данные бронирования без изменений
	Breakdown pricing.Breakdown // Пересчитанная по текущему каталогу детализация
	Total     int               // Итог по текущему каталогу (== Breakdown.Total)

	// StoredTotal снимок стоимости на момент сохранения. Может отличаться от Total,
	// если каталог изменился после сохранения
	StoredTotal int
	IssuedAt    time.Time
}
