package submit_booking

import "github.com/m04kA/SMC-CateringService/internal/domain"

// MessageSaved уведомление об успешном сохранении
const MessageSaved = "Booking saved successfully!"

// Request модель запроса на сохранение черновика
type Request struct {
	Draft     *domain.Draft // Черновик формы (сырые строки и выбранные позиции)
	Confirmer Confirmer     // Подтверждение "Are you sure about your selections?"
}

// Response результат отправки черновика
type Response struct {
	Draft   *domain.Draft   // Черновик в итоговом состоянии (saved или drafting при отказе)
	Booking *domain.Booking // Сохранённое бронирование, nil при отказе
	Saved   bool
	Message string
}
