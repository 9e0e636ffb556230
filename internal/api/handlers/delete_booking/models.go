package delete_booking

import (
	"github.com/m04kA/SMC-CateringService/internal/domain"
	"github.com/m04kA/SMC-CateringService/internal/service/bookings/models"
)

// DeleteBookingResponse HTTP response model
type DeleteBookingResponse struct {
	Deleted bool            `json:"deleted"`
	Prompt  string          `json:"prompt,omitempty"` // вопрос, на который нужно ответить confirmed=true
	Booking *domain.Booking `json:"booking,omitempty"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.DeleteResponse) *DeleteBookingResponse {
	out := &DeleteBookingResponse{
		Deleted: resp.Deleted,
		Booking: resp.Booking,
	}
	if !resp.Deleted {
		out.Prompt = domain.PromptDelete
	}
	return out
}
