package submit_booking

import (
	"github.com/m04kA/SMC-CateringService/internal/api/handlers"
	"github.com/m04kA/SMC-CateringService/internal/domain"
	submitBooking "github.com/m04kA/SMC-CateringService/internal/usecase/submit_booking"
)

// SubmitBookingRequest HTTP request model
// Confirmed - ответ на "Are you sure about your selections?"
type SubmitBookingRequest struct {
	handlers.DraftRequest
	Confirmed bool `json:"confirmed"`
}

// SubmitBookingResponse HTTP response model
type SubmitBookingResponse struct {
	Saved   bool            `json:"saved"`
	Message string          `json:"message,omitempty"`
	Prompt  string          `json:"prompt,omitempty"`
	Booking *domain.Booking `json:"booking,omitempty"`
	Draft   *domain.Draft   `json:"draft"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SubmitBookingRequest) ToUseCaseRequest() *submitBooking.Request {
	return &submitBooking.Request{
		Draft:     r.DraftRequest.ToDomain(),
		Confirmer: domain.Answer(r.Confirmed),
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *submitBooking.Response) *SubmitBookingResponse {
	out := &SubmitBookingResponse{
		Saved:   resp.Saved,
		Message: resp.Message,
		Booking: resp.Booking,
		Draft:   resp.Draft,
	}
	if !resp.Saved {
		out.Prompt = domain.PromptSubmit
	}
	return out
}
