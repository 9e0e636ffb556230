package submit_booking

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-CateringService/internal/domain"
	"github.com/m04kA/SMC-CateringService/internal/validator"
)

// validateDraft проверяет поля по порядку и возвращает первую ошибку
// Порядок: name, email, contact, eventDate, venue, guests, style
func validateDraft(draft *domain.Draft, catalog *domain.Catalog, now time.Time) *ValidationError {
	if !validator.ValidName(draft.Name) {
		return &ValidationError{Field: domain.FieldName, Reason: ReasonName}
	}
	if !validator.ValidEmail(draft.Email) {
		return &ValidationError{Field: domain.FieldEmail, Reason: ReasonEmail}
	}
	if !validator.ValidContact(draft.Contact) {
		return &ValidationError{Field: domain.FieldContact, Reason: ReasonContact}
	}
	if !validator.ValidFutureDate(draft.EventDate, now) {
		return &ValidationError{Field: domain.FieldEventDate, Reason: ReasonEventDate}
	}
	if !validator.ValidVenue(draft.Venue) {
		return &ValidationError{Field: domain.FieldVenue, Reason: ReasonVenue}
	}
	if !validator.ValidGuests(draft.Guests) {
		return &ValidationError{Field: domain.FieldGuests, Reason: ReasonGuests}
	}

	// Пустой стиль заменяется стилем по умолчанию при сохранении
	style := strings.TrimSpace(draft.Style)
	if style != "" && !catalog.HasStyle(style) {
		return &ValidationError{Field: domain.FieldStyle, Reason: ReasonStyle}
	}

	return nil
}
