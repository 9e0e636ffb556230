package submit_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-CateringService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CateringService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-CateringService/internal/validator"
)

// UseCase use case для отправки черновика бронирования
// Проводит черновик по машине состояний:
// drafting -> validating -> (invalid -> drafting) | (valid -> confirming)
// confirming -> (rejected -> drafting) | (confirmed -> saved)
type UseCase struct {
	bookingRepo  BookingRepository
	pricing      PricingEngine
	notifier     Notifier
	metrics      Metrics
	atomicEdit   bool
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// При atomicEdit=false OriginID черновика игнорируется, отправка всегда добавляет бронирование
func NewUseCase(
	bookingRepo BookingRepository,
	pricing PricingEngine,
	notifier Notifier,
	metrics Metrics,
	atomicEdit bool,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		pricing:      pricing,
		notifier:     notifier,
		metrics:      metrics,
		atomicEdit:   atomicEdit,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case отправки черновика
// Ошибка валидации возвращается как *ValidationError, черновик остаётся в drafting
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || req.Draft == nil {
		return nil, fmt.Errorf("%w: draft is required", ErrInvalidInput)
	}
	if req.Confirmer == nil {
		return nil, fmt.Errorf("%w: confirmer is required", ErrInvalidInput)
	}

	original := req.Draft.Clone()
	if original.State == "" {
		original.State = domain.DraftDrafting
	}
	draft := original.Clone()

	if draft.OriginID != "" && !uc.atomicEdit {
		uc.logger.Warn("SubmitBooking: originId=%q ignored, atomic edit is disabled", draft.OriginID)
		draft.OriginID = ""
	}

	uc.logger.Info("SubmitBooking: name=%q, eventDate=%s, guests=%q, origin=%q",
		draft.Name, draft.EventDate, draft.Guests, draft.OriginID)

	// 1. Валидация
	if err := draft.Transition(domain.DraftValidating); err != nil {
		uc.logger.Warn("SubmitBooking: draft in state %s cannot be submitted", draft.State)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	catalog := uc.pricing.Catalog()
	if verr := validateDraft(draft, catalog, uc.timeProvider.Now()); verr != nil {
		uc.moveTo(draft, domain.DraftInvalid, domain.DraftDrafting)
		uc.metrics.ValidationFailed(verr.Field)
		uc.logger.Warn("SubmitBooking: validation failed on %s", verr.Field)
		return nil, verr
	}
	uc.moveTo(draft, domain.DraftValid, domain.DraftConfirming)

	// 2. Подтверждение
	if !req.Confirmer.Confirm(domain.PromptSubmit) {
		uc.metrics.ConfirmationDeclined("submit")
		uc.logger.Info("SubmitBooking: confirmation declined, draft kept")
		return &Response{Draft: original, Saved: false}, nil
	}
	uc.moveTo(draft, domain.DraftConfirmed)

	// 3. Расчет стоимости и сохранение
	booking := uc.buildBooking(draft, catalog)

	saved, err := uc.persist(ctx, draft.OriginID, booking)
	if err != nil {
		uc.logger.Error("SubmitBooking: failed to save booking: %v", err)
		return nil, fmt.Errorf("%w: failed to save booking: %v", ErrInternal, err)
	}

	uc.moveTo(draft, domain.DraftSaved)
	uc.metrics.BookingSaved(saved.Total)
	uc.notifier.Notify(MessageSaved)
	uc.logger.Info("SubmitBooking: saved booking id=%s, total=%d", saved.ID, saved.Total)

	return &Response{
		Draft:   draft,
		Booking: saved,
		Saved:   true,
		Message: MessageSaved,
	}, nil
}

// persist добавляет бронирование или заменяет исходное при атомарном редактировании
// Если исходное бронирование успели удалить, черновик сохраняется как новое бронирование
func (uc *UseCase) persist(ctx context.Context, originID string, booking *domain.Booking) (*domain.Booking, error) {
	if originID != "" {
		replaced, err := uc.bookingRepo.ReplaceByID(ctx, originID, booking)
		if err == nil {
			return replaced, nil
		}
		if !errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, err
		}
		uc.logger.Warn("SubmitBooking: origin booking id=%s is gone, appending instead", originID)
		booking.ID = ""
	}
	return uc.bookingRepo.Append(ctx, booking)
}

func (uc *UseCase) buildBooking(draft *domain.Draft, catalog *domain.Catalog) *domain.Booking {
	guests, _ := validator.ParseGuests(draft.Guests)

	eventDate := strings.TrimSpace(draft.EventDate)
	if date, ok := validator.ParseDate(eventDate, uc.timeProvider.Now().Location()); ok {
		eventDate = date.Format(domain.DateFormat)
	}

	style := strings.TrimSpace(draft.Style)
	if style == "" {
		style = catalog.DefaultStyle()
	}

	selection := draft.Selection.Normalized()

	return &domain.Booking{
		Name:      strings.TrimSpace(draft.Name),
		Email:     strings.TrimSpace(draft.Email),
		Contact:   strings.TrimSpace(draft.Contact),
		EventDate: eventDate,
		Venue:     strings.TrimSpace(draft.Venue),
		Guests:    guests,
		Style:     style,
		Selection: selection,
		Total:     uc.pricing.Compute(selection, guests),
	}
}

// moveTo проходит по цепочке переходов; рёбра заданы статически, ошибка означает баг
func (uc *UseCase) moveTo(draft *domain.Draft, states ...domain.DraftState) {
	for _, s := range states {
		if err := draft.Transition(s); err != nil {
			uc.logger.Error("SubmitBooking: %v", err)
		}
	}
}
