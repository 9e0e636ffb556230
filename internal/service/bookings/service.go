package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CateringService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CateringService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-CateringService/internal/service/bookings/models"
	"github.com/m04kA/SMC-CateringService/internal/validator"
)

// Service сервис для работы с сохранёнными бронированиями
// Создание бронирований - в usecase submit_booking, чек - в usecase checkout_booking
type Service struct {
	bookingRepo BookingRepository
	pricing     PricingEngine
	metrics     Metrics
	atomicEdit  bool
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
// atomicEdit=false воспроизводит исходное поведение: редактирование сразу удаляет бронирование
func NewService(
	bookingRepo BookingRepository,
	pricing PricingEngine,
	metrics Metrics,
	atomicEdit bool,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		pricing:     pricing,
		metrics:     metrics,
		atomicEdit:  atomicEdit,
		logger:      logger,
	}
}

// List возвращает все бронирования в порядке хранения
func (s *Service) List(ctx context.Context) (*models.BookingListResponse, error) {
	bookings, err := s.bookingRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// Search фильтрует бронирования по подстроке имени без учёта регистра
// Позиции в ответе - позиции в полной последовательности, их можно передавать в Edit/Delete
func (s *Service) Search(ctx context.Context, query string) (*models.BookingListResponse, error) {
	entries, err := s.bookingRepo.Search(ctx, query)
	if err != nil {
		s.logger.Error("Search: repository error for query=%q: %v", query, err)
		return nil, fmt.Errorf("%w: Search - repository error: %v", ErrInternal, err)
	}

	resp := &models.BookingListResponse{
		Bookings: make([]models.BookingResponse, 0, len(entries)),
		Total:    len(entries),
	}
	for _, e := range entries {
		resp.Bookings = append(resp.Bookings, models.BookingResponse{Position: e.Position, Booking: e.Booking})
	}

	s.logger.Info("Search: query=%q matched %d bookings", query, len(entries))
	return resp, nil
}

// Edit открывает бронирование как черновик
//
// В режиме по умолчанию бронирование удаляется из хранилища сразу: если черновик
// не отправить, бронирование потеряно. В атомарном режиме бронирование остаётся,
// а черновик хранит его ID, и отправка заменяет его на месте.
func (s *Service) Edit(ctx context.Context, ref domain.BookingRef) (*models.EditResponse, error) {
	s.logger.Info("Edit: opening booking %s, atomic=%t", ref, s.atomicEdit)

	if s.atomicEdit {
		booking, _, err := s.find(ctx, ref)
		if err != nil {
			return nil, s.mapNotFound("Edit", ref, err)
		}

		s.metrics.BookingEdited(models.EditModeAtomic)
		s.logger.Info("Edit: booking id=%s opened for in-place update", booking.ID)
		return &models.EditResponse{
			Draft: domain.NewDraftFromBooking(booking, booking.ID),
			Mode:  models.EditModeAtomic,
		}, nil
	}

	removed, err := s.remove(ctx, ref)
	if err != nil {
		return nil, s.mapNotFound("Edit", ref, err)
	}

	s.metrics.BookingEdited(models.EditModeRedraft)
	s.logger.Warn("Edit: booking id=%s removed, it is lost unless the draft is resubmitted", removed.ID)
	return &models.EditResponse{
		Draft:   domain.NewDraftFromBooking(removed, ""),
		Mode:    models.EditModeRedraft,
		Removed: true,
	}, nil
}

// Delete удаляет бронирование после подтверждения
// Отказ - no-op. Позиция вне границ - ErrOutOfRange, неизвестный ID - ErrBookingNotFound
func (s *Service) Delete(ctx context.Context, ref domain.BookingRef, confirmer Confirmer) (*models.DeleteResponse, error) {
	s.logger.Info("Delete: deleting booking %s", ref)

	if confirmer == nil {
		return nil, fmt.Errorf("%w: confirmer is required", ErrInvalidInput)
	}

	if !confirmer.Confirm(domain.PromptDelete) {
		s.metrics.ConfirmationDeclined("delete")
		s.logger.Info("Delete: confirmation declined for booking %s", ref)
		return &models.DeleteResponse{Deleted: false}, nil
	}

	removed, err := s.remove(ctx, ref)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrOutOfRange) {
			s.logger.Warn("Delete: booking %s out of range", ref)
			return nil, ErrOutOfRange
		}
		return nil, s.mapNotFound("Delete", ref, err)
	}

	s.metrics.BookingDeleted()
	s.logger.Info("Delete: successfully deleted booking id=%s", removed.ID)
	return &models.DeleteResponse{Deleted: true, Booking: removed}, nil
}

// ComputeLivePrice считает стоимость черновика по мере заполнения формы
// Гости разбираются как parseInt; нечисловое значение считается нулём
func (s *Service) ComputeLivePrice(draft *domain.Draft) *models.LivePriceResponse {
	guests, ok := validator.ParseGuests(draft.Guests)
	if !ok {
		guests = 0
	}

	selection := draft.Selection.Normalized()
	breakdown := s.pricing.Breakdown(selection, guests)

	return &models.LivePriceResponse{
		Total:     breakdown.Total,
		Guests:    guests,
		Breakdown: breakdown,
	}
}

// Вспомогательные методы

func (s *Service) find(ctx context.Context, ref domain.BookingRef) (*domain.Booking, int, error) {
	if ref.ByID() {
		return s.bookingRepo.GetByID(ctx, ref.ID)
	}
	booking, err := s.bookingRepo.GetAt(ctx, ref.Position)
	return booking, ref.Position, err
}

func (s *Service) remove(ctx context.Context, ref domain.BookingRef) (*domain.Booking, error) {
	if ref.ByID() {
		return s.bookingRepo.RemoveByID(ctx, ref.ID)
	}
	return s.bookingRepo.RemoveAt(ctx, ref.Position)
}

// mapNotFound: для Edit отсутствующая позиция - это NOT_FOUND
func (s *Service) mapNotFound(op string, ref domain.BookingRef, err error) error {
	if errors.Is(err, bookingRepo.ErrBookingNotFound) || errors.Is(err, bookingRepo.ErrOutOfRange) {
		s.logger.Warn("%s: booking %s not found", op, ref)
		return ErrBookingNotFound
	}
	s.logger.Error("%s: repository error for booking %s: %v", op, ref, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
