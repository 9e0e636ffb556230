package checkout_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CateringService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CateringService/internal/infra/storage/booking"
)

// UseCase use case для оформления чека по бронированию
// Хранилище не изменяется
type UseCase struct {
	bookingRepo  BookingRepository
	pricing      PricingEngine
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, pricing PricingEngine, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		pricing:      pricing,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case оформления чека
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Receipt, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	uc.logger.Info("CheckoutBooking: %s", req.Ref)

	booking, position, err := uc.find(ctx, req.Ref)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("CheckoutBooking: booking %s not found", req.Ref)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("CheckoutBooking: failed to get booking %s: %v", req.Ref, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	breakdown := uc.pricing.Breakdown(booking.Selection, booking.Guests)

	if breakdown.Total != booking.Total {
		uc.logger.Info("CheckoutBooking: booking id=%s stored total %d differs from current price %d",
			booking.ID, booking.Total, breakdown.Total)
	}

	uc.logger.Info("CheckoutBooking: receipt for booking id=%s, total=%d", booking.ID, breakdown.Total)

	return &Receipt{
		Position:    position,
		Booking:     booking,
		Breakdown:   breakdown,
		Total:       breakdown.Total,
		StoredTotal: booking.Total,
		IssuedAt:    uc.timeProvider.Now(),
	}, nil
}

func (uc *UseCase) find(ctx context.Context, ref domain.BookingRef) (*domain.Booking, int, error) {
	if ref.ByID() {
		return uc.bookingRepo.GetByID(ctx, ref.ID)
	}
	booking, err := uc.bookingRepo.GetAt(ctx, ref.Position)
	return booking, ref.Position, err
}
