package checkout_booking

import (
	"context"

	checkoutBooking "github.com/m04kA/SMC-CateringService/internal/usecase/checkout_booking"
)

type CheckoutUseCase interface {
	Execute(ctx context.Context, req *checkoutBooking.Request) (*checkoutBooking.Receipt, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
