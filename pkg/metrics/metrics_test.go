package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestBookingCounters(t *testing.T) {
	m := New("catering-test")

	m.BookingSaved(8500)
	m.BookingSaved(12000)
	m.BookingDeleted()
	m.ValidationFailed("email")
	m.ValidationFailed("email")
	m.ConfirmationDeclined("delete")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.BookingsSaved))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BookingsDeleted))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.ValidationFailures.WithLabelValues("email")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ConfirmationsDeclined.WithLabelValues("delete")))
}

func TestNew_IndependentRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		New("a")
		New("b")
	})
}
