package delete_booking

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CateringService/internal/domain"
	"github.com/m04kA/SMC-CateringService/internal/service/bookings"
	"github.com/m04kA/SMC-CateringService/internal/service/bookings/models"
	"github.com/m04kA/SMC-CateringService/pkg/logger"
)

type stubService struct {
	ref       domain.BookingRef
	confirmed bool
	err       error
}

func (s *stubService) Delete(_ context.Context, ref domain.BookingRef, confirmer bookings.Confirmer) (*models.DeleteResponse, error) {
	s.ref = ref
	if s.err != nil {
		return nil, s.err
	}
	s.confirmed = confirmer.Confirm(domain.PromptDelete)
	if !s.confirmed {
		return &models.DeleteResponse{}, nil
	}
	return &models.DeleteResponse{Deleted: true, Booking: &domain.Booking{ID: "b-1"}}, nil
}

func serve(svc *stubService, target string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/bookings/{ref}", NewHandler(svc, logger.NewNop()).Handle).Methods(http.MethodDelete)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, target, nil))
	return rec
}

func TestHandle_DeletesWhenConfirmed(t *testing.T) {
	svc := &stubService{}

	rec := serve(svc, "/api/v1/bookings/2?confirmed=true")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.AtPosition(2), svc.ref)
	assert.True(t, svc.confirmed)

	var body DeleteBookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Deleted)
	assert.Empty(t, body.Prompt)
}

func TestHandle_PromptsWithoutConfirmation(t *testing.T) {
	svc := &stubService{}

	rec := serve(svc, "/api/v1/bookings/abc-123")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.WithID("abc-123"), svc.ref)
	assert.False(t, svc.confirmed)

	var body DeleteBookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Deleted)
	assert.Equal(t, domain.PromptDelete, body.Prompt)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		target string
		err    error
		status int
	}{
		{"out of range", "/api/v1/bookings/9?confirmed=true", fmt.Errorf("%w: Delete", bookings.ErrOutOfRange), http.StatusNotFound},
		{"not found", "/api/v1/bookings/gone?confirmed=true", bookings.ErrBookingNotFound, http.StatusNotFound},
		{"internal", "/api/v1/bookings/0?confirmed=true", bookings.ErrInternal, http.StatusInternalServerError},
		{"bad confirmed flag", "/api/v1/bookings/0?confirmed=maybe", nil, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&stubService{err: tt.err}, tt.target)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
