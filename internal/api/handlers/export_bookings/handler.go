package export_bookings

import (
	"fmt"
	"net/http"
	"time"

	"github.com/m04kA/SMC-CateringService/internal/api/handlers"
	"github.com/m04kA/SMC-CateringService/internal/domain"
)

const contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Handler struct {
	service  BookingService
	exporter Exporter
	logger   Logger
}

func NewHandler(service BookingService, exporter Exporter, logger Logger) *Handler {
	return &Handler{
		service:  service,
		exporter: exporter,
		logger:   logger,
	}
}

// Handle GET /api/v1/bookings/export.xlsx
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /bookings/export.xlsx - Failed to list bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	list := make([]*domain.Booking, 0, len(result.Bookings))
	for _, b := range result.Bookings {
		list = append(list, b.Booking)
	}

	data, err := h.exporter.Export(list)
	if err != nil {
		h.logger.Error("GET /bookings/export.xlsx - Failed to build workbook: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	filename := fmt.Sprintf("bookings_%s.xlsx", time.Now().Format("20060102"))
	h.logger.Info("GET /bookings/export.xlsx - Exported %d bookings", len(list))
	handlers.RespondFile(w, contentTypeXLSX, filename, data)
}
