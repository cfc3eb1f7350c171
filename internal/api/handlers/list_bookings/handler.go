package list_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BoxBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BoxBooking/internal/service/bookings"
)

const (
	msgMissingDate = "дата обязательна"
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings
// Query params: date (required, YYYY-MM-DD)
// Публичный endpoint, отдает только занятые интервалы
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /bookings - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := handlers.ParseDate(dateStr)
	if err != nil {
		h.logger.Warn("GET /bookings - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.GetByDate(r.Context(), date)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings - Invalid input: date=%s, error=%v", dateStr, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /bookings - Failed to get bookings: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings - Bookings retrieved: date=%s, count=%d", dateStr, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
