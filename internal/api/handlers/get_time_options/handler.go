package get_time_options

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BoxBooking/internal/api/handlers"
	getTimeOptions "github.com/m04kA/SMC-BoxBooking/internal/usecase/get_time_options"
)

const (
	msgMissingDate  = "дата обязательна"
	msgInvalidDate  = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidStart = "некорректное время начала, ожидается HH:00 или HH:30"
)

type Handler struct {
	useCase GetTimeOptionsUseCase
	logger  Logger
}

func NewHandler(useCase GetTimeOptionsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/time-options
// Query params: date (required, YYYY-MM-DD), start (optional, HH:MM)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /time-options - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(dateStr, r.URL.Query().Get("start"))
	if err != nil {
		h.logger.Warn("GET /time-options - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getTimeOptions.ErrInvalidInput):
			h.logger.Warn("GET /time-options - Invalid start: date=%s, start=%q", dateStr, useCaseReq.Start)
			handlers.RespondBadRequest(w, msgInvalidStart)

		default:
			h.logger.Error("GET /time-options - Failed to build options: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /time-options - Options built: date=%s, start=%d, end=%d",
		dateStr, len(result.StartOptions), len(result.EndOptions))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
