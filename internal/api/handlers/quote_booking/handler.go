package quote_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BoxBooking/internal/api/handlers"
	quoteBooking "github.com/m04kA/SMC-BoxBooking/internal/usecase/quote_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput       = "дата, время начала и окончания обязательны"
)

type Handler struct {
	useCase QuoteBookingUseCase
	logger  Logger
}

func NewHandler(useCase QuoteBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/quotes
// Отклоненный интервал возвращается с 200 и непустым reasons: это состояние формы, а не ошибка запроса.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /quotes - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /quotes - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, quoteBooking.ErrInvalidInput):
			h.logger.Warn("POST /quotes - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /quotes - Failed to quote: date=%s, %s-%s, error=%v",
				req.Date, req.StartTime, req.EndTime, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /quotes - Quote computed: date=%s, %s-%s, total=%d, reasons=%v",
		req.Date, req.StartTime, req.EndTime, result.Total, result.Reasons)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
