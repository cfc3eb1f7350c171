package get_bank_accounts

import (
	"net/http"

	"github.com/m04kA/SMC-BoxBooking/internal/api/handlers"
)

type Handler struct {
	service PaymentAccountService
	logger  Logger
}

func NewHandler(service PaymentAccountService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bank-accounts
// Реквизиты для перевода на шаге оплаты
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /bank-accounts - Failed to list accounts: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /bank-accounts - Accounts retrieved: count=%d", len(result.Accounts))
	handlers.RespondJSON(w, http.StatusOK, result)
}
