package get_bank_accounts

import (
	"context"

	"github.com/m04kA/SMC-BoxBooking/internal/service/payment_accounts/models"
)

type PaymentAccountService interface {
	List(ctx context.Context) (*models.PaymentAccountListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
