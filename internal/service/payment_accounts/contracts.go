package payment_accounts

import (
	"context"

	"github.com/m04kA/SMC-BoxBooking/internal/domain"
)

// PaymentAccountRepository интерфейс репозитория реквизитов
type PaymentAccountRepository interface {
	List(ctx context.Context) ([]domain.PaymentAccount, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
