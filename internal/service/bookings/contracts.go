package bookings

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BoxBooking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByDate(ctx context.Context, date time.Time) ([]domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
