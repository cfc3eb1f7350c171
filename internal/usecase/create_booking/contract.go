package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BoxBooking/internal/domain"
	quoteBooking "github.com/m04kA/SMC-BoxBooking/internal/usecase/quote_booking"
)

// Quoter повторный расчет стоимости на сервере
type Quoter interface {
	Execute(ctx context.Context, req *quoteBooking.Request) (*quoteBooking.Response, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// CouponRepository интерфейс репозитория промокодов
type CouponRepository interface {
	IncrementUsage(ctx context.Context, name string) error
}

// BlobStore хранилище скриншотов оплаты
type BlobStore interface {
	Upload(ctx context.Context, data []byte, path string) (string, error)
	PublicURL(storedPath string) string
}

// Metrics счетчики созданных бронирований
type Metrics interface {
	IncBookingCreated(paymentType string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
