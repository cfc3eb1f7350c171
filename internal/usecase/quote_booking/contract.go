package quote_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BoxBooking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByDate(ctx context.Context, date time.Time) ([]domain.Booking, error)
}

// CouponRepository интерфейс репозитория промокодов
type CouponRepository interface {
	GetByName(ctx context.Context, name string) (*domain.Coupon, error)
}

// Metrics счетчики расчетов стоимости
type Metrics interface {
	IncQuote(outcome string)
	IncCouponOutcome(outcome string)
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
