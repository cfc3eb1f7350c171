package list_bookings

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BoxBooking/internal/service/bookings/models"
)

type BookingService interface {
	GetByDate(ctx context.Context, date time.Time) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
