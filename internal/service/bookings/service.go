package bookings

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-BoxBooking/internal/domain"
	"github.com/m04kA/SMC-BoxBooking/internal/service/bookings/models"
)

// Service сервис чтения бронирований
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByDate возвращает занятые интервалы на дату для списка "уже забронировано"
func (s *Service) GetByDate(ctx context.Context, date time.Time) (*models.BookingListResponse, error) {
	if date.IsZero() {
		s.logger.Warn("GetByDate: empty date")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	day := date.Format(domain.DateFormat)
	s.logger.Info("GetByDate: fetching bookings for date=%s", day)

	bookings, err := s.bookingRepo.GetByDate(ctx, date)
	if err != nil {
		s.logger.Error("GetByDate: repository error for date=%s: %v", day, err)
		return nil, fmt.Errorf("%w: GetByDate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByDate: found %d bookings for date=%s", len(bookings), day)
	return models.FromDomainBookings(day, bookings), nil
}
