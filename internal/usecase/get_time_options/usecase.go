package get_time_options

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-BoxBooking/internal/domain"
	"github.com/m04kA/SMC-BoxBooking/internal/pricing"
)

// UseCase use case получения вариантов времени для формы бронирования
type UseCase struct {
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(logger Logger) *UseCase {
	return &UseCase{
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute возвращает варианты начала и окончания для даты.
// Занятость интервалов здесь не учитывается, ее проверяет расчет стоимости.
func (uc *UseCase) Execute(_ context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req.Date.IsZero() {
		uc.logger.Warn("GetTimeOptions: empty date")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if !req.Start.IsZero() {
		if err := req.Start.Validate(); err != nil {
			uc.logger.Warn("GetTimeOptions: invalid start %q: %v", req.Start, err)
			return nil, fmt.Errorf("%w: invalid start: %v", ErrInvalidInput, err)
		}
		if !pricing.IsSlotMark(req.Start) {
			uc.logger.Warn("GetTimeOptions: start %q is not on the 30-minute grid", req.Start)
			return nil, fmt.Errorf("%w: start %s is not on the 30-minute grid", ErrInvalidInput, req.Start)
		}
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()
	date := domain.DateOnly(req.Date)

	// 3. Строим варианты
	resp := &Response{
		Date:         date,
		Past:         pricing.IsPastDate(date, now),
		StartOptions: pricing.StartOptions(date, now),
		EndOptions:   pricing.EndOptions(date, req.Start, now),
	}

	uc.logger.Info("GetTimeOptions: date=%s, start=%q, startOptions=%d, endOptions=%d",
		date.Format(domain.DateFormat), req.Start, len(resp.StartOptions), len(resp.EndOptions))
	return resp, nil
}
