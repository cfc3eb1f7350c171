package quote_booking

import (
	"context"
	"errors"

	"github.com/m04kA/SMC-BoxBooking/internal/domain"
	couponRepo "github.com/m04kA/SMC-BoxBooking/internal/infra/storage/coupon"
	"github.com/m04kA/SMC-BoxBooking/internal/pricing"
)

// outcomeOK метка успешного расчета в метриках
const outcomeOK = "ok"

// UseCase use case расчета стоимости бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	couponRepo   CouponRepository
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	couponRepo CouponRepository,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		couponRepo:   couponRepo,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute проверяет интервал относительно текущего времени и бронирований той же даты,
// разбивает его по тарифам и применяет промокод.
// Недоступность снимка бронирований не ошибка: она возвращается как причина отказа.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("QuoteBooking: date=%s, start=%s, end=%s, coupon=%q",
		req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime, req.CouponCode)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("QuoteBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Заполняем форму
	state := pricing.NewFormState(now).Apply(
		pricing.DateSelected{Date: req.Date},
		pricing.StartSelected{Start: req.StartTime},
		pricing.EndSelected{End: req.EndTime},
		pricing.CouponEntered{Code: req.CouponCode},
		pricing.SnapshotLoading{},
	)

	// 4. Загружаем снимок бронирований на дату
	bookings, err := uc.bookingRepo.GetByDate(ctx, state.Date)
	if err != nil {
		uc.logger.Error("QuoteBooking: failed to load bookings for date=%s: %v",
			state.Date.Format(domain.DateFormat), err)
		state = state.Apply(pricing.SnapshotFailed{})
	} else {
		state = state.Apply(pricing.SnapshotLoaded{Bookings: bookings})
	}

	// 5. Ищем промокод
	if state.CouponCode != "" {
		state = uc.resolveCoupon(ctx, state)
	}

	// 6. Формируем ответ
	resp := &Response{
		Date:       state.Date,
		StartTime:  state.Start,
		EndTime:    state.End,
		DayType:    domain.DayTypeOf(state.Date),
		Reasons:    state.Reasons,
		Slots:      state.Slots,
		Subtotal:   state.Subtotal,
		CouponCode: state.CouponCode,
		Coupon:     state.Coupon,
		Total:      state.Total,
		CanSubmit:  state.CanSubmit(),
	}

	uc.recordMetrics(resp)

	if len(resp.Reasons) > 0 {
		uc.logger.Info("QuoteBooking: interval rejected: date=%s, %s-%s, reasons=%v",
			req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime, resp.Reasons)
		return resp, nil
	}

	uc.logger.Info("QuoteBooking: slots=%d, subtotal=%d, coupon=%s, total=%d",
		len(resp.Slots), resp.Subtotal, resp.Coupon.Outcome, resp.Total)
	return resp, nil
}

func (uc *UseCase) resolveCoupon(ctx context.Context, state pricing.FormState) pricing.FormState {
	coupon, err := uc.couponRepo.GetByName(ctx, state.CouponCode)
	if err != nil {
		if errors.Is(err, couponRepo.ErrCouponNotFound) {
			uc.logger.Warn("QuoteBooking: coupon %q not found", state.CouponCode)
			return state.Apply(pricing.CouponResolved{Coupon: nil})
		}
		// без результата поиска промокод просто не применяется
		uc.logger.Error("QuoteBooking: failed to get coupon %q: %v", state.CouponCode, err)
		return state
	}

	state = state.Apply(pricing.CouponResolved{Coupon: coupon})
	if state.Coupon.Outcome == pricing.CouponLimitExceeded {
		uc.logger.Warn("QuoteBooking: coupon %q usage limit exceeded (%d/%d)",
			coupon.Name, coupon.Used, coupon.MaxUses)
	}
	return state
}

func (uc *UseCase) recordMetrics(resp *Response) {
	if len(resp.Reasons) > 0 {
		uc.metrics.IncQuote(string(resp.Reasons[0]))
	} else {
		uc.metrics.IncQuote(outcomeOK)
	}

	if resp.CouponCode != "" {
		uc.metrics.IncCouponOutcome(string(resp.Coupon.Outcome))
	}
}
