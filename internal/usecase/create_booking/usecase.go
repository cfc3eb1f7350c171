package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-BoxBooking/internal/domain"
	"github.com/m04kA/SMC-BoxBooking/internal/infra/blobstore"
	bookingRepo "github.com/m04kA/SMC-BoxBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-BoxBooking/internal/pricing"
	quoteBooking "github.com/m04kA/SMC-BoxBooking/internal/usecase/quote_booking"
)

// UseCase use case оформления бронирования по подтверждению перевода
type UseCase struct {
	quoter             Quoter
	bookingRepo        BookingRepository
	couponRepo         CouponRepository
	blobStore          BlobStore
	metrics            Metrics
	venue              VenueInfo
	maxScreenshotBytes int64
	timeProvider       TimeProvider
	logger             Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	quoter Quoter,
	bookingRepo BookingRepository,
	couponRepo CouponRepository,
	blobStore BlobStore,
	metrics Metrics,
	venue VenueInfo,
	maxScreenshotBytes int64,
	logger Logger,
) *UseCase {
	return &UseCase{
		quoter:             quoter,
		bookingRepo:        bookingRepo,
		couponRepo:         couponRepo,
		blobStore:          blobStore,
		metrics:            metrics,
		venue:              venue,
		maxScreenshotBytes: maxScreenshotBytes,
		timeProvider:       &RealTimeProvider{},
		logger:             logger,
	}
}

// Execute выполняет use case оформления бронирования.
// Интервал и сумма пересчитываются на сервере, присланная клиентом сумма не используется.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: date=%s, start=%s, end=%s, option=%s, coupon=%q",
		req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime, req.PaymentOption, req.CouponCode)

	// 1. Валидация формы оплаты
	if err := validateRequest(req, uc.maxScreenshotBytes); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Повторный расчет стоимости
	quote, err := uc.quoter.Execute(ctx, &quoteBooking.Request{
		Date:       req.Date,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		CouponCode: req.CouponCode,
	})
	if err != nil {
		if errors.Is(err, quoteBooking.ErrInvalidInput) {
			uc.logger.Warn("CreateBooking: quote rejected input: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		uc.logger.Error("CreateBooking: failed to quote: %v", err)
		return nil, fmt.Errorf("%w: failed to quote: %v", ErrInternal, err)
	}
	if len(quote.Reasons) > 0 || !quote.CanSubmit {
		uc.logger.Warn("CreateBooking: slot %s %s-%s rejected: %v",
			req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime, quote.Reasons)
		return nil, &SlotError{Reasons: quote.Reasons}
	}

	// 3. Сумма к оплате сейчас и остаток
	paid, balance := splitAmount(quote.Total, req.PaymentOption)

	// 4. Загружаем скриншот оплаты
	now := uc.timeProvider.Now()
	storedPath, err := uc.blobStore.Upload(ctx, req.Screenshot, blobstore.NewObjectPath(now, req.ScreenshotName))
	if err != nil {
		uc.logger.Error("CreateBooking: failed to upload screenshot utr=%s: %v", req.UTR, err)
		return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	imageURL := uc.blobStore.PublicURL(storedPath)

	// 5. Сохраняем бронирование
	couponCode := ""
	if quote.Coupon.Outcome == pricing.CouponApplied {
		couponCode = quote.Coupon.Code
	}

	booking := &domain.Booking{
		CreatedAt:     now,
		Name:          strings.TrimSpace(req.Name),
		Phone:         strings.TrimSpace(req.Phone),
		SlotDate:      quote.Date,
		StartTime:     quote.StartTime,
		EndTime:       quote.EndTime,
		UTR:           strings.TrimSpace(req.UTR),
		PaymentImage:  imageURL,
		Amount:        paid,
		PaymentType:   req.PaymentOption.PaymentType(),
		BalanceAmount: balance,
		CouponCode:    couponCode,
		Status:        domain.StatusPending,
	}

	created, err := uc.bookingRepo.Create(ctx, booking)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrDuplicateBooking) {
			uc.logger.Warn("CreateBooking: payment already processed: date=%s, %s-%s, utr=%s",
				req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime, booking.UTR)
			return nil, ErrAlreadyProcessed
		}
		uc.logger.Error("CreateBooking: failed to create booking: %v", err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	// 6. Учитываем использование промокода, бронирование остается в силе при ошибке
	if couponCode != "" {
		if err := uc.couponRepo.IncrementUsage(ctx, couponCode); err != nil {
			uc.logger.Error("CreateBooking: failed to increment usage of coupon %q for booking id=%d: %v",
				couponCode, created.ID, err)
		}
	}

	uc.metrics.IncBookingCreated(string(req.PaymentOption))
	uc.logger.Info("CreateBooking: booking id=%d created: total=%d, paid=%d, balance=%d",
		created.ID, quote.Total, paid, balance)

	// 7. Формируем подтверждение
	return &Response{
		ID:             created.ID,
		Booking:        *created,
		Slots:          quote.Slots,
		Coupon:         quote.Coupon,
		OriginalAmount: quote.Total,
		AmountPaid:     paid,
		Balance:        balance,
		Venue:          uc.venue,
	}, nil
}
