package quote_booking

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BoxBooking/internal/domain"
	couponRepo "github.com/m04kA/SMC-BoxBooking/internal/infra/storage/coupon"
	"github.com/m04kA/SMC-BoxBooking/internal/pricing"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) GetByDate(ctx context.Context, date time.Time) ([]domain.Booking, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

type MockCouponRepository struct {
	mock.Mock
}

func (m *MockCouponRepository) GetByName(ctx context.Context, name string) (*domain.Coupon, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Coupon), args.Error(1)
}

type recordingMetrics struct {
	quotes  []string
	coupons []string
}

func (m *recordingMetrics) IncQuote(outcome string)         { m.quotes = append(m.quotes, outcome) }
func (m *recordingMetrics) IncCouponOutcome(outcome string) { m.coupons = append(m.coupons, outcome) }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

var (
	now      = time.Date(2026, 10, 17, 15, 10, 0, 0, time.UTC) // суббота
	tomorrow = time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)   // воскресенье
	monday   = time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
)

func newUseCase(bookings *MockBookingRepository, coupons *MockCouponRepository) (*UseCase, *recordingMetrics) {
	metrics := &recordingMetrics{}
	uc := NewUseCase(bookings, coupons, metrics, nopLogger{})
	uc.timeProvider = fixedTime{now: now}
	return uc, metrics
}

func TestUseCase_Execute_Success(t *testing.T) {
	bookings := new(MockBookingRepository)
	coupons := new(MockCouponRepository)
	bookings.On("GetByDate", mock.Anything, monday).Return([]domain.Booking{
		{SlotDate: monday, StartTime: "14:00", EndTime: "16:00"},
	}, nil)

	uc, metrics := newUseCase(bookings, coupons)

	resp, err := uc.Execute(context.Background(), &Request{Date: monday, StartTime: "06:00", EndTime: "14:00"})
	require.NoError(t, err)

	assert.Empty(t, resp.Reasons)
	assert.Equal(t, domain.Weekday, resp.DayType)
	require.Len(t, resp.Slots, 2)
	assert.Equal(t, int64(4600), resp.Subtotal)
	assert.Equal(t, int64(4600), resp.Total)
	assert.Equal(t, pricing.CouponNotApplied, resp.Coupon.Outcome)
	assert.True(t, resp.CanSubmit)
	assert.Equal(t, []string{"ok"}, metrics.quotes)
	assert.Empty(t, metrics.coupons)
	coupons.AssertNotCalled(t, "GetByName", mock.Anything, mock.Anything)
}

func TestUseCase_Execute_CouponApplied(t *testing.T) {
	bookings := new(MockBookingRepository)
	coupons := new(MockCouponRepository)
	bookings.On("GetByDate", mock.Anything, tomorrow).Return([]domain.Booking{}, nil)
	coupons.On("GetByName", mock.Anything, "SPRING20").
		Return(&domain.Coupon{Name: "SPRING20", Percentage: 20, Used: 1, MaxUses: 10}, nil)

	uc, metrics := newUseCase(bookings, coupons)

	resp, err := uc.Execute(context.Background(), &Request{
		Date: tomorrow, StartTime: "22:00", EndTime: "00:00", CouponCode: " SPRING20 ",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1800), resp.Subtotal)
	assert.Equal(t, pricing.CouponApplied, resp.Coupon.Outcome)
	assert.Equal(t, 20, resp.Coupon.PercentageOff)
	assert.Equal(t, int64(1440), resp.Total)
	assert.Equal(t, "SPRING20", resp.CouponCode)
	assert.Equal(t, []string{"applied"}, metrics.coupons)
}

func TestUseCase_Execute_CouponLimitExceeded(t *testing.T) {
	bookings := new(MockBookingRepository)
	coupons := new(MockCouponRepository)
	bookings.On("GetByDate", mock.Anything, tomorrow).Return([]domain.Booking{}, nil)
	coupons.On("GetByName", mock.Anything, "USED").
		Return(&domain.Coupon{Name: "USED", Percentage: 20, Used: 5, MaxUses: 5}, nil)

	uc, _ := newUseCase(bookings, coupons)

	resp, err := uc.Execute(context.Background(), &Request{
		Date: tomorrow, StartTime: "10:00", EndTime: "12:00", CouponCode: "USED",
	})
	require.NoError(t, err)

	assert.Equal(t, pricing.CouponLimitExceeded, resp.Coupon.Outcome)
	assert.Equal(t, resp.Subtotal, resp.Total)
	assert.True(t, resp.CanSubmit)
}

func TestUseCase_Execute_CouponLookup(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "not found", err: fmt.Errorf("wrapped: %w", couponRepo.ErrCouponNotFound)},
		{name: "store failure", err: errors.New("connection reset")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bookings := new(MockBookingRepository)
			coupons := new(MockCouponRepository)
			bookings.On("GetByDate", mock.Anything, tomorrow).Return([]domain.Booking{}, nil)
			coupons.On("GetByName", mock.Anything, "NOPE").Return(nil, tt.err)

			uc, _ := newUseCase(bookings, coupons)

			resp, err := uc.Execute(context.Background(), &Request{
				Date: tomorrow, StartTime: "10:00", EndTime: "12:00", CouponCode: "NOPE",
			})
			require.NoError(t, err)

			assert.Equal(t, pricing.CouponNotApplied, resp.Coupon.Outcome)
			assert.Equal(t, int64(1400), resp.Total)
		})
	}
}

func TestUseCase_Execute_Overlap(t *testing.T) {
	bookings := new(MockBookingRepository)
	coupons := new(MockCouponRepository)
	bookings.On("GetByDate", mock.Anything, tomorrow).Return([]domain.Booking{
		{SlotDate: tomorrow, StartTime: "11:00", EndTime: "13:00"},
	}, nil)

	uc, metrics := newUseCase(bookings, coupons)

	resp, err := uc.Execute(context.Background(), &Request{Date: tomorrow, StartTime: "10:00", EndTime: "12:00"})
	require.NoError(t, err)

	assert.Equal(t, []pricing.Reason{pricing.ReasonOverlap}, resp.Reasons)
	assert.Empty(t, resp.Slots)
	assert.Equal(t, int64(0), resp.Total)
	assert.False(t, resp.CanSubmit)
	assert.Equal(t, []string{"overlap"}, metrics.quotes)
}

func TestUseCase_Execute_SnapshotFailure(t *testing.T) {
	bookings := new(MockBookingRepository)
	coupons := new(MockCouponRepository)
	bookings.On("GetByDate", mock.Anything, tomorrow).Return(nil, errors.New("db down"))

	uc, _ := newUseCase(bookings, coupons)

	resp, err := uc.Execute(context.Background(), &Request{Date: tomorrow, StartTime: "10:00", EndTime: "12:00"})
	require.NoError(t, err)

	assert.Equal(t, []pricing.Reason{pricing.ReasonSnapshotUnavailable}, resp.Reasons)
	assert.False(t, resp.CanSubmit)
}

func TestUseCase_Execute_PastStart(t *testing.T) {
	today := time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)
	bookings := new(MockBookingRepository)
	coupons := new(MockCouponRepository)
	bookings.On("GetByDate", mock.Anything, today).Return([]domain.Booking{}, nil)

	uc, _ := newUseCase(bookings, coupons)

	resp, err := uc.Execute(context.Background(), &Request{Date: today, StartTime: "15:00", EndTime: "17:00"})
	require.NoError(t, err)

	assert.Equal(t, []pricing.Reason{pricing.ReasonPastStartTime}, resp.Reasons)
}

func TestUseCase_Execute_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		req  *Request
	}{
		{name: "no date", req: &Request{StartTime: "10:00", EndTime: "12:00"}},
		{name: "no start", req: &Request{Date: tomorrow, EndTime: "12:00"}},
		{name: "no end", req: &Request{Date: tomorrow, StartTime: "10:00"}},
		{name: "long coupon", req: &Request{Date: tomorrow, StartTime: "10:00", EndTime: "12:00", CouponCode: string(make([]byte, 65))}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bookings := new(MockBookingRepository)
			uc, _ := newUseCase(bookings, new(MockCouponRepository))

			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			bookings.AssertNotCalled(t, "GetByDate", mock.Anything, mock.Anything)
		})
	}
}
