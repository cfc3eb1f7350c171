package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BoxBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-BoxBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-BoxBooking/internal/pricing"
	quoteBooking "github.com/m04kA/SMC-BoxBooking/internal/usecase/quote_booking"
)

type MockQuoter struct {
	mock.Mock
}

func (m *MockQuoter) Execute(ctx context.Context, req *quoteBooking.Request) (*quoteBooking.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*quoteBooking.Response), args.Error(1)
}

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	args := m.Called(ctx, b)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	b.ID = 101 // simulate DB insert
	return b, args.Error(1)
}

type MockCouponRepository struct {
	mock.Mock
}

func (m *MockCouponRepository) IncrementUsage(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

type MockBlobStore struct {
	mock.Mock
}

func (m *MockBlobStore) Upload(ctx context.Context, data []byte, path string) (string, error) {
	args := m.Called(ctx, data, path)
	return args.String(0), args.Error(1)
}

func (m *MockBlobStore) PublicURL(storedPath string) string {
	return "https://box.example.com/" + storedPath
}

type recordingMetrics struct {
	created []string
}

func (m *recordingMetrics) IncBookingCreated(paymentType string) {
	m.created = append(m.created, paymentType)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

var (
	now      = time.Date(2026, 10, 17, 15, 10, 0, 0, time.UTC)
	tomorrow = time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)
	venue    = VenueInfo{Name: "Box Cricket Arena", Address: "Boduppal, Hyderabad", ContactName: "Rahul"}
)

type fixture struct {
	quoter   *MockQuoter
	bookings *MockBookingRepository
	coupons  *MockCouponRepository
	blobs    *MockBlobStore
	metrics  *recordingMetrics
	uc       *UseCase
}

func newFixture() *fixture {
	f := &fixture{
		quoter:   new(MockQuoter),
		bookings: new(MockBookingRepository),
		coupons:  new(MockCouponRepository),
		blobs:    new(MockBlobStore),
		metrics:  &recordingMetrics{},
	}
	f.uc = NewUseCase(f.quoter, f.bookings, f.coupons, f.blobs, f.metrics, venue, 1024, nopLogger{})
	f.uc.timeProvider = fixedTime{now: now}
	return f
}

func validRequest() *Request {
	return &Request{
		Name:           "  Ravi Kumar ",
		Phone:          "9876543210",
		UTR:            "123456789012",
		PaymentOption:  PaymentOptionFull,
		Date:           tomorrow,
		StartTime:      "22:00",
		EndTime:        "00:00",
		Screenshot:     []byte("png"),
		ScreenshotName: "proof.png",
	}
}

func okQuote(total int64, coupon pricing.CouponResult) *quoteBooking.Response {
	return &quoteBooking.Response{
		Date:      tomorrow,
		StartTime: "22:00",
		EndTime:   "00:00",
		Reasons:   []pricing.Reason{},
		Slots:     []domain.PricedSlot{{Rate: 900, Amount: 1800}},
		Subtotal:  1800,
		Coupon:    coupon,
		Total:     total,
		CanSubmit: true,
	}
}

func TestUseCase_Execute_FullPayment(t *testing.T) {
	f := newFixture()
	f.quoter.On("Execute", mock.Anything, mock.MatchedBy(func(r *quoteBooking.Request) bool {
		return r.Date.Equal(tomorrow) && r.StartTime == "22:00" && r.EndTime == "00:00"
	})).Return(okQuote(1800, pricing.CouponResult{Outcome: pricing.CouponNotApplied, Total: 1800}), nil)
	f.blobs.On("Upload", mock.Anything, []byte("png"), mock.MatchedBy(func(p string) bool {
		return strings.HasPrefix(p, fmt.Sprintf("uploads/%d-", now.UnixMilli())) && strings.HasSuffix(p, "-proof.png")
	})).Return("uploads/x-proof.png", nil)
	f.bookings.On("Create", mock.Anything, mock.Anything).Return(&domain.Booking{}, nil)

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(101), resp.ID)
	assert.Equal(t, int64(1800), resp.OriginalAmount)
	assert.Equal(t, int64(1800), resp.AmountPaid)
	assert.Equal(t, int64(0), resp.Balance)
	assert.Equal(t, venue, resp.Venue)

	b := resp.Booking
	assert.Equal(t, "Ravi Kumar", b.Name)
	assert.Equal(t, domain.PaymentFull, b.PaymentType)
	assert.Equal(t, domain.StatusPending, b.Status)
	assert.Equal(t, "https://box.example.com/uploads/x-proof.png", b.PaymentImage)
	assert.Equal(t, now, b.CreatedAt)
	assert.Equal(t, tomorrow, b.SlotDate)
	assert.Empty(t, b.CouponCode)
	assert.Equal(t, int64(0), b.BalanceAmount)

	assert.Equal(t, []string{"full"}, f.metrics.created)
	f.coupons.AssertNotCalled(t, "IncrementUsage", mock.Anything, mock.Anything)
}

func TestUseCase_Execute_PartialPaymentWithCoupon(t *testing.T) {
	f := newFixture()
	coupon := pricing.CouponResult{Outcome: pricing.CouponApplied, Code: "SPRING20", PercentageOff: 15, Discount: 157, Total: 893}
	f.quoter.On("Execute", mock.Anything, mock.Anything).Return(okQuote(893, coupon), nil)
	f.blobs.On("Upload", mock.Anything, mock.Anything, mock.Anything).Return("uploads/y.png", nil)
	f.bookings.On("Create", mock.Anything, mock.Anything).Return(&domain.Booking{}, nil)
	f.coupons.On("IncrementUsage", mock.Anything, "SPRING20").Return(nil)

	req := validRequest()
	req.PaymentOption = PaymentOptionPartial
	req.CouponCode = "SPRING20"

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, int64(893), resp.OriginalAmount)
	assert.Equal(t, int64(447), resp.AmountPaid)
	assert.Equal(t, int64(446), resp.Balance)
	assert.Equal(t, domain.PaymentPartial, resp.Booking.PaymentType)
	assert.Equal(t, "SPRING20", resp.Booking.CouponCode)
	f.coupons.AssertExpectations(t)
}

func TestUseCase_Execute_CouponIncrementFailureKeepsBooking(t *testing.T) {
	f := newFixture()
	coupon := pricing.CouponResult{Outcome: pricing.CouponApplied, Code: "SPRING20", PercentageOff: 20, Discount: 360, Total: 1440}
	f.quoter.On("Execute", mock.Anything, mock.Anything).Return(okQuote(1440, coupon), nil)
	f.blobs.On("Upload", mock.Anything, mock.Anything, mock.Anything).Return("uploads/y.png", nil)
	f.bookings.On("Create", mock.Anything, mock.Anything).Return(&domain.Booking{}, nil)
	f.coupons.On("IncrementUsage", mock.Anything, "SPRING20").Return(errors.New("deadlock"))

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(101), resp.ID)
}

func TestUseCase_Execute_LimitExceededCouponNotRecorded(t *testing.T) {
	f := newFixture()
	coupon := pricing.CouponResult{Outcome: pricing.CouponLimitExceeded, Code: "USED", Total: 1800}
	f.quoter.On("Execute", mock.Anything, mock.Anything).Return(okQuote(1800, coupon), nil)
	f.blobs.On("Upload", mock.Anything, mock.Anything, mock.Anything).Return("uploads/y.png", nil)
	f.bookings.On("Create", mock.Anything, mock.Anything).Return(&domain.Booking{}, nil)

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Empty(t, resp.Booking.CouponCode)
	assert.Equal(t, int64(1800), resp.AmountPaid)
	f.coupons.AssertNotCalled(t, "IncrementUsage", mock.Anything, mock.Anything)
}

func TestUseCase_Execute_ValidationErrors(t *testing.T) {
	f := newFixture()
	req := &Request{
		Name:          " R ",
		Phone:         "98765-4321",
		UTR:           "12345",
		PaymentOption: "half",
		Screenshot:    make([]byte, 2048),
		Date:          tomorrow,
		StartTime:     "10:00",
		EndTime:       "12:00",
	}

	_, err := f.uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrInvalidInput)

	var fieldErrs FieldErrors
	require.True(t, errors.As(err, &fieldErrs))
	assert.Equal(t, "Name must be at least 2 characters", fieldErrs[FieldName])
	assert.Equal(t, "Phone number must be 10 digits", fieldErrs[FieldPhone])
	assert.Equal(t, "UTR number must be exactly 12 digits", fieldErrs[FieldUTR])
	assert.Contains(t, fieldErrs, FieldPaymentOption)
	assert.Equal(t, "Payment screenshot is too large", fieldErrs[FieldScreenshot])
	f.quoter.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestUseCase_Execute_MissingScreenshot(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.Screenshot = nil

	_, err := f.uc.Execute(context.Background(), req)

	var fieldErrs FieldErrors
	require.True(t, errors.As(err, &fieldErrs))
	assert.Equal(t, map[string]string{FieldScreenshot: "Payment screenshot is required"}, map[string]string(fieldErrs))
}

func TestUseCase_Execute_SlotRejected(t *testing.T) {
	f := newFixture()
	f.quoter.On("Execute", mock.Anything, mock.Anything).Return(&quoteBooking.Response{
		Reasons: []pricing.Reason{pricing.ReasonOverlap},
	}, nil)

	_, err := f.uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrInvalidSlot)

	var slotErr *SlotError
	require.True(t, errors.As(err, &slotErr))
	assert.Equal(t, []pricing.Reason{pricing.ReasonOverlap}, slotErr.Reasons)
	f.blobs.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
}

func TestUseCase_Execute_QuoteFailure(t *testing.T) {
	f := newFixture()
	f.quoter.On("Execute", mock.Anything, mock.Anything).Return(nil, errors.New("boom"))

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestUseCase_Execute_UploadFailed(t *testing.T) {
	f := newFixture()
	f.quoter.On("Execute", mock.Anything, mock.Anything).
		Return(okQuote(1800, pricing.CouponResult{Outcome: pricing.CouponNotApplied, Total: 1800}), nil)
	f.blobs.On("Upload", mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("disk full"))

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrUploadFailed)
	f.bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUseCase_Execute_AlreadyProcessed(t *testing.T) {
	f := newFixture()
	f.quoter.On("Execute", mock.Anything, mock.Anything).
		Return(okQuote(1800, pricing.CouponResult{Outcome: pricing.CouponNotApplied, Total: 1800}), nil)
	f.blobs.On("Upload", mock.Anything, mock.Anything, mock.Anything).Return("uploads/y.png", nil)
	f.bookings.On("Create", mock.Anything, mock.Anything).Return(nil, bookingRepo.ErrDuplicateBooking)

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrAlreadyProcessed)
	assert.Empty(t, f.metrics.created)
}

func TestUseCase_Execute_CreateFailed(t *testing.T) {
	f := newFixture()
	f.quoter.On("Execute", mock.Anything, mock.Anything).
		Return(okQuote(1800, pricing.CouponResult{Outcome: pricing.CouponNotApplied, Total: 1800}), nil)
	f.blobs.On("Upload", mock.Anything, mock.Anything, mock.Anything).Return("uploads/y.png", nil)
	f.bookings.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("conn reset"))

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestSplitAmount(t *testing.T) {
	paid, balance := splitAmount(1445, PaymentOptionPartial)
	assert.Equal(t, int64(723), paid)
	assert.Equal(t, int64(722), balance)

	paid, balance = splitAmount(1445, PaymentOptionFull)
	assert.Equal(t, int64(1445), paid)
	assert.Equal(t, int64(0), balance)
}
