package create_booking

import (
	"time"

	"github.com/m04kA/SMC-BoxBooking/internal/domain"
	"github.com/m04kA/SMC-BoxBooking/internal/pricing"
	"github.com/m04kA/SMC-BoxBooking/pkg/types"
)

// PaymentOption выбранный вариант оплаты
type PaymentOption string

const (
	PaymentOptionFull    PaymentOption = "full"
	PaymentOptionPartial PaymentOption = "partial"
)

// PaymentType тип оплаты, сохраняемый в записи бронирования
func (o PaymentOption) PaymentType() domain.PaymentType {
	if o == PaymentOptionPartial {
		return domain.PaymentPartial
	}
	return domain.PaymentFull
}

// Request подтверждение ручного перевода
type Request struct {
	Name           string
	Phone          string
	UTR            string // номер транзакции UPI, 12 цифр
	PaymentOption  PaymentOption
	Date           time.Time
	StartTime      types.TimeString
	EndTime        types.TimeString
	CouponCode     string
	Screenshot     []byte
	ScreenshotName string
}

// VenueInfo сведения о площадке для подтверждения
type VenueInfo struct {
	Name          string
	Address       string
	MapsURL       string
	Coordinates   string
	ContactName   string
	ContactPhones []string
	SupportPhone  string
}

// Response подтверждение бронирования
type Response struct {
	ID             int64
	Booking        domain.Booking
	Slots          []domain.PricedSlot
	Coupon         pricing.CouponResult
	OriginalAmount int64 // стоимость после скидки, до выбора варианта оплаты
	AmountPaid     int64
	Balance        int64 // к оплате на месте
	Venue          VenueInfo
}
