package quote_booking

import (
	"fmt"

	"github.com/m04kA/SMC-BoxBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BoxBooking/internal/domain"
	"github.com/m04kA/SMC-BoxBooking/internal/pricing"
	quoteBooking "github.com/m04kA/SMC-BoxBooking/internal/usecase/quote_booking"
	"github.com/m04kA/SMC-BoxBooking/pkg/types"
)

const msgCouponLimitExceeded = "Coupon usage limit exceeded. Proceeding without coupon."

// QuoteRequest HTTP request model
type QuoteRequest struct {
	Date       string `json:"date"`      // "2026-10-18"
	StartTime  string `json:"startTime"` // "10:00"
	EndTime    string `json:"endTime"`   // "00:00" = до конца дня
	CouponCode string `json:"couponCode,omitempty"`
}

// ReasonResponse причина отказа
type ReasonResponse struct {
	Code    string `json:"code"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// SlotResponse строка расчета по тарифному периоду
type SlotResponse struct {
	Period string `json:"period"` // "22:00 - 00:00"
	Hours  string `json:"hours"`  // "2.00"
	Rate   int    `json:"rate"`
	Amount int64  `json:"amount"`
}

// CouponResponse результат применения промокода
type CouponResponse struct {
	Code          string `json:"code,omitempty"`
	Outcome       string `json:"outcome"`
	PercentageOff int    `json:"percentageOff"`
	Discount      int64  `json:"discount"`
	Message       string `json:"message,omitempty"`
}

// QuoteResponse HTTP response model
type QuoteResponse struct {
	Date      string           `json:"date"`
	StartTime string           `json:"startTime"`
	EndTime   string           `json:"endTime"`
	DayType   string           `json:"dayType"`
	Weekend   bool             `json:"weekend"`
	Reasons   []ReasonResponse `json:"reasons"`
	Slots     []SlotResponse   `json:"slots"`
	Subtotal  int64            `json:"subtotal"`
	Coupon    CouponResponse   `json:"coupon"`
	Total     int64            `json:"total"`
	CanSubmit bool             `json:"canSubmit"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Время приводится к виду HH:MM, формат и кратность получасу проверяет расчет.
func (r *QuoteRequest) ToUseCaseRequest() (*quoteBooking.Request, error) {
	date, err := handlers.ParseDate(r.Date)
	if err != nil {
		return nil, err
	}

	return &quoteBooking.Request{
		Date:       date,
		StartTime:  types.ParseTimeString(r.StartTime),
		EndTime:    types.ParseTimeString(r.EndTime),
		CouponCode: r.CouponCode,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *quoteBooking.Response) *QuoteResponse {
	return &QuoteResponse{
		Date:      resp.Date.Format(domain.DateFormat),
		StartTime: resp.StartTime.String(),
		EndTime:   resp.EndTime.String(),
		DayType:   string(resp.DayType),
		Weekend:   resp.DayType == domain.Weekend,
		Reasons:   FromReasons(resp.Reasons),
		Slots:     FromSlots(resp.Slots),
		Subtotal:  resp.Subtotal,
		Coupon:    FromCouponResult(resp.CouponCode, resp.Coupon),
		Total:     resp.Total,
		CanSubmit: resp.CanSubmit,
	}
}

// FromReasons конвертирует причины отказа с сообщениями для формы
func FromReasons(reasons []pricing.Reason) []ReasonResponse {
	out := make([]ReasonResponse, len(reasons))
	for i, r := range reasons {
		out[i] = ReasonResponse{
			Code:    string(r),
			Field:   string(r.Field()),
			Message: r.Message(),
		}
	}
	return out
}

// FromSlots конвертирует слоты расчета
func FromSlots(slots []domain.PricedSlot) []SlotResponse {
	out := make([]SlotResponse, len(slots))
	for i, s := range slots {
		out[i] = SlotResponse{
			Period: s.Period(),
			Hours:  s.HoursLabel(),
			Rate:   s.Rate,
			Amount: s.Amount,
		}
	}
	return out
}

// FromCouponResult конвертирует результат промокода.
// Ненайденный промокод молча не применяется.
func FromCouponResult(enteredCode string, c pricing.CouponResult) CouponResponse {
	resp := CouponResponse{
		Code:          enteredCode,
		Outcome:       string(c.Outcome),
		PercentageOff: c.PercentageOff,
		Discount:      c.Discount,
	}

	switch c.Outcome {
	case pricing.CouponApplied:
		resp.Message = fmt.Sprintf("Coupon applied: %d%% off", c.PercentageOff)
	case pricing.CouponLimitExceeded:
		resp.Message = msgCouponLimitExceeded
	}
	return resp
}
