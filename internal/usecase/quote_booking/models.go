package quote_booking

import (
	"time"

	"github.com/m04kA/SMC-BoxBooking/internal/domain"
	"github.com/m04kA/SMC-BoxBooking/internal/pricing"
	"github.com/m04kA/SMC-BoxBooking/pkg/types"
)

// Request запрос расчета стоимости интервала
type Request struct {
	Date       time.Time        // Дата бронирования (без времени)
	StartTime  types.TimeString // Время начала, "10:00"
	EndTime    types.TimeString // Время окончания, "00:00" = конец дня
	CouponCode string           // Промокод (опционально)
}

// Response расчет стоимости.
// Непустой Reasons означает, что интервал забронировать нельзя, это не ошибка запроса.
type Response struct {
	Date       time.Time
	StartTime  types.TimeString
	EndTime    types.TimeString
	DayType    domain.DayType
	Reasons    []pricing.Reason
	Slots      []domain.PricedSlot
	Subtotal   int64  // сумма до скидки
	CouponCode string // введенный промокод без пробелов по краям
	Coupon     pricing.CouponResult
	Total      int64 // сумма к оплате
	CanSubmit  bool
}
