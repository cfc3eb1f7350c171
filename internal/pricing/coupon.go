package pricing

import "github.com/m04kA/SMC-BoxBooking/internal/domain"

// ApplyCoupon применяет промокод к сумме.
// coupon == nil означает, что промокод не найден: сумма не меняется, ошибки нет.
// Исчерпанный промокод не даёт скидки. Счётчик использований здесь не меняется,
// его увеличивает оформление бронирования после успешного создания записи.
func ApplyCoupon(total int64, coupon *domain.Coupon) CouponResult {
	if coupon == nil {
		return CouponResult{Outcome: CouponNotApplied, Total: total}
	}

	if coupon.IsExhausted() {
		return CouponResult{
			Outcome: CouponLimitExceeded,
			Code:    coupon.Name,
			Total:   total,
		}
	}

	percentage := clampPercentage(coupon.Percentage)
	discounted := roundAmount(float64(total) - float64(total)*float64(percentage)/100)

	return CouponResult{
		Outcome:       CouponApplied,
		Code:          coupon.Name,
		PercentageOff: percentage,
		Discount:      total - discounted,
		Total:         discounted,
	}
}

func clampPercentage(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
