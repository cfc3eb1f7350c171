package quote_booking

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-BoxBooking/internal/domain"
)

// validateRequest проверяет наличие обязательных полей.
// Формат и допустимость времени проверяет валидатор интервала.
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if req.EndTime.IsZero() {
		return fmt.Errorf("%w: endTime is required", ErrInvalidInput)
	}

	if len(strings.TrimSpace(req.CouponCode)) > domain.MaxCouponCodeLength {
		return fmt.Errorf("%w: couponCode is longer than %d characters", ErrInvalidInput, domain.MaxCouponCodeLength)
	}

	return nil
}
