package create_booking

import (
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-BoxBooking/internal/domain"
)

// Поля формы оплаты
const (
	FieldName          = "name"
	FieldPhone         = "phone"
	FieldUTR           = "utrNumber"
	FieldPaymentOption = "paymentOption"
	FieldScreenshot    = "paymentScreenshot"
	FieldDate          = "date"
	FieldStartTime     = "startTime"
	FieldEndTime       = "endTime"
)

// validateRequest проверяет форму оплаты и возвращает ошибки по всем полям сразу
func validateRequest(req *Request, maxScreenshotBytes int64) error {
	errs := FieldErrors{}

	name := strings.TrimSpace(req.Name)
	switch {
	case name == "":
		errs[FieldName] = "Name is required"
	case utf8.RuneCountInString(name) < domain.MinNameLength:
		errs[FieldName] = "Name must be at least 2 characters"
	}

	phone := strings.TrimSpace(req.Phone)
	switch {
	case phone == "":
		errs[FieldPhone] = "Phone number is required"
	case !isDigits(phone, domain.PhoneDigits):
		errs[FieldPhone] = "Phone number must be 10 digits"
	}

	utr := strings.TrimSpace(req.UTR)
	switch {
	case utr == "":
		errs[FieldUTR] = "UTR number is required"
	case !isDigits(utr, domain.UTRDigits):
		errs[FieldUTR] = "UTR number must be exactly 12 digits"
	}

	if req.PaymentOption != PaymentOptionFull && req.PaymentOption != PaymentOptionPartial {
		errs[FieldPaymentOption] = "Payment option must be full or partial"
	}

	switch {
	case len(req.Screenshot) == 0:
		errs[FieldScreenshot] = "Payment screenshot is required"
	case maxScreenshotBytes > 0 && int64(len(req.Screenshot)) > maxScreenshotBytes:
		errs[FieldScreenshot] = "Payment screenshot is too large"
	}

	if req.Date.IsZero() {
		errs[FieldDate] = "Date is required"
	}
	if req.StartTime.IsZero() {
		errs[FieldStartTime] = "Start time is required"
	}
	if req.EndTime.IsZero() {
		errs[FieldEndTime] = "End time is required"
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// isDigits true, если s состоит ровно из n цифр
func isDigits(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// splitAmount делит сумму на оплату сейчас и остаток на месте
func splitAmount(total int64, option PaymentOption) (paid, balance int64) {
	if option == PaymentOptionPartial {
		paid = (total*domain.PartialPaymentPercent + 50) / 100
		return paid, total - paid
	}
	return total, 0
}
