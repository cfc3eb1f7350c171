package domain

// Ограничения бронирования
const (
	SlotStepMinutes       = 30
	PartialPaymentPercent = 50
	MinNameLength         = 2
	PhoneDigits           = 10
	UTRDigits             = 12
	MaxCouponCodeLength   = 64
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
