package domain

import (
	"time"

	"github.com/m04kA/SMC-BoxBooking/pkg/types"
)

// BookingStatus статус бронирования
type BookingStatus string

const (
	// StatusPending бронирование создано, перевод ещё не проверен администратором
	StatusPending BookingStatus = "pending"
)

// PaymentType вариант оплаты при бронировании
type PaymentType string

const (
	PaymentFull    PaymentType = "Full Payment"
	PaymentPartial PaymentType = "Partial Payment (50%)"
)

// Booking запись о бронировании площадки
type Booking struct {
	ID            int64
	CreatedAt     time.Time
	Name          string
	Phone         string
	SlotDate      time.Time // дата без времени
	StartTime     types.TimeString
	EndTime       types.TimeString // "00:00" = конец дня SlotDate
	UTR           string
	PaymentImage  string
	Amount        int64 // сумма, оплаченная переводом
	PaymentType   PaymentType
	BalanceAmount int64 // остаток к оплате на месте, 0 при полной оплате
	CouponCode    string
	Status        BookingStatus
}

// IsOnDate true, если бронирование относится к указанной дате
func (b *Booking) IsOnDate(date time.Time) bool {
	return SameDay(b.SlotDate, date)
}

// SameDay проверяет, что две даты относятся к одному календарному дню
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// DateOnly отбрасывает время, сохраняя локацию
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
