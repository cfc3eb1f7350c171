package pricing

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-BoxBooking/internal/domain"
	"github.com/m04kA/SMC-BoxBooking/pkg/types"
)

// FormState неизменяемое состояние формы бронирования.
// Каждое событие возвращает новое состояние с пересчитанными причинами отказа, слотами и суммой.
type FormState struct {
	Date       time.Time
	Start      types.TimeString
	End        types.TimeString
	CouponCode string
	Now        time.Time
	Snapshot   SnapshotStatus

	bookings       []domain.Booking
	coupon         *domain.Coupon
	couponResolved bool

	// Вычисляемые поля
	Reasons  []Reason
	Slots    []domain.PricedSlot
	Subtotal int64
	Coupon   CouponResult
	Total    int64
}

// Event событие формы
type Event interface {
	apply(s FormState) FormState
}

// DateSelected выбрана дата. Прошедшая дата сбрасывает выбранное время.
type DateSelected struct{ Date time.Time }

// StartSelected выбрано время начала
type StartSelected struct{ Start types.TimeString }

// EndSelected выбрано время окончания
type EndSelected struct{ End types.TimeString }

// CouponEntered введён промокод, до CouponResolved он не влияет на сумму
type CouponEntered struct{ Code string }

// CouponResolved результат поиска промокода, nil - не найден
type CouponResolved struct{ Coupon *domain.Coupon }

// SnapshotLoading начата загрузка бронирований
type SnapshotLoading struct{}

// SnapshotLoaded бронирования загружены
type SnapshotLoaded struct{ Bookings []domain.Booking }

// SnapshotFailed загрузка бронирований не удалась
type SnapshotFailed struct{}

// ClockTicked обновилось текущее время
type ClockTicked struct{ Now time.Time }

// NewFormState начальное состояние: сегодняшняя дата, снимок бронирований не загружен
func NewFormState(now time.Time) FormState {
	s := FormState{
		Date:     domain.DateOnly(now),
		Now:      now,
		Snapshot: SnapshotStatusStale,
	}
	return s.recompute()
}

// Apply применяет события по порядку и возвращает новое состояние
func (s FormState) Apply(events ...Event) FormState {
	for _, e := range events {
		s = e.apply(s)
	}
	return s.recompute()
}

// Bookings копия снимка бронирований
func (s FormState) Bookings() []domain.Booking {
	out := make([]domain.Booking, len(s.bookings))
	copy(out, s.bookings)
	return out
}

// CanSubmit true, если интервал выбран, корректен и имеет цену
func (s FormState) CanSubmit() bool {
	return len(s.Reasons) == 0 && !s.Start.IsZero() && !s.End.IsZero() && s.Subtotal > 0
}

// HasReason true, если среди причин отказа есть указанная
func (s FormState) HasReason(r Reason) bool {
	for _, reason := range s.Reasons {
		if reason == r {
			return true
		}
	}
	return false
}

func (e DateSelected) apply(s FormState) FormState {
	s.Date = domain.DateOnly(e.Date)
	if IsPastDate(s.Date, s.Now) {
		s.Start = ""
		s.End = ""
	}
	return s
}

func (e StartSelected) apply(s FormState) FormState {
	s.Start = e.Start
	return s
}

func (e EndSelected) apply(s FormState) FormState {
	s.End = e.End
	return s
}

func (e CouponEntered) apply(s FormState) FormState {
	code := strings.TrimSpace(e.Code)
	if code != s.CouponCode {
		s.coupon = nil
		s.couponResolved = false
	}
	s.CouponCode = code
	return s
}

func (e CouponResolved) apply(s FormState) FormState {
	if e.Coupon != nil {
		c := *e.Coupon
		s.coupon = &c
	} else {
		s.coupon = nil
	}
	s.couponResolved = true
	return s
}

func (SnapshotLoading) apply(s FormState) FormState {
	s.Snapshot = SnapshotStatusLoading
	return s
}

func (e SnapshotLoaded) apply(s FormState) FormState {
	s.bookings = make([]domain.Booking, len(e.Bookings))
	copy(s.bookings, e.Bookings)
	s.Snapshot = SnapshotStatusLoaded
	return s
}

func (SnapshotFailed) apply(s FormState) FormState {
	s.bookings = nil
	s.Snapshot = SnapshotStatusFetchFailed
	return s
}

func (e ClockTicked) apply(s FormState) FormState {
	s.Now = e.Now
	return s
}

// recompute пересчитывает все производные поля из входных
func (s FormState) recompute() FormState {
	s.Reasons = Validate(ValidationInput{
		Date:     s.Date,
		Start:    s.Start,
		End:      s.End,
		Now:      s.Now,
		Existing: s.bookings,
		Snapshot: s.Snapshot,
	})

	s.Slots = []domain.PricedSlot{}
	s.Subtotal = 0
	if len(s.Reasons) == 0 && !s.Start.IsZero() && !s.End.IsZero() {
		s.Slots = PartitionAndPrice(s.Date, s.Start, s.End)
		s.Subtotal = Total(s.Slots)
	}

	if s.couponResolved && s.CouponCode != "" && s.Subtotal > 0 {
		s.Coupon = ApplyCoupon(s.Subtotal, s.coupon)
	} else {
		s.Coupon = CouponResult{Outcome: CouponNotApplied, Total: s.Subtotal}
	}
	s.Total = s.Coupon.Total

	return s
}
