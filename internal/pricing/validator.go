package pricing

import (
	"time"

	"github.com/m04kA/SMC-BoxBooking/internal/domain"
	"github.com/m04kA/SMC-BoxBooking/pkg/types"
)

// Validate проверяет дату и интервал относительно текущего времени и уже существующих бронирований.
// Пустой результат означает, что интервал можно бронировать.
// Функция чистая: весь ввод приходит аргументом, включая now и снимок бронирований.
func Validate(in ValidationInput) []Reason {
	reasons := make([]Reason, 0)

	today := isSameDay(in.Date, in.Now)
	if IsPastDate(in.Date, in.Now) {
		reasons = append(reasons, ReasonPastDate)
	}

	var (
		start, end           types.ClockPoint
		startSet, endSet     bool
		startValid, endValid bool
	)

	if !in.Start.IsZero() {
		startSet = true
		start, startValid = parseMark(in.Start, types.StartPoint)
	}
	if !in.End.IsZero() {
		endSet = true
		end, endValid = parseMark(in.End, types.EndPoint)
	}

	if (startSet && !startValid) || (endSet && !endValid) {
		reasons = append(reasons, ReasonInvalidTime)
	}

	current := currentPoint(in.Now)

	if today && startValid && start.Before(current) {
		reasons = append(reasons, ReasonPastStartTime)
	}

	// конец дня никогда не бывает в прошлом для сегодняшней даты
	if today && endValid && !end.IsEndOfDay() && end.Before(current) {
		reasons = append(reasons, ReasonPastEndTime)
	}

	if !startValid || !endValid {
		return reasons
	}

	if !end.After(start) {
		reasons = append(reasons, ReasonEndNotAfterStart)
		return reasons
	}

	if in.Snapshot != SnapshotStatusLoaded {
		reasons = append(reasons, ReasonSnapshotUnavailable)
		return reasons
	}

	if overlapsAny(in.Date, start, end, in.Existing) {
		reasons = append(reasons, ReasonOverlap)
	}

	return reasons
}

// Overlaps проверяет пересечение полуоткрытых интервалов [aStart, aEnd) и [bStart, bEnd).
// Касание границ пересечением не считается.
func Overlaps(aStart, aEnd, bStart, bEnd types.ClockPoint) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// overlapsAny проверяет пересечение с бронированиями той же даты
func overlapsAny(date time.Time, start, end types.ClockPoint, bookings []domain.Booking) bool {
	for i := range bookings {
		booking := &bookings[i]
		if !booking.IsOnDate(date) {
			continue
		}

		bookingStart, err := types.StartPoint(booking.StartTime)
		if err != nil {
			continue
		}
		bookingEnd, err := types.EndPoint(booking.EndTime)
		if err != nil {
			continue
		}

		if Overlaps(start, end, bookingStart, bookingEnd) {
			return true
		}
	}
	return false
}

// IsSlotMark true, если время записано как HH:MM и лежит на получасовой сетке
func IsSlotMark(t types.TimeString) bool {
	_, ok := parseMark(t, types.StartPoint)
	return ok
}

// parseMark разбирает время и проверяет кратность шагу сетки
func parseMark(t types.TimeString, parse func(types.TimeString) (types.ClockPoint, error)) (types.ClockPoint, bool) {
	point, err := parse(t)
	if err != nil {
		return types.ClockPoint{}, false
	}
	if point.Minutes()%domain.SlotStepMinutes != 0 {
		return types.ClockPoint{}, false
	}
	return point, true
}

// currentPoint текущее время суток с точностью до минуты
func currentPoint(now time.Time) types.ClockPoint {
	return types.PointAt(now.Hour()*60 + now.Minute())
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	return domain.SameDay(date1, date2)
}

// IsPastDate проверяет, что дата раньше сегодняшнего дня
func IsPastDate(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return dateOnly.Before(nowOnly)
}
