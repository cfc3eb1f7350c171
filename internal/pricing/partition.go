package pricing

import (
	"math"
	"time"

	"github.com/m04kA/SMC-BoxBooking/internal/domain"
	"github.com/m04kA/SMC-BoxBooking/pkg/types"
)

// PartitionAndPrice делит интервал [start, end) на части внутри одного тарифного периода
// и считает стоимость каждой части.
//
// Слоты идут подряд без разрывов от start до end, "00:00" в качестве end означает конец дня.
// Сумма каждого слота округляется отдельно, итог - сумма округлённых слотов.
// Для пустого или некорректного интервала возвращается пустой список.
func PartitionAndPrice(date time.Time, start, end types.TimeString) []domain.PricedSlot {
	startPoint, err := types.StartPoint(start)
	if err != nil {
		return []domain.PricedSlot{}
	}
	endPoint, err := types.EndPoint(end)
	if err != nil {
		return []domain.PricedSlot{}
	}
	if !endPoint.After(startPoint) {
		return []domain.PricedSlot{}
	}

	dayType := domain.DayTypeOf(date)
	endMinutes := endPoint.Minutes()

	slots := make([]domain.PricedSlot, 0, 4)
	current := startPoint.Minutes()

	for current < endMinutes {
		hour := (current / 60) % 24
		band := domain.BandAt(hour)

		boundary := bandBoundary(hour, band)
		if boundary > endMinutes {
			boundary = endMinutes
		}

		if boundary > current {
			rate := domain.RateFor(dayType, band)
			minutes := boundary - current
			slots = append(slots, domain.PricedSlot{
				Start:  types.PointAt(current),
				End:    types.PointAt(boundary),
				Band:   band,
				Rate:   rate,
				Amount: roundAmount(float64(minutes) / 60 * float64(rate)),
			})
		}

		current = boundary
	}

	return slots
}

// Total сумма округлённых стоимостей слотов
func Total(slots []domain.PricedSlot) int64 {
	var total int64
	for _, slot := range slots {
		total += slot.Amount
	}
	return total
}

// bandBoundary верхняя граница текущего тарифного периода в минутах от начала дня.
// Ночной период, начавшийся в 18:00, заканчивается в 06:00 следующего дня,
// а хвост ночи [00:00, 06:00) заканчивается в 06:00 того же дня.
func bandBoundary(hour int, band domain.Band) int {
	if hour < domain.MorningStartHour {
		return domain.MorningStartHour * 60
	}

	switch band {
	case domain.BandMorning:
		return domain.AfternoonStartHour * 60
	case domain.BandAfternoon:
		return domain.NightStartHour * 60
	default:
		return types.MinutesPerDay + domain.MorningStartHour*60
	}
}

// roundAmount округление до целого, половина округляется вверх
func roundAmount(v float64) int64 {
	return int64(math.Floor(v + 0.5))
}
