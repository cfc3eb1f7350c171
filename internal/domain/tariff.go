package domain

import "time"

// DayType тип дня для тарификации
type DayType string

const (
	Weekday DayType = "weekday" // понедельник - четверг
	Weekend DayType = "weekend" // пятница - воскресенье
)

// Band тарифный период внутри суток
type Band string

const (
	BandMorning   Band = "morning"   // [06:00, 12:00)
	BandAfternoon Band = "afternoon" // [12:00, 18:00)
	BandNight     Band = "night"     // [18:00, 06:00 следующего дня)
)

// Границы тарифных периодов в часах
const (
	MorningStartHour   = 6
	AfternoonStartHour = 12
	NightStartHour     = 18
)

var rates = map[DayType]map[Band]int{
	Weekday: {
		BandMorning:   600,
		BandAfternoon: 500,
		BandNight:     700,
	},
	Weekend: {
		BandMorning:   700,
		BandAfternoon: 600,
		BandNight:     900,
	},
}

// DayTypeOf определяет тип дня. Пятница относится к выходным.
func DayTypeOf(date time.Time) DayType {
	switch date.Weekday() {
	case time.Friday, time.Saturday, time.Sunday:
		return Weekend
	default:
		return Weekday
	}
}

// BandAt тарифный период для часа суток (0-23)
func BandAt(hour int) Band {
	switch {
	case hour >= MorningStartHour && hour < AfternoonStartHour:
		return BandMorning
	case hour >= AfternoonStartHour && hour < NightStartHour:
		return BandAfternoon
	default:
		return BandNight
	}
}

// RateFor цена за час для типа дня и периода
func RateFor(dayType DayType, band Band) int {
	return rates[dayType][band]
}
