package types

const midnight TimeString = "00:00"

// ClockPoint точка на шкале одного дня бронирования.
// Либо конкретное время суток, либо конец дня (24:00).
// "00:00" становится концом дня только при разборе через EndPoint,
// в качестве начала бронирования это полночь начала дня.
type ClockPoint struct {
	minutes  int
	endOfDay bool
}

// EndOfDay точка 24:00 того же дня
var EndOfDay = ClockPoint{minutes: MinutesPerDay, endOfDay: true}

// StartPoint разбирает время начала бронирования
func StartPoint(t TimeString) (ClockPoint, error) {
	if err := t.Validate(); err != nil {
		return ClockPoint{}, err
	}
	return ClockPoint{minutes: t.Minutes()}, nil
}

// EndPoint разбирает время окончания бронирования, "00:00" означает конец дня
func EndPoint(t TimeString) (ClockPoint, error) {
	if err := t.Validate(); err != nil {
		return ClockPoint{}, err
	}
	if t.Minutes() == 0 {
		return EndOfDay, nil
	}
	return ClockPoint{minutes: t.Minutes()}, nil
}

// PointAt точка по количеству минут с начала дня, 1440 = конец дня
func PointAt(minutes int) ClockPoint {
	if minutes >= MinutesPerDay {
		return EndOfDay
	}
	return ClockPoint{minutes: minutes}
}

// Minutes минуты с начала дня, для конца дня 1440
func (p ClockPoint) Minutes() int {
	return p.minutes
}

// IsEndOfDay true для точки 24:00
func (p ClockPoint) IsEndOfDay() bool {
	return p.endOfDay
}

// Before true, если p строго раньше other
func (p ClockPoint) Before(other ClockPoint) bool {
	return p.minutes < other.minutes
}

// After true, если p строго позже other
func (p ClockPoint) After(other ClockPoint) bool {
	return p.minutes > other.minutes
}

// TimeString возвращает проводное представление, конец дня снова становится "00:00"
func (p ClockPoint) TimeString() TimeString {
	if p.endOfDay {
		return midnight
	}
	ts, _ := TimeStringFromMinutes(p.minutes)
	return ts
}

func (p ClockPoint) String() string {
	return p.TimeString().String()
}
