package pricing

import (
	"time"

	"github.com/m04kA/SMC-BoxBooking/internal/domain"
	"github.com/m04kA/SMC-BoxBooking/pkg/types"
)

// TimeMarks все отметки сетки с шагом 30 минут: 00:00, 00:30, ..., 23:30
func TimeMarks() []types.TimeString {
	marks := make([]types.TimeString, 0, types.MinutesPerDay/domain.SlotStepMinutes)
	for minutes := 0; minutes < types.MinutesPerDay; minutes += domain.SlotStepMinutes {
		mark, _ := types.TimeStringFromMinutes(minutes)
		marks = append(marks, mark)
	}
	return marks
}

// StartOptions варианты времени начала для даты.
// Для сегодняшней даты убираются полночь и все отметки раньше текущего времени.
// Для прошедшей даты вариантов нет.
func StartOptions(date, now time.Time) []types.TimeString {
	if IsPastDate(date, now) {
		return []types.TimeString{}
	}

	marks := TimeMarks()
	if !isSameDay(date, now) {
		return marks
	}

	current := currentPoint(now)
	options := make([]types.TimeString, 0, len(marks))
	for _, mark := range marks {
		point, _ := types.StartPoint(mark)
		if point.Minutes() == 0 {
			continue
		}
		if point.Before(current) {
			continue
		}
		options = append(options, mark)
	}
	return options
}

// EndOptions варианты времени окончания для даты и выбранного начала.
// Отметки идут по возрастанию, последней идёт "00:00" - конец дня,
// она остаётся доступной после любого начала.
// Некорректное или пустое начало не ограничивает список.
func EndOptions(date time.Time, start types.TimeString, now time.Time) []types.TimeString {
	if IsPastDate(date, now) {
		return []types.TimeString{}
	}

	var (
		startPoint types.ClockPoint
		hasStart   bool
	)
	if !start.IsZero() {
		startPoint, hasStart = parseMark(start, types.StartPoint)
	}

	today := isSameDay(date, now)
	current := currentPoint(now)

	options := make([]types.TimeString, 0, types.MinutesPerDay/domain.SlotStepMinutes)
	for minutes := domain.SlotStepMinutes; minutes <= types.MinutesPerDay; minutes += domain.SlotStepMinutes {
		point := types.PointAt(minutes)
		if hasStart && !point.After(startPoint) {
			continue
		}
		if today && !point.IsEndOfDay() && !point.After(current) {
			continue
		}
		options = append(options, point.TimeString())
	}
	return options
}
