package get_time_options

import (
	"time"

	"github.com/m04kA/SMC-BoxBooking/pkg/types"
)

// Request запрос вариантов времени для выбора
type Request struct {
	Date  time.Time        // Дата бронирования (без времени)
	Start types.TimeString // Выбранное начало, ограничивает варианты окончания (опционально)
}

// Response варианты времени начала и окончания
type Response struct {
	Date         time.Time
	Past         bool // дата в прошлом, вариантов нет
	StartOptions []types.TimeString
	EndOptions   []types.TimeString
}
