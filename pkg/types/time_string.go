package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	timeLayout = "15:04"

	// MinutesPerDay количество минут в сутках, конец дня в минутной шкале
	MinutesPerDay = 24 * 60
)

var (
	// ErrInvalidTimeString возвращается при некорректном формате времени
	ErrInvalidTimeString = errors.New("invalid time string format")

	// ErrTimeOverflow возвращается, когда результат выходит за пределы суток
	ErrTimeOverflow = errors.New("time is out of day bounds")
)

// TimeString время суток в формате HH:MM (24 часа, с ведущими нулями)
// Хранится в каноническом виде, поэтому строки можно сравнивать лексикографически
type TimeString string

// NewTimeStringFromString парсит строку HH:MM и приводит её к каноническому виду
func NewTimeStringFromString(s string) (TimeString, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	return TimeString(t.Format(timeLayout)), nil
}

// ParseTimeString приводит ввод пользователя к виду HH:MM ("9:00" -> "09:00").
// Неразборчивая строка возвращается без изменений, её отклонит Validate.
func ParseTimeString(s string) TimeString {
	s = strings.TrimSpace(s)
	if ts, err := NewTimeStringFromString(s); err == nil {
		return ts
	}
	return TimeString(s)
}

// NewTimeString возвращает время суток из time.Time (секунды отбрасываются)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// TimeStringFromMinutes строит время из количества минут с начала суток
// 1440 сворачивается в "00:00"
func TimeStringFromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes > MinutesPerDay {
		return "", fmt.Errorf("%w: %d minutes", ErrTimeOverflow, minutes)
	}
	minutes %= MinutesPerDay
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)), nil
}

// Validate проверяет, что время записано в каноническом виде HH:MM
func (t TimeString) Validate() error {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil || parsed.Format(timeLayout) != string(t) {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

// IsZero true, если время не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

func (t TimeString) String() string {
	return string(t)
}

// Minutes возвращает количество минут с начала суток (0 для некорректного значения)
func (t TimeString) Minutes() int {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return 0
	}
	return parsed.Hour()*60 + parsed.Minute()
}

// Scan реализует sql.Scanner, postgres отдаёт TIME как "HH:MM:SS"
func (t *TimeString) Scan(src interface{}) error {
	var raw string
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case []byte:
		raw = string(v)
	case string:
		raw = v
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidTimeString, src)
	}

	if len(raw) > len(timeLayout) {
		raw = raw[:len(timeLayout)]
	}
	parsed, err := NewTimeStringFromString(raw)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value реализует driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	return string(t), nil
}
