package domain

import (
	"fmt"

	"github.com/m04kA/SMC-BoxBooking/pkg/types"
)

// PricedSlot часть бронирования внутри одного тарифного периода
type PricedSlot struct {
	Start  types.ClockPoint
	End    types.ClockPoint
	Band   Band
	Rate   int   // цена за час
	Amount int64 // round(Hours() * Rate), округляется для каждого слота отдельно
}

// Minutes длительность слота в минутах
func (s PricedSlot) Minutes() int {
	return s.End.Minutes() - s.Start.Minutes()
}

// Hours длительность слота в часах
func (s PricedSlot) Hours() float64 {
	return float64(s.Minutes()) / 60
}

// Period строка вида "HH:MM - HH:MM"
func (s PricedSlot) Period() string {
	return fmt.Sprintf("%s - %s", s.Start, s.End)
}

// HoursLabel длительность с двумя знаками после запятой, например "1.50"
func (s PricedSlot) HoursLabel() string {
	return fmt.Sprintf("%.2f", s.Hours())
}
