package models

import (
	"github.com/m04kA/SMC-BoxBooking/internal/domain"
)

// BookedInterval занятый интервал на дату.
// Персональные данные и реквизиты оплаты в публичный список не попадают.
type BookedInterval struct {
	SlotDate  string `json:"SlotDate"`
	StartTime string `json:"StartTime"`
	EndTime   string `json:"EndTime"` // "00:00" = до конца дня
	Status    string `json:"Status"`
}

// BookingListResponse занятые интервалы на дату
type BookingListResponse struct {
	Date     string           `json:"date"`
	Bookings []BookedInterval `json:"bookings"`
}

// FromDomainBookings конвертирует бронирования даты в ответ
func FromDomainBookings(date string, bookings []domain.Booking) *BookingListResponse {
	intervals := make([]BookedInterval, 0, len(bookings))
	for i := range bookings {
		b := &bookings[i]
		intervals = append(intervals, BookedInterval{
			SlotDate:  b.SlotDate.Format(domain.DateFormat),
			StartTime: b.StartTime.String(),
			EndTime:   b.EndTime.String(),
			Status:    string(b.Status),
		})
	}

	return &BookingListResponse{
		Date:     date,
		Bookings: intervals,
	}
}
