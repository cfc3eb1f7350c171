package pricing

// Reason причина, по которой выбранный интервал нельзя забронировать
type Reason string

const (
	ReasonPastDate            Reason = "past_date"
	ReasonPastStartTime       Reason = "past_start_time"
	ReasonPastEndTime         Reason = "past_end_time"
	ReasonInvalidTime         Reason = "invalid_time"
	ReasonEndNotAfterStart    Reason = "end_not_after_start"
	ReasonOverlap             Reason = "overlap"
	ReasonSnapshotUnavailable Reason = "snapshot_unavailable"
)

// Field поле формы, к которому относится причина
type Field string

const (
	FieldDate      Field = "date"
	FieldStartTime Field = "startTime"
	FieldEndTime   Field = "endTime"
)

var reasonMessages = map[Reason]string{
	ReasonPastDate:            "Cannot select past dates",
	ReasonPastStartTime:       "Start time cannot be in the past",
	ReasonPastEndTime:         "End time cannot be in the past",
	ReasonInvalidTime:         "Time must be on a half-hour mark (HH:00 or HH:30)",
	ReasonEndNotAfterStart:    "End time must be after start time",
	ReasonOverlap:             "Selected time overlaps with existing bookings",
	ReasonSnapshotUnavailable: "Existing bookings could not be loaded, please retry before booking",
}

var reasonFields = map[Reason]Field{
	ReasonPastDate:            FieldDate,
	ReasonPastStartTime:       FieldStartTime,
	ReasonPastEndTime:         FieldEndTime,
	ReasonInvalidTime:         FieldStartTime,
	ReasonEndNotAfterStart:    FieldEndTime,
	ReasonOverlap:             FieldStartTime,
	ReasonSnapshotUnavailable: FieldDate,
}

// Message текст для пользователя
func (r Reason) Message() string {
	if msg, ok := reasonMessages[r]; ok {
		return msg
	}
	return string(r)
}

// Field поле формы, рядом с которым показывается сообщение
func (r Reason) Field() Field {
	if f, ok := reasonFields[r]; ok {
		return f
	}
	return FieldDate
}
