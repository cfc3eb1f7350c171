package create_booking

import (
	"errors"
	"sort"
	"strings"

	"github.com/m04kA/SMC-BoxBooking/internal/pricing"
)

var (
	// ErrInvalidInput возвращается при некорректных данных формы оплаты
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInvalidSlot возвращается, когда повторный расчет отклонил интервал
	ErrInvalidSlot = errors.New("create_booking: selected slot cannot be booked")

	// ErrUploadFailed возвращается, когда скриншот оплаты не сохранен
	ErrUploadFailed = errors.New("create_booking: failed to upload payment screenshot")

	// ErrAlreadyProcessed возвращается при повторной отправке оплаты того же интервала или UTR
	ErrAlreadyProcessed = errors.New("create_booking: payment already processed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// FieldErrors ошибки полей формы оплаты: поле -> сообщение
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for field, msg := range e {
		fields = append(fields, field+": "+msg)
	}
	sort.Strings(fields)
	return ErrInvalidInput.Error() + ": " + strings.Join(fields, "; ")
}

func (e FieldErrors) Unwrap() error {
	return ErrInvalidInput
}

// SlotError интервал отклонен при повторном расчете
type SlotError struct {
	Reasons []pricing.Reason
}

func (e *SlotError) Error() string {
	reasons := make([]string, len(e.Reasons))
	for i, r := range e.Reasons {
		reasons[i] = string(r)
	}
	return ErrInvalidSlot.Error() + ": " + strings.Join(reasons, ", ")
}

func (e *SlotError) Unwrap() error {
	return ErrInvalidSlot
}
