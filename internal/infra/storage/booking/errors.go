package booking

import "errors"

var (
	// ErrDuplicateBooking возвращается при нарушении уникальности (интервал на дату или UTR)
	ErrDuplicateBooking = errors.New("booking.repository: booking already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
