package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BoxBooking/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-BoxBooking/internal/usecase/create_booking"
)

const (
	msgInvalidForm       = "некорректная форма оплаты"
	msgInvalidFields     = "проверьте поля формы"
	msgSlotNotAvailable  = "выбранный интервал недоступен"
	msgAlreadyProcessed  = "Payment already processed."
	msgUploadFailed      = "не удалось сохранить скриншот оплаты, попробуйте еще раз"
	multipartMemoryBytes = 1 << 20
	formOverheadBytes    = 1 << 20
)

type Handler struct {
	useCase            CreateBookingUseCase
	maxScreenshotBytes int64
	logger             Logger
}

func NewHandler(useCase CreateBookingUseCase, maxScreenshotBytes int64, logger Logger) *Handler {
	return &Handler{
		useCase:            useCase,
		maxScreenshotBytes: maxScreenshotBytes,
		logger:             logger,
	}
}

// Handle POST /api/v1/bookings
// multipart/form-data: name, phone, utrNumber, paymentOption (full|partial), date, startTime, endTime,
// couponCode (опционально), paymentScreenshot (файл)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if h.maxScreenshotBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxScreenshotBytes+formOverheadBytes)
	}
	if err := r.ParseMultipartForm(multipartMemoryBytes); err != nil {
		h.logger.Warn("POST /bookings - Invalid multipart form: %v", err)
		handlers.RespondBadRequest(w, msgInvalidForm)
		return
	}
	defer func() {
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}()

	useCaseReq, err := ToUseCaseRequest(r, h.maxScreenshotBytes)
	if err != nil {
		var fieldErrs createBooking.FieldErrors
		if errors.As(err, &fieldErrs) {
			h.logger.Warn("POST /bookings - Invalid form fields: %v", err)
			handlers.RespondFieldErrors(w, msgInvalidFields, fieldErrs)
			return
		}
		h.logger.Warn("POST /bookings - Failed to read form: %v", err)
		handlers.RespondBadRequest(w, msgInvalidForm)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var (
			fieldErrs createBooking.FieldErrors
			slotErr   *createBooking.SlotError
		)

		switch {
		case errors.As(err, &fieldErrs):
			h.logger.Warn("POST /bookings - Invalid form fields: %v", err)
			handlers.RespondFieldErrors(w, msgInvalidFields, fieldErrs)

		case errors.As(err, &slotErr):
			h.logger.Warn("POST /bookings - Slot not available: date=%s, %s-%s, reasons=%v",
				r.FormValue(formDate), useCaseReq.StartTime, useCaseReq.EndTime, slotErr.Reasons)
			handlers.RespondFieldErrors(w, msgSlotNotAvailable, reasonFields(slotErr))

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFields)

		case errors.Is(err, createBooking.ErrAlreadyProcessed):
			h.logger.Warn("POST /bookings - Payment already processed: utr=%s", useCaseReq.UTR)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyProcessed)

		case errors.Is(err, createBooking.ErrUploadFailed):
			h.logger.Error("POST /bookings - Upload failed: utr=%s, error=%v", useCaseReq.UTR, err)
			handlers.RespondError(w, http.StatusBadGateway, msgUploadFailed)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: utr=%s, error=%v", useCaseReq.UTR, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, date=%s, %s-%s, paid=%d",
		result.ID, r.FormValue(formDate), useCaseReq.StartTime, useCaseReq.EndTime, result.AmountPaid)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
