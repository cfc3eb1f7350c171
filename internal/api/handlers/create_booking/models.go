package create_booking

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/m04kA/SMC-BoxBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BoxBooking/internal/domain"
	createBooking "github.com/m04kA/SMC-BoxBooking/internal/usecase/create_booking"
	"github.com/m04kA/SMC-BoxBooking/pkg/types"
)

// Поля multipart формы
const (
	formName          = "name"
	formPhone         = "phone"
	formUTR           = "utrNumber"
	formPaymentOption = "paymentOption"
	formDate          = "date"
	formStartTime     = "startTime"
	formEndTime       = "endTime"
	formCouponCode    = "couponCode"
	formScreenshot    = "paymentScreenshot"
)

// SlotResponse строка расчета по тарифному периоду
type SlotResponse struct {
	Period string `json:"period"`
	Hours  string `json:"hours"`
	Rate   int    `json:"rate"`
	Amount int64  `json:"amount"`
}

// VenueResponse сведения о площадке
type VenueResponse struct {
	Name          string   `json:"name"`
	Address       string   `json:"address"`
	MapsURL       string   `json:"mapsUrl,omitempty"`
	Coordinates   string   `json:"coordinates,omitempty"`
	ContactName   string   `json:"contactName,omitempty"`
	ContactPhones []string `json:"contactPhones,omitempty"`
	SupportPhone  string   `json:"supportPhone,omitempty"`
}

// BookingRecord запись бронирования, имена полей совпадают с хранимой записью
type BookingRecord struct {
	CreatedAt     string `json:"created_at"`
	Name          string `json:"Name"`
	Phone         string `json:"Phone"`
	SlotDate      string `json:"SlotDate"`
	StartTime     string `json:"StartTime"`
	EndTime       string `json:"EndTime"`
	UTR           string `json:"UTR"`
	PaymentImage  string `json:"PaymentImage"`
	Amount        int64  `json:"Amount"`
	PaymentType   string `json:"PaymentType"`
	BalanceAmount int64  `json:"BalanceAmount"`
	CouponCode    string `json:"CouponCode"`
	Status        string `json:"Status"`
}

// BookingConfirmationResponse HTTP response model
type BookingConfirmationResponse struct {
	ID             int64          `json:"id"`
	Booking        BookingRecord  `json:"booking"`
	Slots          []SlotResponse `json:"slots"`
	Discount       int64          `json:"discount"`
	OriginalAmount int64          `json:"originalAmount"`
	AmountPaid     int64          `json:"amountPaid"`
	Balance        int64          `json:"balance"`
	Venue          VenueResponse  `json:"venue"`
}

// ToUseCaseRequest читает multipart форму в модель use case.
// Скриншот читается не больше maxScreenshotBytes+1 байт, размер проверяет use case.
// Ошибки формата даты возвращаются как ошибки поля.
func ToUseCaseRequest(r *http.Request, maxScreenshotBytes int64) (*createBooking.Request, error) {
	req := &createBooking.Request{
		Name:          r.FormValue(formName),
		Phone:         r.FormValue(formPhone),
		UTR:           r.FormValue(formUTR),
		PaymentOption: createBooking.PaymentOption(strings.ToLower(strings.TrimSpace(r.FormValue(formPaymentOption)))),
		StartTime:     types.ParseTimeString(r.FormValue(formStartTime)),
		EndTime:       types.ParseTimeString(r.FormValue(formEndTime)),
		CouponCode:    r.FormValue(formCouponCode),
	}

	if dateStr := strings.TrimSpace(r.FormValue(formDate)); dateStr != "" {
		date, err := handlers.ParseDate(dateStr)
		if err != nil {
			return nil, createBooking.FieldErrors{
				createBooking.FieldDate: "Date must be in YYYY-MM-DD format",
			}
		}
		req.Date = date
	}

	file, header, err := r.FormFile(formScreenshot)
	switch {
	case err == http.ErrMissingFile:
		return req, nil
	case err != nil:
		return nil, fmt.Errorf("read %s: %w", formScreenshot, err)
	}
	defer file.Close()

	data, err := readLimited(file, maxScreenshotBytes)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", formScreenshot, err)
	}
	req.Screenshot = data
	req.ScreenshotName = header.Filename

	return req, nil
}

func readLimited(file multipart.File, maxBytes int64) ([]byte, error) {
	if maxBytes <= 0 {
		return io.ReadAll(file)
	}
	return io.ReadAll(io.LimitReader(file, maxBytes+1))
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingConfirmationResponse {
	b := resp.Booking

	slots := make([]SlotResponse, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = SlotResponse{
			Period: s.Period(),
			Hours:  s.HoursLabel(),
			Rate:   s.Rate,
			Amount: s.Amount,
		}
	}

	return &BookingConfirmationResponse{
		ID: resp.ID,
		Booking: BookingRecord{
			CreatedAt:     b.CreatedAt.Format(time.RFC3339),
			Name:          b.Name,
			Phone:         b.Phone,
			SlotDate:      b.SlotDate.Format(domain.DateFormat),
			StartTime:     b.StartTime.String(),
			EndTime:       b.EndTime.String(),
			UTR:           b.UTR,
			PaymentImage:  b.PaymentImage,
			Amount:        b.Amount,
			PaymentType:   string(b.PaymentType),
			BalanceAmount: b.BalanceAmount,
			CouponCode:    b.CouponCode,
			Status:        string(b.Status),
		},
		Slots:          slots,
		Discount:       resp.Coupon.Discount,
		OriginalAmount: resp.OriginalAmount,
		AmountPaid:     resp.AmountPaid,
		Balance:        resp.Balance,
		Venue: VenueResponse{
			Name:          resp.Venue.Name,
			Address:       resp.Venue.Address,
			MapsURL:       resp.Venue.MapsURL,
			Coordinates:   resp.Venue.Coordinates,
			ContactName:   resp.Venue.ContactName,
			ContactPhones: resp.Venue.ContactPhones,
			SupportPhone:  resp.Venue.SupportPhone,
		},
	}
}

// reasonFields причины отказа интервала в виде ошибок полей формы
func reasonFields(slotErr *createBooking.SlotError) map[string]string {
	fields := make(map[string]string, len(slotErr.Reasons))
	for _, r := range slotErr.Reasons {
		field := string(r.Field())
		if _, ok := fields[field]; !ok {
			fields[field] = r.Message()
		}
	}
	return fields
}
