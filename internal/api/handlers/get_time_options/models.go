package get_time_options

import (
	"github.com/m04kA/SMC-BoxBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BoxBooking/internal/domain"
	getTimeOptions "github.com/m04kA/SMC-BoxBooking/internal/usecase/get_time_options"
	"github.com/m04kA/SMC-BoxBooking/pkg/types"
)

// TimeOptionsResponse HTTP response model
type TimeOptionsResponse struct {
	Date         string   `json:"date"`
	Past         bool     `json:"past"`
	StartOptions []string `json:"startOptions"`
	EndOptions   []string `json:"endOptions"`
}

// ToUseCaseRequest конвертирует query параметры в модель use case
func ToUseCaseRequest(dateStr, startStr string) (*getTimeOptions.Request, error) {
	date, err := handlers.ParseDate(dateStr)
	if err != nil {
		return nil, err
	}

	return &getTimeOptions.Request{
		Date:  date,
		Start: types.ParseTimeString(startStr),
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getTimeOptions.Response) *TimeOptionsResponse {
	return &TimeOptionsResponse{
		Date:         resp.Date.Format(domain.DateFormat),
		Past:         resp.Past,
		StartOptions: toStrings(resp.StartOptions),
		EndOptions:   toStrings(resp.EndOptions),
	}
}

func toStrings(options []types.TimeString) []string {
	out := make([]string, len(options))
	for i, o := range options {
		out[i] = o.String()
	}
	return out
}
