package get_time_options

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	getTimeOptions "github.com/m04kA/SMC-BoxBooking/internal/usecase/get_time_options"
	"github.com/m04kA/SMC-BoxBooking/pkg/types"
)

type MockUseCase struct {
	mock.Mock
}

func (m *MockUseCase) Execute(ctx context.Context, req *getTimeOptions.Request) (*getTimeOptions.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*getTimeOptions.Response), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandler_Handle(t *testing.T) {
	uc := new(MockUseCase)
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(r *getTimeOptions.Request) bool {
		return r.Date.Day() == 18 && r.Start == "22:00"
	})).Return(&getTimeOptions.Response{
		Date:         time.Date(2026, 10, 18, 0, 0, 0, 0, time.Local),
		StartOptions: []types.TimeString{"23:00", "23:30"},
		EndOptions:   []types.TimeString{"22:30", "23:00", "23:30", "00:00"},
	}, nil)

	rec := httptest.NewRecorder()
	NewHandler(uc, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/time-options?date=2026-10-18&start=22:00", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"date": "2026-10-18",
		"past": false,
		"startOptions": ["23:00", "23:30"],
		"endOptions": ["22:30", "23:00", "23:30", "00:00"]
	}`, rec.Body.String())
}

func TestHandler_Handle_NormalizesStart(t *testing.T) {
	uc := new(MockUseCase)
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(r *getTimeOptions.Request) bool {
		return r.Start == "09:30"
	})).Return(&getTimeOptions.Response{
		Date:         time.Date(2026, 10, 18, 0, 0, 0, 0, time.Local),
		StartOptions: []types.TimeString{},
		EndOptions:   []types.TimeString{"10:00"},
	}, nil)

	rec := httptest.NewRecorder()
	NewHandler(uc, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/time-options?date=2026-10-18&start=9:30", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	uc.AssertExpectations(t)
}

func TestHandler_Handle_BadRequests(t *testing.T) {
	tests := []struct {
		name  string
		query string
		err   error
	}{
		{name: "missing date", query: ""},
		{name: "bad date", query: "?date=18-10-2026"},
		{name: "bad start", query: "?date=2026-10-18&start=10:15", err: fmt.Errorf("%w: invalid start", getTimeOptions.ErrInvalidInput)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := new(MockUseCase)
			if tt.err != nil {
				uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)
			}

			rec := httptest.NewRecorder()
			NewHandler(uc, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/time-options"+tt.query, nil))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandler_Handle_InternalError(t *testing.T) {
	uc := new(MockUseCase)
	uc.On("Execute", mock.Anything, mock.Anything).Return(nil, errors.New("boom"))

	rec := httptest.NewRecorder()
	NewHandler(uc, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/time-options?date=2026-10-18", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
