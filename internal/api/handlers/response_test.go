package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	RespondJSON(rec, http.StatusCreated, map[string]int{"id": 7})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"id":7}`, rec.Body.String())
}

func TestRespondErrors(t *testing.T) {
	tests := []struct {
		name     string
		respond  func(w http.ResponseWriter)
		status   int
		expected string
	}{
		{
			name:     "bad request",
			respond:  func(w http.ResponseWriter) { RespondBadRequest(w, "плохо") },
			status:   http.StatusBadRequest,
			expected: `{"code":400,"message":"плохо"}`,
		},
		{
			name:     "internal",
			respond:  func(w http.ResponseWriter) { RespondInternalError(w) },
			status:   http.StatusInternalServerError,
			expected: `{"code":500,"message":"внутренняя ошибка сервера"}`,
		},
		{
			name: "fields",
			respond: func(w http.ResponseWriter) {
				RespondFieldErrors(w, "ошибка", map[string]string{"phone": "Phone number must be 10 digits"})
			},
			status:   http.StatusBadRequest,
			expected: `{"code":400,"message":"ошибка","fields":{"phone":"Phone number must be 10 digits"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.respond(rec)

			assert.Equal(t, tt.status, rec.Code)
			assert.JSONEq(t, tt.expected, rec.Body.String())
		})
	}
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Date string `json:"date"`
	}

	var p payload
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"date":"2026-10-18"}`))
	require.NoError(t, DecodeJSON(r, &p))
	assert.Equal(t, "2026-10-18", p.Date)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"date":"x","extra":1}`))
	assert.Error(t, DecodeJSON(r, &p))

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"date":"x"}{"date":"y"}`))
	assert.Error(t, DecodeJSON(r, &p))

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`not json`))
	var syntaxErr *json.SyntaxError
	assert.ErrorAs(t, DecodeJSON(r, &p), &syntaxErr)
}

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2026-10-18")
	require.NoError(t, err)
	assert.Equal(t, 18, date.Day())
	assert.Equal(t, 0, date.Hour())

	_, err = ParseDate("18.10.2026")
	assert.Error(t, err)
}
