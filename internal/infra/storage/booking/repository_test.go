package booking

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BoxBooking/internal/domain"
)

func TestBuildInsertQuery(t *testing.T) {
	createdAt := time.Date(2026, 10, 17, 15, 10, 0, 0, time.UTC)
	booking := &domain.Booking{
		CreatedAt:     createdAt,
		Name:          "Ravi",
		Phone:         "9876543210",
		SlotDate:      time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC),
		StartTime:     "22:00",
		EndTime:       "00:00",
		UTR:           "123456789012",
		PaymentImage:  "http://localhost:8080/uploads/x.png",
		Amount:        900,
		PaymentType:   domain.PaymentPartial,
		BalanceAmount: 900,
		Status:        domain.StatusPending,
	}

	query, args, err := buildInsertQuery(booking)
	require.NoError(t, err)

	assert.Equal(t,
		"INSERT INTO bookings (created_at,name,phone,slot_date,start_time,end_time,utr,payment_image,amount,payment_type,balance_amount,coupon_code,status) "+
			"VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13) RETURNING id, created_at",
		query)
	require.Len(t, args, 13)
	assert.Equal(t, createdAt, args[0])
	assert.Equal(t, "2026-10-18", args[3])
	assert.Equal(t, booking.EndTime, args[5])
	assert.Equal(t, domain.PaymentPartial, args[9])
	assert.Equal(t, "", args[11])
}

func TestBuildSelectByDateQuery(t *testing.T) {
	query, args, err := buildSelectByDateQuery(time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT id, created_at, name, phone, slot_date, start_time, end_time, utr, payment_image, amount, payment_type, balance_amount, coupon_code, status "+
			"FROM bookings WHERE slot_date = $1 ORDER BY start_time ASC",
		query)
	assert.Equal(t, []interface{}{"2026-10-18"}, args)
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pq.Error{Code: "23505"}))
	assert.True(t, isUniqueViolation(fmt.Errorf("insert: %w", &pq.Error{Code: "23505"})))
	assert.False(t, isUniqueViolation(&pq.Error{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("connection reset")))
}
