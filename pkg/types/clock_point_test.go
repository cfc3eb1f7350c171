package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndPoint_MidnightIsEndOfDay(t *testing.T) {
	end, err := EndPoint("00:00")
	require.NoError(t, err)
	assert.True(t, end.IsEndOfDay())
	assert.Equal(t, MinutesPerDay, end.Minutes())
	assert.Equal(t, "00:00", end.String())

	start, err := StartPoint("00:00")
	require.NoError(t, err)
	assert.False(t, start.IsEndOfDay())
	assert.Equal(t, 0, start.Minutes())

	assert.True(t, end.After(start))
}

func TestClockPoint_Ordering(t *testing.T) {
	a, err := StartPoint("22:00")
	require.NoError(t, err)
	b, err := EndPoint("23:30")
	require.NoError(t, err)

	assert.True(t, a.Before(b))
	assert.False(t, b.Before(a))
	assert.False(t, a.After(a))
}

func TestPointAt(t *testing.T) {
	assert.Equal(t, EndOfDay, PointAt(MinutesPerDay))
	assert.Equal(t, "06:00", PointAt(360).String())
}

func TestStartPoint_Invalid(t *testing.T) {
	_, err := StartPoint("25:00")
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = EndPoint("")
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}
