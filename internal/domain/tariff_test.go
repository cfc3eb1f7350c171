package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDayTypeOf(t *testing.T) {
	// 2026-10-12 понедельник
	monday := time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC)

	expected := []DayType{Weekday, Weekday, Weekday, Weekday, Weekend, Weekend, Weekend}
	for i, want := range expected {
		day := monday.AddDate(0, 0, i)
		assert.Equal(t, want, DayTypeOf(day), day.Weekday().String())
	}
}

func TestBandAt(t *testing.T) {
	assert.Equal(t, BandNight, BandAt(0))
	assert.Equal(t, BandNight, BandAt(5))
	assert.Equal(t, BandMorning, BandAt(6))
	assert.Equal(t, BandMorning, BandAt(11))
	assert.Equal(t, BandAfternoon, BandAt(12))
	assert.Equal(t, BandAfternoon, BandAt(17))
	assert.Equal(t, BandNight, BandAt(18))
	assert.Equal(t, BandNight, BandAt(23))
}

func TestRateFor(t *testing.T) {
	assert.Equal(t, 600, RateFor(Weekday, BandMorning))
	assert.Equal(t, 500, RateFor(Weekday, BandAfternoon))
	assert.Equal(t, 700, RateFor(Weekday, BandNight))
	assert.Equal(t, 700, RateFor(Weekend, BandMorning))
	assert.Equal(t, 600, RateFor(Weekend, BandAfternoon))
	assert.Equal(t, 900, RateFor(Weekend, BandNight))
}
