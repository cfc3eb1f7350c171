package pricing

import (
	"time"

	"github.com/m04kA/SMC-BoxBooking/internal/domain"
	"github.com/m04kA/SMC-BoxBooking/pkg/types"
)

// SnapshotStatus состояние загруженного списка существующих бронирований
type SnapshotStatus string

const (
	SnapshotStatusStale       SnapshotStatus = "stale"
	SnapshotStatusLoading     SnapshotStatus = "loading"
	SnapshotStatusLoaded      SnapshotStatus = "loaded"
	SnapshotStatusFetchFailed SnapshotStatus = "fetch_failed"
)

// ValidationInput входные данные валидатора
type ValidationInput struct {
	Date     time.Time
	Start    types.TimeString // пусто, пока не выбрано
	End      types.TimeString // пусто, пока не выбрано
	Now      time.Time
	Existing []domain.Booking // может содержать бронирования других дат, они игнорируются
	Snapshot SnapshotStatus
}

// CouponOutcome результат применения промокода
type CouponOutcome string

const (
	CouponNotApplied    CouponOutcome = "not_applied"
	CouponApplied       CouponOutcome = "applied"
	CouponLimitExceeded CouponOutcome = "limit_exceeded"
)

// CouponResult итог применения промокода к сумме
type CouponResult struct {
	Outcome       CouponOutcome
	Code          string
	PercentageOff int
	Discount      int64 // subtotal - Total
	Total         int64
}
