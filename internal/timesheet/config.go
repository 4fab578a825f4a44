package timesheet

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Configuration errors are fatal: the report is rejected before any punch
// is processed.
var (
	ErrInvalidRounding   = errors.New("rounding minutes must be one of 0, 5, 10, 15, 20, 30")
	ErrInvalidWeekStart  = errors.New("week start must be 0 (Sunday) or 1 (Monday)")
	ErrInvalidThreshold  = errors.New("overtime threshold minutes must not be negative")
	ErrInvalidMultiplier = errors.New("overtime multiplier must be at least 1")
	ErrMissingLocation   = errors.New("timezone location is required")
	ErrInvalidRange      = errors.New("range start must not be after range end")
)

const (
	DefaultOvertimeThresholdMinutes = 2400 // 40 hours
)

var (
	DefaultOvertimeMultiplier = decimal.NewFromFloat(1.5)

	validRoundingMinutes = []int{0, 5, 10, 15, 20, 30}
)

// Config carries a tenant's aggregation settings, validated once at the
// engine boundary. Unknown rounding values are rejected, never coerced.
type Config struct {
	// Location is the tenant timezone used for calendar-day and week
	// bucketing.
	Location *time.Location

	// RoundingMinutes snaps each session's duration to the nearest
	// increment, round half up. 0 means no rounding.
	RoundingMinutes int

	// WeekStartsOn is 0 for Sunday or 1 for Monday.
	WeekStartsOn int

	OvertimeThresholdMinutes int
	OvertimeMultiplier       decimal.Decimal

	// ClosedOnly excludes sessions that were clamped to the range end
	// (no matching OUT) from all totals.
	ClosedOnly bool
}

// Validate range-checks every field. It must pass before Compute runs.
func (c Config) Validate() error {
	if c.Location == nil {
		return ErrMissingLocation
	}
	valid := false
	for _, m := range validRoundingMinutes {
		if c.RoundingMinutes == m {
			valid = true
			break
		}
	}
	if !valid {
		return ErrInvalidRounding
	}
	if c.WeekStartsOn != 0 && c.WeekStartsOn != 1 {
		return ErrInvalidWeekStart
	}
	if c.OvertimeThresholdMinutes < 0 {
		return ErrInvalidThreshold
	}
	if c.OvertimeMultiplier.LessThan(decimal.NewFromInt(1)) {
		return ErrInvalidMultiplier
	}
	return nil
}
