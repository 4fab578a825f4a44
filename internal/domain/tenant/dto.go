package tenant

import (
	"github.com/clockin-app/clockin-backend-go/internal/pkg/validator"
)

var allowedRounding = []int{0, 5, 10, 15, 20, 30}

type SettingsResponse struct {
	Timezone                 string  `json:"timezone"`
	RoundingMinutes          int     `json:"rounding_minutes"`
	WeekStartsOn             int     `json:"week_starts_on"`
	OvertimeThresholdMinutes int     `json:"overtime_threshold_minutes"`
	OvertimeMultiplier       float64 `json:"overtime_multiplier"`
}

type UpdateSettingsRequest struct {
	Timezone                 *string  `json:"timezone,omitempty"`
	RoundingMinutes          *int     `json:"rounding_minutes,omitempty"`
	WeekStartsOn             *int     `json:"week_starts_on,omitempty"`
	OvertimeThresholdMinutes *int     `json:"overtime_threshold_minutes,omitempty"`
	OvertimeMultiplier       *float64 `json:"overtime_multiplier,omitempty"`
}

func (r *UpdateSettingsRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Timezone != nil && !validator.IsValidTimezone(*r.Timezone) {
		errs = append(errs, validator.ValidationError{
			Field:   "timezone",
			Message: "timezone must be a valid IANA zone name",
		})
	}

	// Unknown rounding values are rejected, never coerced to the nearest
	// allowed one.
	if r.RoundingMinutes != nil && !validator.IsInIntSlice(*r.RoundingMinutes, allowedRounding) {
		errs = append(errs, validator.ValidationError{
			Field:   "rounding_minutes",
			Message: "rounding_minutes must be one of: 0, 5, 10, 15, 20, 30",
		})
	}

	if r.WeekStartsOn != nil && *r.WeekStartsOn != 0 && *r.WeekStartsOn != 1 {
		errs = append(errs, validator.ValidationError{
			Field:   "week_starts_on",
			Message: "week_starts_on must be 0 (Sunday) or 1 (Monday)",
		})
	}

	if r.OvertimeThresholdMinutes != nil && *r.OvertimeThresholdMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "overtime_threshold_minutes",
			Message: "overtime_threshold_minutes must not be negative",
		})
	}

	if r.OvertimeMultiplier != nil && *r.OvertimeMultiplier < 1 {
		errs = append(errs, validator.ValidationError{
			Field:   "overtime_multiplier",
			Message: "overtime_multiplier must be at least 1",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TenantResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	CreatedAt string `json:"created_at"`
}
