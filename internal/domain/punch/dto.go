package punch

import (
	"strings"

	"github.com/clockin-app/clockin-backend-go/internal/pkg/validator"
)

// ========================================
// KIOSK DTOs
// ========================================

// KioskPunchRequest is sent from the unauthenticated kiosk page. The
// tenant is resolved by slug and the employee by PIN.
type KioskPunchRequest struct {
	TenantSlug string `json:"tenant_slug"`
	PIN        string `json:"pin"`
	Type       string `json:"type"`
}

func (r *KioskPunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidTenantSlug(r.TenantSlug) {
		errs = append(errs, validator.ValidationError{
			Field:   "tenant_slug",
			Message: "tenant_slug is required",
		})
	}

	if !validator.IsValidPIN(r.PIN) {
		errs = append(errs, validator.ValidationError{
			Field:   "pin",
			Message: "pin must be 4-8 digits",
		})
	}

	if !validator.IsInSlice(strings.ToUpper(r.Type), ValidTypes()) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: IN, OUT, BREAK, LUNCH",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type KioskPunchResponse struct {
	EmployeeName string `json:"employee_name"`
	Type         string `json:"type"`
	OccurredAt   string `json:"occurred_at"`
	Message      string `json:"message"`
}

type KioskStatusRequest struct {
	TenantSlug string `json:"tenant_slug"`
	PIN        string `json:"pin"`
}

func (r *KioskStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidTenantSlug(r.TenantSlug) {
		errs = append(errs, validator.ValidationError{
			Field:   "tenant_slug",
			Message: "tenant_slug is required",
		})
	}

	if !validator.IsValidPIN(r.PIN) {
		errs = append(errs, validator.ValidationError{
			Field:   "pin",
			Message: "pin must be 4-8 digits",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// KioskStatusResponse tells the kiosk screen what the employee can do.
type KioskStatusResponse struct {
	EmployeeName  string  `json:"employee_name"`
	ClockedIn     bool    `json:"clocked_in"`
	LastPunchType *string `json:"last_punch_type,omitempty"`
	LastPunchAt   *string `json:"last_punch_at,omitempty"`
	CanPunchIn    bool    `json:"can_punch_in"`
	CanPunchOut   bool    `json:"can_punch_out"`
}

// ========================================
// ADMIN DTOs
// ========================================

type PunchResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name,omitempty"`
	Type         string  `json:"type"`
	OccurredAt   string  `json:"occurred_at"`
	Source       string  `json:"source"`
	ReplacesID   *string `json:"replaces_id,omitempty"`
	VoidedAt     *string `json:"voided_at,omitempty"`
	CreatedAt    string  `json:"created_at"`
}

type PunchFilter struct {
	EmployeeID *string `json:"employee_id,omitempty"`
	Type       *string `json:"type,omitempty"`
	StartDate  *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate    *string `json:"end_date,omitempty"`   // YYYY-MM-DD
	Voided     bool    `json:"voided"`               // include voided punches

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *PunchFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1 // Default page
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 50 // Default limit
	}
	if f.Limit > 500 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 500",
		})
	}

	if f.Type != nil && !validator.IsInSlice(strings.ToUpper(*f.Type), ValidTypes()) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: IN, OUT, BREAK, LUNCH",
		})
	}

	if f.StartDate != nil && *f.StartDate != "" {
		if _, valid := validator.IsValidDate(*f.StartDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.EndDate != nil && *f.EndDate != "" {
		if _, valid := validator.IsValidDate(*f.EndDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListPunchesResponse struct {
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"total_pages"`
	Punches    []PunchResponse `json:"punches"`
}

// EditPunchRequest corrects a recorded punch. The original event is
// voided and a replacement is inserted; recorded punches are never
// mutated in place.
type EditPunchRequest struct {
	ID         string  `json:"-"`
	OccurredAt *string `json:"occurred_at,omitempty"` // RFC3339
	Type       *string `json:"type,omitempty"`
}

func (r *EditPunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.OccurredAt == nil && r.Type == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "occurred_at",
			Message: "at least one of occurred_at or type is required",
		})
	}

	if r.OccurredAt != nil {
		if _, valid := validator.IsValidDateTime(*r.OccurredAt); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "occurred_at",
				Message: "occurred_at must be an RFC3339 timestamp",
			})
		}
	}

	if r.Type != nil && !validator.IsInSlice(strings.ToUpper(*r.Type), ValidTypes()) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: IN, OUT, BREAK, LUNCH",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
