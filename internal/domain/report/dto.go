package report

import (
	"strings"

	"github.com/clockin-app/clockin-backend-go/internal/pkg/validator"
	"github.com/clockin-app/clockin-backend-go/internal/timesheet"
)

// Format selects the report output encoding.
type Format string

const (
	FormatJSON  Format = "json"
	FormatCSV   Format = "csv"
	FormatExcel Format = "xlsx"
)

func validFormats() []string {
	return []string{string(FormatJSON), string(FormatCSV), string(FormatExcel)}
}

// ReportRequest is shared by the hours and payroll endpoints. Exactly
// one population scope may be set; with none set the report covers every
// active employee of the tenant.
type ReportRequest struct {
	StartDate  string  `json:"start_date"` // YYYY-MM-DD, inclusive
	EndDate    string  `json:"end_date"`   // YYYY-MM-DD, inclusive
	EmployeeID *string `json:"employee_id,omitempty"`
	OfficeID   *string `json:"office_id,omitempty"`
	GroupID    *string `json:"group_id,omitempty"`
	Format     string  `json:"format"`
}

func (r *ReportRequest) Validate() error {
	var errs validator.ValidationErrors

	start, startValid := validator.IsValidDate(r.StartDate)
	if !startValid {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	end, endValid := validator.IsValidDate(r.EndDate)
	if !endValid {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if startValid && endValid && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if startValid && endValid && end.Sub(start).Hours() > 366*24 {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "report range must not exceed one year",
		})
	}

	scopes := 0
	for _, s := range []*string{r.EmployeeID, r.OfficeID, r.GroupID} {
		if s != nil && *s != "" {
			scopes++
		}
	}
	if scopes > 1 {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "only one of employee_id, office_id or group_id may be set",
		})
	}

	if r.Format == "" {
		r.Format = string(FormatJSON) // Default format
	}
	if !validator.IsInSlice(strings.ToLower(r.Format), validFormats()) {
		errs = append(errs, validator.ValidationError{
			Field:   "format",
			Message: "format must be one of: json, csv, xlsx",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// HoursReportResponse is the JSON body of an hours report.
type HoursReportResponse struct {
	StartDate    string                     `json:"start_date"`
	EndDate      string                     `json:"end_date"`
	Timezone     string                     `json:"timezone"`
	GeneratedAt  string                     `json:"generated_at"`
	Employees    []timesheet.EmployeeReport `json:"employees"`
	TotalMinutes int                        `json:"total_minutes"`
	TotalHours   string                     `json:"total_hours"`
	AnomalyCount int                        `json:"anomaly_count"`
}

// PayrollRow is one employee line of a payroll report.
type PayrollRow struct {
	EmployeeID      string `json:"employee_id"`
	EmployeeName    string `json:"employee_name"`
	HourlyRate      string `json:"hourly_rate"`
	RegularMinutes  int    `json:"regular_minutes"`
	OvertimeMinutes int    `json:"overtime_minutes"`
	RegularPay      string `json:"regular_pay"`
	OvertimePay     string `json:"overtime_pay"`
	TotalPay        string `json:"total_pay"`
	AnomalyCount    int    `json:"anomaly_count"`
}

// PayrollReportResponse is the JSON body of a payroll report.
type PayrollReportResponse struct {
	StartDate   string       `json:"start_date"`
	EndDate     string       `json:"end_date"`
	Timezone    string       `json:"timezone"`
	GeneratedAt string       `json:"generated_at"`
	Rows        []PayrollRow `json:"rows"`
	TotalPay    string       `json:"total_pay"`
}

// ExportFile is a rendered CSV or XLSX report ready to stream.
type ExportFile struct {
	FileName    string
	ContentType string
	Content     []byte
}
