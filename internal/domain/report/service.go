package report

import "context"

// ReportService runs the aggregation engine over stored punches and
// renders the result in the requested format.
type ReportService interface {
	// HoursReport aggregates worked time per employee, day and week.
	HoursReport(ctx context.Context, req ReportRequest) (HoursReportResponse, error)

	// PayrollReport aggregates pay per employee with the overtime split.
	PayrollReport(ctx context.Context, req ReportRequest) (PayrollReportResponse, error)

	// ExportHours renders an hours report as CSV or XLSX.
	ExportHours(ctx context.Context, req ReportRequest) (ExportFile, error)

	// ExportPayroll renders a payroll report as CSV or XLSX.
	ExportPayroll(ctx context.Context, req ReportRequest) (ExportFile, error)
}
