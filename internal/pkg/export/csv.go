// Package export renders computed reports as downloadable CSV and XLSX
// files. It knows nothing about storage or HTTP; services hand it fully
// computed report payloads.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/clockin-app/clockin-backend-go/internal/domain/report"
	"github.com/clockin-app/clockin-backend-go/internal/timesheet"
)

const (
	csvContentType  = "text/csv"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// HoursCSV renders an hours report as one row per employee per day.
func HoursCSV(r report.HoursReportResponse) (report.ExportFile, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"employee_id", "employee_name", "date", "minutes", "hours", "breaks", "lunches", "anomalies"}
	if err := w.Write(header); err != nil {
		return report.ExportFile{}, fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, emp := range r.Employees {
		for _, day := range emp.Days {
			row := []string{
				emp.EmployeeID,
				emp.Name,
				day.Date.Format("2006-01-02"),
				fmt.Sprintf("%d", day.Minutes),
				day.HoursLabel,
				fmt.Sprintf("%d", day.Breaks),
				fmt.Sprintf("%d", day.Lunches),
				joinAnomalies(day.Anomalies),
			}
			if err := w.Write(row); err != nil {
				return report.ExportFile{}, fmt.Errorf("failed to write csv row: %w", err)
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return report.ExportFile{}, fmt.Errorf("failed to flush csv: %w", err)
	}

	return report.ExportFile{
		FileName:    fmt.Sprintf("hours_%s_%s.csv", r.StartDate, r.EndDate),
		ContentType: csvContentType,
		Content:     buf.Bytes(),
	}, nil
}

// PayrollCSV renders a payroll report as one row per employee.
func PayrollCSV(r report.PayrollReportResponse) (report.ExportFile, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"employee_id", "employee_name", "hourly_rate", "regular_minutes", "overtime_minutes", "regular_pay", "overtime_pay", "total_pay", "anomalies"}
	if err := w.Write(header); err != nil {
		return report.ExportFile{}, fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, row := range r.Rows {
		record := []string{
			row.EmployeeID,
			row.EmployeeName,
			row.HourlyRate,
			fmt.Sprintf("%d", row.RegularMinutes),
			fmt.Sprintf("%d", row.OvertimeMinutes),
			row.RegularPay,
			row.OvertimePay,
			row.TotalPay,
			fmt.Sprintf("%d", row.AnomalyCount),
		}
		if err := w.Write(record); err != nil {
			return report.ExportFile{}, fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	if err := w.Write([]string{"", "TOTAL", "", "", "", "", "", r.TotalPay, ""}); err != nil {
		return report.ExportFile{}, fmt.Errorf("failed to write csv total: %w", err)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return report.ExportFile{}, fmt.Errorf("failed to flush csv: %w", err)
	}

	return report.ExportFile{
		FileName:    fmt.Sprintf("payroll_%s_%s.csv", r.StartDate, r.EndDate),
		ContentType: csvContentType,
		Content:     buf.Bytes(),
	}, nil
}

func joinAnomalies(anomalies []timesheet.Anomaly) string {
	out := ""
	for i, a := range anomalies {
		if i > 0 {
			out += ";"
		}
		out += string(a)
	}
	return out
}
