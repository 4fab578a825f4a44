package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/clockin-app/clockin-backend-go/internal/domain/report"
)

// HoursExcel renders an hours report workbook: a summary sheet with one
// row per employee and a detail sheet with one row per employee per day.
func HoursExcel(r report.HoursReportResponse) (report.ExportFile, error) {
	f := excelize.NewFile()
	defer f.Close()

	const summary = "Summary"
	const detail = "Daily Detail"

	if err := f.SetSheetName("Sheet1", summary); err != nil {
		return report.ExportFile{}, fmt.Errorf("failed to rename sheet: %w", err)
	}
	if _, err := f.NewSheet(detail); err != nil {
		return report.ExportFile{}, fmt.Errorf("failed to create sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DDEBF7"}},
	})
	if err != nil {
		return report.ExportFile{}, fmt.Errorf("failed to create style: %w", err)
	}

	summaryHeader := []any{"Employee ID", "Employee", "Total Minutes", "Total Hours", "Anomalies"}
	if err := f.SetSheetRow(summary, "A1", &summaryHeader); err != nil {
		return report.ExportFile{}, fmt.Errorf("failed to write header: %w", err)
	}
	if err := f.SetCellStyle(summary, "A1", "E1", headerStyle); err != nil {
		return report.ExportFile{}, fmt.Errorf("failed to style header: %w", err)
	}

	for i, emp := range r.Employees {
		row := []any{emp.EmployeeID, emp.Name, emp.TotalMinutes, emp.TotalHours, emp.AnomalyCount}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(summary, cell, &row); err != nil {
			return report.ExportFile{}, fmt.Errorf("failed to write summary row: %w", err)
		}
	}
	totalRow := []any{"", "TOTAL", r.TotalMinutes, r.TotalHours, r.AnomalyCount}
	cell := fmt.Sprintf("A%d", len(r.Employees)+2)
	if err := f.SetSheetRow(summary, cell, &totalRow); err != nil {
		return report.ExportFile{}, fmt.Errorf("failed to write total row: %w", err)
	}

	detailHeader := []any{"Employee ID", "Employee", "Date", "Minutes", "Hours", "Breaks", "Lunches", "Anomalies"}
	if err := f.SetSheetRow(detail, "A1", &detailHeader); err != nil {
		return report.ExportFile{}, fmt.Errorf("failed to write header: %w", err)
	}
	if err := f.SetCellStyle(detail, "A1", "H1", headerStyle); err != nil {
		return report.ExportFile{}, fmt.Errorf("failed to style header: %w", err)
	}

	rowIdx := 2
	for _, emp := range r.Employees {
		for _, day := range emp.Days {
			row := []any{
				emp.EmployeeID,
				emp.Name,
				day.Date.Format("2006-01-02"),
				day.Minutes,
				day.HoursLabel,
				day.Breaks,
				day.Lunches,
				joinAnomalies(day.Anomalies),
			}
			cell := fmt.Sprintf("A%d", rowIdx)
			if err := f.SetSheetRow(detail, cell, &row); err != nil {
				return report.ExportFile{}, fmt.Errorf("failed to write detail row: %w", err)
			}
			rowIdx++
		}
	}

	if err := f.SetColWidth(summary, "A", "B", 28); err != nil {
		return report.ExportFile{}, fmt.Errorf("failed to set column width: %w", err)
	}
	if err := f.SetColWidth(detail, "A", "C", 24); err != nil {
		return report.ExportFile{}, fmt.Errorf("failed to set column width: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return report.ExportFile{}, fmt.Errorf("failed to write workbook: %w", err)
	}

	return report.ExportFile{
		FileName:    fmt.Sprintf("hours_%s_%s.xlsx", r.StartDate, r.EndDate),
		ContentType: xlsxContentType,
		Content:     buf.Bytes(),
	}, nil
}

// PayrollExcel renders a payroll report workbook with one row per
// employee and a grand total row.
func PayrollExcel(r report.PayrollReportResponse) (report.ExportFile, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Payroll"

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return report.ExportFile{}, fmt.Errorf("failed to rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DDEBF7"}},
	})
	if err != nil {
		return report.ExportFile{}, fmt.Errorf("failed to create style: %w", err)
	}

	header := []any{"Employee ID", "Employee", "Hourly Rate", "Regular Minutes", "Overtime Minutes", "Regular Pay", "Overtime Pay", "Total Pay", "Anomalies"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return report.ExportFile{}, fmt.Errorf("failed to write header: %w", err)
	}
	if err := f.SetCellStyle(sheet, "A1", "I1", headerStyle); err != nil {
		return report.ExportFile{}, fmt.Errorf("failed to style header: %w", err)
	}

	for i, row := range r.Rows {
		values := []any{
			row.EmployeeID,
			row.EmployeeName,
			row.HourlyRate,
			row.RegularMinutes,
			row.OvertimeMinutes,
			row.RegularPay,
			row.OvertimePay,
			row.TotalPay,
			row.AnomalyCount,
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return report.ExportFile{}, fmt.Errorf("failed to write payroll row: %w", err)
		}
	}

	totalRow := []any{"", "TOTAL", "", "", "", "", "", r.TotalPay, ""}
	cell := fmt.Sprintf("A%d", len(r.Rows)+2)
	if err := f.SetSheetRow(sheet, cell, &totalRow); err != nil {
		return report.ExportFile{}, fmt.Errorf("failed to write total row: %w", err)
	}

	if err := f.SetColWidth(sheet, "A", "B", 28); err != nil {
		return report.ExportFile{}, fmt.Errorf("failed to set column width: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return report.ExportFile{}, fmt.Errorf("failed to write workbook: %w", err)
	}

	return report.ExportFile{
		FileName:    fmt.Sprintf("payroll_%s_%s.xlsx", r.StartDate, r.EndDate),
		ContentType: xlsxContentType,
		Content:     buf.Bytes(),
	}, nil
}
