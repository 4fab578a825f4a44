package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clockin-app/clockin-backend-go/internal/domain/report"
	"github.com/clockin-app/clockin-backend-go/internal/timesheet"
)

func hoursFixture() report.HoursReportResponse {
	day1 := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)

	return report.HoursReportResponse{
		StartDate: "2024-03-04",
		EndDate:   "2024-03-05",
		Timezone:  "UTC",
		Employees: []timesheet.EmployeeReport{
			{
				EmployeeID: "emp-1",
				Name:       "Ana Ward",
				HourlyRate: decimal.NewFromInt(20),
				Days: []timesheet.Day{
					{Date: day1, Minutes: 480, HoursLabel: "8:00"},
					{Date: day2, Minutes: 45, HoursLabel: "0:45", Anomalies: []timesheet.Anomaly{timesheet.AnomalyUnmatchedIn}},
				},
				TotalMinutes: 525,
			},
		},
		TotalMinutes: 525,
		TotalHours:   "8:45",
		AnomalyCount: 1,
	}
}

func TestHoursCSV(t *testing.T) {
	file, err := HoursCSV(hoursFixture())
	require.NoError(t, err)

	assert.Equal(t, "hours_2024-03-04_2024-03-05.csv", file.FileName)
	assert.Equal(t, "text/csv", file.ContentType)

	records, err := csv.NewReader(bytes.NewReader(file.Content)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3) // header + 2 day rows

	assert.Equal(t, "employee_id", records[0][0])
	assert.Equal(t, []string{"emp-1", "Ana Ward", "2024-03-04", "480", "8:00", "0", "0", ""}, records[1])
	assert.Equal(t, "UNMATCHED_IN", records[2][7])
}

func TestPayrollCSV(t *testing.T) {
	payroll := report.PayrollReportResponse{
		StartDate: "2024-03-04",
		EndDate:   "2024-03-10",
		Timezone:  "UTC",
		Rows: []report.PayrollRow{
			{
				EmployeeID:      "emp-1",
				EmployeeName:    "Ana Ward",
				HourlyRate:      "20.00",
				RegularMinutes:  2400,
				OvertimeMinutes: 60,
				RegularPay:      "800.00",
				OvertimePay:     "30.00",
				TotalPay:        "830.00",
			},
		},
		TotalPay: "830.00",
	}

	file, err := PayrollCSV(payroll)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(file.Content)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3) // header + employee row + total row

	assert.Equal(t, []string{"emp-1", "Ana Ward", "20.00", "2400", "60", "800.00", "30.00", "830.00", "0"}, records[1])
	assert.Equal(t, "TOTAL", records[2][1])
	assert.Equal(t, "830.00", records[2][7])
}

func TestHoursExcel(t *testing.T) {
	file, err := HoursExcel(hoursFixture())
	require.NoError(t, err)

	assert.Equal(t, "hours_2024-03-04_2024-03-05.xlsx", file.FileName)
	assert.NotEmpty(t, file.Content)
	// XLSX files are zip archives
	assert.Equal(t, []byte{'P', 'K'}, file.Content[:2])
}
