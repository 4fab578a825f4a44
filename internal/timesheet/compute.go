package timesheet

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

var sixty = decimal.NewFromInt(60)

// Week is a week bucket keyed by its local-midnight start date.
// RegularMinutes + OvertimeMinutes always equals TotalMinutes.
type Week struct {
	StartDate       time.Time       `json:"start_date"`
	TotalMinutes    int             `json:"total_minutes"`
	RegularMinutes  int             `json:"regular_minutes"`
	OvertimeMinutes int             `json:"overtime_minutes"`
	RegularPay      decimal.Decimal `json:"regular_pay"`
	OvertimePay     decimal.Decimal `json:"overtime_pay"`
	TotalPay        decimal.Decimal `json:"total_pay"`
}

// EmployeeInput is everything the engine needs for one employee.
type EmployeeInput struct {
	EmployeeID string
	Name       string
	HourlyRate decimal.Decimal
	Punches    []Punch
}

// EmployeeReport is the computed summary for one employee over the range.
type EmployeeReport struct {
	EmployeeID   string          `json:"employee_id"`
	Name         string          `json:"name"`
	HourlyRate   decimal.Decimal `json:"hourly_rate"`
	Sessions     []Session       `json:"sessions"`
	Days         []Day           `json:"days"`
	Weeks        []Week          `json:"weeks"`
	TotalMinutes int             `json:"total_minutes"`
	TotalHours   float64         `json:"total_hours"`
	TotalPay     decimal.Decimal `json:"total_pay"`
	AnomalyCount int             `json:"anomaly_count"`
}

// Compute runs the full pipeline for one employee: fold punches into
// sessions, apply rounding, bucket into days and weeks, then compute
// overtime and pay. cfg must already have passed Validate and punches
// must be ordered ascending by OccurredAt.
//
// Anomalies never abort: the report is always produced with best-effort
// totals and flags riding along.
func Compute(cfg Config, from, to time.Time, in EmployeeInput) (EmployeeReport, error) {
	if err := cfg.Validate(); err != nil {
		return EmployeeReport{}, err
	}
	if from.After(to) {
		return EmployeeReport{}, ErrInvalidRange
	}

	sessions := Round(Fold(in.Punches, to), cfg.RoundingMinutes)

	counted := sessions
	if cfg.ClosedOnly {
		counted = make([]Session, 0, len(sessions))
		for _, s := range sessions {
			if !s.Open() {
				counted = append(counted, s)
			}
		}
	}

	days := BucketDays(counted, cfg.Location)

	report := EmployeeReport{
		EmployeeID: in.EmployeeID,
		Name:       in.Name,
		HourlyRate: in.HourlyRate,
		Sessions:   sessions,
		Days:       days,
		TotalPay:   decimal.Zero.Round(2),
	}

	weekTotals := map[time.Time]int{}
	for _, d := range days {
		report.TotalMinutes += d.Minutes
		weekTotals[WeekStart(d.Date, cfg.WeekStartsOn)] += d.Minutes
	}
	report.TotalHours = hoursDecimal(report.TotalMinutes)

	starts := make([]time.Time, 0, len(weekTotals))
	for start := range weekTotals {
		starts = append(starts, start)
	}
	sort.Slice(starts, func(i, j int) bool { return starts[i].Before(starts[j]) })

	for _, start := range starts {
		week := computeWeek(start, weekTotals[start], cfg, in.HourlyRate)
		report.Weeks = append(report.Weeks, week)
		report.TotalPay = report.TotalPay.Add(week.TotalPay)
	}

	for _, s := range sessions {
		report.AnomalyCount += len(s.Anomalies)
	}

	return report, nil
}

// computeWeek splits a week's minutes at the overtime threshold and
// prices both portions. All pay values are rounded half up to 2 decimal
// places; truncation would systematically underpay.
func computeWeek(start time.Time, total int, cfg Config, rate decimal.Decimal) Week {
	regular := total
	overtime := 0
	if total > cfg.OvertimeThresholdMinutes {
		regular = cfg.OvertimeThresholdMinutes
		overtime = total - cfg.OvertimeThresholdMinutes
	}

	regularPay := decimal.NewFromInt(int64(regular)).Div(sixty).Mul(rate).Round(2)
	overtimePay := decimal.NewFromInt(int64(overtime)).Div(sixty).Mul(rate).Mul(cfg.OvertimeMultiplier).Round(2)

	return Week{
		StartDate:       start,
		TotalMinutes:    total,
		RegularMinutes:  regular,
		OvertimeMinutes: overtime,
		RegularPay:      regularPay,
		OvertimePay:     overtimePay,
		TotalPay:        regularPay.Add(overtimePay),
	}
}

// FormatHours renders minutes as "h:mm", e.g. 480 → "8:00".
func FormatHours(minutes int) string {
	return fmt.Sprintf("%d:%02d", minutes/60, minutes%60)
}
