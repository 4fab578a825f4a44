package report

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/clockin-app/clockin-backend-go/internal/domain/employee"
	"github.com/clockin-app/clockin-backend-go/internal/domain/master/office"
	"github.com/clockin-app/clockin-backend-go/internal/domain/notification"
	"github.com/clockin-app/clockin-backend-go/internal/domain/punch"
	"github.com/clockin-app/clockin-backend-go/internal/domain/report"
	"github.com/clockin-app/clockin-backend-go/internal/domain/tenant"
	"github.com/clockin-app/clockin-backend-go/internal/pkg/export"
	"github.com/clockin-app/clockin-backend-go/internal/timesheet"
)

// maxConcurrentEmployees bounds parallel punch fetches per report run.
const maxConcurrentEmployees = 8

type ReportServiceImpl struct {
	tenantRepository    tenant.TenantRepository
	employeeRepository  employee.EmployeeRepository
	punchRepository     punch.PunchRepository
	officeRepository    office.OfficeRepository
	notificationService notification.NotificationService

	// defaultSettings applies to tenants that never saved their own.
	defaultSettings tenant.Settings
}

func NewReportService(
	tenantRepository tenant.TenantRepository,
	employeeRepository employee.EmployeeRepository,
	punchRepository punch.PunchRepository,
	officeRepository office.OfficeRepository,
	notificationService notification.NotificationService,
	defaultSettings tenant.Settings,
) report.ReportService {
	return &ReportServiceImpl{
		tenantRepository:    tenantRepository,
		employeeRepository:  employeeRepository,
		punchRepository:     punchRepository,
		officeRepository:    officeRepository,
		notificationService: notificationService,
		defaultSettings:     defaultSettings,
	}
}

// HoursReport aggregates worked time per employee, day and week
func (s *ReportServiceImpl) HoursReport(ctx context.Context, req report.ReportRequest) (report.HoursReportResponse, error) {
	run, err := s.run(ctx, req)
	if err != nil {
		return report.HoursReportResponse{}, err
	}

	resp := report.HoursReportResponse{
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Timezone:    run.timezone,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Employees:   run.reports,
	}
	for _, r := range run.reports {
		resp.TotalMinutes += r.TotalMinutes
		resp.AnomalyCount += r.AnomalyCount
	}
	resp.TotalHours = timesheet.FormatHours(resp.TotalMinutes)

	return resp, nil
}

// PayrollReport aggregates pay per employee with the overtime split
func (s *ReportServiceImpl) PayrollReport(ctx context.Context, req report.ReportRequest) (report.PayrollReportResponse, error) {
	run, err := s.run(ctx, req)
	if err != nil {
		return report.PayrollReportResponse{}, err
	}

	resp := report.PayrollReportResponse{
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Timezone:    run.timezone,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}

	totalPay := decimal.Zero
	for _, r := range run.reports {
		row := report.PayrollRow{
			EmployeeID:   r.EmployeeID,
			EmployeeName: r.Name,
			HourlyRate:   r.HourlyRate.StringFixed(2),
			TotalPay:     r.TotalPay.StringFixed(2),
			AnomalyCount: r.AnomalyCount,
		}

		regularPay := decimal.Zero
		overtimePay := decimal.Zero
		for _, w := range r.Weeks {
			row.RegularMinutes += w.RegularMinutes
			row.OvertimeMinutes += w.OvertimeMinutes
			regularPay = regularPay.Add(w.RegularPay)
			overtimePay = overtimePay.Add(w.OvertimePay)
		}
		row.RegularPay = regularPay.StringFixed(2)
		row.OvertimePay = overtimePay.StringFixed(2)

		resp.Rows = append(resp.Rows, row)
		totalPay = totalPay.Add(r.TotalPay)
	}
	resp.TotalPay = totalPay.StringFixed(2)

	return resp, nil
}

// ExportHours renders an hours report as CSV or XLSX
func (s *ReportServiceImpl) ExportHours(ctx context.Context, req report.ReportRequest) (report.ExportFile, error) {
	hours, err := s.HoursReport(ctx, req)
	if err != nil {
		return report.ExportFile{}, err
	}

	var file report.ExportFile
	switch report.Format(req.Format) {
	case report.FormatCSV:
		file, err = export.HoursCSV(hours)
	case report.FormatExcel:
		file, err = export.HoursExcel(hours)
	default:
		return report.ExportFile{}, report.ErrUnsupportedFormat
	}
	if err != nil {
		return report.ExportFile{}, err
	}

	s.notifyExport(ctx, req, "hours")
	return file, nil
}

// ExportPayroll renders a payroll report as CSV or XLSX
func (s *ReportServiceImpl) ExportPayroll(ctx context.Context, req report.ReportRequest) (report.ExportFile, error) {
	payroll, err := s.PayrollReport(ctx, req)
	if err != nil {
		return report.ExportFile{}, err
	}

	var file report.ExportFile
	switch report.Format(req.Format) {
	case report.FormatCSV:
		file, err = export.PayrollCSV(payroll)
	case report.FormatExcel:
		file, err = export.PayrollExcel(payroll)
	default:
		return report.ExportFile{}, report.ErrUnsupportedFormat
	}
	if err != nil {
		return report.ExportFile{}, err
	}

	s.notifyExport(ctx, req, "payroll")
	return file, nil
}

// notifyExport records that an export was produced. Best effort; the
// download itself already succeeded.
func (s *ReportServiceImpl) notifyExport(ctx context.Context, req report.ReportRequest, reportName string) {
	tenantID, err := tenantIDFromContext(ctx)
	if err != nil {
		return
	}

	_ = s.notificationService.Notify(ctx, tenantID, notification.TypeReportReady,
		"Report exported",
		fmt.Sprintf("A %s report for %s to %s was exported.", reportName, req.StartDate, req.EndDate),
		map[string]any{
			"report_name": reportName,
			"start_date":  req.StartDate,
			"end_date":    req.EndDate,
			"format":      req.Format,
		},
	)
}

type reportRun struct {
	timezone string
	reports  []timesheet.EmployeeReport
}

// run executes the aggregation pipeline shared by all report endpoints:
// resolve config, select employees, fetch punches and compute.
func (s *ReportServiceImpl) run(ctx context.Context, req report.ReportRequest) (reportRun, error) {
	if err := req.Validate(); err != nil {
		return reportRun{}, err
	}

	tenantID, err := tenantIDFromContext(ctx)
	if err != nil {
		return reportRun{}, err
	}

	settings, err := s.tenantRepository.GetSettings(ctx, tenantID)
	if err != nil {
		if !errors.Is(err, tenant.ErrSettingsNotFound) {
			return reportRun{}, err
		}
		settings = s.defaultSettings
	}

	timezone := settings.Timezone

	// An office-scoped report runs in the office timezone when one is set.
	if req.OfficeID != nil && *req.OfficeID != "" {
		tz, err := s.officeRepository.GetTimezone(ctx, *req.OfficeID, tenantID)
		if err != nil {
			return reportRun{}, err
		}
		if tz != "" {
			timezone = tz
		}
	}

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return reportRun{}, fmt.Errorf("failed to load timezone %q: %w", timezone, err)
	}

	cfg := timesheet.Config{
		Location:                 loc,
		RoundingMinutes:          settings.RoundingMinutes,
		WeekStartsOn:             settings.WeekStartsOn,
		OvertimeThresholdMinutes: settings.OvertimeThresholdMinutes,
		OvertimeMultiplier:       decimal.NewFromFloat(settings.OvertimeMultiplier),
	}
	if err := cfg.Validate(); err != nil {
		return reportRun{}, err
	}

	startDate, _ := time.ParseInLocation("2006-01-02", req.StartDate, loc)
	endDate, _ := time.ParseInLocation("2006-01-02", req.EndDate, loc)

	// Inclusive local dates: the range runs from start-date midnight up
	// to the midnight after end-date.
	from := startDate
	to := endDate.AddDate(0, 0, 1)

	employees, err := s.employeeRepository.ListActive(ctx, tenantID, req.OfficeID, req.GroupID, req.EmployeeID)
	if err != nil {
		return reportRun{}, err
	}
	if len(employees) == 0 {
		return reportRun{}, report.ErrNoEmployees
	}

	reports := make([]timesheet.EmployeeReport, len(employees))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentEmployees)

	var mu sync.Mutex
	anomalyCount := 0

	for i, emp := range employees {
		g.Go(func() error {
			punches, err := s.punchRepository.ListForRange(gctx, emp.ID, from, to, tenantID)
			if err != nil {
				return err
			}

			input := timesheet.EmployeeInput{
				EmployeeID: emp.ID,
				Name:       emp.Name,
				HourlyRate: emp.HourlyRate,
				Punches:    toEnginePunches(punches),
			}

			result, err := timesheet.Compute(cfg, from, to, input)
			if err != nil {
				return err
			}

			reports[i] = result

			mu.Lock()
			anomalyCount += result.AnomalyCount
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return reportRun{}, err
	}

	sort.Slice(reports, func(i, j int) bool { return reports[i].Name < reports[j].Name })

	if anomalyCount > 0 {
		_ = s.notificationService.Notify(ctx, tenantID, notification.TypeAnomalyDetected,
			"Punch anomalies found",
			fmt.Sprintf("The report for %s to %s found %d punch anomalies. Review and correct them before running payroll.",
				req.StartDate, req.EndDate, anomalyCount),
			map[string]any{"start_date": req.StartDate, "end_date": req.EndDate, "anomaly_count": anomalyCount},
		)
	}

	return reportRun{timezone: timezone, reports: reports}, nil
}

func toEnginePunches(punches []punch.Punch) []timesheet.Punch {
	out := make([]timesheet.Punch, 0, len(punches))
	for _, p := range punches {
		out = append(out, timesheet.Punch{
			EmployeeID: p.EmployeeID,
			Type:       p.Type,
			OccurredAt: p.OccurredAt,
		})
	}
	return out
}

// tenantIDFromContext extracts tenant_id from the JWT claims
func tenantIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	tenantID, ok := claims["tenant_id"].(string)
	if !ok || tenantID == "" {
		return "", fmt.Errorf("tenant_id not found in token")
	}

	return tenantID, nil
}
