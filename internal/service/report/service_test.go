package report

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clockin-app/clockin-backend-go/internal/domain/employee"
	"github.com/clockin-app/clockin-backend-go/internal/domain/master/office"
	"github.com/clockin-app/clockin-backend-go/internal/domain/notification"
	"github.com/clockin-app/clockin-backend-go/internal/domain/punch"
	"github.com/clockin-app/clockin-backend-go/internal/domain/report"
	"github.com/clockin-app/clockin-backend-go/internal/domain/tenant"
	"github.com/clockin-app/clockin-backend-go/internal/timesheet"
)

const testTenantID = "tenant-1"

// ---- stubs ----

type stubTenantRepo struct {
	settings    tenant.Settings
	settingsErr error
}

func (s *stubTenantRepo) GetByID(ctx context.Context, id string) (tenant.Tenant, error) {
	return tenant.Tenant{ID: id}, nil
}

func (s *stubTenantRepo) GetBySlug(ctx context.Context, slug string) (tenant.Tenant, error) {
	return tenant.Tenant{Slug: slug}, nil
}

func (s *stubTenantRepo) GetSettings(ctx context.Context, tenantID string) (tenant.Settings, error) {
	if s.settingsErr != nil {
		return tenant.Settings{}, s.settingsErr
	}
	return s.settings, nil
}

func (s *stubTenantRepo) UpdateSettings(ctx context.Context, settings tenant.Settings) error {
	return nil
}

type stubEmployeeRepo struct {
	active []employee.Employee
}

func (s *stubEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (s *stubEmployeeRepo) GetByID(ctx context.Context, id string, tenantID string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (s *stubEmployeeRepo) List(ctx context.Context, filter employee.EmployeeFilter, tenantID string) ([]employee.Employee, int64, error) {
	return nil, 0, nil
}

func (s *stubEmployeeRepo) Update(ctx context.Context, emp employee.Employee) error { return nil }

func (s *stubEmployeeRepo) Delete(ctx context.Context, id string, tenantID string) error { return nil }

func (s *stubEmployeeRepo) ListActive(ctx context.Context, tenantID string, officeID, groupID, employeeID *string) ([]employee.Employee, error) {
	return s.active, nil
}

func (s *stubEmployeeRepo) ListActivePINs(ctx context.Context, tenantID string) ([]employee.PINRecord, error) {
	return nil, nil
}

type stubPunchRepo struct {
	byEmployee map[string][]punch.Punch
}

func (s *stubPunchRepo) Create(ctx context.Context, p punch.Punch) (punch.Punch, error) {
	return p, nil
}

func (s *stubPunchRepo) GetByID(ctx context.Context, id string, tenantID string) (punch.Punch, error) {
	return punch.Punch{}, punch.ErrPunchNotFound
}

func (s *stubPunchRepo) List(ctx context.Context, filter punch.PunchFilter, tenantID string) ([]punch.Punch, int64, error) {
	return nil, 0, nil
}

func (s *stubPunchRepo) ListForRange(ctx context.Context, employeeID string, from, to time.Time, tenantID string) ([]punch.Punch, error) {
	return s.byEmployee[employeeID], nil
}

func (s *stubPunchRepo) GetLast(ctx context.Context, employeeID string, tenantID string) (*punch.Punch, error) {
	return nil, nil
}

func (s *stubPunchRepo) Void(ctx context.Context, id string, tenantID string, voidedBy string) error {
	return nil
}

type stubOfficeRepo struct {
	timezone string
}

func (s *stubOfficeRepo) Create(ctx context.Context, o office.Office) (office.Office, error) {
	return o, nil
}

func (s *stubOfficeRepo) GetByID(ctx context.Context, id string, tenantID string) (office.Office, error) {
	return office.Office{}, office.ErrOfficeNotFound
}

func (s *stubOfficeRepo) GetByTenantID(ctx context.Context, tenantID string) ([]office.Office, error) {
	return nil, nil
}

func (s *stubOfficeRepo) Update(ctx context.Context, req office.UpdateOfficeRequest) error { return nil }

func (s *stubOfficeRepo) Delete(ctx context.Context, id string, tenantID string) error { return nil }

func (s *stubOfficeRepo) GetTimezone(ctx context.Context, id string, tenantID string) (string, error) {
	return s.timezone, nil
}

type notifyCall struct {
	typ   notification.Type
	title string
}

type stubNotificationService struct {
	calls []notifyCall
}

func (s *stubNotificationService) ListNotifications(ctx context.Context, filter notification.NotificationFilter) (notification.ListNotificationsResponse, error) {
	return notification.ListNotificationsResponse{}, nil
}

func (s *stubNotificationService) MarkRead(ctx context.Context, id string) error { return nil }

func (s *stubNotificationService) MarkAllRead(ctx context.Context) error { return nil }

func (s *stubNotificationService) Notify(ctx context.Context, tenantID string, typ notification.Type, title, message string, metadata map[string]any) error {
	s.calls = append(s.calls, notifyCall{typ: typ, title: title})
	return nil
}

// ---- helpers ----

func authedContext(t *testing.T) context.Context {
	t.Helper()
	tokenAuth := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := tokenAuth.Encode(map[string]interface{}{
		"tenant_id": testTenantID,
		"user_id":   "user-1",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func defaultSettings() tenant.Settings {
	return tenant.Settings{
		TenantID:                 testTenantID,
		Timezone:                 "UTC",
		RoundingMinutes:          15,
		WeekStartsOn:             1,
		OvertimeThresholdMinutes: 2400,
		OvertimeMultiplier:       1.5,
	}
}

func punchesFor(employeeID string, days int, inHour, outHour int) []punch.Punch {
	base := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC) // a Monday
	var out []punch.Punch
	for d := 0; d < days; d++ {
		day := base.AddDate(0, 0, d)
		out = append(out,
			punch.Punch{EmployeeID: employeeID, Type: timesheet.PunchIn, OccurredAt: day.Add(time.Duration(inHour) * time.Hour)},
			punch.Punch{EmployeeID: employeeID, Type: timesheet.PunchOut, OccurredAt: day.Add(time.Duration(outHour) * time.Hour)},
		)
	}
	return out
}

func newTestService(settings tenant.Settings, employees []employee.Employee, punches map[string][]punch.Punch, officeTZ string) (report.ReportService, *stubNotificationService) {
	return newTestServiceWithTenantRepo(&stubTenantRepo{settings: settings}, employees, punches, officeTZ)
}

func newTestServiceWithTenantRepo(tenantRepo *stubTenantRepo, employees []employee.Employee, punches map[string][]punch.Punch, officeTZ string) (report.ReportService, *stubNotificationService) {
	notifier := &stubNotificationService{}
	svc := NewReportService(
		tenantRepo,
		&stubEmployeeRepo{active: employees},
		&stubPunchRepo{byEmployee: punches},
		&stubOfficeRepo{timezone: officeTZ},
		notifier,
		defaultSettings(),
	)
	return svc, notifier
}

// ---- tests ----

func TestHoursReport(t *testing.T) {
	emp := employee.Employee{ID: "emp-1", TenantID: testTenantID, Name: "Ana Ward", HourlyRate: decimal.NewFromInt(20)}
	svc, notifier := newTestService(defaultSettings(), []employee.Employee{emp},
		map[string][]punch.Punch{"emp-1": punchesFor("emp-1", 2, 9, 17)}, "")

	resp, err := svc.HoursReport(authedContext(t), report.ReportRequest{
		StartDate: "2024-03-04",
		EndDate:   "2024-03-05",
	})
	require.NoError(t, err)

	assert.Equal(t, "UTC", resp.Timezone)
	assert.Equal(t, 960, resp.TotalMinutes)
	assert.Equal(t, "16:00", resp.TotalHours)
	assert.Equal(t, 0, resp.AnomalyCount)
	require.Len(t, resp.Employees, 1)
	assert.Equal(t, "Ana Ward", resp.Employees[0].Name)
	assert.Len(t, resp.Employees[0].Days, 2)
	assert.Empty(t, notifier.calls, "clean report must not raise an anomaly notification")
}

func TestHoursReport_SortsEmployeesByName(t *testing.T) {
	employees := []employee.Employee{
		{ID: "emp-2", TenantID: testTenantID, Name: "Zed Quill", HourlyRate: decimal.NewFromInt(18)},
		{ID: "emp-1", TenantID: testTenantID, Name: "Ana Ward", HourlyRate: decimal.NewFromInt(20)},
	}
	punches := map[string][]punch.Punch{
		"emp-1": punchesFor("emp-1", 1, 9, 17),
		"emp-2": punchesFor("emp-2", 1, 9, 17),
	}
	svc, _ := newTestService(defaultSettings(), employees, punches, "")

	resp, err := svc.HoursReport(authedContext(t), report.ReportRequest{
		StartDate: "2024-03-04",
		EndDate:   "2024-03-04",
	})
	require.NoError(t, err)
	require.Len(t, resp.Employees, 2)
	assert.Equal(t, "Ana Ward", resp.Employees[0].Name)
	assert.Equal(t, "Zed Quill", resp.Employees[1].Name)
}

func TestHoursReport_AnomalyNotification(t *testing.T) {
	emp := employee.Employee{ID: "emp-1", TenantID: testTenantID, Name: "Ana Ward", HourlyRate: decimal.NewFromInt(20)}
	// An IN with no matching OUT is clamped to the range end and flagged.
	punches := map[string][]punch.Punch{
		"emp-1": {
			{EmployeeID: "emp-1", Type: timesheet.PunchIn, OccurredAt: time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)},
		},
	}
	svc, notifier := newTestService(defaultSettings(), []employee.Employee{emp}, punches, "")

	resp, err := svc.HoursReport(authedContext(t), report.ReportRequest{
		StartDate: "2024-03-04",
		EndDate:   "2024-03-04",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.AnomalyCount)
	require.Len(t, notifier.calls, 1)
	assert.Equal(t, notification.TypeAnomalyDetected, notifier.calls[0].typ)
}

func TestHoursReport_OfficeTimezoneOverride(t *testing.T) {
	emp := employee.Employee{ID: "emp-1", TenantID: testTenantID, Name: "Ana Ward", HourlyRate: decimal.NewFromInt(20)}
	svc, _ := newTestService(defaultSettings(), []employee.Employee{emp},
		map[string][]punch.Punch{"emp-1": punchesFor("emp-1", 1, 9, 17)}, "America/New_York")

	officeID := "office-1"
	resp, err := svc.HoursReport(authedContext(t), report.ReportRequest{
		StartDate: "2024-03-04",
		EndDate:   "2024-03-04",
		OfficeID:  &officeID,
	})
	require.NoError(t, err)
	assert.Equal(t, "America/New_York", resp.Timezone)
}

func TestHoursReport_FallsBackToDefaultSettings(t *testing.T) {
	emp := employee.Employee{ID: "emp-1", TenantID: testTenantID, Name: "Ana Ward", HourlyRate: decimal.NewFromInt(20)}
	tenantRepo := &stubTenantRepo{settingsErr: tenant.ErrSettingsNotFound}
	svc, _ := newTestServiceWithTenantRepo(tenantRepo, []employee.Employee{emp},
		map[string][]punch.Punch{"emp-1": punchesFor("emp-1", 1, 9, 17)}, "")

	resp, err := svc.HoursReport(authedContext(t), report.ReportRequest{
		StartDate: "2024-03-04",
		EndDate:   "2024-03-04",
	})
	require.NoError(t, err)
	assert.Equal(t, "UTC", resp.Timezone)
	assert.Equal(t, 480, resp.TotalMinutes)
}

func TestHoursReport_NoEmployees(t *testing.T) {
	svc, _ := newTestService(defaultSettings(), nil, nil, "")

	_, err := svc.HoursReport(authedContext(t), report.ReportRequest{
		StartDate: "2024-03-04",
		EndDate:   "2024-03-04",
	})
	assert.ErrorIs(t, err, report.ErrNoEmployees)
}

func TestHoursReport_RejectsMultipleScopes(t *testing.T) {
	svc, _ := newTestService(defaultSettings(), nil, nil, "")

	employeeID := "emp-1"
	officeID := "office-1"
	_, err := svc.HoursReport(authedContext(t), report.ReportRequest{
		StartDate:  "2024-03-04",
		EndDate:    "2024-03-04",
		EmployeeID: &employeeID,
		OfficeID:   &officeID,
	})
	assert.Error(t, err)
}

func TestHoursReport_MissingClaims(t *testing.T) {
	svc, _ := newTestService(defaultSettings(), nil, nil, "")

	_, err := svc.HoursReport(context.Background(), report.ReportRequest{
		StartDate: "2024-03-04",
		EndDate:   "2024-03-04",
	})
	assert.Error(t, err)
}

func TestPayrollReport_OvertimeSplit(t *testing.T) {
	emp := employee.Employee{ID: "emp-1", TenantID: testTenantID, Name: "Ana Ward", HourlyRate: decimal.NewFromInt(20)}
	// Five 9-hour days in one week: 2700 minutes against a 2400 minute
	// threshold leaves 300 overtime minutes.
	svc, _ := newTestService(defaultSettings(), []employee.Employee{emp},
		map[string][]punch.Punch{"emp-1": punchesFor("emp-1", 5, 9, 18)}, "")

	resp, err := svc.PayrollReport(authedContext(t), report.ReportRequest{
		StartDate: "2024-03-04",
		EndDate:   "2024-03-08",
	})
	require.NoError(t, err)
	require.Len(t, resp.Rows, 1)

	row := resp.Rows[0]
	assert.Equal(t, 2400, row.RegularMinutes)
	assert.Equal(t, 300, row.OvertimeMinutes)
	assert.Equal(t, "800.00", row.RegularPay)
	assert.Equal(t, "150.00", row.OvertimePay)
	assert.Equal(t, "950.00", row.TotalPay)
	assert.Equal(t, "950.00", resp.TotalPay)
}

func TestExportHours(t *testing.T) {
	emp := employee.Employee{ID: "emp-1", TenantID: testTenantID, Name: "Ana Ward", HourlyRate: decimal.NewFromInt(20)}
	svc, notifier := newTestService(defaultSettings(), []employee.Employee{emp},
		map[string][]punch.Punch{"emp-1": punchesFor("emp-1", 1, 9, 17)}, "")

	file, err := svc.ExportHours(authedContext(t), report.ReportRequest{
		StartDate: "2024-03-04",
		EndDate:   "2024-03-04",
		Format:    "csv",
	})
	require.NoError(t, err)
	assert.Equal(t, "hours_2024-03-04_2024-03-04.csv", file.FileName)
	assert.NotEmpty(t, file.Content)

	require.Len(t, notifier.calls, 1)
	assert.Equal(t, notification.TypeReportReady, notifier.calls[0].typ)
}

func TestExportHours_RejectsJSONFormat(t *testing.T) {
	emp := employee.Employee{ID: "emp-1", TenantID: testTenantID, Name: "Ana Ward", HourlyRate: decimal.NewFromInt(20)}
	svc, _ := newTestService(defaultSettings(), []employee.Employee{emp},
		map[string][]punch.Punch{"emp-1": punchesFor("emp-1", 1, 9, 17)}, "")

	_, err := svc.ExportHours(authedContext(t), report.ReportRequest{
		StartDate: "2024-03-04",
		EndDate:   "2024-03-04",
		Format:    "json",
	})
	assert.ErrorIs(t, err, report.ErrUnsupportedFormat)
}
