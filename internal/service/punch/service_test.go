package punch

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/clockin-app/clockin-backend-go/internal/domain/employee"
	"github.com/clockin-app/clockin-backend-go/internal/domain/punch"
	"github.com/clockin-app/clockin-backend-go/internal/domain/tenant"
	"github.com/clockin-app/clockin-backend-go/internal/timesheet"
)

// ---- stubs ----

type stubTenantRepo struct {
	tenants map[string]tenant.Tenant // keyed by slug
}

func (s *stubTenantRepo) GetByID(ctx context.Context, id string) (tenant.Tenant, error) {
	return tenant.Tenant{}, tenant.ErrTenantNotFound
}

func (s *stubTenantRepo) GetBySlug(ctx context.Context, slug string) (tenant.Tenant, error) {
	t, ok := s.tenants[slug]
	if !ok {
		return tenant.Tenant{}, tenant.ErrTenantNotFound
	}
	return t, nil
}

func (s *stubTenantRepo) GetSettings(ctx context.Context, tenantID string) (tenant.Settings, error) {
	return tenant.Settings{}, tenant.ErrSettingsNotFound
}

func (s *stubTenantRepo) UpdateSettings(ctx context.Context, settings tenant.Settings) error {
	return nil
}

type stubEmployeeRepo struct {
	pins []employee.PINRecord
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
	return nil, nil
}

func (s *stubEmployeeRepo) ListActivePINs(ctx context.Context, tenantID string) ([]employee.PINRecord, error) {
	return s.pins, nil
}

type stubPunchRepo struct {
	last    *punch.Punch
	created []punch.Punch
}

func (s *stubPunchRepo) Create(ctx context.Context, p punch.Punch) (punch.Punch, error) {
	p.ID = "punch-created"
	p.CreatedAt = time.Now().UTC()
	s.created = append(s.created, p)
	return p, nil
}

func (s *stubPunchRepo) GetByID(ctx context.Context, id string, tenantID string) (punch.Punch, error) {
	return punch.Punch{}, punch.ErrPunchNotFound
}

func (s *stubPunchRepo) List(ctx context.Context, filter punch.PunchFilter, tenantID string) ([]punch.Punch, int64, error) {
	return nil, 0, nil
}

func (s *stubPunchRepo) ListForRange(ctx context.Context, employeeID string, from, to time.Time, tenantID string) ([]punch.Punch, error) {
	return nil, nil
}

func (s *stubPunchRepo) GetLast(ctx context.Context, employeeID string, tenantID string) (*punch.Punch, error) {
	return s.last, nil
}

func (s *stubPunchRepo) Void(ctx context.Context, id string, tenantID string, voidedBy string) error {
	return nil
}

// ---- helpers ----

func pinHash(t *testing.T, pin string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func newKioskService(t *testing.T, last *punch.Punch) (punch.PunchService, *stubPunchRepo) {
	t.Helper()
	punchRepo := &stubPunchRepo{last: last}
	svc := NewPunchService(
		nil,
		punchRepo,
		&stubEmployeeRepo{pins: []employee.PINRecord{
			{EmployeeID: "emp-1", Name: "Ana Ward", PINHash: pinHash(t, "1234")},
			{EmployeeID: "emp-2", Name: "Zed Quill", PINHash: pinHash(t, "5678")},
		}},
		&stubTenantRepo{tenants: map[string]tenant.Tenant{
			"acme": {ID: "tenant-1", Name: "Acme", Slug: "acme"},
		}},
	)
	return svc, punchRepo
}

// ---- tests ----

func TestKioskPunch(t *testing.T) {
	svc, punchRepo := newKioskService(t, nil)

	resp, err := svc.KioskPunch(context.Background(), punch.KioskPunchRequest{
		TenantSlug: "acme",
		PIN:        "1234",
		Type:       "in",
	})
	require.NoError(t, err)

	assert.Equal(t, "Ana Ward", resp.EmployeeName)
	assert.Equal(t, "IN", resp.Type)
	assert.Contains(t, resp.Message, "clocked in")

	require.Len(t, punchRepo.created, 1)
	created := punchRepo.created[0]
	assert.Equal(t, "tenant-1", created.TenantID)
	assert.Equal(t, "emp-1", created.EmployeeID)
	assert.Equal(t, punch.SourceKiosk, created.Source)
}

func TestKioskPunch_UnknownTenant(t *testing.T) {
	svc, _ := newKioskService(t, nil)

	_, err := svc.KioskPunch(context.Background(), punch.KioskPunchRequest{
		TenantSlug: "nope",
		PIN:        "1234",
		Type:       "IN",
	})
	assert.ErrorIs(t, err, punch.ErrTenantNotFound)
}

func TestKioskPunch_WrongPIN(t *testing.T) {
	svc, punchRepo := newKioskService(t, nil)

	_, err := svc.KioskPunch(context.Background(), punch.KioskPunchRequest{
		TenantSlug: "acme",
		PIN:        "9999",
		Type:       "IN",
	})
	assert.ErrorIs(t, err, punch.ErrInvalidKioskPIN)
	assert.Empty(t, punchRepo.created)
}

func TestKioskPunch_DoublePunchRejected(t *testing.T) {
	last := &punch.Punch{
		EmployeeID: "emp-1",
		Type:       timesheet.PunchIn,
		OccurredAt: time.Now().UTC().Add(-10 * time.Second),
	}
	svc, punchRepo := newKioskService(t, last)

	_, err := svc.KioskPunch(context.Background(), punch.KioskPunchRequest{
		TenantSlug: "acme",
		PIN:        "1234",
		Type:       "IN",
	})
	assert.ErrorIs(t, err, punch.ErrDoublePunch)
	assert.Empty(t, punchRepo.created)
}

func TestKioskPunch_DifferentTypeInsideWindowAllowed(t *testing.T) {
	last := &punch.Punch{
		EmployeeID: "emp-1",
		Type:       timesheet.PunchIn,
		OccurredAt: time.Now().UTC().Add(-10 * time.Second),
	}
	svc, punchRepo := newKioskService(t, last)

	_, err := svc.KioskPunch(context.Background(), punch.KioskPunchRequest{
		TenantSlug: "acme",
		PIN:        "1234",
		Type:       "OUT",
	})
	require.NoError(t, err)
	assert.Len(t, punchRepo.created, 1)
}

func TestKioskPunch_SameTypeOutsideWindowAllowed(t *testing.T) {
	last := &punch.Punch{
		EmployeeID: "emp-1",
		Type:       timesheet.PunchIn,
		OccurredAt: time.Now().UTC().Add(-5 * time.Minute),
	}
	svc, punchRepo := newKioskService(t, last)

	_, err := svc.KioskPunch(context.Background(), punch.KioskPunchRequest{
		TenantSlug: "acme",
		PIN:        "1234",
		Type:       "IN",
	})
	require.NoError(t, err)
	assert.Len(t, punchRepo.created, 1)
}

func TestKioskPunch_InvalidType(t *testing.T) {
	svc, _ := newKioskService(t, nil)

	_, err := svc.KioskPunch(context.Background(), punch.KioskPunchRequest{
		TenantSlug: "acme",
		PIN:        "1234",
		Type:       "SLEEP",
	})
	assert.Error(t, err)
}

func TestKioskStatus(t *testing.T) {
	t.Run("never punched", func(t *testing.T) {
		svc, _ := newKioskService(t, nil)

		resp, err := svc.KioskStatus(context.Background(), punch.KioskStatusRequest{
			TenantSlug: "acme",
			PIN:        "1234",
		})
		require.NoError(t, err)

		assert.False(t, resp.ClockedIn)
		assert.True(t, resp.CanPunchIn)
		assert.False(t, resp.CanPunchOut)
		assert.Nil(t, resp.LastPunchType)
	})

	t.Run("clocked in", func(t *testing.T) {
		last := &punch.Punch{
			EmployeeID: "emp-1",
			Type:       timesheet.PunchIn,
			OccurredAt: time.Now().UTC().Add(-2 * time.Hour),
		}
		svc, _ := newKioskService(t, last)

		resp, err := svc.KioskStatus(context.Background(), punch.KioskStatusRequest{
			TenantSlug: "acme",
			PIN:        "1234",
		})
		require.NoError(t, err)

		assert.True(t, resp.ClockedIn)
		assert.False(t, resp.CanPunchIn)
		assert.True(t, resp.CanPunchOut)
		require.NotNil(t, resp.LastPunchType)
		assert.Equal(t, "IN", *resp.LastPunchType)
	})

	t.Run("clocked out", func(t *testing.T) {
		last := &punch.Punch{
			EmployeeID: "emp-1",
			Type:       timesheet.PunchOut,
			OccurredAt: time.Now().UTC().Add(-time.Hour),
		}
		svc, _ := newKioskService(t, last)

		resp, err := svc.KioskStatus(context.Background(), punch.KioskStatusRequest{
			TenantSlug: "acme",
			PIN:        "1234",
		})
		require.NoError(t, err)

		assert.False(t, resp.ClockedIn)
		assert.True(t, resp.CanPunchIn)
		assert.False(t, resp.CanPunchOut)
	})
}
