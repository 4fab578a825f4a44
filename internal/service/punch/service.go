package punch

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/clockin-app/clockin-backend-go/internal/domain/employee"
	"github.com/clockin-app/clockin-backend-go/internal/domain/punch"
	"github.com/clockin-app/clockin-backend-go/internal/domain/tenant"
	"github.com/clockin-app/clockin-backend-go/internal/pkg/database"
	"github.com/clockin-app/clockin-backend-go/internal/repository/postgresql"
	"github.com/clockin-app/clockin-backend-go/internal/timesheet"
)

// doublePunchWindow suppresses accidental repeat taps at the kiosk.
const doublePunchWindow = 60 * time.Second

type PunchServiceImpl struct {
	db                 *database.DB
	punchRepository    punch.PunchRepository
	employeeRepository employee.EmployeeRepository
	tenantRepository   tenant.TenantRepository
}

func NewPunchService(
	db *database.DB,
	punchRepository punch.PunchRepository,
	employeeRepository employee.EmployeeRepository,
	tenantRepository tenant.TenantRepository,
) punch.PunchService {
	return &PunchServiceImpl{
		db:                 db,
		punchRepository:    punchRepository,
		employeeRepository: employeeRepository,
		tenantRepository:   tenantRepository,
	}
}

// KioskPunch records a punch for the employee matching the PIN
func (s *PunchServiceImpl) KioskPunch(ctx context.Context, req punch.KioskPunchRequest) (punch.KioskPunchResponse, error) {
	if err := req.Validate(); err != nil {
		return punch.KioskPunchResponse{}, err
	}

	t, err := s.tenantRepository.GetBySlug(ctx, req.TenantSlug)
	if err != nil {
		if errors.Is(err, tenant.ErrTenantNotFound) {
			return punch.KioskPunchResponse{}, punch.ErrTenantNotFound
		}
		return punch.KioskPunchResponse{}, err
	}

	employeeID, employeeName, err := s.matchPIN(ctx, t.ID, req.PIN)
	if err != nil {
		return punch.KioskPunchResponse{}, err
	}

	punchType := timesheet.PunchType(strings.ToUpper(req.Type))
	now := time.Now().UTC()

	// Reject an identical punch recorded moments ago; kiosk screens get
	// tapped twice all the time.
	last, err := s.punchRepository.GetLast(ctx, employeeID, t.ID)
	if err != nil {
		return punch.KioskPunchResponse{}, err
	}
	if last != nil && last.Type == punchType && now.Sub(last.OccurredAt) < doublePunchWindow {
		return punch.KioskPunchResponse{}, punch.ErrDoublePunch
	}

	created, err := s.punchRepository.Create(ctx, punch.Punch{
		TenantID:   t.ID,
		EmployeeID: employeeID,
		Type:       punchType,
		OccurredAt: now,
		Source:     punch.SourceKiosk,
	})
	if err != nil {
		return punch.KioskPunchResponse{}, err
	}

	return punch.KioskPunchResponse{
		EmployeeName: employeeName,
		Type:         string(created.Type),
		OccurredAt:   created.OccurredAt.Format(time.RFC3339),
		Message:      punchMessage(employeeName, punchType),
	}, nil
}

// KioskStatus reports the employee's current punch state
func (s *PunchServiceImpl) KioskStatus(ctx context.Context, req punch.KioskStatusRequest) (punch.KioskStatusResponse, error) {
	if err := req.Validate(); err != nil {
		return punch.KioskStatusResponse{}, err
	}

	t, err := s.tenantRepository.GetBySlug(ctx, req.TenantSlug)
	if err != nil {
		if errors.Is(err, tenant.ErrTenantNotFound) {
			return punch.KioskStatusResponse{}, punch.ErrTenantNotFound
		}
		return punch.KioskStatusResponse{}, err
	}

	employeeID, employeeName, err := s.matchPIN(ctx, t.ID, req.PIN)
	if err != nil {
		return punch.KioskStatusResponse{}, err
	}

	last, err := s.punchRepository.GetLast(ctx, employeeID, t.ID)
	if err != nil {
		return punch.KioskStatusResponse{}, err
	}

	resp := punch.KioskStatusResponse{
		EmployeeName: employeeName,
		CanPunchIn:   true,
	}

	if last != nil {
		lastType := string(last.Type)
		lastAt := last.OccurredAt.Format(time.RFC3339)
		resp.LastPunchType = &lastType
		resp.LastPunchAt = &lastAt

		// Clocked in means the most recent IN is not yet closed by an OUT.
		resp.ClockedIn = last.Type != timesheet.PunchOut
		resp.CanPunchIn = !resp.ClockedIn
		resp.CanPunchOut = resp.ClockedIn
	}

	return resp, nil
}

// ListPunches retrieves punch events with filters
func (s *PunchServiceImpl) ListPunches(ctx context.Context, filter punch.PunchFilter) (punch.ListPunchesResponse, error) {
	if err := filter.Validate(); err != nil {
		return punch.ListPunchesResponse{}, err
	}

	tenantID, _, err := claimsFromContext(ctx)
	if err != nil {
		return punch.ListPunchesResponse{}, err
	}

	punches, totalCount, err := s.punchRepository.List(ctx, filter, tenantID)
	if err != nil {
		return punch.ListPunchesResponse{}, err
	}

	responses := make([]punch.PunchResponse, 0, len(punches))
	for _, p := range punches {
		responses = append(responses, toPunchResponse(p))
	}

	totalPages := int((totalCount + int64(filter.Limit) - 1) / int64(filter.Limit))

	return punch.ListPunchesResponse{
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
		Punches:    responses,
	}, nil
}

// EditPunch voids a punch and inserts a corrected replacement. Both
// writes happen in one transaction so a failure never leaves the
// employee with a silently missing punch.
func (s *PunchServiceImpl) EditPunch(ctx context.Context, req punch.EditPunchRequest) (punch.PunchResponse, error) {
	if err := req.Validate(); err != nil {
		return punch.PunchResponse{}, err
	}

	tenantID, userID, err := claimsFromContext(ctx)
	if err != nil {
		return punch.PunchResponse{}, err
	}

	original, err := s.punchRepository.GetByID(ctx, req.ID, tenantID)
	if err != nil {
		return punch.PunchResponse{}, err
	}
	if original.Voided() {
		return punch.PunchResponse{}, punch.ErrPunchVoided
	}

	replacement := punch.Punch{
		TenantID:   tenantID,
		EmployeeID: original.EmployeeID,
		Type:       original.Type,
		OccurredAt: original.OccurredAt,
		Source:     punch.SourceAdminEdit,
		ReplacesID: &original.ID,
	}
	if req.OccurredAt != nil {
		occurredAt, err := time.Parse(time.RFC3339, *req.OccurredAt)
		if err != nil {
			return punch.PunchResponse{}, fmt.Errorf("failed to parse occurred_at: %w", err)
		}
		replacement.OccurredAt = occurredAt.UTC()
	}
	if req.Type != nil {
		replacement.Type = timesheet.PunchType(strings.ToUpper(*req.Type))
	}

	var created punch.Punch
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.punchRepository.Void(txCtx, original.ID, tenantID, userID); err != nil {
			return err
		}

		var err error
		created, err = s.punchRepository.Create(txCtx, replacement)
		return err
	})
	if err != nil {
		return punch.PunchResponse{}, err
	}

	created.EmployeeName = original.EmployeeName
	return toPunchResponse(created), nil
}

// matchPIN finds the active employee whose PIN hash matches. PIN
// uniqueness is enforced at employee creation, so the first match wins.
func (s *PunchServiceImpl) matchPIN(ctx context.Context, tenantID, pin string) (employeeID, employeeName string, err error) {
	records, err := s.employeeRepository.ListActivePINs(ctx, tenantID)
	if err != nil {
		return "", "", err
	}

	for _, rec := range records {
		if bcrypt.CompareHashAndPassword([]byte(rec.PINHash), []byte(pin)) == nil {
			return rec.EmployeeID, rec.Name, nil
		}
	}

	return "", "", punch.ErrInvalidKioskPIN
}

func punchMessage(name string, t timesheet.PunchType) string {
	switch t {
	case timesheet.PunchIn:
		return fmt.Sprintf("Welcome, %s. You are clocked in.", name)
	case timesheet.PunchOut:
		return fmt.Sprintf("Goodbye, %s. You are clocked out.", name)
	case timesheet.PunchBreak:
		return fmt.Sprintf("Break recorded for %s.", name)
	case timesheet.PunchLunch:
		return fmt.Sprintf("Lunch recorded for %s.", name)
	default:
		return "Punch recorded."
	}
}

func toPunchResponse(p punch.Punch) punch.PunchResponse {
	resp := punch.PunchResponse{
		ID:         p.ID,
		EmployeeID: p.EmployeeID,
		Type:       string(p.Type),
		OccurredAt: p.OccurredAt.Format(time.RFC3339),
		Source:     string(p.Source),
		ReplacesID: p.ReplacesID,
		CreatedAt:  p.CreatedAt.Format(time.RFC3339),
	}
	if p.EmployeeName != nil {
		resp.EmployeeName = *p.EmployeeName
	}
	if p.VoidedAt != nil {
		voidedAt := p.VoidedAt.Format(time.RFC3339)
		resp.VoidedAt = &voidedAt
	}
	return resp
}

// claimsFromContext extracts tenant_id and user_id from the JWT claims
func claimsFromContext(ctx context.Context) (tenantID string, userID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	tenantID, ok := claims["tenant_id"].(string)
	if !ok || tenantID == "" {
		return "", "", fmt.Errorf("tenant_id not found in token")
	}

	userID, ok = claims["user_id"].(string)
	if !ok || userID == "" {
		return "", "", fmt.Errorf("user_id not found in token")
	}

	return tenantID, userID, nil
}
