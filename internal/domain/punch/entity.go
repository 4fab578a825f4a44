package punch

import (
	"time"

	"github.com/clockin-app/clockin-backend-go/internal/timesheet"
)

// Source records how a punch entered the system.
type Source string

const (
	SourceKiosk     Source = "kiosk"
	SourceAdminEdit Source = "admin_edit"
)

// Punch is an immutable punch event. Admin time-edits never mutate a
// recorded punch: they void it and insert a replacement referencing the
// original, so the audit trail survives.
type Punch struct {
	ID         string
	TenantID   string
	EmployeeID string
	Type       timesheet.PunchType
	OccurredAt time.Time
	Source     Source
	ReplacesID *string
	VoidedAt   *time.Time
	VoidedBy   *string
	CreatedAt  time.Time

	// DTO / Join
	EmployeeName *string
}

// Voided reports whether the punch has been superseded by an edit.
func (p *Punch) Voided() bool {
	return p.VoidedAt != nil
}

// ValidTypes lists the accepted punch types.
func ValidTypes() []string {
	return []string{
		string(timesheet.PunchIn),
		string(timesheet.PunchOut),
		string(timesheet.PunchBreak),
		string(timesheet.PunchLunch),
	}
}
