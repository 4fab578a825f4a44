package punch

import (
	"context"
)

// PunchService defines business logic for punch recording and edits
type PunchService interface {
	// KioskPunch records a punch for the employee matching the PIN
	KioskPunch(ctx context.Context, req KioskPunchRequest) (KioskPunchResponse, error)

	// KioskStatus reports the employee's current punch state
	KioskStatus(ctx context.Context, req KioskStatusRequest) (KioskStatusResponse, error)

	// ListPunches retrieves punch events with filters (admin)
	ListPunches(ctx context.Context, filter PunchFilter) (ListPunchesResponse, error)

	// EditPunch voids a punch and inserts a corrected replacement (admin)
	EditPunch(ctx context.Context, req EditPunchRequest) (PunchResponse, error)
}
