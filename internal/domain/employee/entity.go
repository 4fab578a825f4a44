package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID         string
	TenantID   string
	Name       string
	Email      *string
	PINHash    string
	HourlyRate decimal.Decimal
	OfficeID   *string
	GroupID    *string
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO / Join
	OfficeName *string
	GroupName  *string
}
