package tenant

import "time"

// Tenant is one customer account. All employee, punch and report data is
// scoped to a tenant.
type Tenant struct {
	ID        string
	Name      string
	Slug      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Settings carries the tenant's aggregation configuration. It is the
// single validated source of the report engine's config.
type Settings struct {
	TenantID                 string
	Timezone                 string
	RoundingMinutes          int
	WeekStartsOn             int
	OvertimeThresholdMinutes int
	OvertimeMultiplier       float64
	UpdatedAt                time.Time
}
