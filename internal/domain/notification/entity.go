package notification

import "time"

// Type classifies notifications for filtering and display.
type Type string

const (
	TypeAnomalyDetected Type = "anomaly_detected"
	TypeReportReady     Type = "report_ready"
	TypeEmployeeCreated Type = "employee_created"
	TypeSettingsUpdated Type = "settings_updated"
)

// Notification is an in-app message addressed to a dashboard user.
type Notification struct {
	ID        string
	TenantID  string
	UserID    string
	Type      Type
	Title     string
	Message   string
	Metadata  map[string]any
	ReadAt    *time.Time
	CreatedAt time.Time
}

func (n *Notification) IsRead() bool {
	return n.ReadAt != nil
}
