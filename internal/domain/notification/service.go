package notification

import "context"

// NotificationService defines business logic for in-app notifications
type NotificationService interface {
	ListNotifications(ctx context.Context, filter NotificationFilter) (ListNotificationsResponse, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context) error

	// Notify fans a notification out to every owner and admin user of
	// the tenant. Used by other services, not exposed over HTTP.
	Notify(ctx context.Context, tenantID string, typ Type, title, message string, metadata map[string]any) error
}
