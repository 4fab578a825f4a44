package notification

import "context"

// NotificationRepository defines data access methods for notifications
type NotificationRepository interface {
	Create(ctx context.Context, n Notification) (Notification, error)
	List(ctx context.Context, filter NotificationFilter, userID string, tenantID string) ([]Notification, int64, error)
	CountUnread(ctx context.Context, userID string, tenantID string) (int64, error)
	MarkRead(ctx context.Context, id string, userID string, tenantID string) error
	MarkAllRead(ctx context.Context, userID string, tenantID string) error
}
