package notification

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/clockin-app/clockin-backend-go/internal/domain/notification"
	"github.com/clockin-app/clockin-backend-go/internal/domain/user"
	"github.com/clockin-app/clockin-backend-go/internal/pkg/email"
)

type NotificationServiceImpl struct {
	notificationRepository notification.NotificationRepository
	userRepository         user.UserRepository
	emailService           email.EmailService
	frontendURL            string
}

func NewNotificationService(
	notificationRepository notification.NotificationRepository,
	userRepository user.UserRepository,
	emailService email.EmailService,
	frontendURL string,
) notification.NotificationService {
	return &NotificationServiceImpl{
		notificationRepository: notificationRepository,
		userRepository:         userRepository,
		emailService:           emailService,
		frontendURL:            frontendURL,
	}
}

// ListNotifications retrieves the authenticated user's notifications
func (s *NotificationServiceImpl) ListNotifications(ctx context.Context, filter notification.NotificationFilter) (notification.ListNotificationsResponse, error) {
	if err := filter.Validate(); err != nil {
		return notification.ListNotificationsResponse{}, err
	}

	tenantID, userID, err := claimsFromContext(ctx)
	if err != nil {
		return notification.ListNotificationsResponse{}, err
	}

	notifications, totalCount, err := s.notificationRepository.List(ctx, filter, userID, tenantID)
	if err != nil {
		return notification.ListNotificationsResponse{}, err
	}

	unreadCount, err := s.notificationRepository.CountUnread(ctx, userID, tenantID)
	if err != nil {
		return notification.ListNotificationsResponse{}, err
	}

	responses := make([]notification.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		responses = append(responses, toNotificationResponse(n))
	}

	return notification.ListNotificationsResponse{
		TotalCount:    totalCount,
		UnreadCount:   unreadCount,
		Page:          filter.Page,
		Limit:         filter.Limit,
		Notifications: responses,
	}, nil
}

// MarkRead marks one notification as read
func (s *NotificationServiceImpl) MarkRead(ctx context.Context, id string) error {
	tenantID, userID, err := claimsFromContext(ctx)
	if err != nil {
		return err
	}

	return s.notificationRepository.MarkRead(ctx, id, userID, tenantID)
}

// MarkAllRead marks all of the user's notifications as read
func (s *NotificationServiceImpl) MarkAllRead(ctx context.Context) error {
	tenantID, userID, err := claimsFromContext(ctx)
	if err != nil {
		return err
	}

	return s.notificationRepository.MarkAllRead(ctx, userID, tenantID)
}

// Notify fans a notification out to every owner and admin of the tenant.
// Failures are logged, never propagated; a notification must not fail
// the operation that triggered it.
func (s *NotificationServiceImpl) Notify(ctx context.Context, tenantID string, typ notification.Type, title, message string, metadata map[string]any) error {
	managerIDs, err := s.userRepository.ListManagerIDs(ctx, tenantID)
	if err != nil {
		slog.Error("Failed to list managers for notification", "tenant_id", tenantID, "error", err)
		return err
	}

	for _, userID := range managerIDs {
		_, err := s.notificationRepository.Create(ctx, notification.Notification{
			TenantID: tenantID,
			UserID:   userID,
			Type:     typ,
			Title:    title,
			Message:  message,
			Metadata: metadata,
		})
		if err != nil {
			slog.Error("Failed to create notification", "tenant_id", tenantID, "user_id", userID, "error", err)
			continue
		}

		s.sendEmail(ctx, userID, typ, metadata)
	}

	return nil
}

// sendEmail mirrors anomaly and report events to the manager's inbox.
// Other notification types stay in-app only.
func (s *NotificationServiceImpl) sendEmail(ctx context.Context, userID string, typ notification.Type, metadata map[string]any) {
	if typ != notification.TypeAnomalyDetected && typ != notification.TypeReportReady {
		return
	}

	u, err := s.userRepository.GetByID(ctx, userID)
	if err != nil {
		slog.Error("Failed to load user for notification email", "user_id", userID, "error", err)
		return
	}

	periodLabel := fmt.Sprintf("%v to %v", metadata["start_date"], metadata["end_date"])

	switch typ {
	case notification.TypeAnomalyDetected:
		count, _ := metadata["anomaly_count"].(int)
		err = s.emailService.SendAnomalyDigest(u.Email, u.Name, periodLabel, count, s.frontendURL+"/punches")
	case notification.TypeReportReady:
		name, _ := metadata["report_name"].(string)
		err = s.emailService.SendReportReady(u.Email, u.Name, name, periodLabel, s.frontendURL+"/reports")
	}
	if err != nil {
		slog.Error("Failed to send notification email", "user_id", userID, "type", typ, "error", err)
	}
}

func toNotificationResponse(n notification.Notification) notification.NotificationResponse {
	resp := notification.NotificationResponse{
		ID:        n.ID,
		Type:      string(n.Type),
		Title:     n.Title,
		Message:   n.Message,
		Metadata:  n.Metadata,
		CreatedAt: n.CreatedAt.Format(time.RFC3339),
	}
	if n.ReadAt != nil {
		readAt := n.ReadAt.Format(time.RFC3339)
		resp.ReadAt = &readAt
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
