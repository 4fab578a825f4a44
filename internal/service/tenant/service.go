package tenant

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/clockin-app/clockin-backend-go/internal/domain/notification"
	"github.com/clockin-app/clockin-backend-go/internal/domain/tenant"
)

type TenantServiceImpl struct {
	tenantRepository    tenant.TenantRepository
	notificationService notification.NotificationService
}

func NewTenantService(tenantRepository tenant.TenantRepository, notificationService notification.NotificationService) tenant.TenantService {
	return &TenantServiceImpl{
		tenantRepository:    tenantRepository,
		notificationService: notificationService,
	}
}

// GetMyTenant returns the authenticated admin's tenant profile
func (s *TenantServiceImpl) GetMyTenant(ctx context.Context) (tenant.TenantResponse, error) {
	tenantID, err := tenantIDFromContext(ctx)
	if err != nil {
		return tenant.TenantResponse{}, err
	}

	t, err := s.tenantRepository.GetByID(ctx, tenantID)
	if err != nil {
		return tenant.TenantResponse{}, err
	}

	return tenant.TenantResponse{
		ID:        t.ID,
		Name:      t.Name,
		Slug:      t.Slug,
		CreatedAt: t.CreatedAt.Format(time.RFC3339),
	}, nil
}

// GetSettings returns the tenant's aggregation settings
func (s *TenantServiceImpl) GetSettings(ctx context.Context) (tenant.SettingsResponse, error) {
	tenantID, err := tenantIDFromContext(ctx)
	if err != nil {
		return tenant.SettingsResponse{}, err
	}

	settings, err := s.tenantRepository.GetSettings(ctx, tenantID)
	if err != nil {
		return tenant.SettingsResponse{}, err
	}

	return toSettingsResponse(settings), nil
}

// UpdateSettings applies a partial settings update after validation
func (s *TenantServiceImpl) UpdateSettings(ctx context.Context, req tenant.UpdateSettingsRequest) (tenant.SettingsResponse, error) {
	if err := req.Validate(); err != nil {
		return tenant.SettingsResponse{}, err
	}

	tenantID, err := tenantIDFromContext(ctx)
	if err != nil {
		return tenant.SettingsResponse{}, err
	}

	settings, err := s.tenantRepository.GetSettings(ctx, tenantID)
	if err != nil {
		return tenant.SettingsResponse{}, err
	}

	if req.Timezone != nil {
		settings.Timezone = *req.Timezone
	}
	if req.RoundingMinutes != nil {
		settings.RoundingMinutes = *req.RoundingMinutes
	}
	if req.WeekStartsOn != nil {
		settings.WeekStartsOn = *req.WeekStartsOn
	}
	if req.OvertimeThresholdMinutes != nil {
		settings.OvertimeThresholdMinutes = *req.OvertimeThresholdMinutes
	}
	if req.OvertimeMultiplier != nil {
		settings.OvertimeMultiplier = *req.OvertimeMultiplier
	}

	if err := s.tenantRepository.UpdateSettings(ctx, settings); err != nil {
		return tenant.SettingsResponse{}, err
	}

	// Settings changes shift report numbers, so other admins get told.
	_ = s.notificationService.Notify(ctx, tenantID, notification.TypeSettingsUpdated,
		"Aggregation settings updated",
		"Time rounding, overtime or timezone settings were changed. Future reports will use the new values.",
		nil,
	)

	return toSettingsResponse(settings), nil
}

func toSettingsResponse(s tenant.Settings) tenant.SettingsResponse {
	return tenant.SettingsResponse{
		Timezone:                 s.Timezone,
		RoundingMinutes:          s.RoundingMinutes,
		WeekStartsOn:             s.WeekStartsOn,
		OvertimeThresholdMinutes: s.OvertimeThresholdMinutes,
		OvertimeMultiplier:       s.OvertimeMultiplier,
	}
}

// tenantIDFromContext extracts tenant_id from the JWT claims
func tenantIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	tenantID, ok := claims["tenant_id"].(string)
	if !ok || tenantID == "" {
		return "", fmt.Errorf("tenant_id not found in token")
	}

	return tenantID, nil
}
