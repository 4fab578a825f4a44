package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/clockin-app/clockin-backend-go/internal/domain/tenant"
	"github.com/clockin-app/clockin-backend-go/internal/handler/http/response"
)

type TenantHandler interface {
	GetMyTenant(w http.ResponseWriter, r *http.Request)
	GetSettings(w http.ResponseWriter, r *http.Request)
	UpdateSettings(w http.ResponseWriter, r *http.Request)
}

type TenantHandlerImpl struct {
	tenantService tenant.TenantService
}

func NewTenantHandler(tenantService tenant.TenantService) TenantHandler {
	return &TenantHandlerImpl{tenantService: tenantService}
}

// GetMyTenant implements TenantHandler.
func (h *TenantHandlerImpl) GetMyTenant(w http.ResponseWriter, r *http.Request) {
	resp, err := h.tenantService.GetMyTenant(r.Context())
	if err != nil {
		slog.Error("GetMyTenant service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// GetSettings implements TenantHandler.
func (h *TenantHandlerImpl) GetSettings(w http.ResponseWriter, r *http.Request) {
	resp, err := h.tenantService.GetSettings(r.Context())
	if err != nil {
		slog.Error("GetSettings service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// UpdateSettings implements TenantHandler.
func (h *TenantHandlerImpl) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req tenant.UpdateSettingsRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateSettings decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.tenantService.UpdateSettings(r.Context(), req)
	if err != nil {
		slog.Error("UpdateSettings service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Settings updated", resp)
}
