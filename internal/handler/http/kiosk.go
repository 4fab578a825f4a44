package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/clockin-app/clockin-backend-go/internal/domain/punch"
	"github.com/clockin-app/clockin-backend-go/internal/handler/http/response"
)

// KioskHandler serves the unauthenticated kiosk endpoints. Employees are
// identified by tenant slug and PIN, never by JWT.
type KioskHandler interface {
	Punch(w http.ResponseWriter, r *http.Request)
	Status(w http.ResponseWriter, r *http.Request)
}

type KioskHandlerImpl struct {
	punchService punch.PunchService
}

func NewKioskHandler(punchService punch.PunchService) KioskHandler {
	return &KioskHandlerImpl{punchService: punchService}
}

// Punch implements KioskHandler.
func (h *KioskHandlerImpl) Punch(w http.ResponseWriter, r *http.Request) {
	var req punch.KioskPunchRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("KioskPunch decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.punchService.KioskPunch(r.Context(), req)
	if err != nil {
		// PIN never gets logged, even at debug level
		slog.Error("KioskPunch service error", "tenant_slug", req.TenantSlug, "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Kiosk punch recorded", "tenant_slug", req.TenantSlug, "type", resp.Type)
	response.Created(w, resp.Message, resp)
}

// Status implements KioskHandler.
func (h *KioskHandlerImpl) Status(w http.ResponseWriter, r *http.Request) {
	var req punch.KioskStatusRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("KioskStatus decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.punchService.KioskStatus(r.Context(), req)
	if err != nil {
		slog.Error("KioskStatus service error", "tenant_slug", req.TenantSlug, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
