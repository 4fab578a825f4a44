package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/clockin-app/clockin-backend-go/internal/domain/master/group"
	"github.com/clockin-app/clockin-backend-go/internal/domain/master/office"
	"github.com/clockin-app/clockin-backend-go/internal/handler/http/response"
	"github.com/clockin-app/clockin-backend-go/internal/service/master"
)

type MasterHandler interface {
	// Office endpoints
	CreateOffice(w http.ResponseWriter, r *http.Request)
	GetOffice(w http.ResponseWriter, r *http.Request)
	ListOffices(w http.ResponseWriter, r *http.Request)
	UpdateOffice(w http.ResponseWriter, r *http.Request)
	DeleteOffice(w http.ResponseWriter, r *http.Request)

	// Group endpoints
	CreateGroup(w http.ResponseWriter, r *http.Request)
	GetGroup(w http.ResponseWriter, r *http.Request)
	ListGroups(w http.ResponseWriter, r *http.Request)
	UpdateGroup(w http.ResponseWriter, r *http.Request)
	DeleteGroup(w http.ResponseWriter, r *http.Request)
}

type MasterHandlerImpl struct {
	masterService master.MasterService
}

func NewMasterHandler(masterService master.MasterService) MasterHandler {
	return &MasterHandlerImpl{masterService: masterService}
}

// ==================== OFFICE ENDPOINTS ====================

func (h *MasterHandlerImpl) CreateOffice(w http.ResponseWriter, r *http.Request) {
	var req office.CreateOfficeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateOffice decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.masterService.CreateOffice(r.Context(), req)
	if err != nil {
		slog.Error("CreateOffice service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Office created", resp)
}

func (h *MasterHandlerImpl) GetOffice(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	resp, err := h.masterService.GetOffice(r.Context(), id)
	if err != nil {
		slog.Error("GetOffice service error", "office_id", id, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

func (h *MasterHandlerImpl) ListOffices(w http.ResponseWriter, r *http.Request) {
	resp, err := h.masterService.ListOffices(r.Context())
	if err != nil {
		slog.Error("ListOffices service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

func (h *MasterHandlerImpl) UpdateOffice(w http.ResponseWriter, r *http.Request) {
	var req office.UpdateOfficeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateOffice decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := h.masterService.UpdateOffice(r.Context(), req); err != nil {
		slog.Error("UpdateOffice service error", "office_id", req.ID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Office updated", nil)
}

func (h *MasterHandlerImpl) DeleteOffice(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.masterService.DeleteOffice(r.Context(), id); err != nil {
		slog.Error("DeleteOffice service error", "office_id", id, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Office deleted", nil)
}

// ==================== GROUP ENDPOINTS ====================

func (h *MasterHandlerImpl) CreateGroup(w http.ResponseWriter, r *http.Request) {
	var req group.CreateGroupRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateGroup decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.masterService.CreateGroup(r.Context(), req)
	if err != nil {
		slog.Error("CreateGroup service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Group created", resp)
}

func (h *MasterHandlerImpl) GetGroup(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	resp, err := h.masterService.GetGroup(r.Context(), id)
	if err != nil {
		slog.Error("GetGroup service error", "group_id", id, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

func (h *MasterHandlerImpl) ListGroups(w http.ResponseWriter, r *http.Request) {
	resp, err := h.masterService.ListGroups(r.Context())
	if err != nil {
		slog.Error("ListGroups service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

func (h *MasterHandlerImpl) UpdateGroup(w http.ResponseWriter, r *http.Request) {
	var req group.UpdateGroupRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateGroup decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := h.masterService.UpdateGroup(r.Context(), req); err != nil {
		slog.Error("UpdateGroup service error", "group_id", req.ID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Group updated", nil)
}

func (h *MasterHandlerImpl) DeleteGroup(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.masterService.DeleteGroup(r.Context(), id); err != nil {
		slog.Error("DeleteGroup service error", "group_id", id, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Group deleted", nil)
}
