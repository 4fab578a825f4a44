package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/clockin-app/clockin-backend-go/internal/domain/punch"
	"github.com/clockin-app/clockin-backend-go/internal/handler/http/response"
)

type PunchHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	ListForEmployee(w http.ResponseWriter, r *http.Request)
	Edit(w http.ResponseWriter, r *http.Request)
}

type PunchHandlerImpl struct {
	punchService punch.PunchService
}

func NewPunchHandler(punchService punch.PunchService) PunchHandler {
	return &PunchHandlerImpl{punchService: punchService}
}

// List implements PunchHandler.
func (h *PunchHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := punchFilterFromQuery(r)

	resp, err := h.punchService.ListPunches(r.Context(), filter)
	if err != nil {
		slog.Error("ListPunches service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, resp.Punches, &response.Meta{
		Page:       resp.Page,
		Limit:      resp.Limit,
		TotalItems: resp.TotalCount,
		TotalPages: resp.TotalPages,
	})
}

// ListForEmployee implements PunchHandler. The employee comes from the
// path; remaining filters still apply.
func (h *PunchHandlerImpl) ListForEmployee(w http.ResponseWriter, r *http.Request) {
	filter := punchFilterFromQuery(r)
	employeeID := chi.URLParam(r, "id")
	filter.EmployeeID = &employeeID

	resp, err := h.punchService.ListPunches(r.Context(), filter)
	if err != nil {
		slog.Error("ListPunches service error", "employee_id", employeeID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, resp.Punches, &response.Meta{
		Page:       resp.Page,
		Limit:      resp.Limit,
		TotalItems: resp.TotalCount,
		TotalPages: resp.TotalPages,
	})
}

// Edit implements PunchHandler.
func (h *PunchHandlerImpl) Edit(w http.ResponseWriter, r *http.Request) {
	var req punch.EditPunchRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("EditPunch decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	resp, err := h.punchService.EditPunch(r.Context(), req)
	if err != nil {
		slog.Error("EditPunch service error", "punch_id", req.ID, "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Punch corrected", "original_id", req.ID, "replacement_id", resp.ID)
	response.SuccessWithMessage(w, "Punch corrected", resp)
}

func punchFilterFromQuery(r *http.Request) punch.PunchFilter {
	q := r.URL.Query()

	var filter punch.PunchFilter

	if employeeID := q.Get("employee_id"); employeeID != "" {
		filter.EmployeeID = &employeeID
	}
	if punchType := q.Get("type"); punchType != "" {
		filter.Type = &punchType
	}
	if startDate := q.Get("start_date"); startDate != "" {
		filter.StartDate = &startDate
	}
	if endDate := q.Get("end_date"); endDate != "" {
		filter.EndDate = &endDate
	}
	if voidedStr := q.Get("voided"); voidedStr != "" {
		filter.Voided, _ = strconv.ParseBool(voidedStr)
	}

	filter.Page, _ = strconv.Atoi(q.Get("page"))
	filter.Limit, _ = strconv.Atoi(q.Get("limit"))

	return filter
}
