package http

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/clockin-app/clockin-backend-go/internal/domain/report"
	"github.com/clockin-app/clockin-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Hours(w http.ResponseWriter, r *http.Request)
	Payroll(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

// Hours implements ReportHandler.
func (h *ReportHandlerImpl) Hours(w http.ResponseWriter, r *http.Request) {
	req := reportRequestFromQuery(r)

	if isExport(req.Format) {
		file, err := h.reportService.ExportHours(r.Context(), req)
		if err != nil {
			slog.Error("ExportHours service error", "format", req.Format, "error", err)
			response.HandleError(w, err)
			return
		}
		slog.Info("Hours report exported", "format", req.Format, "file", file.FileName)
		response.File(w, file.FileName, file.ContentType, file.Content)
		return
	}

	resp, err := h.reportService.HoursReport(r.Context(), req)
	if err != nil {
		slog.Error("HoursReport service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Payroll implements ReportHandler.
func (h *ReportHandlerImpl) Payroll(w http.ResponseWriter, r *http.Request) {
	req := reportRequestFromQuery(r)

	if isExport(req.Format) {
		file, err := h.reportService.ExportPayroll(r.Context(), req)
		if err != nil {
			slog.Error("ExportPayroll service error", "format", req.Format, "error", err)
			response.HandleError(w, err)
			return
		}
		slog.Info("Payroll report exported", "format", req.Format, "file", file.FileName)
		response.File(w, file.FileName, file.ContentType, file.Content)
		return
	}

	resp, err := h.reportService.PayrollReport(r.Context(), req)
	if err != nil {
		slog.Error("PayrollReport service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

func reportRequestFromQuery(r *http.Request) report.ReportRequest {
	q := r.URL.Query()

	req := report.ReportRequest{
		StartDate: q.Get("start_date"),
		EndDate:   q.Get("end_date"),
		Format:    strings.ToLower(q.Get("format")),
	}

	if employeeID := q.Get("employee_id"); employeeID != "" {
		req.EmployeeID = &employeeID
	}
	if officeID := q.Get("office_id"); officeID != "" {
		req.OfficeID = &officeID
	}
	if groupID := q.Get("group_id"); groupID != "" {
		req.GroupID = &groupID
	}

	return req
}

func isExport(format string) bool {
	return format == string(report.FormatCSV) || format == string(report.FormatExcel)
}
