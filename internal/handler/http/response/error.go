package response

import (
	"errors"
	"net/http"

	"github.com/clockin-app/clockin-backend-go/internal/domain/auth"
	"github.com/clockin-app/clockin-backend-go/internal/domain/employee"
	"github.com/clockin-app/clockin-backend-go/internal/domain/master/group"
	"github.com/clockin-app/clockin-backend-go/internal/domain/master/office"
	"github.com/clockin-app/clockin-backend-go/internal/domain/notification"
	"github.com/clockin-app/clockin-backend-go/internal/domain/punch"
	"github.com/clockin-app/clockin-backend-go/internal/domain/report"
	"github.com/clockin-app/clockin-backend-go/internal/domain/tenant"
	"github.com/clockin-app/clockin-backend-go/internal/domain/user"
	"github.com/clockin-app/clockin-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Auth domain errors
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")

	// User domain errors
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, "Insufficient permissions")

	// Tenant domain errors
	case errors.Is(err, tenant.ErrTenantNotFound):
		NotFound(w, "Tenant not found")
	case errors.Is(err, tenant.ErrSettingsNotFound):
		NotFound(w, "Tenant settings not found")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrPINExists):
		Conflict(w, "PIN already in use by another employee")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered in this tenant")
	case errors.Is(err, employee.ErrEmployeeInactive):
		Forbidden(w, "Employee is deactivated")

	// Office and group errors
	case errors.Is(err, office.ErrOfficeNotFound):
		NotFound(w, "Office not found")
	case errors.Is(err, office.ErrOfficeNameExists):
		Conflict(w, "Office with this name already exists")
	case errors.Is(err, group.ErrGroupNotFound):
		NotFound(w, "Group not found")
	case errors.Is(err, group.ErrGroupNameExists):
		Conflict(w, "Group with this name already exists")

	// Punch domain errors
	case errors.Is(err, punch.ErrPunchNotFound):
		NotFound(w, "Punch not found")
	case errors.Is(err, punch.ErrPunchVoided):
		Conflict(w, "Punch has already been voided")
	case errors.Is(err, punch.ErrTenantNotFound):
		NotFound(w, "Unknown kiosk")
	case errors.Is(err, punch.ErrInvalidKioskPIN):
		Unauthorized(w, "No active employee matches this PIN")
	case errors.Is(err, punch.ErrDoublePunch):
		Conflict(w, "An identical punch was recorded moments ago")
	case errors.Is(err, punch.ErrEmployeeNotActive):
		Forbidden(w, "Employee is deactivated")

	// Notification domain errors
	case errors.Is(err, notification.ErrNotificationNotFound):
		NotFound(w, "Notification not found")

	// Report domain errors
	case errors.Is(err, report.ErrNoEmployees):
		NotFound(w, "No employees match the report scope")
	case errors.Is(err, report.ErrSettingsNotFound):
		NotFound(w, "Tenant settings not found")
	case errors.Is(err, report.ErrUnsupportedFormat):
		BadRequest(w, "Unsupported report format", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
