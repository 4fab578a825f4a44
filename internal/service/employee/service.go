package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/clockin-app/clockin-backend-go/internal/domain/employee"
	"github.com/clockin-app/clockin-backend-go/internal/domain/notification"
)

type EmployeeServiceImpl struct {
	employeeRepository  employee.EmployeeRepository
	notificationService notification.NotificationService
}

func NewEmployeeService(employeeRepository employee.EmployeeRepository, notificationService notification.NotificationService) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepository:  employeeRepository,
		notificationService: notificationService,
	}
}

// CreateEmployee creates a new employee with a hashed kiosk PIN
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	tenantID, err := tenantIDFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if err := s.ensureUniquePIN(ctx, tenantID, req.PIN, ""); err != nil {
		return employee.EmployeeResponse{}, err
	}

	pinHash, err := bcrypt.GenerateFromPassword([]byte(req.PIN), bcrypt.DefaultCost)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to hash pin: %w", err)
	}

	entity := employee.Employee{
		TenantID:   tenantID,
		Name:       req.Name,
		Email:      req.Email,
		PINHash:    string(pinHash),
		HourlyRate: decimal.NewFromFloat(req.HourlyRate),
		OfficeID:   req.OfficeID,
		GroupID:    req.GroupID,
		Active:     true,
	}

	created, err := s.employeeRepository.Create(ctx, entity)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	_ = s.notificationService.Notify(ctx, tenantID, notification.TypeEmployeeCreated,
		"Employee added",
		fmt.Sprintf("%s can now punch in at the kiosk.", created.Name),
		map[string]any{"employee_id": created.ID},
	)

	return toEmployeeResponse(created), nil
}

// GetEmployee retrieves an employee by ID
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	tenantID, err := tenantIDFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepository.GetByID(ctx, id, tenantID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toEmployeeResponse(emp), nil
}

// ListEmployees retrieves employees matching the filter
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeesResponse, error) {
	if err := filter.Validate(); err != nil {
		return employee.ListEmployeesResponse{}, err
	}

	tenantID, err := tenantIDFromContext(ctx)
	if err != nil {
		return employee.ListEmployeesResponse{}, err
	}

	employees, totalCount, err := s.employeeRepository.List(ctx, filter, tenantID)
	if err != nil {
		return employee.ListEmployeesResponse{}, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, toEmployeeResponse(emp))
	}

	totalPages := int((totalCount + int64(filter.Limit) - 1) / int64(filter.Limit))

	return employee.ListEmployeesResponse{
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
		Employees:  responses,
	}, nil
}

// UpdateEmployee applies a partial update to an employee
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	tenantID, err := tenantIDFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepository.GetByID(ctx, req.ID, tenantID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.Name != nil {
		emp.Name = *req.Name
	}
	if req.Email != nil {
		emp.Email = req.Email
	}
	if req.PIN != nil {
		if err := s.ensureUniquePIN(ctx, tenantID, *req.PIN, emp.ID); err != nil {
			return employee.EmployeeResponse{}, err
		}
		pinHash, err := bcrypt.GenerateFromPassword([]byte(*req.PIN), bcrypt.DefaultCost)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("failed to hash pin: %w", err)
		}
		emp.PINHash = string(pinHash)
	}
	if req.HourlyRate != nil {
		emp.HourlyRate = decimal.NewFromFloat(*req.HourlyRate)
	}
	if req.OfficeID != nil {
		emp.OfficeID = req.OfficeID
	}
	if req.GroupID != nil {
		emp.GroupID = req.GroupID
	}
	if req.Active != nil {
		emp.Active = *req.Active
	}

	if err := s.employeeRepository.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, err
	}

	updated, err := s.employeeRepository.GetByID(ctx, req.ID, tenantID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toEmployeeResponse(updated), nil
}

// DeleteEmployee deactivates an employee. Punch history is preserved.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	tenantID, err := tenantIDFromContext(ctx)
	if err != nil {
		return err
	}

	return s.employeeRepository.Delete(ctx, id, tenantID)
}

// ensureUniquePIN rejects a PIN already held by another active employee
// of the tenant. Two employees sharing a PIN would make kiosk matches
// ambiguous.
func (s *EmployeeServiceImpl) ensureUniquePIN(ctx context.Context, tenantID, pin, excludeEmployeeID string) error {
	records, err := s.employeeRepository.ListActivePINs(ctx, tenantID)
	if err != nil {
		return err
	}

	for _, rec := range records {
		if rec.EmployeeID == excludeEmployeeID {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(rec.PINHash), []byte(pin)) == nil {
			return employee.ErrPINExists
		}
	}

	return nil
}

func toEmployeeResponse(emp employee.Employee) employee.EmployeeResponse {
	rate, _ := emp.HourlyRate.Float64()
	return employee.EmployeeResponse{
		ID:         emp.ID,
		Name:       emp.Name,
		Email:      emp.Email,
		HourlyRate: rate,
		OfficeID:   emp.OfficeID,
		OfficeName: emp.OfficeName,
		GroupID:    emp.GroupID,
		GroupName:  emp.GroupName,
		Active:     emp.Active,
		CreatedAt:  emp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  emp.UpdatedAt.Format(time.RFC3339),
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
