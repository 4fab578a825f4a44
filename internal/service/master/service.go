package master

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"

	"github.com/clockin-app/clockin-backend-go/internal/domain/master/group"
	"github.com/clockin-app/clockin-backend-go/internal/domain/master/office"
)

// MasterService defines business logic for offices and groups
type MasterService interface {
	// Office operations
	CreateOffice(ctx context.Context, req office.CreateOfficeRequest) (office.OfficeResponse, error)
	GetOffice(ctx context.Context, id string) (office.OfficeResponse, error)
	ListOffices(ctx context.Context) ([]office.OfficeResponse, error)
	UpdateOffice(ctx context.Context, req office.UpdateOfficeRequest) error
	DeleteOffice(ctx context.Context, id string) error

	// Group operations
	CreateGroup(ctx context.Context, req group.CreateGroupRequest) (group.GroupResponse, error)
	GetGroup(ctx context.Context, id string) (group.GroupResponse, error)
	ListGroups(ctx context.Context) ([]group.GroupResponse, error)
	UpdateGroup(ctx context.Context, req group.UpdateGroupRequest) error
	DeleteGroup(ctx context.Context, id string) error
}

type masterServiceImpl struct {
	officeRepo office.OfficeRepository
	groupRepo  group.GroupRepository
}

func NewMasterService(officeRepo office.OfficeRepository, groupRepo group.GroupRepository) MasterService {
	return &masterServiceImpl{
		officeRepo: officeRepo,
		groupRepo:  groupRepo,
	}
}

// ==================== OFFICE OPERATIONS ====================

func (s *masterServiceImpl) CreateOffice(ctx context.Context, req office.CreateOfficeRequest) (office.OfficeResponse, error) {
	if err := req.Validate(); err != nil {
		return office.OfficeResponse{}, err
	}

	tenantID, err := tenantIDFromContext(ctx)
	if err != nil {
		return office.OfficeResponse{}, err
	}

	entity := office.Office{
		TenantID: tenantID,
		Name:     req.Name,
		Address:  req.Address,
		Timezone: req.Timezone,
	}

	created, err := s.officeRepo.Create(ctx, entity)
	if err != nil {
		return office.OfficeResponse{}, err
	}

	return toOfficeResponse(created), nil
}

func (s *masterServiceImpl) GetOffice(ctx context.Context, id string) (office.OfficeResponse, error) {
	tenantID, err := tenantIDFromContext(ctx)
	if err != nil {
		return office.OfficeResponse{}, err
	}

	entity, err := s.officeRepo.GetByID(ctx, id, tenantID)
	if err != nil {
		return office.OfficeResponse{}, err
	}

	return toOfficeResponse(entity), nil
}

func (s *masterServiceImpl) ListOffices(ctx context.Context) ([]office.OfficeResponse, error) {
	tenantID, err := tenantIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	offices, err := s.officeRepo.GetByTenantID(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	responses := make([]office.OfficeResponse, 0, len(offices))
	for _, o := range offices {
		responses = append(responses, toOfficeResponse(o))
	}

	return responses, nil
}

func (s *masterServiceImpl) UpdateOffice(ctx context.Context, req office.UpdateOfficeRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	tenantID, err := tenantIDFromContext(ctx)
	if err != nil {
		return err
	}
	req.TenantID = tenantID

	return s.officeRepo.Update(ctx, req)
}

func (s *masterServiceImpl) DeleteOffice(ctx context.Context, id string) error {
	tenantID, err := tenantIDFromContext(ctx)
	if err != nil {
		return err
	}

	return s.officeRepo.Delete(ctx, id, tenantID)
}

// ==================== GROUP OPERATIONS ====================

func (s *masterServiceImpl) CreateGroup(ctx context.Context, req group.CreateGroupRequest) (group.GroupResponse, error) {
	if err := req.Validate(); err != nil {
		return group.GroupResponse{}, err
	}

	tenantID, err := tenantIDFromContext(ctx)
	if err != nil {
		return group.GroupResponse{}, err
	}

	entity := group.Group{
		TenantID:    tenantID,
		Name:        req.Name,
		Description: req.Description,
	}

	created, err := s.groupRepo.Create(ctx, entity)
	if err != nil {
		return group.GroupResponse{}, err
	}

	return toGroupResponse(created), nil
}

func (s *masterServiceImpl) GetGroup(ctx context.Context, id string) (group.GroupResponse, error) {
	tenantID, err := tenantIDFromContext(ctx)
	if err != nil {
		return group.GroupResponse{}, err
	}

	entity, err := s.groupRepo.GetByID(ctx, id, tenantID)
	if err != nil {
		return group.GroupResponse{}, err
	}

	return toGroupResponse(entity), nil
}

func (s *masterServiceImpl) ListGroups(ctx context.Context) ([]group.GroupResponse, error) {
	tenantID, err := tenantIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	groups, err := s.groupRepo.GetByTenantID(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	responses := make([]group.GroupResponse, 0, len(groups))
	for _, g := range groups {
		responses = append(responses, toGroupResponse(g))
	}

	return responses, nil
}

func (s *masterServiceImpl) UpdateGroup(ctx context.Context, req group.UpdateGroupRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	tenantID, err := tenantIDFromContext(ctx)
	if err != nil {
		return err
	}
	req.TenantID = tenantID

	return s.groupRepo.Update(ctx, req)
}

func (s *masterServiceImpl) DeleteGroup(ctx context.Context, id string) error {
	tenantID, err := tenantIDFromContext(ctx)
	if err != nil {
		return err
	}

	return s.groupRepo.Delete(ctx, id, tenantID)
}

func toOfficeResponse(o office.Office) office.OfficeResponse {
	return office.OfficeResponse{
		ID:       o.ID,
		Name:     o.Name,
		Address:  o.Address,
		Timezone: o.Timezone,
	}
}

func toGroupResponse(g group.Group) group.GroupResponse {
	return group.GroupResponse{
		ID:          g.ID,
		Name:        g.Name,
		Description: g.Description,
		MemberCount: g.MemberCount,
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
