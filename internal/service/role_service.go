package service

import (
	"context"

	"catalog-backend/internal/adapter"
	"catalog-backend/internal/command"
	"catalog-backend/internal/dto"
	"catalog-backend/internal/mapper"
	"catalog-backend/pkg/result"
)

// RoleService is the business-facing role API consumed by handlers. Every
// non-success adapter outcome surfaces as a *result.Error.
type RoleService interface {
	GetRoles(ctx context.Context, search command.CollectionSearch) ([]dto.Role, error)
	GetRoleByID(ctx context.Context, id string) (dto.Role, error)
	CreateRole(ctx context.Context, create dto.CreateRole) (dto.Role, error)
	UpdateRole(ctx context.Context, role dto.Role) (dto.Role, error)
	GrantRole(ctx context.Context, manage dto.RoleManage) error
	RevokeRole(ctx context.Context, manage dto.RoleManage) error
	SoftRemoveRole(ctx context.Context, id string) error
	RemoveRole(ctx context.Context, id string) error
}

type roleService struct {
	roles adapter.RoleAdapter
}

// NewRoleService returns a new instance of RoleService.
func NewRoleService(roles adapter.RoleAdapter) RoleService {
	return &roleService{roles: roles}
}

func (s *roleService) GetRoles(ctx context.Context, search command.CollectionSearch) ([]dto.Role, error) {
	roles, err := s.roles.GetRoles(ctx, search)
	if err != nil {
		return nil, &result.Error{Type: result.InternalError}
	}

	dtos := make([]dto.Role, 0, len(roles))
	for _, r := range roles {
		dtos = append(dtos, mapper.RoleToDTO(r))
	}
	return dtos, nil
}

func (s *roleService) GetRoleByID(ctx context.Context, id string) (dto.Role, error) {
	res := s.roles.GetRoleByID(ctx, id)
	if err := res.AsError(); err != nil {
		return dto.Role{}, err
	}
	return mapper.RoleToDTO(res.Data), nil
}

func (s *roleService) CreateRole(ctx context.Context, create dto.CreateRole) (dto.Role, error) {
	res := s.roles.CreateRole(ctx, mapper.RoleCreateFromDTO(create))
	if err := res.AsError(); err != nil {
		return dto.Role{}, err
	}
	return mapper.RoleToDTO(res.Data), nil
}

func (s *roleService) UpdateRole(ctx context.Context, role dto.Role) (dto.Role, error) {
	res := s.roles.UpdateRole(ctx, mapper.RoleFromDTO(role))
	if err := res.AsError(); err != nil {
		return dto.Role{}, err
	}
	return mapper.RoleToDTO(res.Data), nil
}

func (s *roleService) GrantRole(ctx context.Context, manage dto.RoleManage) error {
	return s.roles.GrantRole(ctx, manage.RoleID, manage.UserID).AsError()
}

func (s *roleService) RevokeRole(ctx context.Context, manage dto.RoleManage) error {
	return s.roles.RevokeRole(ctx, manage.RoleID, manage.UserID).AsError()
}

func (s *roleService) SoftRemoveRole(ctx context.Context, id string) error {
	return s.roles.SoftRemoveRole(ctx, id).AsError()
}

func (s *roleService) RemoveRole(ctx context.Context, id string) error {
	return s.roles.RemoveRole(ctx, id).AsError()
}
