package adapter

import (
	"context"

	"catalog-backend/internal/command"
	"catalog-backend/internal/mapper"
	"catalog-backend/internal/repository"
	"catalog-backend/pkg/result"
)

// RoleAdapter exposes role persistence to the service layer in command
// shapes.
type RoleAdapter interface {
	GetRoles(ctx context.Context, search command.CollectionSearch) ([]command.Role, error)
	GetRoleByID(ctx context.Context, id string) result.Result[command.Role]
	GetRoleByName(ctx context.Context, name string) result.Result[command.Role]
	CreateRole(ctx context.Context, create command.CreateRole) result.Result[command.Role]
	UpdateRole(ctx context.Context, role command.Role) result.Result[command.Role]
	GrantRole(ctx context.Context, roleID, userID string) result.Status
	RevokeRole(ctx context.Context, roleID, userID string) result.Status
	SoftRemoveRole(ctx context.Context, id string) result.Status
	RemoveRole(ctx context.Context, id string) result.Status
	RemoveAllRoles(ctx context.Context) result.Status
}

type roleAdapter struct {
	roles repository.RoleRepository
}

// NewRoleAdapter returns a new instance of RoleAdapter.
func NewRoleAdapter(roles repository.RoleRepository) RoleAdapter {
	return &roleAdapter{roles: roles}
}

func (a *roleAdapter) GetRoles(ctx context.Context, search command.CollectionSearch) ([]command.Role, error) {
	roles, err := a.roles.List(ctx, search.Limit, search.Offset)
	if err != nil {
		return nil, err
	}

	commands := make([]command.Role, 0, len(roles))
	for _, r := range roles {
		commands = append(commands, mapper.RoleToCommand(r))
	}
	return commands, nil
}

func (a *roleAdapter) GetRoleByID(ctx context.Context, id string) result.Result[command.Role] {
	return rewrap(a.roles.GetByID(ctx, id), mapper.RoleToCommand)
}

func (a *roleAdapter) GetRoleByName(ctx context.Context, name string) result.Result[command.Role] {
	return rewrap(a.roles.GetByName(ctx, name), mapper.RoleToCommand)
}

func (a *roleAdapter) CreateRole(ctx context.Context, create command.CreateRole) result.Result[command.Role] {
	return rewrap(a.roles.Create(ctx, mapper.RoleCreateToModel(create)), mapper.RoleToCommand)
}

func (a *roleAdapter) UpdateRole(ctx context.Context, role command.Role) result.Result[command.Role] {
	return rewrap(a.roles.Update(ctx, mapper.RoleToModel(role)), mapper.RoleToCommand)
}

func (a *roleAdapter) GrantRole(ctx context.Context, roleID, userID string) result.Status {
	return a.roles.GrantRole(ctx, roleID, userID)
}

func (a *roleAdapter) RevokeRole(ctx context.Context, roleID, userID string) result.Status {
	return a.roles.RevokeRole(ctx, roleID, userID)
}

func (a *roleAdapter) SoftRemoveRole(ctx context.Context, id string) result.Status {
	return a.roles.SoftRemove(ctx, id)
}

func (a *roleAdapter) RemoveRole(ctx context.Context, id string) result.Status {
	return a.roles.Remove(ctx, id)
}

func (a *roleAdapter) RemoveAllRoles(ctx context.Context) result.Status {
	return a.roles.RemoveAll(ctx)
}
