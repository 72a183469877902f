package mapper

import (
	"catalog-backend/internal/command"
	"catalog-backend/internal/dto"
	"catalog-backend/internal/model"

	"github.com/google/uuid"
)

// UserCreateToModel builds a new user document from a create command. The
// role reference is resolved by the repository, not here.
func UserCreateToModel(c command.CreateUser) model.User {
	return model.User{
		UserName:  c.UserName,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Password:  c.Password,
	}
}

func UserToCommand(m model.User) command.User {
	roles := make([]command.Role, 0, len(m.Roles))
	for _, r := range m.Roles {
		roles = append(roles, RoleToCommand(r))
	}
	return command.User{
		ID:        m.ID.String(),
		UserName:  m.UserName,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Roles:     roles,
		CreatedAt: m.CreatedAt,
		IsDeleted: m.IsDeleted,
	}
}

// UserToCredentials keeps the password hash, unlike UserToCommand. Only
// the sign-in path should see it.
func UserToCredentials(m model.User) command.Credentials {
	role := ""
	if len(m.Roles) > 0 {
		role = m.Roles[0].DisplayName
	}
	return command.Credentials{
		UserID:       m.ID.String(),
		UserName:     m.UserName,
		PasswordHash: m.Password,
		Role:         role,
	}
}

func UserToModel(c command.User) model.User {
	id, _ := uuid.Parse(c.ID)
	roles := make([]model.Role, 0, len(c.Roles))
	for _, r := range c.Roles {
		roles = append(roles, RoleToModel(r))
	}
	return model.User{
		ID:        id,
		UserName:  c.UserName,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Roles:     roles,
		CreatedAt: c.CreatedAt,
		IsDeleted: c.IsDeleted,
	}
}

func UserToDTO(c command.User) dto.User {
	roles := make([]dto.Role, 0, len(c.Roles))
	for _, r := range c.Roles {
		roles = append(roles, RoleToDTO(r))
	}
	return dto.User{
		ID:        c.ID,
		UserName:  c.UserName,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Roles:     roles,
		CreatedAt: c.CreatedAt,
		IsDeleted: c.IsDeleted,
	}
}

func UserFromDTO(d dto.User) command.User {
	roles := make([]command.Role, 0, len(d.Roles))
	for _, r := range d.Roles {
		roles = append(roles, RoleFromDTO(r))
	}
	return command.User{
		ID:        d.ID,
		UserName:  d.UserName,
		FirstName: d.FirstName,
		LastName:  d.LastName,
		Roles:     roles,
		CreatedAt: d.CreatedAt,
		IsDeleted: d.IsDeleted,
	}
}

func UserCreateFromDTO(d dto.CreateUser) command.CreateUser {
	return command.CreateUser{
		UserName:  d.UserName,
		FirstName: d.FirstName,
		LastName:  d.LastName,
		Password:  d.Password,
		RoleID:    d.RoleID,
	}
}
