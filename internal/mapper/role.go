// Package mapper holds the pure field-transcoding functions between the
// persisted shape (model), the internal shape (command) and the wire shape
// (dto). Mappers perform no validation and no I/O; composing XToModel after
// XToCommand preserves every externally visible model field.
package mapper

import (
	"catalog-backend/internal/command"
	"catalog-backend/internal/dto"
	"catalog-backend/internal/model"

	"github.com/google/uuid"
)

// RoleCreateToModel builds a new role document from a create command. The id
// and timestamps are assigned by the persistence layer.
func RoleCreateToModel(c command.CreateRole) model.Role {
	return model.Role{
		DisplayName: c.DisplayName,
	}
}

func RoleToCommand(m model.Role) command.Role {
	return command.Role{
		ID:          m.ID.String(),
		DisplayName: m.DisplayName,
		CreatedAt:   m.CreatedAt,
		IsDeleted:   m.IsDeleted,
	}
}

func RoleToModel(c command.Role) model.Role {
	// A malformed id parses to the zero uuid, which matches no row and
	// surfaces as NotFound downstream.
	id, _ := uuid.Parse(c.ID)
	return model.Role{
		ID:          id,
		DisplayName: c.DisplayName,
		CreatedAt:   c.CreatedAt,
		IsDeleted:   c.IsDeleted,
	}
}

func RoleToDTO(c command.Role) dto.Role {
	return dto.Role{
		ID:          c.ID,
		DisplayName: c.DisplayName,
		CreatedAt:   c.CreatedAt,
		IsDeleted:   c.IsDeleted,
	}
}

func RoleFromDTO(d dto.Role) command.Role {
	return command.Role{
		ID:          d.ID,
		DisplayName: d.DisplayName,
		CreatedAt:   d.CreatedAt,
		IsDeleted:   d.IsDeleted,
	}
}

func RoleCreateFromDTO(d dto.CreateRole) command.CreateRole {
	return command.CreateRole{
		DisplayName: d.DisplayName,
	}
}
