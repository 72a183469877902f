package mapper

import (
	"catalog-backend/internal/command"
	"catalog-backend/internal/dto"
	"catalog-backend/internal/model"

	"github.com/google/uuid"
)

func CategoryCreateToModel(c command.CreateCategory) model.Category {
	return model.Category{
		DisplayName: c.DisplayName,
	}
}

func CategoryToCommand(m model.Category) command.Category {
	return command.Category{
		ID:          m.ID.String(),
		DisplayName: m.DisplayName,
		CreatedAt:   m.CreatedAt,
		IsDeleted:   m.IsDeleted,
	}
}

func CategoryToModel(c command.Category) model.Category {
	id, _ := uuid.Parse(c.ID)
	return model.Category{
		ID:          id,
		DisplayName: c.DisplayName,
		CreatedAt:   c.CreatedAt,
		IsDeleted:   c.IsDeleted,
	}
}

func CategoryToDTO(c command.Category) dto.Category {
	return dto.Category{
		ID:          c.ID,
		DisplayName: c.DisplayName,
		CreatedAt:   c.CreatedAt,
		IsDeleted:   c.IsDeleted,
	}
}

func CategoryFromDTO(d dto.Category) command.Category {
	return command.Category{
		ID:          d.ID,
		DisplayName: d.DisplayName,
		CreatedAt:   d.CreatedAt,
		IsDeleted:   d.IsDeleted,
	}
}

func CategoryCreateFromDTO(d dto.CreateCategory) command.CreateCategory {
	return command.CreateCategory{
		DisplayName: d.DisplayName,
	}
}
