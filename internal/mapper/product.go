package mapper

import (
	"catalog-backend/internal/command"
	"catalog-backend/internal/dto"
	"catalog-backend/internal/model"

	"github.com/google/uuid"
)

func ProductCreateToModel(c command.CreateProduct) model.Product {
	return model.Product{
		DisplayName: c.DisplayName,
		Price:       c.Price,
	}
}

func ProductToCommand(m model.Product) command.Product {
	return command.Product{
		ID:          m.ID.String(),
		DisplayName: m.DisplayName,
		TotalRating: m.TotalRating,
		Price:       m.Price,
		CreatedAt:   m.CreatedAt,
		IsDeleted:   m.IsDeleted,
	}
}

func ProductToModel(c command.Product) model.Product {
	id, _ := uuid.Parse(c.ID)
	return model.Product{
		ID:          id,
		DisplayName: c.DisplayName,
		TotalRating: c.TotalRating,
		Price:       c.Price,
		CreatedAt:   c.CreatedAt,
		IsDeleted:   c.IsDeleted,
	}
}

func ProductToDTO(c command.Product) dto.Product {
	return dto.Product{
		ID:          c.ID,
		DisplayName: c.DisplayName,
		TotalRating: c.TotalRating,
		Price:       c.Price,
		CreatedAt:   c.CreatedAt,
		IsDeleted:   c.IsDeleted,
	}
}

func ProductFromDTO(d dto.Product) command.Product {
	return command.Product{
		ID:          d.ID,
		DisplayName: d.DisplayName,
		TotalRating: d.TotalRating,
		Price:       d.Price,
		CreatedAt:   d.CreatedAt,
		IsDeleted:   d.IsDeleted,
	}
}

func ProductCreateFromDTO(d dto.CreateProduct) command.CreateProduct {
	return command.CreateProduct{
		DisplayName: d.DisplayName,
		Price:       d.Price,
	}
}
