package adapter

import (
	"context"

	"catalog-backend/internal/command"
	"catalog-backend/internal/mapper"
	"catalog-backend/internal/repository"
	"catalog-backend/pkg/result"
)

// CategoryAdapter exposes category persistence to the service layer in
// command shapes.
type CategoryAdapter interface {
	GetCategories(ctx context.Context, search command.CollectionSearch) ([]command.Category, error)
	GetCategoryByID(ctx context.Context, id string) result.Result[command.Category]
	CreateCategory(ctx context.Context, create command.CreateCategory) result.Result[command.Category]
	UpdateCategory(ctx context.Context, category command.Category) result.Result[command.Category]
	SoftRemoveCategory(ctx context.Context, id string) result.Status
	RemoveCategory(ctx context.Context, id string) result.Status
	RemoveAllCategories(ctx context.Context) result.Status
}

type categoryAdapter struct {
	categories repository.CategoryRepository
}

// NewCategoryAdapter returns a new instance of CategoryAdapter.
func NewCategoryAdapter(categories repository.CategoryRepository) CategoryAdapter {
	return &categoryAdapter{categories: categories}
}

func (a *categoryAdapter) GetCategories(ctx context.Context, search command.CollectionSearch) ([]command.Category, error) {
	categories, err := a.categories.List(ctx, search.Limit, search.Offset)
	if err != nil {
		return nil, err
	}

	commands := make([]command.Category, 0, len(categories))
	for _, c := range categories {
		commands = append(commands, mapper.CategoryToCommand(c))
	}
	return commands, nil
}

func (a *categoryAdapter) GetCategoryByID(ctx context.Context, id string) result.Result[command.Category] {
	return rewrap(a.categories.GetByID(ctx, id), mapper.CategoryToCommand)
}

func (a *categoryAdapter) CreateCategory(ctx context.Context, create command.CreateCategory) result.Result[command.Category] {
	return rewrap(a.categories.Create(ctx, mapper.CategoryCreateToModel(create)), mapper.CategoryToCommand)
}

func (a *categoryAdapter) UpdateCategory(ctx context.Context, category command.Category) result.Result[command.Category] {
	return rewrap(a.categories.Update(ctx, mapper.CategoryToModel(category)), mapper.CategoryToCommand)
}

func (a *categoryAdapter) SoftRemoveCategory(ctx context.Context, id string) result.Status {
	return a.categories.SoftRemove(ctx, id)
}

func (a *categoryAdapter) RemoveCategory(ctx context.Context, id string) result.Status {
	return a.categories.Remove(ctx, id)
}

func (a *categoryAdapter) RemoveAllCategories(ctx context.Context) result.Status {
	return a.categories.RemoveAll(ctx)
}
