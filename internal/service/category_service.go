package service

import (
	"context"

	"catalog-backend/internal/adapter"
	"catalog-backend/internal/command"
	"catalog-backend/internal/dto"
	"catalog-backend/internal/mapper"
	"catalog-backend/pkg/result"
)

// CategoryService is the business-facing category API consumed by handlers.
type CategoryService interface {
	GetCategories(ctx context.Context, search command.CollectionSearch) ([]dto.Category, error)
	GetCategoryByID(ctx context.Context, id string) (dto.Category, error)
	CreateCategory(ctx context.Context, create dto.CreateCategory) (dto.Category, error)
	UpdateCategory(ctx context.Context, category dto.Category) (dto.Category, error)
	SoftRemoveCategory(ctx context.Context, id string) error
	RemoveCategory(ctx context.Context, id string) error
}

type categoryService struct {
	categories adapter.CategoryAdapter
	events     EventPublisher
}

// NewCategoryService returns a new instance of CategoryService.
func NewCategoryService(categories adapter.CategoryAdapter, events EventPublisher) CategoryService {
	return &categoryService{categories: categories, events: events}
}

func (s *categoryService) GetCategories(ctx context.Context, search command.CollectionSearch) ([]dto.Category, error) {
	categories, err := s.categories.GetCategories(ctx, search)
	if err != nil {
		return nil, &result.Error{Type: result.InternalError}
	}

	dtos := make([]dto.Category, 0, len(categories))
	for _, c := range categories {
		dtos = append(dtos, mapper.CategoryToDTO(c))
	}
	return dtos, nil
}

func (s *categoryService) GetCategoryByID(ctx context.Context, id string) (dto.Category, error) {
	res := s.categories.GetCategoryByID(ctx, id)
	if err := res.AsError(); err != nil {
		return dto.Category{}, err
	}
	return mapper.CategoryToDTO(res.Data), nil
}

func (s *categoryService) CreateCategory(ctx context.Context, create dto.CreateCategory) (dto.Category, error) {
	res := s.categories.CreateCategory(ctx, mapper.CategoryCreateFromDTO(create))
	if err := res.AsError(); err != nil {
		return dto.Category{}, err
	}

	s.publish("created", res.Data.ID)
	return mapper.CategoryToDTO(res.Data), nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, category dto.Category) (dto.Category, error) {
	res := s.categories.UpdateCategory(ctx, mapper.CategoryFromDTO(category))
	if err := res.AsError(); err != nil {
		return dto.Category{}, err
	}

	s.publish("updated", res.Data.ID)
	return mapper.CategoryToDTO(res.Data), nil
}

func (s *categoryService) SoftRemoveCategory(ctx context.Context, id string) error {
	if err := s.categories.SoftRemoveCategory(ctx, id).AsError(); err != nil {
		return err
	}
	s.publish("softRemoved", id)
	return nil
}

func (s *categoryService) RemoveCategory(ctx context.Context, id string) error {
	if err := s.categories.RemoveCategory(ctx, id).AsError(); err != nil {
		return err
	}
	s.publish("removed", id)
	return nil
}

func (s *categoryService) publish(action, id string) {
	if s.events != nil {
		s.events.Publish("category", action, id)
	}
}
