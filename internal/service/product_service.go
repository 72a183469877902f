package service

import (
	"context"

	"catalog-backend/internal/adapter"
	"catalog-backend/internal/command"
	"catalog-backend/internal/dto"
	"catalog-backend/internal/mapper"
	"catalog-backend/pkg/result"
)

// EventPublisher receives catalog change notifications after successful
// mutations. The websocket hub implements it; a nil publisher disables
// publishing.
type EventPublisher interface {
	Publish(entity, action, id string)
}

// ProductService is the business-facing product API consumed by handlers.
type ProductService interface {
	GetProducts(ctx context.Context, query command.ProductQuery) ([]dto.Product, error)
	GetProductByID(ctx context.Context, id string) (dto.Product, error)
	CreateProduct(ctx context.Context, create dto.CreateProduct) (dto.Product, error)
	UpdateProduct(ctx context.Context, product dto.Product) (dto.Product, error)
	SoftRemoveProduct(ctx context.Context, id string) error
	RemoveProduct(ctx context.Context, id string) error
}

type productService struct {
	products adapter.ProductAdapter
	events   EventPublisher
}

// NewProductService returns a new instance of ProductService.
func NewProductService(products adapter.ProductAdapter, events EventPublisher) ProductService {
	return &productService{products: products, events: events}
}

func (s *productService) GetProducts(ctx context.Context, query command.ProductQuery) ([]dto.Product, error) {
	products, err := s.products.GetProducts(ctx, query)
	if err != nil {
		return nil, &result.Error{Type: result.InternalError}
	}

	dtos := make([]dto.Product, 0, len(products))
	for _, p := range products {
		dtos = append(dtos, mapper.ProductToDTO(p))
	}
	return dtos, nil
}

func (s *productService) GetProductByID(ctx context.Context, id string) (dto.Product, error) {
	res := s.products.GetProductByID(ctx, id)
	if err := res.AsError(); err != nil {
		return dto.Product{}, err
	}
	return mapper.ProductToDTO(res.Data), nil
}

func (s *productService) CreateProduct(ctx context.Context, create dto.CreateProduct) (dto.Product, error) {
	res := s.products.CreateProduct(ctx, mapper.ProductCreateFromDTO(create))
	if err := res.AsError(); err != nil {
		return dto.Product{}, err
	}

	s.publish("created", res.Data.ID)
	return mapper.ProductToDTO(res.Data), nil
}

func (s *productService) UpdateProduct(ctx context.Context, product dto.Product) (dto.Product, error) {
	res := s.products.UpdateProduct(ctx, mapper.ProductFromDTO(product))
	if err := res.AsError(); err != nil {
		return dto.Product{}, err
	}

	s.publish("updated", res.Data.ID)
	return mapper.ProductToDTO(res.Data), nil
}

func (s *productService) SoftRemoveProduct(ctx context.Context, id string) error {
	if err := s.products.SoftRemoveProduct(ctx, id).AsError(); err != nil {
		return err
	}
	s.publish("softRemoved", id)
	return nil
}

func (s *productService) RemoveProduct(ctx context.Context, id string) error {
	if err := s.products.RemoveProduct(ctx, id).AsError(); err != nil {
		return err
	}
	s.publish("removed", id)
	return nil
}

func (s *productService) publish(action, id string) {
	if s.events != nil {
		s.events.Publish("product", action, id)
	}
}
