package adapter

import (
	"context"

	"catalog-backend/internal/command"
	"catalog-backend/internal/mapper"
	"catalog-backend/internal/repository"
	"catalog-backend/pkg/result"
)

// ProductAdapter exposes product persistence to the service layer in command
// shapes.
type ProductAdapter interface {
	GetProducts(ctx context.Context, query command.ProductQuery) ([]command.Product, error)
	GetProductByID(ctx context.Context, id string) result.Result[command.Product]
	CreateProduct(ctx context.Context, create command.CreateProduct) result.Result[command.Product]
	UpdateProduct(ctx context.Context, product command.Product) result.Result[command.Product]
	SoftRemoveProduct(ctx context.Context, id string) result.Status
	RemoveProduct(ctx context.Context, id string) result.Status
	RemoveAllProducts(ctx context.Context) result.Status
}

type productAdapter struct {
	products repository.ProductRepository
}

// NewProductAdapter returns a new instance of ProductAdapter.
func NewProductAdapter(products repository.ProductRepository) ProductAdapter {
	return &productAdapter{products: products}
}

func (a *productAdapter) GetProducts(ctx context.Context, query command.ProductQuery) ([]command.Product, error) {
	products, err := a.products.List(ctx, query)
	if err != nil {
		return nil, err
	}

	commands := make([]command.Product, 0, len(products))
	for _, p := range products {
		commands = append(commands, mapper.ProductToCommand(p))
	}
	return commands, nil
}

func (a *productAdapter) GetProductByID(ctx context.Context, id string) result.Result[command.Product] {
	return rewrap(a.products.GetByID(ctx, id), mapper.ProductToCommand)
}

func (a *productAdapter) CreateProduct(ctx context.Context, create command.CreateProduct) result.Result[command.Product] {
	return rewrap(a.products.Create(ctx, mapper.ProductCreateToModel(create)), mapper.ProductToCommand)
}

func (a *productAdapter) UpdateProduct(ctx context.Context, product command.Product) result.Result[command.Product] {
	return rewrap(a.products.Update(ctx, mapper.ProductToModel(product)), mapper.ProductToCommand)
}

func (a *productAdapter) SoftRemoveProduct(ctx context.Context, id string) result.Status {
	return a.products.SoftRemove(ctx, id)
}

func (a *productAdapter) RemoveProduct(ctx context.Context, id string) result.Status {
	return a.products.Remove(ctx, id)
}

func (a *productAdapter) RemoveAllProducts(ctx context.Context) result.Status {
	return a.products.RemoveAll(ctx)
}
