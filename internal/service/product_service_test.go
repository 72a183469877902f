package service

import (
	"context"
	"testing"

	"catalog-backend/internal/command"
	"catalog-backend/internal/dto"
	"catalog-backend/pkg/result"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProductAdapter struct {
	products map[string]command.Product
}

func newFakeProductAdapter() *fakeProductAdapter {
	return &fakeProductAdapter{products: map[string]command.Product{}}
}

func (f *fakeProductAdapter) GetProducts(ctx context.Context, query command.ProductQuery) ([]command.Product, error) {
	out := make([]command.Product, 0, len(f.products))
	for _, p := range f.products {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProductAdapter) GetProductByID(ctx context.Context, id string) result.Result[command.Product] {
	if p, ok := f.products[id]; ok {
		return result.Ok(p)
	}
	return result.Fail[command.Product](result.NotFound, "Product entity is missing")
}

func (f *fakeProductAdapter) CreateProduct(ctx context.Context, create command.CreateProduct) result.Result[command.Product] {
	p := command.Product{ID: "p-new", DisplayName: create.DisplayName, Price: create.Price}
	f.products[p.ID] = p
	return result.Ok(p)
}

func (f *fakeProductAdapter) UpdateProduct(ctx context.Context, product command.Product) result.Result[command.Product] {
	if _, ok := f.products[product.ID]; !ok {
		return result.Fail[command.Product](result.NotFound, "Product entity is missing")
	}
	f.products[product.ID] = product
	return result.Ok(product)
}

func (f *fakeProductAdapter) SoftRemoveProduct(ctx context.Context, id string) result.Status {
	if _, ok := f.products[id]; !ok {
		return result.FailStatus(result.NotFound, "Product entity is missing")
	}
	return result.Done()
}

func (f *fakeProductAdapter) RemoveProduct(ctx context.Context, id string) result.Status {
	if _, ok := f.products[id]; !ok {
		return result.FailStatus(result.NotFound, "Product entity is missing")
	}
	delete(f.products, id)
	return result.Done()
}

func (f *fakeProductAdapter) RemoveAllProducts(ctx context.Context) result.Status {
	f.products = map[string]command.Product{}
	return result.Done()
}

type recordingPublisher struct {
	events []string
}

func (r *recordingPublisher) Publish(entity, action, id string) {
	r.events = append(r.events, entity+"/"+action+"/"+id)
}

func TestProductService_CreatePublishesEvent(t *testing.T) {
	events := &recordingPublisher{}
	svc := NewProductService(newFakeProductAdapter(), events)

	product, err := svc.CreateProduct(context.Background(), dto.CreateProduct{
		DisplayName: "Keyboard",
		Price:       decimal.NewFromInt(50),
	})
	require.NoError(t, err)
	assert.Equal(t, "Keyboard", product.DisplayName)
	assert.Equal(t, []string{"product/created/p-new"}, events.events)
}

func TestProductService_FailedMutationDoesNotPublish(t *testing.T) {
	events := &recordingPublisher{}
	svc := NewProductService(newFakeProductAdapter(), events)

	_, err := svc.UpdateProduct(context.Background(), dto.Product{ID: "missing", DisplayName: "x"})
	assert.Error(t, err)

	err = svc.SoftRemoveProduct(context.Background(), "missing")
	assert.Error(t, err)

	assert.Empty(t, events.events)
}

func TestProductService_NilPublisher(t *testing.T) {
	svc := NewProductService(newFakeProductAdapter(), nil)

	_, err := svc.CreateProduct(context.Background(), dto.CreateProduct{
		DisplayName: "Mouse",
		Price:       decimal.NewFromInt(20),
	})
	assert.NoError(t, err)
}

func TestProductService_GetProductByID_NotFound(t *testing.T) {
	svc := NewProductService(newFakeProductAdapter(), nil)

	_, err := svc.GetProductByID(context.Background(), "nope")

	var resErr *result.Error
	require.ErrorAs(t, err, &resErr)
	assert.Equal(t, result.NotFound, resErr.Type)
	assert.Equal(t, "Product entity is missing", resErr.Message)
}
