package repository

import (
	"context"
	"errors"

	"catalog-backend/internal/command"
	"catalog-backend/internal/model"
	"catalog-backend/pkg/result"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductRepository defines data access for Product entities. List accepts
// the validated product query built by the product-search guard.
type ProductRepository interface {
	List(ctx context.Context, query command.ProductQuery) ([]model.Product, error)
	GetByID(ctx context.Context, id string) result.Result[model.Product]
	Create(ctx context.Context, product model.Product) result.Result[model.Product]
	Update(ctx context.Context, product model.Product) result.Result[model.Product]
	SoftRemove(ctx context.Context, id string) result.Status
	Remove(ctx context.Context, id string) result.Status
	RemoveAll(ctx context.Context) result.Status
}

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository returns a new instance of ProductRepository.
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) List(ctx context.Context, query command.ProductQuery) ([]model.Product, error) {
	db := r.db.WithContext(ctx).Model(&model.Product{})

	if query.DisplayName != "" {
		db = db.Where("display_name ILIKE ?", "%"+query.DisplayName+"%")
	}
	if query.MinRating > 0 {
		db = db.Where("total_rating >= ?", query.MinRating)
	}
	if query.HasPriceRange {
		db = db.Where("price BETWEEN ? AND ?", query.PriceMin, query.PriceMax)
	}

	order := sortColumn(query.SortBy)
	if query.SortDesc {
		order += " desc"
	}

	var products []model.Product
	if err := db.Order(order).Offset(query.Offset).Limit(query.Limit).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) GetByID(ctx context.Context, id string) result.Result[model.Product] {
	productID, err := uuid.Parse(id)
	if err != nil {
		return result.Fail[model.Product](result.NotFound, missingProductMessage)
	}

	var product model.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return result.Fail[model.Product](result.NotFound, missingProductMessage)
		}
		return result.Fail[model.Product](result.InternalError, "")
	}
	return result.Ok(product)
}

func (r *productRepository) Create(ctx context.Context, product model.Product) result.Result[model.Product] {
	if err := r.db.WithContext(ctx).Create(&product).Error; err != nil {
		return result.Fail[model.Product](result.InternalError, "")
	}
	return result.Ok(product)
}

func (r *productRepository) Update(ctx context.Context, product model.Product) result.Result[model.Product] {
	res := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Where("id = ?", product.ID).
		Updates(map[string]interface{}{
			"display_name": product.DisplayName,
			"total_rating": product.TotalRating,
			"price":        product.Price,
		})
	if res.Error != nil {
		return result.Fail[model.Product](result.InternalError, "")
	}
	if res.RowsAffected == 0 {
		return result.Fail[model.Product](result.NotFound, missingProductMessage)
	}
	return r.GetByID(ctx, product.ID.String())
}

func (r *productRepository) SoftRemove(ctx context.Context, id string) result.Status {
	productID, err := uuid.Parse(id)
	if err != nil {
		return result.FailStatus(result.NotFound, missingProductMessage)
	}

	res := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Where("id = ? AND is_deleted = ?", productID, false).
		Update("is_deleted", true)
	if res.Error != nil {
		return result.FailStatus(result.InternalError, "")
	}
	if res.RowsAffected == 0 {
		return result.FailStatus(result.NotFound, missingProductMessage)
	}
	return result.Done()
}

func (r *productRepository) Remove(ctx context.Context, id string) result.Status {
	productID, err := uuid.Parse(id)
	if err != nil {
		return result.FailStatus(result.NotFound, missingProductMessage)
	}

	res := r.db.WithContext(ctx).Where("id = ?", productID).Delete(&model.Product{})
	if res.Error != nil {
		return result.FailStatus(result.InternalError, "")
	}
	if res.RowsAffected == 0 {
		return result.FailStatus(result.NotFound, missingProductMessage)
	}
	return result.Done()
}

func (r *productRepository) RemoveAll(ctx context.Context) result.Status {
	res := r.db.WithContext(ctx).Where("1 = 1").Delete(&model.Product{})
	if res.Error != nil {
		return result.FailStatus(result.InternalError, "")
	}
	if res.RowsAffected == 0 {
		return result.FailStatus(result.NotFound, "")
	}
	return result.Done()
}

func sortColumn(sortBy string) string {
	switch sortBy {
	case command.SortByDisplayName:
		return "display_name"
	case command.SortByPrice:
		return "price"
	case command.SortByTotalRating:
		return "total_rating"
	default:
		return "created_at"
	}
}
