package repository

import (
	"context"
	"errors"

	"catalog-backend/internal/model"
	"catalog-backend/pkg/result"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryRepository defines data access for Category entities.
type CategoryRepository interface {
	List(ctx context.Context, limit, offset int) ([]model.Category, error)
	GetByID(ctx context.Context, id string) result.Result[model.Category]
	Create(ctx context.Context, category model.Category) result.Result[model.Category]
	Update(ctx context.Context, category model.Category) result.Result[model.Category]
	SoftRemove(ctx context.Context, id string) result.Status
	Remove(ctx context.Context, id string) result.Status
	RemoveAll(ctx context.Context) result.Status
}

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository returns a new instance of CategoryRepository.
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) List(ctx context.Context, limit, offset int) ([]model.Category, error) {
	var categories []model.Category
	if err := r.db.WithContext(ctx).Offset(offset).Limit(limit).Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) GetByID(ctx context.Context, id string) result.Result[model.Category] {
	categoryID, err := uuid.Parse(id)
	if err != nil {
		return result.Fail[model.Category](result.NotFound, missingCategoryMessage)
	}

	var category model.Category
	if err := r.db.WithContext(ctx).First(&category, "id = ?", categoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return result.Fail[model.Category](result.NotFound, missingCategoryMessage)
		}
		return result.Fail[model.Category](result.InternalError, "")
	}
	return result.Ok(category)
}

func (r *categoryRepository) Create(ctx context.Context, category model.Category) result.Result[model.Category] {
	if err := r.db.WithContext(ctx).Create(&category).Error; err != nil {
		return result.Fail[model.Category](result.InternalError, "")
	}
	return result.Ok(category)
}

func (r *categoryRepository) Update(ctx context.Context, category model.Category) result.Result[model.Category] {
	res := r.db.WithContext(ctx).
		Model(&model.Category{}).
		Where("id = ?", category.ID).
		Update("display_name", category.DisplayName)
	if res.Error != nil {
		return result.Fail[model.Category](result.InternalError, "")
	}
	if res.RowsAffected == 0 {
		return result.Fail[model.Category](result.NotFound, missingCategoryMessage)
	}
	return r.GetByID(ctx, category.ID.String())
}

func (r *categoryRepository) SoftRemove(ctx context.Context, id string) result.Status {
	categoryID, err := uuid.Parse(id)
	if err != nil {
		return result.FailStatus(result.NotFound, missingCategoryMessage)
	}

	res := r.db.WithContext(ctx).
		Model(&model.Category{}).
		Where("id = ? AND is_deleted = ?", categoryID, false).
		Update("is_deleted", true)
	if res.Error != nil {
		return result.FailStatus(result.InternalError, "")
	}
	if res.RowsAffected == 0 {
		return result.FailStatus(result.NotFound, missingCategoryMessage)
	}
	return result.Done()
}

func (r *categoryRepository) Remove(ctx context.Context, id string) result.Status {
	categoryID, err := uuid.Parse(id)
	if err != nil {
		return result.FailStatus(result.NotFound, missingCategoryMessage)
	}

	res := r.db.WithContext(ctx).Where("id = ?", categoryID).Delete(&model.Category{})
	if res.Error != nil {
		return result.FailStatus(result.InternalError, "")
	}
	if res.RowsAffected == 0 {
		return result.FailStatus(result.NotFound, missingCategoryMessage)
	}
	return result.Done()
}

func (r *categoryRepository) RemoveAll(ctx context.Context) result.Status {
	res := r.db.WithContext(ctx).Where("1 = 1").Delete(&model.Category{})
	if res.Error != nil {
		return result.FailStatus(result.InternalError, "")
	}
	if res.RowsAffected == 0 {
		return result.FailStatus(result.NotFound, "")
	}
	return result.Done()
}
