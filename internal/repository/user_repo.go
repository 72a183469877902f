package repository

import (
	"context"
	"errors"

	"catalog-backend/internal/model"
	"catalog-backend/pkg/result"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepository defines data access for User entities. Create validates an
// optional role reference before insertion and grants it to the new user.
type UserRepository interface {
	List(ctx context.Context, limit, offset int) ([]model.User, error)
	GetByID(ctx context.Context, id string) result.Result[model.User]
	GetByUserName(ctx context.Context, userName string) result.Result[model.User]
	Create(ctx context.Context, user model.User, roleID string) result.Result[model.User]
	Update(ctx context.Context, user model.User) result.Result[model.User]
	SoftRemove(ctx context.Context, id string) result.Status
	Remove(ctx context.Context, id string) result.Status
	RemoveAll(ctx context.Context) result.Status
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository returns a new instance of UserRepository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) List(ctx context.Context, limit, offset int) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).Preload("Roles").Offset(offset).Limit(limit).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) result.Result[model.User] {
	userID, err := uuid.Parse(id)
	if err != nil {
		return result.Fail[model.User](result.NotFound, missingUserMessage)
	}
	return r.findOne(ctx, "id = ?", userID)
}

func (r *userRepository) GetByUserName(ctx context.Context, userName string) result.Result[model.User] {
	return r.findOne(ctx, "user_name = ?", userName)
}

func (r *userRepository) Create(ctx context.Context, user model.User, roleID string) result.Result[model.User] {
	if roleID != "" {
		rid, err := uuid.Parse(roleID)
		if err != nil {
			return result.Fail[model.User](result.NotFound, missingRoleMessage)
		}

		var role model.Role
		if err := r.db.WithContext(ctx).First(&role, "id = ?", rid).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return result.Fail[model.User](result.NotFound, missingRoleMessage)
			}
			return result.Fail[model.User](result.InternalError, "")
		}
		user.Roles = []model.Role{role}
	}

	if err := r.db.WithContext(ctx).Create(&user).Error; err != nil {
		return result.Fail[model.User](result.InternalError, "")
	}
	return r.findOne(ctx, "id = ?", user.ID)
}

func (r *userRepository) Update(ctx context.Context, user model.User) result.Result[model.User] {
	// Only the mutable field set is overwritten; id, userName, createdAt and
	// isDeleted never change through update.
	res := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]interface{}{
			"first_name": user.FirstName,
			"last_name":  user.LastName,
		})
	if res.Error != nil {
		return result.Fail[model.User](result.InternalError, "")
	}
	if res.RowsAffected == 0 {
		return result.Fail[model.User](result.NotFound, missingUserMessage)
	}
	return r.findOne(ctx, "id = ?", user.ID)
}

func (r *userRepository) SoftRemove(ctx context.Context, id string) result.Status {
	userID, err := uuid.Parse(id)
	if err != nil {
		return result.FailStatus(result.NotFound, missingUserMessage)
	}

	res := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ? AND is_deleted = ?", userID, false).
		Update("is_deleted", true)
	if res.Error != nil {
		return result.FailStatus(result.InternalError, "")
	}
	if res.RowsAffected == 0 {
		return result.FailStatus(result.NotFound, missingUserMessage)
	}
	return result.Done()
}

func (r *userRepository) Remove(ctx context.Context, id string) result.Status {
	userID, err := uuid.Parse(id)
	if err != nil {
		return result.FailStatus(result.NotFound, missingUserMessage)
	}

	res := r.db.WithContext(ctx).Where("id = ?", userID).Delete(&model.User{})
	if res.Error != nil {
		return result.FailStatus(result.InternalError, "")
	}
	if res.RowsAffected == 0 {
		return result.FailStatus(result.NotFound, missingUserMessage)
	}
	return result.Done()
}

func (r *userRepository) RemoveAll(ctx context.Context) result.Status {
	res := r.db.WithContext(ctx).Where("1 = 1").Delete(&model.User{})
	if res.Error != nil {
		return result.FailStatus(result.InternalError, "")
	}
	if res.RowsAffected == 0 {
		return result.FailStatus(result.NotFound, "")
	}
	return result.Done()
}

func (r *userRepository) findOne(ctx context.Context, query string, arg interface{}) result.Result[model.User] {
	var user model.User
	if err := r.db.WithContext(ctx).Preload("Roles").First(&user, query, arg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return result.Fail[model.User](result.NotFound, missingUserMessage)
		}
		return result.Fail[model.User](result.InternalError, "")
	}
	return result.Ok(user)
}
