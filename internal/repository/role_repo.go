package repository

import (
	"context"
	"errors"

	"catalog-backend/internal/model"
	"catalog-backend/pkg/result"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RoleRepository defines data access for Role entities. Single-item
// operations return a ServiceResult; collection queries return plain slices.
// Grant/revoke live here because they mutate the user-role join owned by the
// role aggregate.
type RoleRepository interface {
	List(ctx context.Context, limit, offset int) ([]model.Role, error)
	GetByID(ctx context.Context, id string) result.Result[model.Role]
	GetByName(ctx context.Context, name string) result.Result[model.Role]
	Create(ctx context.Context, role model.Role) result.Result[model.Role]
	Update(ctx context.Context, role model.Role) result.Result[model.Role]
	GrantRole(ctx context.Context, roleID, userID string) result.Status
	RevokeRole(ctx context.Context, roleID, userID string) result.Status
	SoftRemove(ctx context.Context, id string) result.Status
	Remove(ctx context.Context, id string) result.Status
	RemoveAll(ctx context.Context) result.Status
}

type roleRepository struct {
	db *gorm.DB
}

// NewRoleRepository returns a new instance of RoleRepository.
func NewRoleRepository(db *gorm.DB) RoleRepository {
	return &roleRepository{db: db}
}

func (r *roleRepository) List(ctx context.Context, limit, offset int) ([]model.Role, error) {
	var roles []model.Role
	if err := r.db.WithContext(ctx).Offset(offset).Limit(limit).Find(&roles).Error; err != nil {
		return nil, err
	}
	return roles, nil
}

func (r *roleRepository) GetByID(ctx context.Context, id string) result.Result[model.Role] {
	roleID, err := uuid.Parse(id)
	if err != nil {
		return result.Fail[model.Role](result.NotFound, missingRoleMessage)
	}

	var role model.Role
	if err := r.db.WithContext(ctx).First(&role, "id = ?", roleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return result.Fail[model.Role](result.NotFound, missingRoleMessage)
		}
		return result.Fail[model.Role](result.InternalError, "")
	}
	return result.Ok(role)
}

func (r *roleRepository) GetByName(ctx context.Context, name string) result.Result[model.Role] {
	var role model.Role
	if err := r.db.WithContext(ctx).First(&role, "display_name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return result.Fail[model.Role](result.NotFound, missingRoleMessage)
		}
		return result.Fail[model.Role](result.InternalError, "")
	}
	return result.Ok(role)
}

func (r *roleRepository) Create(ctx context.Context, role model.Role) result.Result[model.Role] {
	if err := r.db.WithContext(ctx).Create(&role).Error; err != nil {
		return result.Fail[model.Role](result.InternalError, "")
	}
	return result.Ok(role)
}

func (r *roleRepository) Update(ctx context.Context, role model.Role) result.Result[model.Role] {
	res := r.db.WithContext(ctx).
		Model(&model.Role{}).
		Where("id = ?", role.ID).
		Update("display_name", role.DisplayName)
	if res.Error != nil {
		return result.Fail[model.Role](result.InternalError, "")
	}
	if res.RowsAffected == 0 {
		return result.Fail[model.Role](result.NotFound, missingRoleMessage)
	}
	return r.GetByID(ctx, role.ID.String())
}

func (r *roleRepository) GrantRole(ctx context.Context, roleID, userID string) result.Status {
	user, role, status := r.findUserAndRole(ctx, roleID, userID)
	if !status.OK() {
		return status
	}

	// Set semantics: granting an already held role is a no-op.
	for _, held := range user.Roles {
		if held.ID == role.ID {
			return result.Done()
		}
	}

	if err := r.db.WithContext(ctx).Model(user).Association("Roles").Append(role); err != nil {
		return result.FailStatus(result.InternalError, "")
	}
	return result.Done()
}

func (r *roleRepository) RevokeRole(ctx context.Context, roleID, userID string) result.Status {
	user, role, status := r.findUserAndRole(ctx, roleID, userID)
	if !status.OK() {
		return status
	}

	held := false
	for _, existing := range user.Roles {
		if existing.ID == role.ID {
			held = true
			break
		}
	}
	if !held {
		return result.Done()
	}

	if err := r.db.WithContext(ctx).Model(user).Association("Roles").Delete(role); err != nil {
		return result.FailStatus(result.InternalError, "")
	}
	return result.Done()
}

func (r *roleRepository) SoftRemove(ctx context.Context, id string) result.Status {
	return r.removeWith(id, func(roleID uuid.UUID) *gorm.DB {
		return r.db.WithContext(ctx).
			Model(&model.Role{}).
			Where("id = ? AND is_deleted = ?", roleID, false).
			Update("is_deleted", true)
	})
}

func (r *roleRepository) Remove(ctx context.Context, id string) result.Status {
	return r.removeWith(id, func(roleID uuid.UUID) *gorm.DB {
		return r.db.WithContext(ctx).Where("id = ?", roleID).Delete(&model.Role{})
	})
}

func (r *roleRepository) RemoveAll(ctx context.Context) result.Status {
	res := r.db.WithContext(ctx).Where("1 = 1").Delete(&model.Role{})
	if res.Error != nil {
		return result.FailStatus(result.InternalError, "")
	}
	if res.RowsAffected == 0 {
		return result.FailStatus(result.NotFound, "")
	}
	return result.Done()
}

func (r *roleRepository) removeWith(id string, exec func(uuid.UUID) *gorm.DB) result.Status {
	roleID, err := uuid.Parse(id)
	if err != nil {
		return result.FailStatus(result.NotFound, missingRoleMessage)
	}

	res := exec(roleID)
	if res.Error != nil {
		return result.FailStatus(result.InternalError, "")
	}
	if res.RowsAffected == 0 {
		return result.FailStatus(result.NotFound, missingRoleMessage)
	}
	return result.Done()
}

func (r *roleRepository) findUserAndRole(ctx context.Context, roleID, userID string) (*model.User, *model.Role, result.Status) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, nil, result.FailStatus(result.NotFound, missingUserMessage)
	}
	rid, err := uuid.Parse(roleID)
	if err != nil {
		return nil, nil, result.FailStatus(result.NotFound, missingRoleMessage)
	}

	var user model.User
	if err := r.db.WithContext(ctx).Preload("Roles").First(&user, "id = ?", uid).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, result.FailStatus(result.NotFound, missingUserMessage)
		}
		return nil, nil, result.FailStatus(result.InternalError, "")
	}

	var role model.Role
	if err := r.db.WithContext(ctx).First(&role, "id = ?", rid).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, result.FailStatus(result.NotFound, missingRoleMessage)
		}
		return nil, nil, result.FailStatus(result.InternalError, "")
	}

	return &user, &role, result.Done()
}
