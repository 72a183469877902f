package mapper

import (
	"testing"
	"time"

	"catalog-backend/internal/command"
	"catalog-backend/internal/dto"
	"catalog-backend/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRoleRoundTrip(t *testing.T) {
	m := model.Role{
		ID:          uuid.New(),
		DisplayName: "Admin",
		CreatedAt:   time.Now().Truncate(time.Second),
		IsDeleted:   true,
	}

	back := RoleToModel(RoleToCommand(m))
	assert.Equal(t, m, back)
}

func TestRoleToModel_MalformedID(t *testing.T) {
	m := RoleToModel(command.Role{ID: "not-a-uuid", DisplayName: "Admin"})
	assert.Equal(t, uuid.Nil, m.ID)
}

func TestProductRoundTrip(t *testing.T) {
	m := model.Product{
		ID:          uuid.New(),
		DisplayName: "Keyboard",
		TotalRating: 4.5,
		Price:       decimal.NewFromFloat(49.99),
		CreatedAt:   time.Now().Truncate(time.Second),
	}

	back := ProductToModel(ProductToCommand(m))
	assert.Equal(t, m.ID, back.ID)
	assert.Equal(t, m.DisplayName, back.DisplayName)
	assert.Equal(t, m.TotalRating, back.TotalRating)
	assert.True(t, m.Price.Equal(back.Price))
}

func TestUserToCommand_OmitsPassword(t *testing.T) {
	m := model.User{
		ID:        uuid.New(),
		UserName:  "alice",
		FirstName: "Alice",
		LastName:  "Nguyen",
		Password:  "$2a$10$hash",
		Roles:     []model.Role{{ID: uuid.New(), DisplayName: "Buyer"}},
	}

	c := UserToCommand(m)
	assert.Equal(t, "alice", c.UserName)
	assert.Len(t, c.Roles, 1)
	assert.Equal(t, "Buyer", c.Roles[0].DisplayName)
}

func TestUserToCredentials(t *testing.T) {
	m := model.User{
		ID:       uuid.New(),
		UserName: "alice",
		Password: "$2a$10$hash",
		Roles:    []model.Role{{DisplayName: "Admin"}, {DisplayName: "Buyer"}},
	}

	creds := UserToCredentials(m)
	assert.Equal(t, m.ID.String(), creds.UserID)
	assert.Equal(t, "$2a$10$hash", creds.PasswordHash)
	assert.Equal(t, "Admin", creds.Role)
}

func TestUserToCredentials_NoRoles(t *testing.T) {
	creds := UserToCredentials(model.User{UserName: "bob"})
	assert.Empty(t, creds.Role)
}

func TestUserCreateToModel_IgnoresRoleID(t *testing.T) {
	m := UserCreateToModel(command.CreateUser{
		UserName: "alice",
		Password: "hashed",
		RoleID:   uuid.NewString(),
	})
	assert.Empty(t, m.Roles)
	assert.Equal(t, "hashed", m.Password)
}

func TestCategoryDTORoundTrip(t *testing.T) {
	d := dto.Category{
		ID:          uuid.NewString(),
		DisplayName: "Peripherals",
		CreatedAt:   time.Now().Truncate(time.Second),
		IsDeleted:   false,
	}

	back := CategoryToDTO(CategoryFromDTO(d))
	assert.Equal(t, d, back)
}
