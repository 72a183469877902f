package service

import (
	"context"

	"catalog-backend/internal/adapter"
	"catalog-backend/internal/command"
	"catalog-backend/internal/dto"
	"catalog-backend/internal/mapper"
	"catalog-backend/pkg/result"

	"golang.org/x/crypto/bcrypt"
)

// UserService is the business-facing user API consumed by handlers.
type UserService interface {
	GetUsers(ctx context.Context, search command.CollectionSearch) ([]dto.User, error)
	GetUserByID(ctx context.Context, id string) (dto.User, error)
	CreateUser(ctx context.Context, create dto.CreateUser) (dto.User, error)
	UpdateUser(ctx context.Context, user dto.User) (dto.User, error)
	SoftRemoveUser(ctx context.Context, id string) error
	RemoveUser(ctx context.Context, id string) error
}

type userService struct {
	users adapter.UserAdapter
}

// NewUserService returns a new instance of UserService.
func NewUserService(users adapter.UserAdapter) UserService {
	return &userService{users: users}
}

func (s *userService) GetUsers(ctx context.Context, search command.CollectionSearch) ([]dto.User, error) {
	users, err := s.users.GetUsers(ctx, search)
	if err != nil {
		return nil, &result.Error{Type: result.InternalError}
	}

	dtos := make([]dto.User, 0, len(users))
	for _, u := range users {
		dtos = append(dtos, mapper.UserToDTO(u))
	}
	return dtos, nil
}

func (s *userService) GetUserByID(ctx context.Context, id string) (dto.User, error) {
	res := s.users.GetUserByID(ctx, id)
	if err := res.AsError(); err != nil {
		return dto.User{}, err
	}
	return mapper.UserToDTO(res.Data), nil
}

func (s *userService) CreateUser(ctx context.Context, create dto.CreateUser) (dto.User, error) {
	cmd := mapper.UserCreateFromDTO(create)

	hashed, err := bcrypt.GenerateFromPassword([]byte(cmd.Password), bcrypt.DefaultCost)
	if err != nil {
		return dto.User{}, &result.Error{Type: result.InternalError}
	}
	cmd.Password = string(hashed)

	res := s.users.CreateUser(ctx, cmd)
	if err := res.AsError(); err != nil {
		return dto.User{}, err
	}
	return mapper.UserToDTO(res.Data), nil
}

func (s *userService) UpdateUser(ctx context.Context, user dto.User) (dto.User, error) {
	res := s.users.UpdateUser(ctx, mapper.UserFromDTO(user))
	if err := res.AsError(); err != nil {
		return dto.User{}, err
	}
	return mapper.UserToDTO(res.Data), nil
}

func (s *userService) SoftRemoveUser(ctx context.Context, id string) error {
	return s.users.SoftRemoveUser(ctx, id).AsError()
}

func (s *userService) RemoveUser(ctx context.Context, id string) error {
	return s.users.RemoveUser(ctx, id).AsError()
}
