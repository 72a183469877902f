package adapter

import (
	"context"

	"catalog-backend/internal/command"
	"catalog-backend/internal/mapper"
	"catalog-backend/internal/repository"
	"catalog-backend/pkg/result"
)

// UserAdapter exposes user persistence to the service layer in command
// shapes.
type UserAdapter interface {
	GetUsers(ctx context.Context, search command.CollectionSearch) ([]command.User, error)
	GetUserByID(ctx context.Context, id string) result.Result[command.User]
	GetUserByUserName(ctx context.Context, userName string) result.Result[command.User]
	GetCredentials(ctx context.Context, userName string) result.Result[command.Credentials]
	CreateUser(ctx context.Context, create command.CreateUser) result.Result[command.User]
	UpdateUser(ctx context.Context, user command.User) result.Result[command.User]
	SoftRemoveUser(ctx context.Context, id string) result.Status
	RemoveUser(ctx context.Context, id string) result.Status
	RemoveAllUsers(ctx context.Context) result.Status
}

type userAdapter struct {
	users repository.UserRepository
}

// NewUserAdapter returns a new instance of UserAdapter.
func NewUserAdapter(users repository.UserRepository) UserAdapter {
	return &userAdapter{users: users}
}

func (a *userAdapter) GetUsers(ctx context.Context, search command.CollectionSearch) ([]command.User, error) {
	users, err := a.users.List(ctx, search.Limit, search.Offset)
	if err != nil {
		return nil, err
	}

	commands := make([]command.User, 0, len(users))
	for _, u := range users {
		commands = append(commands, mapper.UserToCommand(u))
	}
	return commands, nil
}

func (a *userAdapter) GetUserByID(ctx context.Context, id string) result.Result[command.User] {
	return rewrap(a.users.GetByID(ctx, id), mapper.UserToCommand)
}

func (a *userAdapter) GetUserByUserName(ctx context.Context, userName string) result.Result[command.User] {
	return rewrap(a.users.GetByUserName(ctx, userName), mapper.UserToCommand)
}

func (a *userAdapter) GetCredentials(ctx context.Context, userName string) result.Result[command.Credentials] {
	return rewrap(a.users.GetByUserName(ctx, userName), mapper.UserToCredentials)
}

func (a *userAdapter) CreateUser(ctx context.Context, create command.CreateUser) result.Result[command.User] {
	return rewrap(a.users.Create(ctx, mapper.UserCreateToModel(create), create.RoleID), mapper.UserToCommand)
}

func (a *userAdapter) UpdateUser(ctx context.Context, user command.User) result.Result[command.User] {
	return rewrap(a.users.Update(ctx, mapper.UserToModel(user)), mapper.UserToCommand)
}

func (a *userAdapter) SoftRemoveUser(ctx context.Context, id string) result.Status {
	return a.users.SoftRemove(ctx, id)
}

func (a *userAdapter) RemoveUser(ctx context.Context, id string) result.Status {
	return a.users.Remove(ctx, id)
}

func (a *userAdapter) RemoveAllUsers(ctx context.Context) result.Status {
	return a.users.RemoveAll(ctx)
}
