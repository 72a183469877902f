package service

import (
	"context"
	"testing"
	"time"

	"catalog-backend/internal/auth"
	"catalog-backend/internal/command"
	"catalog-backend/internal/dto"
	"catalog-backend/internal/model"
	"catalog-backend/pkg/result"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserAdapter struct {
	users    map[string]command.User
	creds    map[string]command.Credentials
	created  []command.CreateUser
	createFn func(create command.CreateUser) result.Result[command.User]
}

func newFakeUserAdapter() *fakeUserAdapter {
	return &fakeUserAdapter{
		users: map[string]command.User{},
		creds: map[string]command.Credentials{},
	}
}

func (f *fakeUserAdapter) GetUsers(ctx context.Context, search command.CollectionSearch) ([]command.User, error) {
	out := make([]command.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserAdapter) GetUserByID(ctx context.Context, id string) result.Result[command.User] {
	if u, ok := f.users[id]; ok {
		return result.Ok(u)
	}
	return result.Fail[command.User](result.NotFound, "User entity is missing")
}

func (f *fakeUserAdapter) GetUserByUserName(ctx context.Context, userName string) result.Result[command.User] {
	for _, u := range f.users {
		if u.UserName == userName {
			return result.Ok(u)
		}
	}
	return result.Fail[command.User](result.NotFound, "User entity is missing")
}

func (f *fakeUserAdapter) GetCredentials(ctx context.Context, userName string) result.Result[command.Credentials] {
	if c, ok := f.creds[userName]; ok {
		return result.Ok(c)
	}
	return result.Fail[command.Credentials](result.NotFound, "User entity is missing")
}

func (f *fakeUserAdapter) CreateUser(ctx context.Context, create command.CreateUser) result.Result[command.User] {
	f.created = append(f.created, create)
	if f.createFn != nil {
		return f.createFn(create)
	}
	u := command.User{ID: "new-user", UserName: create.UserName, FirstName: create.FirstName, LastName: create.LastName}
	f.users[u.ID] = u
	return result.Ok(u)
}

func (f *fakeUserAdapter) UpdateUser(ctx context.Context, user command.User) result.Result[command.User] {
	if _, ok := f.users[user.ID]; !ok {
		return result.Fail[command.User](result.NotFound, "User entity is missing")
	}
	f.users[user.ID] = user
	return result.Ok(user)
}

func (f *fakeUserAdapter) SoftRemoveUser(ctx context.Context, id string) result.Status {
	if _, ok := f.users[id]; !ok {
		return result.FailStatus(result.NotFound, "User entity is missing")
	}
	return result.Done()
}

func (f *fakeUserAdapter) RemoveUser(ctx context.Context, id string) result.Status {
	if _, ok := f.users[id]; !ok {
		return result.FailStatus(result.NotFound, "User entity is missing")
	}
	delete(f.users, id)
	return result.Done()
}

func (f *fakeUserAdapter) RemoveAllUsers(ctx context.Context) result.Status {
	f.users = map[string]command.User{}
	return result.Done()
}

func testTokens() *auth.TokenIssuer {
	return auth.NewTokenIssuer("test-secret", "", "", time.Hour)
}

func TestAuthService_SignUp(t *testing.T) {
	users := newFakeUserAdapter()
	roles := newFakeRoleAdapter()
	roles.roles["buyer-id"] = command.Role{ID: "buyer-id", DisplayName: model.RoleBuyer}
	svc := NewAuthService(users, roles, testTokens())

	user, err := svc.SignUp(context.Background(), dto.SignUp{
		UserName:  "alice",
		FirstName: "Alice",
		LastName:  "Nguyen",
		Password:  "hunter22",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", user.UserName)

	require.Len(t, users.created, 1)
	assert.Equal(t, "buyer-id", users.created[0].RoleID)
	// Stored as a bcrypt hash, never plaintext.
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(users.created[0].Password), []byte("hunter22")))
}

func TestAuthService_SignUp_BuyerRoleMissing(t *testing.T) {
	svc := NewAuthService(newFakeUserAdapter(), newFakeRoleAdapter(), testTokens())

	_, err := svc.SignUp(context.Background(), dto.SignUp{UserName: "alice", Password: "hunter22"})

	var resErr *result.Error
	require.ErrorAs(t, err, &resErr)
	assert.Equal(t, result.NotFound, resErr.Type)
}

func TestAuthService_SignIn(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	users := newFakeUserAdapter()
	users.creds["alice"] = command.Credentials{
		UserID:       "u1",
		UserName:     "alice",
		PasswordHash: string(hash),
		Role:         model.RoleBuyer,
	}
	tokens := testTokens()
	svc := NewAuthService(users, newFakeRoleAdapter(), tokens)

	token, err := svc.SignIn(context.Background(), dto.SignIn{UserName: "alice", Password: "hunter22"})
	require.NoError(t, err)

	claims, err := tokens.Parse(token.Token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.Subject)
	assert.Equal(t, "alice", claims.UserName)
	assert.Equal(t, model.RoleBuyer, claims.Role)
}

func TestAuthService_SignIn_WrongPassword(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	users := newFakeUserAdapter()
	users.creds["alice"] = command.Credentials{UserID: "u1", UserName: "alice", PasswordHash: string(hash)}
	svc := NewAuthService(users, newFakeRoleAdapter(), testTokens())

	_, err := svc.SignIn(context.Background(), dto.SignIn{UserName: "alice", Password: "wrong"})

	var resErr *result.Error
	require.ErrorAs(t, err, &resErr)
	assert.Equal(t, result.InvalidData, resErr.Type)
}

func TestAuthService_SignIn_UnknownUser(t *testing.T) {
	svc := NewAuthService(newFakeUserAdapter(), newFakeRoleAdapter(), testTokens())

	_, err := svc.SignIn(context.Background(), dto.SignIn{UserName: "ghost", Password: "whatever"})

	var resErr *result.Error
	require.ErrorAs(t, err, &resErr)
	// Same response as a wrong password so user names cannot be probed.
	assert.Equal(t, result.InvalidData, resErr.Type)
	assert.Equal(t, invalidCredentialsMessage, resErr.Message)
}
