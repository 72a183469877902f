package service

import (
	"context"
	"errors"
	"testing"

	"catalog-backend/internal/command"
	"catalog-backend/internal/dto"
	"catalog-backend/pkg/result"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRoleAdapter struct {
	roles     map[string]command.Role
	listErr   error
	grants    []string
	grantStat result.Status
}

func newFakeRoleAdapter() *fakeRoleAdapter {
	return &fakeRoleAdapter{
		roles:     map[string]command.Role{},
		grantStat: result.Done(),
	}
}

func (f *fakeRoleAdapter) GetRoles(ctx context.Context, search command.CollectionSearch) ([]command.Role, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]command.Role, 0, len(f.roles))
	for _, r := range f.roles {
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeRoleAdapter) GetRoleByID(ctx context.Context, id string) result.Result[command.Role] {
	if r, ok := f.roles[id]; ok {
		return result.Ok(r)
	}
	return result.Fail[command.Role](result.NotFound, "Role entity is missing")
}

func (f *fakeRoleAdapter) GetRoleByName(ctx context.Context, name string) result.Result[command.Role] {
	for _, r := range f.roles {
		if r.DisplayName == name {
			return result.Ok(r)
		}
	}
	return result.Fail[command.Role](result.NotFound, "Role entity is missing")
}

func (f *fakeRoleAdapter) CreateRole(ctx context.Context, create command.CreateRole) result.Result[command.Role] {
	r := command.Role{ID: "new-id", DisplayName: create.DisplayName}
	f.roles[r.ID] = r
	return result.Ok(r)
}

func (f *fakeRoleAdapter) UpdateRole(ctx context.Context, role command.Role) result.Result[command.Role] {
	if _, ok := f.roles[role.ID]; !ok {
		return result.Fail[command.Role](result.NotFound, "Role entity is missing")
	}
	f.roles[role.ID] = role
	return result.Ok(role)
}

func (f *fakeRoleAdapter) GrantRole(ctx context.Context, roleID, userID string) result.Status {
	f.grants = append(f.grants, roleID+":"+userID)
	return f.grantStat
}

func (f *fakeRoleAdapter) RevokeRole(ctx context.Context, roleID, userID string) result.Status {
	return f.grantStat
}

func (f *fakeRoleAdapter) SoftRemoveRole(ctx context.Context, id string) result.Status {
	if _, ok := f.roles[id]; !ok {
		return result.FailStatus(result.NotFound, "Role entity is missing")
	}
	return result.Done()
}

func (f *fakeRoleAdapter) RemoveRole(ctx context.Context, id string) result.Status {
	if _, ok := f.roles[id]; !ok {
		return result.FailStatus(result.NotFound, "Role entity is missing")
	}
	delete(f.roles, id)
	return result.Done()
}

func (f *fakeRoleAdapter) RemoveAllRoles(ctx context.Context) result.Status {
	f.roles = map[string]command.Role{}
	return result.Done()
}

func TestRoleService_GetRoleByID(t *testing.T) {
	fake := newFakeRoleAdapter()
	fake.roles["r1"] = command.Role{ID: "r1", DisplayName: "Admin"}
	svc := NewRoleService(fake)

	role, err := svc.GetRoleByID(context.Background(), "r1")
	require.NoError(t, err)
	assert.Equal(t, "Admin", role.DisplayName)
}

func TestRoleService_GetRoleByID_NotFound(t *testing.T) {
	svc := NewRoleService(newFakeRoleAdapter())

	_, err := svc.GetRoleByID(context.Background(), "nope")

	var resErr *result.Error
	require.ErrorAs(t, err, &resErr)
	assert.Equal(t, result.NotFound, resErr.Type)
	assert.Equal(t, "Role entity is missing", resErr.Message)
}

func TestRoleService_GetRoles_ListError(t *testing.T) {
	fake := newFakeRoleAdapter()
	fake.listErr = errors.New("connection refused")
	svc := NewRoleService(fake)

	_, err := svc.GetRoles(context.Background(), command.CollectionSearch{Limit: 20})

	var resErr *result.Error
	require.ErrorAs(t, err, &resErr)
	assert.Equal(t, result.InternalError, resErr.Type)
	// The driver error must not reach the caller.
	assert.Empty(t, resErr.Message)
}

func TestRoleService_CreateRole(t *testing.T) {
	svc := NewRoleService(newFakeRoleAdapter())

	role, err := svc.CreateRole(context.Background(), dto.CreateRole{DisplayName: "Support"})
	require.NoError(t, err)
	assert.Equal(t, "Support", role.DisplayName)
	assert.NotEmpty(t, role.ID)
}

func TestRoleService_GrantRole(t *testing.T) {
	fake := newFakeRoleAdapter()
	svc := NewRoleService(fake)

	err := svc.GrantRole(context.Background(), dto.RoleManage{RoleID: "r1", UserID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"r1:u1"}, fake.grants)
}

func TestRoleService_GrantRole_MissingUser(t *testing.T) {
	fake := newFakeRoleAdapter()
	fake.grantStat = result.FailStatus(result.NotFound, "User entity is missing")
	svc := NewRoleService(fake)

	err := svc.GrantRole(context.Background(), dto.RoleManage{RoleID: "r1", UserID: "nope"})

	var resErr *result.Error
	require.ErrorAs(t, err, &resErr)
	assert.Equal(t, result.NotFound, resErr.Type)
	assert.Equal(t, "User entity is missing", resErr.Message)
}

func TestRoleService_RemoveRole_NotFound(t *testing.T) {
	svc := NewRoleService(newFakeRoleAdapter())

	err := svc.RemoveRole(context.Background(), "nope")

	var resErr *result.Error
	require.ErrorAs(t, err, &resErr)
	assert.Equal(t, result.NotFound, resErr.Type)
}
