package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"catalog-backend/internal/auth"
	"catalog-backend/internal/command"
	"catalog-backend/internal/dto"
	"catalog-backend/internal/middleware"
	"catalog-backend/internal/model"
	"catalog-backend/pkg/result"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubRoleService backs the role handler tests with canned outcomes.
type stubRoleService struct {
	roles    map[string]dto.Role
	granted  []dto.RoleManage
	grantErr error
}

func newStubRoleService() *stubRoleService {
	return &stubRoleService{roles: map[string]dto.Role{}}
}

func (s *stubRoleService) GetRoles(ctx context.Context, search command.CollectionSearch) ([]dto.Role, error) {
	out := make([]dto.Role, 0, len(s.roles))
	for _, r := range s.roles {
		out = append(out, r)
	}
	return out, nil
}

func (s *stubRoleService) GetRoleByID(ctx context.Context, id string) (dto.Role, error) {
	if r, ok := s.roles[id]; ok {
		return r, nil
	}
	return dto.Role{}, &result.Error{Type: result.NotFound, Message: "Role entity is missing"}
}

func (s *stubRoleService) CreateRole(ctx context.Context, create dto.CreateRole) (dto.Role, error) {
	r := dto.Role{ID: "r-new", DisplayName: create.DisplayName}
	s.roles[r.ID] = r
	return r, nil
}

func (s *stubRoleService) UpdateRole(ctx context.Context, role dto.Role) (dto.Role, error) {
	if _, ok := s.roles[role.ID]; !ok {
		return dto.Role{}, &result.Error{Type: result.NotFound, Message: "Role entity is missing"}
	}
	s.roles[role.ID] = role
	return role, nil
}

func (s *stubRoleService) GrantRole(ctx context.Context, manage dto.RoleManage) error {
	if s.grantErr != nil {
		return s.grantErr
	}
	s.granted = append(s.granted, manage)
	return nil
}

func (s *stubRoleService) RevokeRole(ctx context.Context, manage dto.RoleManage) error {
	return s.grantErr
}

func (s *stubRoleService) SoftRemoveRole(ctx context.Context, id string) error {
	if _, ok := s.roles[id]; !ok {
		return &result.Error{Type: result.NotFound, Message: "Role entity is missing"}
	}
	return nil
}

func (s *stubRoleService) RemoveRole(ctx context.Context, id string) error {
	if _, ok := s.roles[id]; !ok {
		return &result.Error{Type: result.NotFound, Message: "Role entity is missing"}
	}
	delete(s.roles, id)
	return nil
}

type stubProductService struct {
	products map[string]dto.Product
}

func newStubProductService() *stubProductService {
	return &stubProductService{products: map[string]dto.Product{}}
}

func (s *stubProductService) GetProducts(ctx context.Context, query command.ProductQuery) ([]dto.Product, error) {
	out := make([]dto.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, p)
	}
	return out, nil
}

func (s *stubProductService) GetProductByID(ctx context.Context, id string) (dto.Product, error) {
	if p, ok := s.products[id]; ok {
		return p, nil
	}
	return dto.Product{}, &result.Error{Type: result.NotFound, Message: "Product entity is missing"}
}

func (s *stubProductService) CreateProduct(ctx context.Context, create dto.CreateProduct) (dto.Product, error) {
	p := dto.Product{ID: "p-new", DisplayName: create.DisplayName, Price: create.Price}
	s.products[p.ID] = p
	return p, nil
}

func (s *stubProductService) UpdateProduct(ctx context.Context, product dto.Product) (dto.Product, error) {
	if _, ok := s.products[product.ID]; !ok {
		return dto.Product{}, &result.Error{Type: result.NotFound, Message: "Product entity is missing"}
	}
	s.products[product.ID] = product
	return product, nil
}

func (s *stubProductService) SoftRemoveProduct(ctx context.Context, id string) error {
	if _, ok := s.products[id]; !ok {
		return &result.Error{Type: result.NotFound, Message: "Product entity is missing"}
	}
	return nil
}

func (s *stubProductService) RemoveProduct(ctx context.Context, id string) error {
	if _, ok := s.products[id]; !ok {
		return &result.Error{Type: result.NotFound, Message: "Product entity is missing"}
	}
	delete(s.products, id)
	return nil
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorFilter(zap.NewNop()))
	return r
}

func doJSON(r *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRoleHandler_CRUD(t *testing.T) {
	svc := newStubRoleService()
	r := newTestRouter()
	NewRoleHandler(svc).RegisterRoutes(r.Group(""))

	w := doJSON(r, http.MethodPost, "/api/roles", `{"displayName":"Support"}`, "")
	require.Equal(t, http.StatusCreated, w.Code)

	var created dto.Role
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "Support", created.DisplayName)

	w = doJSON(r, http.MethodGet, "/api/roles/id/"+created.ID, "", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/api/roles", "", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodDelete, "/api/roles/soft-remove/id/"+created.ID, "", "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(r, http.MethodDelete, "/api/roles/id/"+created.ID, "", "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(r, http.MethodGet, "/api/roles/id/"+created.ID, "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRoleHandler_GetRole_NotFoundBody(t *testing.T) {
	r := newTestRouter()
	NewRoleHandler(newStubRoleService()).RegisterRoutes(r.Group(""))

	w := doJSON(r, http.MethodGet, "/api/roles/id/ghost", "", "")
	require.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "/api/roles/id/ghost", body["path"])
	assert.Equal(t, "Role entity is missing", body["message"])
	assert.NotEmpty(t, body["timeStamp"])
}

func TestRoleHandler_Grant(t *testing.T) {
	svc := newStubRoleService()
	r := newTestRouter()
	NewRoleHandler(svc).RegisterRoutes(r.Group(""))

	w := doJSON(r, http.MethodPost, "/api/roles/grant", `{"roleId":"r1","userId":"u1"}`, "")
	require.Equal(t, http.StatusNoContent, w.Code)
	require.Len(t, svc.granted, 1)
	assert.Equal(t, "r1", svc.granted[0].RoleID)

	// Payload missing a required field never reaches the service.
	w = doJSON(r, http.MethodPost, "/api/roles/grant", `{"roleId":"r1"}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Len(t, svc.granted, 1)
}

func TestRoleHandler_Grant_MissingUser(t *testing.T) {
	svc := newStubRoleService()
	svc.grantErr = &result.Error{Type: result.NotFound, Message: "User entity is missing"}
	r := newTestRouter()
	NewRoleHandler(svc).RegisterRoutes(r.Group(""))

	w := doJSON(r, http.MethodPost, "/api/roles/grant", `{"roleId":"r1","userId":"ghost"}`, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRoleHandler_InvalidPayload(t *testing.T) {
	r := newTestRouter()
	NewRoleHandler(newStubRoleService()).RegisterRoutes(r.Group(""))

	w := doJSON(r, http.MethodPost, "/api/roles", `{"displayName":""}`, "")
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Invalid request payload", body["message"])
}

func TestProductHandler_ListAndGetAreOpen(t *testing.T) {
	svc := newStubProductService()
	svc.products["p1"] = dto.Product{ID: "p1", DisplayName: "Keyboard", Price: decimal.NewFromInt(50)}
	tokens := auth.NewTokenIssuer("secret", "", "", time.Hour)

	r := newTestRouter()
	NewProductHandler(svc, tokens).RegisterRoutes(r.Group(""))

	w := doJSON(r, http.MethodGet, "/api/products", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var products []dto.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	assert.Len(t, products, 1)

	w = doJSON(r, http.MethodGet, "/api/products/id/p1", "", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/api/products?limit=bogus", "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProductHandler_MutationsRequireAdmin(t *testing.T) {
	svc := newStubProductService()
	tokens := auth.NewTokenIssuer("secret", "", "", time.Hour)
	adminToken, _ := tokens.Generate("u1", "alice", model.RoleAdmin)
	buyerToken, _ := tokens.Generate("u2", "bob", model.RoleBuyer)

	r := newTestRouter()
	NewProductHandler(svc, tokens).RegisterRoutes(r.Group(""))

	payload := `{"displayName":"Keyboard","price":50}`

	w := doJSON(r, http.MethodPost, "/api/products", payload, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(r, http.MethodPost, "/api/products", payload, buyerToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(r, http.MethodPost, "/api/products", payload, adminToken)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodDelete, "/api/products/id/p-new", "", adminToken)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(r, http.MethodDelete, "/api/products/id/p-new", "", adminToken)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
