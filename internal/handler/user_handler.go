package handler

import (
	"net/http"

	"catalog-backend/internal/auth"
	"catalog-backend/internal/dto"
	"catalog-backend/internal/middleware"
	"catalog-backend/internal/model"
	"catalog-backend/internal/service"
	"catalog-backend/pkg/result"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService service.UserService
	tokens      *auth.TokenIssuer
}

func NewUserHandler(userService service.UserService, tokens *auth.TokenIssuer) *UserHandler {
	return &UserHandler{userService: userService, tokens: tokens}
}

func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/api/users")
	{
		users.GET("", middleware.RequireRole(h.tokens, model.RoleAdmin, model.RoleBuyer), middleware.CollectionSearch(), h.ListUsers)
		users.GET("/id/:id", middleware.RequireRole(h.tokens, model.RoleAdmin, model.RoleBuyer), h.GetUser)

		admin := users.Group("", middleware.RequireRole(h.tokens, model.RoleAdmin))
		{
			admin.POST("", h.CreateUser)
			admin.PUT("", h.UpdateUser)
			admin.DELETE("/soft-remove/id/:id", h.SoftRemoveUser)
			admin.DELETE("/id/:id", h.RemoveUser)
		}
	}
}

// ListUsers handles GET /api/users
// @Summary      List users
// @Description  Returns a page of users with their roles
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query     int  false  "Page size"
// @Param        offset  query     int  false  "Page offset"
// @Success      200     {array}   dto.User
// @Failure      401     {object}  middleware.ErrorBody
// @Router       /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.GetUsers(c.Request.Context(), middleware.CollectionSearchFrom(c))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetUser handles GET /api/users/id/:id
// @Summary      Get user by id
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  dto.User
// @Failure      404  {object}  middleware.ErrorBody
// @Router       /users/id/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userService.GetUserByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// CreateUser handles POST /api/users
// @Summary      Create a new user
// @Description  Creates a user, hashing the password and optionally granting a role
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      dto.CreateUser  true  "Create User Payload"
// @Success      201      {object}  dto.User
// @Failure      400      {object}  middleware.ErrorBody
// @Failure      404      {object}  middleware.ErrorBody
// @Router       /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUser
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(&result.Error{Type: result.InvalidData, Message: "Invalid request payload"})
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// UpdateUser handles PUT /api/users, overwriting first and last name only
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req dto.User
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(&result.Error{Type: result.InvalidData, Message: "Invalid request payload"})
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// SoftRemoveUser handles DELETE /api/users/soft-remove/id/:id
func (h *UserHandler) SoftRemoveUser(c *gin.Context) {
	if err := h.userService.SoftRemoveUser(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RemoveUser handles DELETE /api/users/id/:id
func (h *UserHandler) RemoveUser(c *gin.Context) {
	if err := h.userService.RemoveUser(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
