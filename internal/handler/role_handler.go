package handler

import (
	"net/http"

	"catalog-backend/internal/dto"
	"catalog-backend/internal/middleware"
	"catalog-backend/internal/service"
	"catalog-backend/pkg/result"

	"github.com/gin-gonic/gin"
)

type RoleHandler struct {
	roleService service.RoleService
}

func NewRoleHandler(roleService service.RoleService) *RoleHandler {
	return &RoleHandler{roleService: roleService}
}

func (h *RoleHandler) RegisterRoutes(router *gin.RouterGroup) {
	roles := router.Group("/api/roles")
	{
		roles.GET("", middleware.CollectionSearch(), h.ListRoles)
		roles.GET("/id/:id", h.GetRole)
		roles.POST("", h.CreateRole)
		roles.PUT("", h.UpdateRole)
		roles.POST("/grant", h.GrantRole)
		roles.POST("/revoke", h.RevokeRole)
		roles.DELETE("/soft-remove/id/:id", h.SoftRemoveRole)
		roles.DELETE("/id/:id", h.RemoveRole)
	}
}

// ListRoles returns a page of roles
func (h *RoleHandler) ListRoles(c *gin.Context) {
	roles, err := h.roleService.GetRoles(c.Request.Context(), middleware.CollectionSearchFrom(c))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, roles)
}

// GetRole returns a single role by id
func (h *RoleHandler) GetRole(c *gin.Context) {
	role, err := h.roleService.GetRoleByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, role)
}

// CreateRole creates a new role
func (h *RoleHandler) CreateRole(c *gin.Context) {
	var req dto.CreateRole
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(&result.Error{Type: result.InvalidData, Message: "Invalid request payload"})
		return
	}

	role, err := h.roleService.CreateRole(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, role)
}

// UpdateRole updates a role's display name
func (h *RoleHandler) UpdateRole(c *gin.Context) {
	var req dto.Role
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(&result.Error{Type: result.InvalidData, Message: "Invalid request payload"})
		return
	}

	role, err := h.roleService.UpdateRole(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, role)
}

// GrantRole adds a role to a user's role set
func (h *RoleHandler) GrantRole(c *gin.Context) {
	var req dto.RoleManage
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(&result.Error{Type: result.InvalidData, Message: "Invalid request payload"})
		return
	}

	if err := h.roleService.GrantRole(c.Request.Context(), req); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RevokeRole removes a role from a user's role set
func (h *RoleHandler) RevokeRole(c *gin.Context) {
	var req dto.RoleManage
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(&result.Error{Type: result.InvalidData, Message: "Invalid request payload"})
		return
	}

	if err := h.roleService.RevokeRole(c.Request.Context(), req); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SoftRemoveRole marks a role deleted without removing the row
func (h *RoleHandler) SoftRemoveRole(c *gin.Context) {
	if err := h.roleService.SoftRemoveRole(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RemoveRole deletes a role permanently
func (h *RoleHandler) RemoveRole(c *gin.Context) {
	if err := h.roleService.RemoveRole(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
