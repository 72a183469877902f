package handler

import (
	"net/http"

	"catalog-backend/internal/dto"
	"catalog-backend/internal/middleware"
	"catalog-backend/internal/service"
	"catalog-backend/pkg/result"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	categoryService service.CategoryService
}

func NewCategoryHandler(categoryService service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// RegisterRoutes mounts the category routes. The group is singular for
// compatibility with existing clients.
func (h *CategoryHandler) RegisterRoutes(router *gin.RouterGroup) {
	categories := router.Group("/api/category")
	{
		categories.GET("", middleware.CollectionSearch(), h.ListCategories)
		categories.GET("/id/:id", h.GetCategory)
		categories.POST("", h.CreateCategory)
		categories.PUT("", h.UpdateCategory)
		categories.DELETE("/soft-remove/id/:id", h.SoftRemoveCategory)
		categories.DELETE("/id/:id", h.RemoveCategory)
	}
}

// ListCategories returns a page of categories
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.GetCategories(c.Request.Context(), middleware.CollectionSearchFrom(c))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// GetCategory returns a single category by id
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	category, err := h.categoryService.GetCategoryByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, category)
}

// CreateCategory creates a new category
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req dto.CreateCategory
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(&result.Error{Type: result.InvalidData, Message: "Invalid request payload"})
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

// UpdateCategory updates a category's display name
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	var req dto.Category
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(&result.Error{Type: result.InvalidData, Message: "Invalid request payload"})
		return
	}

	category, err := h.categoryService.UpdateCategory(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, category)
}

// SoftRemoveCategory marks a category deleted without removing the row
func (h *CategoryHandler) SoftRemoveCategory(c *gin.Context) {
	if err := h.categoryService.SoftRemoveCategory(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RemoveCategory deletes a category permanently
func (h *CategoryHandler) RemoveCategory(c *gin.Context) {
	if err := h.categoryService.RemoveCategory(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
