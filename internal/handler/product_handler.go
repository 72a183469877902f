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

type ProductHandler struct {
	productService service.ProductService
	tokens         *auth.TokenIssuer
}

func NewProductHandler(productService service.ProductService, tokens *auth.TokenIssuer) *ProductHandler {
	return &ProductHandler{productService: productService, tokens: tokens}
}

func (h *ProductHandler) RegisterRoutes(router *gin.RouterGroup) {
	products := router.Group("/api/products")
	{
		products.GET("", middleware.ProductSearch(), h.ListProducts)
		products.GET("/id/:id", h.GetProduct)

		admin := products.Group("", middleware.RequireRole(h.tokens, model.RoleAdmin))
		{
			admin.POST("", h.CreateProduct)
			admin.PUT("", h.UpdateProduct)
			admin.DELETE("/soft-remove/id/:id", h.SoftRemoveProduct)
			admin.DELETE("/id/:id", h.RemoveProduct)
		}
	}
}

// ListProducts handles GET /api/products
// @Summary      List products
// @Description  Returns a page of products filtered by name, rating and price range
// @Tags         products
// @Produce      json
// @Param        limit        query     int     false  "Page size"
// @Param        offset       query     int     false  "Page offset"
// @Param        displayName  query     string  false  "Case-insensitive name filter"
// @Param        minRating    query     number  false  "Minimum total rating, 0 to 5"
// @Param        priceMin     query     number  false  "Lower price bound, requires priceMax"
// @Param        priceMax     query     number  false  "Upper price bound, requires priceMin"
// @Param        sortBy       query     string  false  "displayName, price, totalRating or createdAt"
// @Param        sortOrder    query     string  false  "asc or desc"
// @Success      200          {array}   dto.Product
// @Failure      400          {object}  middleware.ErrorBody
// @Router       /products [get]
func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.productService.GetProducts(c.Request.Context(), middleware.ProductQueryFrom(c))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetProduct handles GET /api/products/id/:id
// @Summary      Get product by id
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  dto.Product
// @Failure      404  {object}  middleware.ErrorBody
// @Router       /products/id/{id} [get]
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.productService.GetProductByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// CreateProduct handles POST /api/products
// @Summary      Create a new product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      dto.CreateProduct  true  "Create Product Payload"
// @Success      201      {object}  dto.Product
// @Failure      400      {object}  middleware.ErrorBody
// @Router       /products [post]
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req dto.CreateProduct
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(&result.Error{Type: result.InvalidData, Message: "Invalid request payload"})
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

// UpdateProduct handles PUT /api/products
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	var req dto.Product
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(&result.Error{Type: result.InvalidData, Message: "Invalid request payload"})
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// SoftRemoveProduct handles DELETE /api/products/soft-remove/id/:id
func (h *ProductHandler) SoftRemoveProduct(c *gin.Context) {
	if err := h.productService.SoftRemoveProduct(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RemoveProduct handles DELETE /api/products/id/:id
func (h *ProductHandler) RemoveProduct(c *gin.Context) {
	if err := h.productService.RemoveProduct(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
