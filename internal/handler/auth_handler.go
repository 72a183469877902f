package handler

import (
	"net/http"

	"catalog-backend/internal/dto"
	"catalog-backend/internal/service"
	"catalog-backend/pkg/result"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	authRoutes := router.Group("/api/auth")
	{
		authRoutes.POST("/sign-up", h.SignUp)
		authRoutes.POST("/sign-in", h.SignIn)
	}
}

// SignUp handles POST /api/auth/sign-up
// @Summary      Sign up
// @Description  Registers a new user with the Buyer role
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload  body      dto.SignUp  true  "Sign Up Payload"
// @Success      201      {object}  dto.User
// @Failure      400      {object}  middleware.ErrorBody
// @Router       /auth/sign-up [post]
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req dto.SignUp
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(&result.Error{Type: result.InvalidData, Message: "Invalid request payload"})
		return
	}

	user, err := h.authService.SignUp(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// SignIn handles POST /api/auth/sign-in
// @Summary      Sign in
// @Description  Authenticates a user by user name and password, returning a JWT token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload  body      dto.SignIn  true  "Sign In Payload"
// @Success      200      {object}  dto.Token
// @Failure      400      {object}  middleware.ErrorBody
// @Router       /auth/sign-in [post]
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req dto.SignIn
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(&result.Error{Type: result.InvalidData, Message: "Invalid request payload"})
		return
	}

	token, err := h.authService.SignIn(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, token)
}
