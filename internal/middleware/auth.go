package middleware

import (
	"net/http"
	"strings"
	"time"

	"catalog-backend/internal/auth"

	"github.com/gin-gonic/gin"
)

// Context keys set by RequireRole for downstream handlers.
const (
	ContextUserID   = "userID"
	ContextUserName = "userName"
	ContextUserRole = "userRole"
)

func abortWithBody(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorBody{
		TimeStamp: time.Now().Format("15:04:05"),
		Path:      c.Request.URL.Path,
		Message:   message,
	})
}

// RequireRole authenticates the Bearer token and authorizes the caller
// against the allowed role names. Missing or bad tokens produce 401, a
// valid token with the wrong role 403.
func RequireRole(tokens *auth.TokenIssuer, allowed ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortWithBody(c, http.StatusUnauthorized, "Authorization header is missing")
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abortWithBody(c, http.StatusUnauthorized, "Authorization header format must be Bearer {token}")
			return
		}

		claims, err := tokens.Parse(parts[1])
		if err != nil {
			abortWithBody(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		permitted := false
		for _, role := range allowed {
			if claims.Role == role {
				permitted = true
				break
			}
		}
		if !permitted {
			abortWithBody(c, http.StatusForbidden, "Insufficient permissions")
			return
		}

		c.Set(ContextUserID, claims.Subject)
		c.Set(ContextUserName, claims.UserName)
		c.Set(ContextUserRole, claims.Role)
		c.Next()
	}
}
