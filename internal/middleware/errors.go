package middleware

import (
	"errors"
	"net/http"
	"time"

	"catalog-backend/pkg/result"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorBody is the single error response shape for every non-2xx outcome.
type ErrorBody struct {
	TimeStamp string `json:"timeStamp"`
	Path      string `json:"path"`
	Message   string `json:"message,omitempty"`
}

// ErrorFilter translates errors attached to the context into the single
// error body shape. *result.Error carries its own status mapping; anything
// else becomes a bare 500 with no message.
func ErrorFilter(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		body := ErrorBody{
			TimeStamp: time.Now().Format("15:04:05"),
			Path:      c.Request.URL.Path,
		}

		var resErr *result.Error
		if errors.As(err, &resErr) {
			body.Message = resErr.Message
			c.JSON(result.HTTPStatus(resErr.Type), body)
			return
		}

		log.Error("unhandled error", zap.String("path", body.Path), zap.Error(err))
		c.JSON(http.StatusInternalServerError, body)
	}
}
