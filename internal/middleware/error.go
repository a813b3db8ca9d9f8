package middleware

import (
	"errors"
	"net/http"

	"Simple_Twitter/internal/pkg"

	"github.com/gin-gonic/gin"
)

// ErrorHandler 统一错误出口。业务层只构造错误，handler 调 c.Error 丢进来，
// 这里翻译成响应：带状态提示的用提示（目前只有推文 404），其余一律 500。
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		status := http.StatusInternalServerError
		var appErr *pkg.AppError
		if errors.As(err, &appErr) && appErr.Status != 0 {
			status = appErr.Status
		}

		c.JSON(status, gin.H{
			"status":  "error",
			"message": err.Error(),
		})
	}
}
