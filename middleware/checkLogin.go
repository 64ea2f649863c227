package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// 檢查是否有登入，沒有則中止請求
func CheckLoginMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		_, exists := c.Get("Username")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{
				"message": "Not logged in",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
