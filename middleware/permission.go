package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const adminRole = "ROLE_ADMIN"

// 檢查是否有admin權限，沒有則中止請求
func CheckAdminPermissionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("Role")
		if !exists || role != adminRole {
			c.JSON(http.StatusForbidden, gin.H{
				"message": "Permission denied",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
