package middleware

import (
	"log"
	"strings"

	"ecom/jwt"

	"github.com/gin-gonic/gin"
)

func AuthMiddleware(issuer *jwt.Issuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		token := strings.TrimPrefix(authHeader, "Bearer ")

		if token == "" {
			c.Next()
			return
		}

		//如Token不合法或已撤銷則視為未登入
		username, role, err := issuer.Verify(c, token)
		if err != nil {
			log.Printf("無法驗證Token: %v", err)
			c.Next()
			return
		}

		c.Set("Token", token)
		c.Set("Username", username)
		c.Set("Role", role)
		c.Next()
	}
}
