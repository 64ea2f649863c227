package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"ecom/services"

	"github.com/gin-gonic/gin"
)

// 解析路徑上的數字ID，失敗時直接回應400
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid " + name,
		})
		return 0, false
	}
	return uint(id), true
}

// 將領域錯誤對應至HTTP狀態碼。
// 未分類的錯誤一律回傳500，不洩漏內部細節。
func writeError(c *gin.Context, err error) {
	var (
		validationErr  *services.ValidationError
		conflictErr    *services.ConflictError
		notFoundErr    *services.NotFoundError
		authzErr       *services.AuthorizationError
		credentialsErr *services.InvalidCredentialsError
	)

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": validationErr.Message})
	case errors.As(err, &conflictErr):
		c.JSON(http.StatusConflict, gin.H{"success": false, "message": conflictErr.Message})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": notFoundErr.Message})
	case errors.As(err, &authzErr):
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": authzErr.Message})
	case errors.As(err, &credentialsErr):
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": credentialsErr.Message})
	default:
		log.Printf("未分類錯誤: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
	}
}
