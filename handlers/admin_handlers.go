package handlers

import (
	"net/http"

	"ecom/services"

	"github.com/gin-gonic/gin"
)

// 查詢使用者列表(admin)，輕量欄位不含照片
func GetUserListHandler(c *gin.Context, svc *services.UserService) {
	users, err := svc.ListUsers()
	if err != nil {
		writeError(c, err)
		return
	}

	userList := make([]gin.H, 0, len(users))
	for _, user := range users {
		userList = append(userList, gin.H{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
			"fullName": user.FullName,
			"role":     user.Role,
			"enabled":  true,
			"hasPhoto": len(user.ProfilePhoto) > 0,
		})
	}

	c.JSON(http.StatusOK, userList)
}

// 查詢使用者完整資料(admin)
func GetUserProfileAdminHandler(c *gin.Context, svc *services.UserService) {
	userID, ok := parseIDParam(c, "userID")
	if !ok {
		return
	}

	user, err := svc.GetProfile(userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, profileResponse(user))
}

// 查詢使用者大頭照(admin)
func GetUserPhotoAdminHandler(c *gin.Context, svc *services.UserService) {
	userID, ok := parseIDParam(c, "userID")
	if !ok {
		return
	}

	photo, err := svc.GetPhoto(userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.Data(http.StatusOK, "image/jpeg", photo)
}
