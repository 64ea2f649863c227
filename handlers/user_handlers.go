package handlers

import (
	"io"
	"net/http"

	"ecom/models"
	"ecom/services"

	"github.com/gin-gonic/gin"
)

// 註冊使用者帳戶
func RegisterHandler(c *gin.Context, svc *services.UserService) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Email    string `json:"email" binding:"required"`
		Phone    string `json:"phoneNumber"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request body",
		})
		return
	}

	if err := svc.Register(req.Username, req.Email, req.Phone, req.Password); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "User registered successfully",
	})
}

// 登入。帳號欄位可填使用者名稱、信箱或電話
func LoginHandler(c *gin.Context, svc *services.UserService) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request body",
		})
		return
	}

	result, err := svc.Login(c, req.Username, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	c.Header("Authorization", "Bearer "+result.Token)
	c.JSON(http.StatusOK, result)
}

func LogOutHandler(c *gin.Context, svc *services.UserService) {
	token, exists := c.Get("Token")
	if !exists {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Missing token",
		})
		return
	}

	if err := svc.Logout(c, token.(string)); err != nil {
		writeError(c, err)
		return
	}

	c.Header("Authorization", "")
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Logged out successfully",
	})
}

func profileResponse(user *models.User) gin.H {
	return gin.H{
		"id":          user.ID,
		"username":    user.Username,
		"fullName":    user.FullName,
		"email":       user.Email,
		"phoneNumber": user.Phone,
		"dateOfBirth": user.DateOfBirth,
	}
}

// 查詢使用者資料，大頭照一律走獨立端點
func GetUserProfileHandler(c *gin.Context, svc *services.UserService) {
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

// 變更使用者資料
func UpdateUserProfileHandler(c *gin.Context, svc *services.UserService) {
	userID, ok := parseIDParam(c, "userID")
	if !ok {
		return
	}

	var req struct {
		Username    string `json:"username" binding:"required"`
		FullName    string `json:"fullName"`
		Phone       string `json:"phoneNumber"`
		DateOfBirth string `json:"dateOfBirth"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request body",
		})
		return
	}

	user, err := svc.UpdateProfile(userID, services.UpdateProfileInput{
		Username:    req.Username,
		FullName:    req.FullName,
		Phone:       req.Phone,
		DateOfBirth: req.DateOfBirth,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, profileResponse(user))
}

// 上傳大頭照，multipart欄位名稱為file
func UploadPhotoHandler(c *gin.Context, svc *services.UserService) {
	userID, ok := parseIDParam(c, "userID")
	if !ok {
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Missing file",
		})
		return
	}

	opened, err := file.Open()
	if err != nil {
		writeError(c, err)
		return
	}
	defer opened.Close()

	data, err := io.ReadAll(opened)
	if err != nil {
		writeError(c, err)
		return
	}

	user, err := svc.UploadPhoto(userID, data)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, profileResponse(user))
}

// 以原始位元組回傳大頭照
func GetUserPhotoHandler(c *gin.Context, svc *services.UserService) {
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
