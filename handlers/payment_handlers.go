package handlers

import (
	"net/http"

	"ecom/services"

	"github.com/gin-gonic/gin"
)

func GetPaymentMethodsHandler(c *gin.Context, svc *services.UserService) {
	userID, ok := parseIDParam(c, "userID")
	if !ok {
		return
	}

	methods, err := svc.ListPaymentMethods(userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, methods)
}

// 新增付款方式，完整卡號只存在於這個請求的生命週期內
func AddPaymentMethodHandler(c *gin.Context, svc *services.UserService) {
	userID, ok := parseIDParam(c, "userID")
	if !ok {
		return
	}

	var req struct {
		CardholderName string `json:"cardholderName" binding:"required"`
		CardNumber     string `json:"cardNumber" binding:"required"`
		CardType       string `json:"cardType" binding:"required"`
		ExpiryMonth    string `json:"expiryMonth" binding:"required"`
		ExpiryYear     string `json:"expiryYear" binding:"required"`
		IsDefault      bool   `json:"isDefault"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request body",
		})
		return
	}

	method, err := svc.AddPaymentMethod(userID, services.PaymentMethodInput{
		CardholderName: req.CardholderName,
		CardNumber:     req.CardNumber,
		CardType:       req.CardType,
		ExpiryMonth:    req.ExpiryMonth,
		ExpiryYear:     req.ExpiryYear,
		IsDefault:      req.IsDefault,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, method)
}

func DeletePaymentMethodHandler(c *gin.Context, svc *services.UserService) {
	userID, ok := parseIDParam(c, "userID")
	if !ok {
		return
	}
	methodID, ok := parseIDParam(c, "paymentMethodID")
	if !ok {
		return
	}

	if err := svc.DeletePaymentMethod(userID, methodID); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Payment method deleted successfully",
	})
}

func SetDefaultPaymentMethodHandler(c *gin.Context, svc *services.UserService) {
	userID, ok := parseIDParam(c, "userID")
	if !ok {
		return
	}
	methodID, ok := parseIDParam(c, "paymentMethodID")
	if !ok {
		return
	}

	method, err := svc.SetDefaultPaymentMethod(userID, methodID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, method)
}
