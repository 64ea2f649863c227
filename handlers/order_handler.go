package handlers

import (
	"net/http"

	"ecom/services"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// 送出訂單
func SendOrderHandler(c *gin.Context, svc *services.OrderService) {
	userID, ok := parseIDParam(c, "userID")
	if !ok {
		return
	}

	var req struct {
		TotalPrice    decimal.Decimal           `json:"totalPrice"`
		PaymentMethod string                    `json:"paymentMethod"`
		AddressJSON   string                    `json:"addressJson"`
		Items         []services.OrderItemInput `json:"items" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request body",
		})
		return
	}

	order, err := svc.Create(userID, services.CreateOrderInput{
		TotalPrice:    req.TotalPrice,
		PaymentMethod: req.PaymentMethod,
		AddressJSON:   req.AddressJSON,
		Items:         req.Items,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

// 查詢訂單列表
func GetOrderListHandler(c *gin.Context, svc *services.OrderService) {
	userID, ok := parseIDParam(c, "userID")
	if !ok {
		return
	}

	orders, err := svc.ListByUser(userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, orders)
}

// 查詢訂單詳細資訊
func GetOrderDataHandler(c *gin.Context, svc *services.OrderService) {
	userID, ok := parseIDParam(c, "userID")
	if !ok {
		return
	}
	orderID, ok := parseIDParam(c, "orderID")
	if !ok {
		return
	}

	order, err := svc.GetByUser(userID, orderID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

// 取消訂單
func CancelOrderHandler(c *gin.Context, svc *services.OrderService) {
	userID, ok := parseIDParam(c, "userID")
	if !ok {
		return
	}
	orderID, ok := parseIDParam(c, "orderID")
	if !ok {
		return
	}

	order, err := svc.Cancel(userID, orderID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

// 查詢訂單詳細資訊(admin，不限擁有者)
func GetOrderAdminHandler(c *gin.Context, svc *services.OrderService) {
	orderID, ok := parseIDParam(c, "orderID")
	if !ok {
		return
	}

	order, err := svc.AdminGet(orderID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

// 更新訂單狀態與出貨日期(admin)，只覆寫有提供的欄位
func UpdateOrderAdminHandler(c *gin.Context, svc *services.OrderService) {
	orderID, ok := parseIDParam(c, "orderID")
	if !ok {
		return
	}

	var req struct {
		Status       *string `json:"status"`
		DeliveryDate *string `json:"deliveryDate"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request body",
		})
		return
	}

	order, err := svc.AdminUpdate(orderID, req.Status, req.DeliveryDate)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

// 查詢特定使用者的訂單列表(admin)
func GetUserOrdersAdminHandler(c *gin.Context, svc *services.OrderService) {
	userID, ok := parseIDParam(c, "userID")
	if !ok {
		return
	}

	orders, err := svc.ListByUser(userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, orders)
}
