package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	OrderStatusPlaced    = "Placed"    //建立訂單時的初始狀態
	OrderStatusCancelled = "Cancelled" //終止狀態
)

type Order struct {
	gorm.Model
	OrderNumber   string          `gorm:"unique;not null" json:"orderNumber"`
	UserID        uint            `gorm:"index;not null" json:"userId"`
	TotalPrice    decimal.Decimal `gorm:"type:decimal(10,2)" json:"totalPrice"`
	Status        string          `gorm:"not null" json:"status"`
	DeliveryDate  string          `json:"deliveryDate"`
	AddressJSON   string          `gorm:"type:text" json:"addressJson"`
	PaymentMethod string          `json:"paymentMethod"`
	Items         []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
}
