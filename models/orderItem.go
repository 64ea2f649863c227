package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// 下單當下的商品快照，建立後不再變動
type OrderItem struct {
	gorm.Model
	OrderID   uint            `gorm:"index;not null" json:"orderId"`
	ProductID uint            `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	Quantity  uint            `gorm:"not null" json:"quantity"`
}
