package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	gorm.Model
	Name          string          `gorm:"not null" json:"name"`
	Description   string          `json:"description"`
	Brand         string          `json:"brand"`
	Price         decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	Category      string          `json:"category"`
	StockQuantity uint            `json:"stockQuantity"`
	Available     bool            `json:"available"`
	ImageName     string          `json:"imageName"`
	ImageType     string          `json:"imageType"`
	ImageData     []byte          `gorm:"type:mediumblob" json:"-"`
}
