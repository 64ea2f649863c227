package models

import "gorm.io/gorm"

type PaymentMethod struct {
	gorm.Model
	UserID         uint   `gorm:"index;not null" json:"userId"`
	CardholderName string `gorm:"not null" json:"cardholderName"`
	CardNumber     string `gorm:"not null" json:"cardNumber"` //只儲存末四碼
	CardType       string `gorm:"not null" json:"cardType"`
	ExpiryMonth    string `gorm:"not null" json:"expiryMonth"`
	ExpiryYear     string `gorm:"not null" json:"expiryYear"`
	IsDefault      bool   `json:"isDefault"`
}
