package models

import "gorm.io/gorm"

type Address struct {
	gorm.Model
	UserID    uint   `gorm:"index;not null" json:"userId"`
	Label     string `json:"label"`
	FullName  string `json:"fullName"`
	Phone     string `json:"phoneNumber"`
	Street    string `json:"street"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zipCode"`
	Country   string `json:"country"`
	IsDefault bool   `json:"isDefault"`
}
