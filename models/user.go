package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Username     string `gorm:"unique;not null" json:"username"`
	Email        string `gorm:"unique;not null" json:"email"`
	Phone        string `json:"phoneNumber"`
	Password     string `gorm:"not null" json:"-"`
	Role         string `gorm:"not null" json:"role"`
	FullName     string `json:"fullName"`
	DateOfBirth  string `json:"dateOfBirth"`
	ProfilePhoto []byte `gorm:"type:mediumblob" json:"-"`

	Addresses      []Address       `gorm:"foreignKey:UserID" json:"-"`
	PaymentMethods []PaymentMethod `gorm:"foreignKey:UserID" json:"-"`
	Orders         []Order         `gorm:"foreignKey:UserID" json:"-"`
}
