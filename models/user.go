package models

import (
	"smartpark-backend/utils"

	"gorm.io/gorm"
)

type User struct {
	UserID   uint   `gorm:"primaryKey;autoIncrement" json:"UserID"`
	Username string `gorm:"uniqueIndex;not null" json:"Username"`
	Password string `gorm:"not null" json:"-"`
	FullName string `gorm:"not null" json:"FullName"`
}

// Hash the password before the row is written
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	hashed, err := utils.HashPassword(u.Password)
	if err != nil {
		return err
	}
	u.Password = hashed
	return
}
