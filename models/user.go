package models

import (
	"time"
)

const (
	RoleFaculty = "faculty"
	RoleAdmin   = "admin"
)

type User struct {
	UserID      int        `gorm:"primaryKey;column:user_id" json:"user_id"`
	Name        string     `gorm:"column:name" json:"name"`
	Email       string     `gorm:"column:email;unique" json:"email"`
	Password    string     `gorm:"column:password" json:"-"`
	Role        string     `gorm:"column:role" json:"role"`
	Department  string     `gorm:"column:department" json:"department"`
	Designation string     `gorm:"column:designation" json:"designation"`
	Phone       *string    `gorm:"column:phone" json:"phone,omitempty"`
	Address     *string    `gorm:"column:address" json:"address,omitempty"`
	IsActive    bool       `gorm:"column:is_active;default:true" json:"is_active"`
	CreateAt    *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt    *time.Time `gorm:"column:update_at" json:"update_at"`
	DeleteAt    *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`
}

func (User) TableName() string {
	return "users"
}
