package models

import (
	"time"

	"gorm.io/gorm"
)

type UserRole string

const (
	RoleBuyer  UserRole = "buyer"
	RoleSeller UserRole = "seller"
	RoleAdmin  UserRole = "admin"
)

type User struct {
	ID              uint           `json:"id" gorm:"primarykey"`
	FullName        string         `json:"full_name" gorm:"not null"`
	Username        string         `json:"username" gorm:"uniqueIndex;not null"`
	Email           string         `json:"email" gorm:"uniqueIndex;not null"`
	Password        string         `json:"-" gorm:"not null"`
	Role            UserRole       `json:"role" gorm:"default:'buyer'"`
	IsBanned        bool           `json:"is_banned" gorm:"default:false"`
	LastLogin       *time.Time     `json:"last_login"`
	ProfileImageURL string         `json:"profile_image_url"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `json:"-" gorm:"index"`
}
