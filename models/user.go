package models

import (
	"time"
)

type UserAuthority string

const (
	RoleAdmin UserAuthority = "ROLE_ADMIN"
	RoleUser  UserAuthority = "ROLE_USER"
)

type User struct {
	ID             string        `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Email          string        `json:"email" gorm:"uniqueIndex" binding:"required,email"`
	Password       string        `json:"-"`
	Nickname       string        `json:"nickname"`
	Birth          string        `json:"birth"`
	Authority      UserAuthority `json:"authority"`
	ProfileImage   string        `json:"profileImage" gorm:"column:profile_image"`
	Categories     []Category    `json:"categories,omitempty" gorm:"many2many:user_categories;"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
}

type UserCreate struct {
	Email      string   `json:"email" binding:"required,email"`
	Password   string   `json:"password" binding:"required,min=6"`
	Nickname   string   `json:"nickname" binding:"required"`
	Birth      string   `json:"birth"`
	Categories []string `json:"categories"`
}

type UserLogin struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserInfo is the profile projection returned by the users endpoints.
type UserInfo struct {
	ID           string        `json:"id"`
	Email        string        `json:"email"`
	Nickname     string        `json:"nickname"`
	Birth        string        `json:"birth"`
	Authority    UserAuthority `json:"authority"`
	ProfileImage string        `json:"profileImage"`
	Categories   []string      `json:"categories"`
}

func (User) TableName() string {
	return "users"
}
