package models

import (
	"time"
)

type User struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	Username      string     `gorm:"not null" json:"username"`
	Email         string     `gorm:"uniqueIndex;not null" json:"email"`
	Password      string     `gorm:"not null" json:"-"` // Hash
	Bio           string     `gorm:"size:200" json:"bio"`
	Role          string     `gorm:"size:20;default:'user';not null" json:"role"` // user, admin
	SocialCredits float64    `gorm:"default:0" json:"social_credits"`             // 社交积分，本引擎只增不减
	PostCount     int        `gorm:"default:0" json:"post_count"`
	WarningCount  int        `gorm:"default:0" json:"warning_count"`
	LastWarningAt *time.Time `json:"last_warning_at"`
	BanCount      int        `gorm:"default:0" json:"ban_count"`
	CurrentBanEnd *time.Time `json:"current_ban_end"` // 封禁到期时间，nil 表示未被封禁
	TotalReports  int        `gorm:"default:0" json:"total_reports"`
	ValidReports  int        `gorm:"default:0" json:"valid_reports"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// IsBanned 判断用户当前是否处于封禁期
func (u *User) IsBanned() bool {
	return u.CurrentBanEnd != nil && u.CurrentBanEnd.After(time.Now())
}
