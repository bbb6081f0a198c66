package models

import (
	"time"
)

type Badge struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	Name          string  `gorm:"uniqueIndex;not null" json:"name"`
	Description   string  `gorm:"size:200" json:"description"`
	Icon          string  `gorm:"size:10" json:"icon"` // emoji 图标
	RequiredPosts int     `gorm:"default:0" json:"required_posts"`
	RequiredScore float64 `gorm:"default:0" json:"required_score"` // 社交积分门槛
	CreatedAt     time.Time `json:"created_at"`
}

// UserBadge 用户已获得的徽章，(user, badge) 唯一保证只授予一次
type UserBadge struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index;uniqueIndex:idx_user_badge" json:"user_id"`
	BadgeID   uint      `gorm:"not null;uniqueIndex:idx_user_badge" json:"badge_id"`
	Badge     Badge     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"badge"`
	CreatedAt time.Time `json:"created_at"`
}
