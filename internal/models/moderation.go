package models

import (
	"time"
)

// UserWarning 管理员或系统对用户的警告记录
type UserWarning struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Reason    string    `gorm:"size:200;not null" json:"reason"`
	CreatedAt time.Time `json:"created_at"`
}

// UserBan 封禁记录，Duration 按次数阶梯递增
type UserBan struct {
	ID        uint          `gorm:"primaryKey" json:"id"`
	UserID    uint          `gorm:"not null;index" json:"user_id"`
	Reason    string        `gorm:"size:200;not null" json:"reason"`
	Duration  time.Duration `gorm:"not null" json:"duration"`
	CreatedAt time.Time     `json:"created_at"`
}
