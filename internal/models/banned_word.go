package models

import (
	"time"
)

// 违禁词级别
const (
	SeverityWarn = "warn" // 仅记录日志，不拦截
	SeverityBan  = "ban"  // 硬拦截，拒绝发布
)

type BannedWord struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Word      string    `gorm:"uniqueIndex;not null" json:"word"`
	Severity  string    `gorm:"size:10;default:'warn';not null" json:"severity"` // warn, ban
	IsRegex   bool      `gorm:"default:false" json:"is_regex"`                   // true 时 Word 按原始正则使用
	CreatedBy *uint     `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}
