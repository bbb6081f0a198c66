package models

import (
	"time"
)

type Comment struct {
	ID       uint     `gorm:"primaryKey" json:"id"`
	Cid      string   `gorm:"uniqueIndex;size:8;not null" json:"cid"`
	PostID   uint     `gorm:"not null;index" json:"post_id"`
	Post     Post     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"post"`
	UserID   uint     `gorm:"not null;index" json:"user_id"`
	User     User     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	ParentID *uint    `gorm:"index" json:"parent_id"` // Nullable for top-level comments
	Parent   *Comment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"parent"`
	Content  string   `gorm:"type:text;not null" json:"content"`

	// 评论与帖子共用同一套审核标记
	IsFlagged         bool   `gorm:"default:false" json:"is_flagged"`
	FlagReason        string `gorm:"size:200" json:"flag_reason"`
	ContainsProfanity bool   `gorm:"default:false" json:"contains_profanity"`

	CreatedAt time.Time `json:"created_at"`
}
