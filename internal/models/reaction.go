package models

import (
	"time"
)

// 反应类型，固定枚举。CanonicalReactionOrder 同时定义了统计时的
// 平手裁决顺序，不要调整排列
const (
	ReactionLike  = "like"
	ReactionLove  = "love"
	ReactionHaha  = "haha"
	ReactionWow   = "wow"
	ReactionSad   = "sad"
	ReactionAngry = "angry"
)

var CanonicalReactionOrder = []string{
	ReactionLike, ReactionLove, ReactionHaha, ReactionWow, ReactionSad, ReactionAngry,
}

// IsValidReaction 校验反应类型是否合法
func IsValidReaction(t string) bool {
	for _, r := range CanonicalReactionOrder {
		if r == t {
			return true
		}
	}
	return false
}

type Reaction struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_user_post_reaction" json:"user_id"`
	PostID    uint      `gorm:"not null;index;uniqueIndex:idx_user_post_reaction" json:"post_id"`
	Type      string    `gorm:"size:10;not null" json:"type"`
	CreatedAt time.Time `json:"created_at"`
}
