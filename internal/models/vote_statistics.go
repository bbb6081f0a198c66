package models

import (
	"time"
)

// PostVoteStatistics 帖子的反应聚合统计。每次评分重算时整体重建，
// 不做增量更新，保证部分失败后下一次重算仍然一致
type PostVoteStatistics struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	PostID     uint `gorm:"not null;uniqueIndex" json:"post_id"`
	TotalVotes int  `gorm:"default:0" json:"total_votes"`
	Upvotes    int  `gorm:"default:0" json:"upvotes"`   // like + love + haha + wow
	Downvotes  int  `gorm:"default:0" json:"downvotes"` // sad + angry

	LikeCount  int `gorm:"default:0" json:"like_count"`
	LoveCount  int `gorm:"default:0" json:"love_count"`
	HahaCount  int `gorm:"default:0" json:"haha_count"`
	WowCount   int `gorm:"default:0" json:"wow_count"`
	SadCount   int `gorm:"default:0" json:"sad_count"`
	AngryCount int `gorm:"default:0" json:"angry_count"`

	UpdatedAt time.Time `json:"updated_at"`
}
