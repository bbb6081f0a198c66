package models

import (
	"time"
)

// PostRelation 活体记忆（Living Memory）边：同一作者历史内容之间的
// 有向相似关联，source 指向较新的帖子。(source, target) 唯一，
// 本引擎只创建，不更新也不删除
type PostRelation struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	SourcePostID uint    `gorm:"not null;uniqueIndex:idx_relation_source_target" json:"source_post_id"`
	TargetPostID uint    `gorm:"not null;uniqueIndex:idx_relation_source_target" json:"target_post_id"`
	SimilarityScore float64 `gorm:"default:0" json:"similarity_score"` // [0,1]
	RelationType    string  `gorm:"size:20;default:'semantic';not null" json:"relation_type"`
	CreatedAt       time.Time `json:"created_at"`
}

const RelationTypeSemantic = "semantic"
