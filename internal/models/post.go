package models

import (
	"time"
)

type Post struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Pid    string `gorm:"uniqueIndex;size:8;not null" json:"pid"`
	UserID uint   `gorm:"not null;index" json:"user_id"`
	User   User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	Title  string `gorm:"not null" json:"title"`

	Content  string `gorm:"type:text" json:"content"`
	IsRepost bool   `gorm:"default:false" json:"is_repost"`

	// 审核标记（异步检测写入，不在创建路径上阻塞）
	IsFlagged         bool   `gorm:"default:false" json:"is_flagged"`
	FlagReason        string `gorm:"size:200" json:"flag_reason"`
	ContainsProfanity bool   `gorm:"default:false" json:"contains_profanity"`
	HasInvalidURLs    bool   `gorm:"default:false" json:"has_invalid_urls"`
	Sentiment         string `gorm:"size:20" json:"sentiment"`
	SentimentScore    float64 `gorm:"default:0" json:"sentiment_score"`

	// 分数字段。Score 由两套公式（decay / economy）取 max 合并，
	// ScoreSource 记录当前值来自哪套公式
	Score            float64 `gorm:"default:0" json:"score"`
	ScoreSource      string  `gorm:"size:20" json:"score_source"`
	QualityScore     float64 `gorm:"default:0" json:"quality_score"`
	OriginalityScore float64 `gorm:"default:0" json:"originality_score"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 非数据库字段，用于查询时填充
	ContentHTML  string `gorm:"-" json:"content_html,omitempty"`
	CommentCount int    `gorm:"-" json:"comment_count"`
}

// Score 来源标记
const (
	ScoreSourceDecay   = "decay"   // 投票/评论衰减公式
	ScoreSourceEconomy = "economy" // 质量/互动/原创综合公式
)
