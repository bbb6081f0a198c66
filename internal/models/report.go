package models

import (
	"time"
)

type Report struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	ReporterID     uint   `gorm:"not null;index" json:"reporter_id"`
	ReportedUserID uint   `gorm:"not null;index" json:"reported_user_id"`
	ItemType       string `gorm:"size:20;not null" json:"item_type"` // "post", "comment"
	ItemID         uint   `gorm:"not null;index" json:"item_id"`
	Reason         string `gorm:"size:200;not null" json:"reason"`

	// 审核结果，nil 表示未审核
	IsValid    *bool      `json:"is_valid"`
	ReviewedAt *time.Time `json:"reviewed_at"`
	ReviewedBy *uint      `json:"reviewed_by"`

	CreatedAt time.Time `json:"created_at"`
}
