package services

import (
	"fmt"
	"time"

	"rongshu/internal/db"
	"rongshu/internal/models"

	"gorm.io/gorm"
)

const (
	WarningThreshold = 3                   // 累计警告达到后升级为封禁
	ReportThreshold  = 5                   // 自动封禁所需的有效举报数
	ReportWindow     = 30 * 24 * time.Hour // 有效举报的统计窗口
)

// BanDuration 按封禁次数阶梯递增：1 天 / 7 天 / 30 天 / 365 天
func BanDuration(banCount int) time.Duration {
	switch banCount {
	case 1:
		return 24 * time.Hour
	case 2:
		return 7 * 24 * time.Hour
	case 3:
		return 30 * 24 * time.Hour
	default:
		return 365 * 24 * time.Hour
	}
}

// WarnUser 给用户记一次警告，累计达到阈值时直接升级为封禁
func WarnUser(userID uint, reason string) error {
	var user models.User
	if err := db.DB.First(&user, userID).Error; err != nil {
		return err
	}

	now := time.Now()
	user.WarningCount++
	user.LastWarningAt = &now

	if err := db.DB.Model(&user).UpdateColumns(map[string]interface{}{
		"warning_count":   user.WarningCount,
		"last_warning_at": now,
	}).Error; err != nil {
		return err
	}

	if user.WarningCount >= WarningThreshold {
		return BanUser(userID, reason)
	}

	return db.DB.Create(&models.UserWarning{UserID: userID, Reason: reason}).Error
}

// BanUser 封禁用户，时长按历史封禁次数阶梯递增
func BanUser(userID uint, reason string) error {
	var user models.User
	if err := db.DB.First(&user, userID).Error; err != nil {
		return err
	}

	user.BanCount++
	duration := BanDuration(user.BanCount)
	banEnd := time.Now().Add(duration)

	return db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&user).UpdateColumns(map[string]interface{}{
			"ban_count":       user.BanCount,
			"current_ban_end": banEnd,
		}).Error; err != nil {
			return err
		}

		ban := models.UserBan{UserID: userID, Reason: reason, Duration: duration}
		return tx.Create(&ban).Error
	})
}

// ProcessReport 管理员审核举报。判定有效时累计被举报人的有效举报数，
// 并触发自动封禁检查
func ProcessReport(reportID uint, isValid bool, reviewerID uint) error {
	var report models.Report
	if err := db.DB.First(&report, reportID).Error; err != nil {
		return err
	}
	if report.ReviewedAt != nil {
		return fmt.Errorf("举报 %d 已审核过", reportID)
	}

	now := time.Now()
	if err := db.DB.Model(&report).UpdateColumns(map[string]interface{}{
		"is_valid":    isValid,
		"reviewed_at": now,
		"reviewed_by": reviewerID,
	}).Error; err != nil {
		return err
	}

	updates := map[string]interface{}{
		"total_reports": gorm.Expr("total_reports + 1"),
	}
	if isValid {
		updates["valid_reports"] = gorm.Expr("valid_reports + 1")
	}
	if err := db.DB.Model(&models.User{}).
		Where("id = ?", report.ReportedUserID).
		UpdateColumns(updates).Error; err != nil {
		return err
	}

	if isValid {
		return CheckAutoBan(report.ReportedUserID)
	}
	return nil
}

// CheckAutoBan 统计窗口内的有效举报数，达到阈值自动封禁
func CheckAutoBan(userID uint) error {
	var count int64
	err := db.DB.Model(&models.Report{}).
		Where("reported_user_id = ? AND is_valid = ? AND created_at >= ?",
			userID, true, time.Now().Add(-ReportWindow)).
		Count(&count).Error
	if err != nil {
		return err
	}

	if count >= ReportThreshold {
		return BanUser(userID, "多次有效举报触发自动封禁")
	}
	return nil
}
