package services

import (
	"log"

	"rongshu/internal/db"
	"rongshu/internal/models"
	"rongshu/internal/utils"

	"gorm.io/gorm"
)

// 积分动作常量
const (
	ActionPostScored    = "发帖质量结算"
	ActionEconomyUpdate = "经济分重算"
)

// UpdatePostEconomy 计算帖子的质量/互动/原创综合分，写回帖子并给作者
// 计入社交积分。调用方保证同一帖子/同一作者不并发触发（见发帖流程），
// 每次内容创作事件最多调用一次
func UpdatePostEconomy(postID uint, action string) (float64, error) {
	var post models.Post
	if err := db.DB.First(&post, postID).Error; err != nil {
		return 0, err
	}

	// 全部反应都算互动，评论双倍权重
	var likes int64
	db.DB.Model(&models.Reaction{}).Where("post_id = ?", postID).Count(&likes)
	var comments int64
	db.DB.Model(&models.Comment{}).Where("post_id = ?", postID).Count(&comments)

	quality := utils.QualityScore(post.Content)
	engagement := utils.EngagementScore(int(likes), int(comments))
	originality := utils.OriginalityScore(post.IsRepost)
	composite := utils.CompositeScore(quality, engagement, originality)

	if err := db.DB.Model(&post).UpdateColumns(map[string]interface{}{
		"quality_score":     quality,
		"originality_score": originality,
	}).Error; err != nil {
		return 0, err
	}

	// 与衰减公式共用 Score 字段，取 max 合并并记录来源。
	// 条件更新在库内复核当前值，和异步重算交错也不会压低分数
	if _, changed := utils.MergeScore(post.Score, composite); changed {
		if err := db.DB.Model(&models.Post{}).
			Where("id = ? AND score < ?", post.ID, composite).
			UpdateColumns(map[string]interface{}{
				"score":        composite,
				"score_source": models.ScoreSourceEconomy,
			}).Error; err != nil {
			return 0, err
		}
	}

	// 积分只增不减
	credit := composite * utils.CreditRate
	if err := AddCredits(post.UserID, credit, action); err != nil {
		log.Printf("给用户 %d 计入社交积分失败: %v", post.UserID, err)
	}

	CheckAndAwardBadges(post.UserID)

	return composite, nil
}

// AddCredits 使用事务添加社交积分并记录明细
// 传入用户 ID、积分变动值、动作描述
func AddCredits(userID uint, amount float64, action string) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		// 1. 创建积分明细记录
		entry := models.CreditLog{
			UserID: userID,
			Amount: amount,
			Action: action,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}

		// 2. 更新用户积分余额
		if err := tx.Model(&models.User{}).
			Where("id = ?", userID).
			UpdateColumn("social_credits", gorm.Expr("social_credits + ?", amount)).
			Error; err != nil {
			return err
		}

		return nil
	})
}

// CheckAndAwardBadges 对照徽章目录检查用户的发帖数和积分余额，
// 授予所有达标且尚未拥有的徽章。先排除已拥有的，保证只授予一次
func CheckAndAwardBadges(userID uint) {
	var user models.User
	if err := db.DB.First(&user, userID).Error; err != nil {
		return
	}

	var postCount int64
	db.DB.Model(&models.Post{}).Where("user_id = ?", userID).Count(&postCount)

	var ownedIDs []uint
	db.DB.Model(&models.UserBadge{}).Where("user_id = ?", userID).Pluck("badge_id", &ownedIDs)

	query := db.DB.Model(&models.Badge{})
	if len(ownedIDs) > 0 {
		query = query.Where("id NOT IN ?", ownedIDs)
	}
	var candidates []models.Badge
	if err := query.Find(&candidates).Error; err != nil {
		return
	}

	for _, badge := range candidates {
		if int(postCount) >= badge.RequiredPosts && user.SocialCredits >= badge.RequiredScore {
			award := models.UserBadge{UserID: userID, BadgeID: badge.ID}
			if err := db.DB.Create(&award).Error; err != nil {
				// 并发竞争下撞唯一索引按已授予处理
				log.Printf("授予徽章 %s 给用户 %d 失败: %v", badge.Name, userID, err)
			}
		}
	}
}
