package handlers

import (
	"net/http"

	"rongshu/internal/db"
	"rongshu/internal/middleware"
	"rongshu/internal/models"
	"rongshu/internal/services"
	"rongshu/internal/utils"

	"github.com/gin-gonic/gin"
)

type UserHandler struct{}

func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

// Profile 用户主页：基本信息 + 徽章
func (h *UserHandler) Profile(c *gin.Context) {
	id := utils.StringToInt(c.Param("id"))

	var user models.User
	if err := db.DB.First(&user, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	var badges []models.UserBadge
	db.DB.Preload("Badge").Where("user_id = ?", user.ID).Find(&badges)

	var postCount int64
	db.DB.Model(&models.Post{}).Where("user_id = ?", user.ID).Count(&postCount)

	c.JSON(http.StatusOK, gin.H{
		"user":       user,
		"badges":     badges,
		"post_count": postCount,
	})
}

// VoteAnalytics 用户投票分析
func (h *UserHandler) VoteAnalytics(c *gin.Context) {
	id := uint(utils.StringToInt(c.Param("id")))

	analytics, err := services.GetUserVoteAnalytics(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load analytics"})
		return
	}

	c.JSON(http.StatusOK, analytics)
}

// CreditLogs 当前用户的积分明细
func (h *UserHandler) CreditLogs(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	page := utils.StringToInt(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	const pageSize = 50

	var logs []models.CreditLog
	if err := db.DB.Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&logs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load credit logs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"balance": user.SocialCredits,
		"logs":    logs,
	})
}
