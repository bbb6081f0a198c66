package handlers

import (
	"net/http"

	"rongshu/internal/db"
	"rongshu/internal/middleware"
	"rongshu/internal/models"
	"rongshu/internal/services"

	"github.com/gin-gonic/gin"
)

type ReactionHandler struct{}

func NewReactionHandler() *ReactionHandler {
	return &ReactionHandler{}
}

type reactPayload struct {
	Type string `json:"type" binding:"required"`
}

// React 对帖子添加或变更反应。每人每帖一条反应，重复提交时改类型。
// 每次反应变更都调度一次分数重算
func (h *ReactionHandler) React(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	var payload reactPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.IsValidReaction(payload.Type) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid reaction type"})
		return
	}

	var post models.Post
	if err := db.DB.Where("pid = ?", c.Param("pid")).First(&post).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}

	var reaction models.Reaction
	err := db.DB.Where("user_id = ? AND post_id = ?", user.ID, post.ID).First(&reaction).Error
	if err == nil {
		// 已有反应，更新类型
		if reaction.Type != payload.Type {
			if err := db.DB.Model(&reaction).UpdateColumn("type", payload.Type).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update reaction"})
				return
			}
		}
	} else {
		reaction = models.Reaction{UserID: user.ID, PostID: post.ID, Type: payload.Type}
		if err := db.DB.Create(&reaction).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create reaction"})
			return
		}
	}

	// 异步重算帖子分数和反应统计
	services.GetScoringService().ScheduleUpdate(post.ID)

	c.JSON(http.StatusOK, reaction)
}

// Unreact 取消自己的反应
func (h *ReactionHandler) Unreact(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	var post models.Post
	if err := db.DB.Where("pid = ?", c.Param("pid")).First(&post).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}

	db.DB.Where("user_id = ? AND post_id = ?", user.ID, post.ID).Delete(&models.Reaction{})

	services.GetScoringService().ScheduleUpdate(post.ID)

	c.JSON(http.StatusOK, gin.H{"message": "reaction removed"})
}
