package handlers

import (
	"log"
	"net/http"
	"strings"

	"rongshu/internal/db"
	"rongshu/internal/middleware"
	"rongshu/internal/models"
	"rongshu/internal/services"
	"rongshu/internal/utils"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct{}

func NewCommentHandler() *CommentHandler {
	return &CommentHandler{}
}

type commentCreatePayload struct {
	Content  string `json:"content" binding:"required"`
	ParentID *uint  `json:"parent_id"`
}

// Create 发表评论。评论走同一套违禁词守门，
// 创建成功后触发所属帖子的分数重算
func (h *CommentHandler) Create(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	var post models.Post
	if err := db.DB.Where("pid = ?", c.Param("pid")).First(&post).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}

	var payload commentCreatePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if strings.TrimSpace(payload.Content) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "content cannot be empty"})
		return
	}

	filter := services.GetContentFilterService()

	warnings, bans := filter.Check(payload.Content)
	if len(bans) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":        "content contains banned words",
			"banned_words": bans,
		})
		return
	}
	if len(warnings) > 0 {
		log.Printf("用户 %d 的评论包含警告词: %s", user.ID, strings.Join(warnings, ", "))
	}

	comment := models.Comment{
		Cid:      utils.RandomID(8),
		PostID:   post.ID,
		UserID:   user.ID,
		ParentID: payload.ParentID,
		Content:  filter.Filter(payload.Content),
	}
	if err := db.DB.Create(&comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create comment"})
		return
	}

	// 评论变更触发票差公式的分数重算
	go services.GetScoringService().RecomputeVoteScore(post.ID)

	// 异步脏话标记
	go func() {
		if services.GetProfanityService().IsProfane(comment.Content) {
			if err := db.DB.Model(&comment).
				UpdateColumn("contains_profanity", true).Error; err != nil {
				log.Printf("评论 %d 脏话标记写入失败: %v", comment.ID, err)
			}
		}
	}()

	c.JSON(http.StatusCreated, comment)
}

// List 帖子的评论列表
func (h *CommentHandler) List(c *gin.Context) {
	var post models.Post
	if err := db.DB.Where("pid = ?", c.Param("pid")).First(&post).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}

	var comments []models.Comment
	if err := db.DB.Preload("User").
		Where("post_id = ?", post.ID).
		Order("created_at ASC").
		Find(&comments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load comments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments})
}
