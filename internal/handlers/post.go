package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"rongshu/internal/db"
	"rongshu/internal/middleware"
	"rongshu/internal/models"
	"rongshu/internal/services"
	"rongshu/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PostHandler struct{}

func NewPostHandler() *PostHandler {
	return &PostHandler{}
}

type postCreatePayload struct {
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content" binding:"required"`
	IsRepost bool   `json:"is_repost"`
}

// Create 发帖。固定顺序：
// 违禁词守门（同步，bans 命中直接拒绝） -> 打码 -> 入库 ->
// 异步审核标记（脏话/冒犯性/情感/链接） -> 经济分结算 -> 记忆关联
func (h *PostHandler) Create(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	var payload postCreatePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if strings.TrimSpace(payload.Content) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "content cannot be empty"})
		return
	}

	filter := services.GetContentFilterService()

	// 守门检查：ban 词命中直接拒绝，并把命中的词返回给调用方
	warnings, bans := filter.Check(payload.Content)
	if len(bans) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":        "content contains banned words",
			"banned_words": bans,
		})
		return
	}
	if len(warnings) > 0 {
		log.Printf("用户 %d 的帖子包含警告词: %s", user.ID, strings.Join(warnings, ", "))
	}

	// warn 词打码后入库
	filtered := filter.Filter(payload.Content)

	post := models.Post{
		Pid:      utils.RandomID(8),
		UserID:   user.ID,
		Title:    strings.TrimSpace(payload.Title),
		Content:  filtered,
		IsRepost: payload.IsRepost,
	}
	if err := db.DB.Create(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create post"})
		return
	}

	db.DB.Model(&models.User{}).Where("id = ?", user.ID).
		UpdateColumn("post_count", gorm.Expr("post_count + 1"))

	// 异步审核标记：分类器延迟和可用性不影响发布
	go flagContent(post.ID, post.Content)

	// 经济分结算：每次发帖事件恰好触发一次
	if _, err := services.UpdatePostEconomy(post.ID, services.ActionPostScored); err != nil {
		log.Printf("帖子 %d 经济分结算失败: %v", post.ID, err)
	}

	// 异步建立活体记忆关联
	go func() {
		if err := services.GetMemoryService().LinkRelatedPosts(post.ID); err != nil {
			log.Printf("帖子 %d 记忆关联失败: %v", post.ID, err)
		}
	}()

	post.ContentHTML = utils.RenderMarkdown(post.Content)
	c.JSON(http.StatusCreated, post)
}

// flagContent 发布后的异步审核标记，只写元数据，不拦截任何内容
func flagContent(postID uint, content string) {
	detector := services.GetProfanityService()

	offensive, confidence := detector.IsOffensive(content)
	sentiment, sentimentScore := detector.Sentiment(content)

	columns := moderationColumns(detector.IsProfane(content),
		offensive, confidence, sentiment, sentimentScore, utils.ValidateURLs(content))

	if err := db.DB.Model(&models.Post{}).Where("id = ?", postID).
		UpdateColumns(columns).Error; err != nil {
		log.Printf("帖子 %d 审核标记写入失败: %v", postID, err)
	}
}

// moderationColumns 汇总审核标记列。冒犯性置信度记在 flag_reason 里，
// sentiment/sentiment_score 始终成对来自情感分类器
func moderationColumns(profane, offensive bool, confidence float64,
	sentiment string, sentimentScore float64, validURLs bool) map[string]interface{} {
	columns := map[string]interface{}{
		"sentiment":       sentiment,
		"sentiment_score": sentimentScore,
	}
	if profane {
		columns["contains_profanity"] = true
	}
	if offensive {
		columns["is_flagged"] = true
		columns["flag_reason"] = fmt.Sprintf("offensive content detected (confidence: %.2f)", confidence)
	}
	if !validURLs {
		columns["has_invalid_urls"] = true
	}
	return columns
}

// Detail 帖子详情，带渲染后的正文、评论数和记忆关联
func (h *PostHandler) Detail(c *gin.Context) {
	var post models.Post
	if err := db.DB.Preload("User").Where("pid = ?", c.Param("pid")).First(&post).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}

	var commentCount int64
	db.DB.Model(&models.Comment{}).Where("post_id = ?", post.ID).Count(&commentCount)
	post.CommentCount = int(commentCount)
	post.ContentHTML = utils.RenderMarkdown(post.Content)

	var relations []models.PostRelation
	db.DB.Where("source_post_id = ?", post.ID).
		Order("similarity_score DESC").Find(&relations)

	c.JSON(http.StatusOK, gin.H{
		"post":             post,
		"related_memories": relations,
	})
}

// ListTop 按分数排序的帖子列表
func (h *PostHandler) ListTop(c *gin.Context) {
	page := utils.StringToInt(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	const pageSize = 30

	var posts []models.Post
	if err := db.DB.Preload("User").
		Order("score DESC, created_at DESC").
		Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&posts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load posts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts, "page": page})
}

// ListNew 按创建时间排序的帖子列表
func (h *PostHandler) ListNew(c *gin.Context) {
	page := utils.StringToInt(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	const pageSize = 30

	var posts []models.Post
	if err := db.DB.Preload("User").
		Order("created_at DESC").
		Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&posts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load posts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts, "page": page})
}
