package handlers

import (
	"net/http"
	"strings"

	"rongshu/internal/db"
	"rongshu/internal/middleware"
	"rongshu/internal/models"
	"rongshu/internal/services"
	"rongshu/internal/utils"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct{}

func NewAdminHandler() *AdminHandler {
	return &AdminHandler{}
}

type bannedWordPayload struct {
	Word     string `json:"word" binding:"required"`
	Severity string `json:"severity"`
	IsRegex  bool   `json:"is_regex"`
}

func normalizeSeverity(s string) string {
	if s == models.SeverityBan {
		return models.SeverityBan
	}
	return models.SeverityWarn
}

// ListBannedWords 违禁词列表，支持搜索、排序和分页
func (h *AdminHandler) ListBannedWords(c *gin.Context) {
	query := db.DB.Model(&models.BannedWord{})

	if search := c.Query("search"); search != "" {
		query = query.Where("word ILIKE ?", "%"+search+"%")
	}

	// 只允许按词或创建时间稳定排序
	sortBy := "word"
	if c.Query("sort_by") == "created_at" {
		sortBy = "created_at"
	}
	order := "ASC"
	if c.Query("sort_order") == "desc" {
		order = "DESC"
	}

	var total int64
	query.Count(&total)

	page := utils.StringToInt(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	const pageSize = 50

	var words []models.BannedWord
	if err := query.Order(sortBy + " " + order).
		Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&words).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load banned words"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"total": total, "words": words})
}

// AddBannedWord 新增违禁词，重复的词拒绝
func (h *AdminHandler) AddBannedWord(c *gin.Context) {
	admin := c.MustGet(middleware.CheckUserKey).(*models.User)

	var payload bannedWordPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing models.BannedWord
	if err := db.DB.Where("LOWER(word) = LOWER(?)", payload.Word).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "word already exists in the banned list"})
		return
	}

	word := models.BannedWord{
		Word:      payload.Word,
		Severity:  normalizeSeverity(payload.Severity),
		IsRegex:   payload.IsRegex,
		CreatedBy: &admin.ID,
	}
	if err := db.DB.Create(&word).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create banned word"})
		return
	}

	services.GetContentFilterService().Invalidate()

	c.JSON(http.StatusCreated, word)
}

// AddBannedWordsBulk 批量新增违禁词
func (h *AdminHandler) AddBannedWordsBulk(c *gin.Context) {
	admin := c.MustGet(middleware.CheckUserKey).(*models.User)

	var payloads []bannedWordPayload
	if err := c.ShouldBindJSON(&payloads); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	words := make([]models.BannedWord, 0, len(payloads))
	for _, p := range payloads {
		if strings.TrimSpace(p.Word) == "" {
			continue
		}
		words = append(words, models.BannedWord{
			Word:      p.Word,
			Severity:  normalizeSeverity(p.Severity),
			IsRegex:   p.IsRegex,
			CreatedBy: &admin.ID,
		})
	}
	if len(words) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no valid words"})
		return
	}

	if err := db.DB.Create(&words).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create banned words"})
		return
	}

	services.GetContentFilterService().Invalidate()

	c.JSON(http.StatusCreated, gin.H{"added_words": len(words)})
}

// UpdateBannedWord 修改违禁词
func (h *AdminHandler) UpdateBannedWord(c *gin.Context) {
	id := utils.StringToInt(c.Param("id"))

	var word models.BannedWord
	if err := db.DB.First(&word, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "banned word not found"})
		return
	}

	var payload bannedWordPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	word.Word = payload.Word
	word.Severity = normalizeSeverity(payload.Severity)
	word.IsRegex = payload.IsRegex
	if err := db.DB.Save(&word).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update banned word"})
		return
	}

	services.GetContentFilterService().Invalidate()

	c.JSON(http.StatusOK, word)
}

// RemoveBannedWord 删除违禁词
func (h *AdminHandler) RemoveBannedWord(c *gin.Context) {
	id := utils.StringToInt(c.Param("id"))

	result := db.DB.Delete(&models.BannedWord{}, id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove banned word"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "banned word not found"})
		return
	}

	services.GetContentFilterService().Invalidate()

	c.JSON(http.StatusOK, gin.H{"message": "banned word removed successfully"})
}

type reviewPayload struct {
	IsValid bool `json:"is_valid"`
}

// ReviewReport 审核举报
func (h *AdminHandler) ReviewReport(c *gin.Context) {
	admin := c.MustGet(middleware.CheckUserKey).(*models.User)
	id := uint(utils.StringToInt(c.Param("id")))

	var payload reviewPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.ProcessReport(id, payload.IsValid, admin.ID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "report reviewed"})
}

type moderatePayload struct {
	Reason string `json:"reason" binding:"required"`
}

// WarnUser 警告用户
func (h *AdminHandler) WarnUser(c *gin.Context) {
	id := uint(utils.StringToInt(c.Param("id")))

	var payload moderatePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.WarnUser(id, payload.Reason); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "user warned"})
}

// BanUser 封禁用户
func (h *AdminHandler) BanUser(c *gin.Context) {
	id := uint(utils.StringToInt(c.Param("id")))

	var payload moderatePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.BanUser(id, payload.Reason); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "user banned"})
}
