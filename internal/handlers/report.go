package handlers

import (
	"net/http"

	"rongshu/internal/db"
	"rongshu/internal/middleware"
	"rongshu/internal/models"
	"rongshu/internal/utils"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct{}

func NewReportHandler() *ReportHandler {
	return &ReportHandler{}
}

type reportPayload struct {
	Reason string `json:"reason" binding:"required"`
}

// Report 举报帖子或评论，被举报人从内容作者解析
func (h *ReportHandler) Report(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	itemType := c.Param("type") // "post" or "comment"
	itemID := uint(utils.StringToInt(c.Param("id")))

	var payload reportPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var reportedUserID uint
	switch itemType {
	case "post":
		var post models.Post
		if err := db.DB.First(&post, itemID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
			return
		}
		reportedUserID = post.UserID
	case "comment":
		var comment models.Comment
		if err := db.DB.First(&comment, itemID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "comment not found"})
			return
		}
		reportedUserID = comment.UserID
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item type"})
		return
	}

	report := models.Report{
		ReporterID:     user.ID,
		ReportedUserID: reportedUserID,
		ItemType:       itemType,
		ItemID:         itemID,
		Reason:         payload.Reason,
	}
	if err := db.DB.Create(&report).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create report"})
		return
	}

	c.JSON(http.StatusCreated, report)
}
