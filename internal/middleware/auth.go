package middleware

import (
	"net/http"
	"rongshu/internal/db"
	"rongshu/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const CheckUserKey = "user"

// LoadUser 从 session 加载当前用户放入 context，未登录时直接放行
func LoadUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userID := session.Get("user_id")
		if userID != nil {
			var user models.User
			if err := db.DB.First(&user, userID).Error; err == nil {
				c.Set(CheckUserKey, &user)
			}
		}
		c.Next()
	}
}

// AuthRequired ensures a user is logged in
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, exists := c.Get(CheckUserKey)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "login required"})
			return
		}

		// 封禁期内禁止写操作
		if u, ok := user.(*models.User); ok && u.IsBanned() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":          "account banned",
				"ban_expires_at": u.CurrentBanEnd,
			})
			return
		}

		c.Next()
	}
}

// AdminRequired 管理端路由守卫
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, exists := c.Get(CheckUserKey)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "login required"})
			return
		}
		if u, ok := user.(*models.User); !ok || u.Role != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin only"})
			return
		}
		c.Next()
	}
}
