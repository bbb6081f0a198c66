package router

import (
	"rongshu/internal/handlers"
	"rongshu/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	// Handlers
	authHandler := handlers.NewAuthHandler()
	postHandler := handlers.NewPostHandler()
	commentHandler := handlers.NewCommentHandler()
	reactionHandler := handlers.NewReactionHandler()
	reportHandler := handlers.NewReportHandler()
	userHandler := handlers.NewUserHandler()
	adminHandler := handlers.NewAdminHandler()

	// 公共路由 (Public Routes)
	r.GET("/", postHandler.ListTop)                      // 热门帖子
	r.GET("/new", postHandler.ListNew)                   // 最新帖子
	r.GET("/p/:pid", postHandler.Detail)                 // 帖子详情（含记忆关联）
	r.GET("/p/:pid/comments", commentHandler.List)       // 评论列表
	r.GET("/u/:id", userHandler.Profile)                 // 用户主页
	r.GET("/u/:id/analytics", userHandler.VoteAnalytics) // 用户投票分析

	r.POST("/signup", authHandler.Register) // 提交注册
	r.POST("/login", authHandler.Login)     // 提交登录
	r.GET("/logout", authHandler.Logout)    // 退出登录

	// 受保护路由 (Protected Routes)
	authorized := r.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.POST("/submit", postHandler.Create)               // 发布帖子
		authorized.POST("/p/:pid/comment", commentHandler.Create)    // 发表评论
		authorized.POST("/p/:pid/react", reactionHandler.React)      // 添加反应
		authorized.DELETE("/p/:pid/react", reactionHandler.Unreact)  // 取消反应
		authorized.POST("/report/:type/:id", reportHandler.Report)   // 举报内容
		authorized.GET("/dashboard/credits", userHandler.CreditLogs) // 积分明细
	}

	// 管理端路由 (Admin Routes)
	admin := r.Group("/admin")
	admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
	{
		admin.GET("/banned-words", adminHandler.ListBannedWords)
		admin.POST("/banned-words", adminHandler.AddBannedWord)
		admin.POST("/banned-words/bulk", adminHandler.AddBannedWordsBulk)
		admin.PUT("/banned-words/:id", adminHandler.UpdateBannedWord)
		admin.DELETE("/banned-words/:id", adminHandler.RemoveBannedWord)

		admin.POST("/reports/:id/review", adminHandler.ReviewReport)
		admin.POST("/users/:id/warn", adminHandler.WarnUser)
		admin.POST("/users/:id/ban", adminHandler.BanUser)
	}
}
