package db

import (
	"log"
	"os"
	"rongshu/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		// Fallback for local dev if not set
		dsn = "host=localhost user=postgres password=postgres dbname=rongshu port=5432 sslmode=disable TimeZone=Asia/Shanghai"
	}

	var err error
	// TranslateError 让驱动错误映射为 gorm.ErrDuplicatedKey 等哨兵值
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Database connection established")

	// Auto Migrate
	err = DB.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Comment{},
		&models.Reaction{},
		&models.PostVoteStatistics{},
		&models.CreditLog{},
		&models.Badge{},
		&models.UserBadge{},
		&models.PostRelation{},
		// 审核相关模型
		&models.BannedWord{},
		&models.Report{},
		&models.UserWarning{},
		&models.UserBan{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	// Seed badge catalogue
	seedBadges()
}

func seedBadges() {
	// 检查是否已有徽章数据
	var count int64
	DB.Model(&models.Badge{}).Count(&count)
	if count > 0 {
		log.Println("Badges already seeded, skipping")
		return
	}

	// 创建预设徽章，门槛为发帖数 + 社交积分
	badges := []models.Badge{
		{Name: "新芽", Description: "发布第一篇帖子", Icon: "🌱", RequiredPosts: 1, RequiredScore: 0},
		{Name: "常客", Description: "持续产出内容", Icon: "🌿", RequiredPosts: 10, RequiredScore: 20},
		{Name: "笔杆子", Description: "高质量内容创作者", Icon: "✍️", RequiredPosts: 30, RequiredScore: 100},
		{Name: "榕树", Description: "社区的中坚力量", Icon: "🌳", RequiredPosts: 100, RequiredScore: 500},
	}

	for _, badge := range badges {
		if err := DB.Create(&badge).Error; err != nil {
			log.Printf("Failed to create badge %s: %v", badge.Name, err)
		}
	}
	log.Println("Initial badges created successfully")
}
