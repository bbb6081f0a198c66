package services

import (
	"errors"
	"log"
	"os"
	"strconv"
	"sync"

	"rongshu/internal/db"
	"rongshu/internal/models"
	"rongshu/internal/utils"

	"gorm.io/gorm"
)

// 相似度门槛默认值。刻意定得低，目标是"松散相关"，不是"近似重复"
const defaultSimilarityThreshold = 0.2

// MemoryService 活体记忆引擎：新内容创建时，在同一作者的历史帖子里
// 发现词汇相似的内容并建立有向关联边
type MemoryService struct {
	Threshold float64
}

var (
	memoryService *MemoryService
	memoryOnce    sync.Once
)

// GetMemoryService 获取单例记忆服务
func GetMemoryService() *MemoryService {
	memoryOnce.Do(func() {
		threshold := defaultSimilarityThreshold
		if v := os.Getenv("MEMORY_SIMILARITY_THRESHOLD"); v != "" {
			if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 && f < 1 {
				threshold = f
			}
		}
		memoryService = &MemoryService{Threshold: threshold}
	})
	return memoryService
}

// SelectRelated 在候选集中挑出相似度超过门槛的帖子，返回待建的边。
// 同作者约束在这里显式校验，不依赖候选查询的作用域；
// 自环和跨作者候选一律跳过
func (s *MemoryService) SelectRelated(source models.Post, candidates []models.Post) []models.PostRelation {
	var relations []models.PostRelation
	for _, candidate := range candidates {
		if candidate.ID == source.ID {
			continue
		}
		if candidate.UserID != source.UserID {
			continue
		}
		similarity := utils.TokenOverlap(source.Content, candidate.Content)
		if similarity > s.Threshold {
			relations = append(relations, models.PostRelation{
				SourcePostID:    source.ID,
				TargetPostID:    candidate.ID,
				SimilarityScore: similarity,
				RelationType:    models.RelationTypeSemantic,
			})
		}
	}
	return relations
}

// LinkRelatedPosts 为新帖子建立指向作者历史帖子的关联边。
// 边是有向的，source 固定是较新的帖子；(source, target) 唯一，
// 重复建边降级为 no-op，不向上抛错
func (s *MemoryService) LinkRelatedPosts(postID uint) error {
	var post models.Post
	if err := db.DB.First(&post, postID).Error; err != nil {
		return err
	}

	// 候选集：同作者、更早的帖子
	var candidates []models.Post
	if err := db.DB.
		Where("user_id = ? AND id <> ? AND created_at <= ?", post.UserID, post.ID, post.CreatedAt).
		Find(&candidates).Error; err != nil {
		return err
	}

	for _, relation := range s.SelectRelated(post, candidates) {
		// 先查后建；并发下撞唯一索引时吞掉错误
		var existing int64
		db.DB.Model(&models.PostRelation{}).
			Where("source_post_id = ? AND target_post_id = ?", relation.SourcePostID, relation.TargetPostID).
			Count(&existing)
		if existing > 0 {
			continue
		}

		if err := db.DB.Create(&relation).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				continue
			}
			log.Printf("创建记忆关联 %d -> %d 失败: %v", relation.SourcePostID, relation.TargetPostID, err)
		}
	}

	return nil
}
