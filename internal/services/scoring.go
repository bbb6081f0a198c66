package services

import (
	"log"
	"sync"
	"time"

	"rongshu/internal/db"
	"rongshu/internal/models"
	"rongshu/internal/utils"
)

// ScoringService 提供异步计算和更新帖子 Score 的服务。
// 单 worker 顺序消费队列，天然满足同一帖子不并发重算的要求
type ScoringService struct {
	queue   chan uint // 待更新的帖子 ID 队列
	pending map[uint]bool
	mu      sync.Mutex
}

var (
	scoringService *ScoringService
	scoringOnce    sync.Once
)

// GetScoringService 获取单例评分服务
func GetScoringService() *ScoringService {
	scoringOnce.Do(func() {
		scoringService = &ScoringService{
			queue:   make(chan uint, 1000), // 缓冲队列，防止阻塞
			pending: make(map[uint]bool),
		}
		// 启动后台 worker
		go scoringService.worker()
	})
	return scoringService
}

// ScheduleUpdate 将帖子加入更新队列（异步）
// 使用去重机制避免短时间内重复计算同一帖子
func (s *ScoringService) ScheduleUpdate(postID uint) {
	s.mu.Lock()
	if s.pending[postID] {
		// 已在队列中，跳过
		s.mu.Unlock()
		return
	}
	s.pending[postID] = true
	s.mu.Unlock()

	// 非阻塞发送到队列
	select {
	case s.queue <- postID:
		// 成功加入队列
	default:
		// 队列满了，移除 pending 标记
		s.mu.Lock()
		delete(s.pending, postID)
		s.mu.Unlock()
		log.Printf("评分更新队列已满，跳过帖子 %d", postID)
	}
}

// worker 后台处理队列中的更新请求
func (s *ScoringService) worker() {
	// 批量处理：收集一批请求后统一处理
	batch := make([]uint, 0, 50)
	ticker := time.NewTicker(500 * time.Millisecond) // 每 500ms 处理一批
	defer ticker.Stop()

	for {
		select {
		case postID := <-s.queue:
			batch = append(batch, postID)
			// 如果达到批量大小，立即处理
			if len(batch) >= 50 {
				s.processBatch(batch)
				batch = batch[:0]
			}
		case <-ticker.C:
			// 定时处理剩余的
			if len(batch) > 0 {
				s.processBatch(batch)
				batch = batch[:0]
			}
		}
	}
}

// processBatch 批量处理帖子 Score 更新
func (s *ScoringService) processBatch(postIDs []uint) {
	for _, postID := range postIDs {
		s.updatePostScore(postID)

		// 清除 pending 状态
		s.mu.Lock()
		delete(s.pending, postID)
		s.mu.Unlock()
	}
}

// updatePostScore 重算单个帖子的反应统计和加权衰减分。
// 统计整体重建；分数与旧值取 max 合并，本服务自身只升不降
func (s *ScoringService) updatePostScore(postID uint) {
	var post models.Post
	if err := db.DB.First(&post, postID).Error; err != nil {
		log.Printf("更新 Score 失败：帖子 %d 不存在", postID)
		return
	}

	// 读取全部反应类型
	var reactionTypes []string
	db.DB.Model(&models.Reaction{}).Where("post_id = ?", postID).Pluck("type", &reactionTypes)

	// 统计评论数
	var comments int64
	db.DB.Model(&models.Comment{}).Where("post_id = ?", postID).Count(&comments)

	// 整体重建反应统计
	stats := utils.ComputeVoteStats(reactionTypes)
	s.storeVoteStatistics(postID, stats)

	// 反应加权 + 评论权重，过时间衰减
	newScore := utils.WeightedReactionScore(reactionTypes, int(comments), post.CreatedAt, time.Now())
	s.mergeScore(&post, newScore)
}

// RecomputeVoteScore 用票差公式重算分数（评论等非反应变更的触发点）。
// 和 updatePostScore 是两套公式写同一个字段，靠 max 合并互不打压
func (s *ScoringService) RecomputeVoteScore(postID uint) {
	var post models.Post
	if err := db.DB.First(&post, postID).Error; err != nil {
		log.Printf("更新 Score 失败：帖子 %d 不存在", postID)
		return
	}

	var stats models.PostVoteStatistics
	db.DB.Where("post_id = ?", postID).First(&stats)

	var comments int64
	db.DB.Model(&models.Comment{}).Where("post_id = ?", postID).Count(&comments)

	newScore := utils.DecayedScore(stats.Upvotes-stats.Downvotes, int(comments), post.CreatedAt, time.Now())
	s.mergeScore(&post, newScore)
}

// mergeScore 单调不回退合并：只有新分数高于存量分数才写入，
// 并记录来源公式。先按读到的快照做快速判断，写入再带 score < ?
// 的条件在库内复核，并发重算拿着旧快照也压不低分数
func (s *ScoringService) mergeScore(post *models.Post, newScore float64) {
	if _, changed := utils.MergeScore(post.Score, newScore); !changed {
		return
	}
	err := db.DB.Model(&models.Post{}).
		Where("id = ? AND score < ?", post.ID, newScore).
		UpdateColumns(map[string]interface{}{
			"score":        newScore,
			"score_source": models.ScoreSourceDecay,
		}).Error
	if err != nil {
		log.Printf("更新帖子 %d Score 失败: %v", post.ID, err)
	}
}

// storeVoteStatistics 整体写入反应统计
func (s *ScoringService) storeVoteStatistics(postID uint, stats utils.VoteStats) {
	row := models.PostVoteStatistics{PostID: postID}
	db.DB.Where("post_id = ?", postID).FirstOrCreate(&row)

	err := db.DB.Model(&row).UpdateColumns(map[string]interface{}{
		"total_votes": stats.Total,
		"upvotes":     stats.Upvotes,
		"downvotes":   stats.Downvotes,
		"like_count":  stats.Counts[models.ReactionLike],
		"love_count":  stats.Counts[models.ReactionLove],
		"haha_count":  stats.Counts[models.ReactionHaha],
		"wow_count":   stats.Counts[models.ReactionWow],
		"sad_count":   stats.Counts[models.ReactionSad],
		"angry_count": stats.Counts[models.ReactionAngry],
	}).Error
	if err != nil {
		log.Printf("更新帖子 %d 反应统计失败: %v", postID, err)
	}
}

// UpdatePostScoreSync 同步更新帖子 Score（用于需要立即生效的场景）
func UpdatePostScoreSync(postID uint) {
	GetScoringService().updatePostScore(postID)
}

// StartScheduledScoreUpdate 启动定时分数更新任务（每天凌晨 3 点执行）
func (s *ScoringService) StartScheduledScoreUpdate() {
	go func() {
		for {
			// 计算到下一个凌晨 3 点的时间
			now := time.Now()
			next := time.Date(now.Year(), now.Month(), now.Day(), 3, 0, 0, 0, now.Location())
			if now.After(next) {
				next = next.Add(24 * time.Hour)
			}
			time.Sleep(time.Until(next))

			log.Println("开始定时更新帖子分数...")
			s.updateHotPosts()
			log.Println("定时更新帖子分数完成")
		}
	}()
}

// updateHotPosts 更新最近 7 天和分数最高的 30 篇帖子的分数（边遍历边去重）
func (s *ScoringService) updateHotPosts() {
	processed := make(map[uint]bool)
	count := 0

	// 1. 处理最近 7 天的帖子
	sevenDaysAgo := time.Now().AddDate(0, 0, -7)
	var recentPosts []models.Post
	db.DB.Where("created_at >= ?", sevenDaysAgo).Select("id").Find(&recentPosts)
	for _, p := range recentPosts {
		s.updatePostScore(p.ID)
		processed[p.ID] = true
		count++
	}

	// 2. 处理分数最高的 30 篇帖子（跳过已处理的）
	var topPosts []models.Post
	db.DB.Order("score DESC").Limit(30).Select("id").Find(&topPosts)
	for _, p := range topPosts {
		if !processed[p.ID] {
			s.updatePostScore(p.ID)
			count++
		}
	}

	log.Printf("本次更新 %d 篇帖子分数", count)
}
