package utils

import (
	"math"
	"time"

	"rongshu/internal/models"
)

type ScoreConfig struct {
	Gravity       float64 // 时间重力 (1.8)
	AgeOffset     float64 // 新内容保护偏移 (2)，避免分母爆炸
	CommentWeight float64 // 0.5
}

var DefaultScoreConfig = ScoreConfig{
	Gravity:       1.8,
	AgeOffset:     2.0,
	CommentWeight: 0.5,
}

// 各反应类型的权重，未知类型按 1 计
var ReactionWeights = map[string]float64{
	models.ReactionLike:  1,
	models.ReactionLove:  2,
	models.ReactionHaha:  1.5,
	models.ReactionWow:   1.5,
	models.ReactionSad:   1,
	models.ReactionAngry: 1,
}

// ageHours 计算内容年龄（小时），未来时间按 0 处理
func ageHours(createdAt, now time.Time) float64 {
	hours := now.Sub(createdAt).Hours()
	if hours < 0 {
		return 0
	}
	return hours
}

// DecayedScore 票差加评论数除以时间衰减：
// (voteDelta + commentCount) / (ageHours + 2) ^ 1.8
// 负数或零分子是合法结果，冷内容随时间下沉
func DecayedScore(voteDelta, commentCount int, createdAt, now time.Time) float64 {
	numerator := float64(voteDelta + commentCount)
	decay := math.Pow(ageHours(createdAt, now)+DefaultScoreConfig.AgeOffset, DefaultScoreConfig.Gravity)
	return numerator / decay
}

// WeightedReactionScore 反应加权和 + 0.5/评论，再过同一套衰减公式
func WeightedReactionScore(reactionTypes []string, commentCount int, createdAt, now time.Time) float64 {
	sum := 0.0
	for _, t := range reactionTypes {
		w, ok := ReactionWeights[t]
		if !ok {
			w = 1
		}
		sum += w
	}
	sum += float64(commentCount) * DefaultScoreConfig.CommentWeight
	decay := math.Pow(ageHours(createdAt, now)+DefaultScoreConfig.AgeOffset, DefaultScoreConfig.Gravity)
	return sum / decay
}

// MergeScore 单调合并决策：next 高于 prev 时返回 (next, true)，
// 否则保留 prev。两套公式写同一个 Score 字段都走这里
func MergeScore(prev, next float64) (float64, bool) {
	if next > prev {
		return next, true
	}
	return prev, false
}

// VoteStats 一次评分过程中整体重建的反应统计
type VoteStats struct {
	Total     int
	Upvotes   int // like + love + haha + wow
	Downvotes int // sad + angry
	Counts    map[string]int
}

var upvoteTypes = map[string]bool{
	models.ReactionLike: true,
	models.ReactionLove: true,
	models.ReactionHaha: true,
	models.ReactionWow:  true,
}

var downvoteTypes = map[string]bool{
	models.ReactionSad:   true,
	models.ReactionAngry: true,
}

// ComputeVoteStats 从反应类型列表整体重算统计
func ComputeVoteStats(reactionTypes []string) VoteStats {
	stats := VoteStats{Counts: make(map[string]int, len(models.CanonicalReactionOrder))}
	for _, t := range models.CanonicalReactionOrder {
		stats.Counts[t] = 0
	}
	for _, t := range reactionTypes {
		stats.Total++
		stats.Counts[t]++
		if upvoteTypes[t] {
			stats.Upvotes++
		} else if downvoteTypes[t] {
			stats.Downvotes++
		}
	}
	return stats
}

// MostCommonReaction 返回数量最多的反应类型，
// 平手按 CanonicalReactionOrder 先到先得
func MostCommonReaction(counts map[string]int) string {
	best := models.CanonicalReactionOrder[0]
	bestCount := counts[best]
	for _, t := range models.CanonicalReactionOrder[1:] {
		if counts[t] > bestCount {
			best = t
			bestCount = counts[t]
		}
	}
	return best
}
