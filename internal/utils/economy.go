package utils

import (
	"math"
	"strings"
	"unicode/utf8"
)

// 社交经济综合分的权重
const (
	EconomyWeightQuality     = 0.5
	EconomyWeightEngagement  = 0.4
	EconomyWeightOriginality = 0.1

	// 积分转换率：综合分 * 0.05 计入社交积分
	CreditRate = 0.05
)

// QualityScore 内容质量启发式评分，范围 [0,100]：
// 长度 50-2000 字 +40（超过 2000 +20）；含换行 +10；
// 词汇多样性 >0.6 +30，>0.4 +15；基础分 +20
func QualityScore(content string) float64 {
	score := 0.0
	length := utf8.RuneCountInString(content)

	if length >= 50 && length <= 2000 {
		score += 40
	} else if length > 2000 {
		score += 20
	}

	if strings.Contains(content, "\n") {
		score += 10
	}

	words := strings.Fields(content)
	if len(words) > 0 {
		unique := make(map[string]bool, len(words))
		for _, w := range words {
			unique[w] = true
		}
		diversity := float64(len(unique)) / float64(len(words))
		if diversity > 0.6 {
			score += 30
		} else if diversity > 0.4 {
			score += 15
		}
	}

	score += 20

	return math.Min(100.0, score)
}

// EngagementScore 互动评分，对数压缩到 [0,100]：
// raw = likes + comments*2，min(100, ln(raw+1)*20)
func EngagementScore(likes, comments int) float64 {
	raw := float64(likes + comments*2)
	if raw <= 0 {
		return 0.0
	}
	return math.Min(100.0, math.Log(raw+1)*20)
}

// OriginalityScore 原创性评分：转发 10 分，原创 90 分。
// 占位启发式，没有做抄袭检测
func OriginalityScore(isRepost bool) float64 {
	if isRepost {
		return 10.0
	}
	return 90.0
}

// CompositeScore 质量/互动/原创加权综合
func CompositeScore(quality, engagement, originality float64) float64 {
	return quality*EconomyWeightQuality + engagement*EconomyWeightEngagement + originality*EconomyWeightOriginality
}
