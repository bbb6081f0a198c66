package utils

import (
	"math"
	"testing"
	"time"

	"rongshu/internal/models"
)

func TestDecayedScoreMonotonicDecay(t *testing.T) {
	now := time.Now()
	ages := []time.Duration{time.Hour, 5 * time.Hour, 24 * time.Hour, 100 * time.Hour}

	prev := math.Inf(1)
	for _, age := range ages {
		score := DecayedScore(10, 5, now.Add(-age), now)
		if score >= prev {
			t.Errorf("Expected score to strictly decrease with age, got %f after %f", score, prev)
		}
		prev = score
	}
}

func TestDecayedScoreFormula(t *testing.T) {
	now := time.Now()
	createdAt := now.Add(-10 * time.Hour)

	got := DecayedScore(8, 4, createdAt, now)
	want := 12.0 / math.Pow(12, 1.8)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Expected %f, got %f", want, got)
	}
}

func TestDecayedScoreNegativeNumerator(t *testing.T) {
	now := time.Now()
	score := DecayedScore(-5, 2, now.Add(-time.Hour), now)
	if score >= 0 {
		t.Errorf("Expected negative score for negative vote delta, got %f", score)
	}
}

func TestDecayedScoreFutureCreatedAt(t *testing.T) {
	now := time.Now()
	// 未来时间按 0 小时处理，不应 panic 或产生爆炸值
	score := DecayedScore(4, 0, now.Add(time.Hour), now)
	want := 4.0 / math.Pow(2, 1.8)
	if math.Abs(score-want) > 1e-9 {
		t.Errorf("Expected %f, got %f", want, score)
	}
}

func TestWeightedReactionScore(t *testing.T) {
	now := time.Now()
	createdAt := now.Add(-2 * time.Hour)

	reactions := []string{models.ReactionLike, models.ReactionLove, models.ReactionHaha}
	// 1 + 2 + 1.5 + 2*0.5 = 5.5
	got := WeightedReactionScore(reactions, 2, createdAt, now)
	want := 5.5 / math.Pow(4, 1.8)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Expected %f, got %f", want, got)
	}
}

func TestComputeVoteStats(t *testing.T) {
	stats := ComputeVoteStats([]string{
		models.ReactionLike, models.ReactionLike, models.ReactionLove, models.ReactionAngry,
	})

	if stats.Total != 4 {
		t.Errorf("Expected total 4, got %d", stats.Total)
	}
	if stats.Upvotes != 3 {
		t.Errorf("Expected 3 upvotes, got %d", stats.Upvotes)
	}
	if stats.Downvotes != 1 {
		t.Errorf("Expected 1 downvote, got %d", stats.Downvotes)
	}
	if stats.Counts[models.ReactionLike] != 2 {
		t.Errorf("Expected 2 likes, got %d", stats.Counts[models.ReactionLike])
	}

	if most := MostCommonReaction(stats.Counts); most != models.ReactionLike {
		t.Errorf("Expected most common reaction like, got %s", most)
	}
}

func TestMostCommonReactionTieBreak(t *testing.T) {
	// love 和 haha 平手，按固定顺序 love 先出现
	counts := map[string]int{
		models.ReactionLove: 2,
		models.ReactionHaha: 2,
	}
	if most := MostCommonReaction(counts); most != models.ReactionLove {
		t.Errorf("Expected tie broken to love, got %s", most)
	}
}

func TestMergeScoreNeverRegresses(t *testing.T) {
	cases := []struct {
		prev, next float64
		want       float64
		changed    bool
	}{
		{2, 10, 10, true},
		{10, 5, 10, false}, // 拿着旧快照算出的低值不生效
		{5, 5, 5, false},
		{0, 0.5, 0.5, true},
		{3, 0, 3, false},
		{3, -1, 3, false},
	}

	for _, c := range cases {
		got, changed := MergeScore(c.prev, c.next)
		if got != c.want || changed != c.changed {
			t.Errorf("MergeScore(%v, %v) = (%v, %v), want (%v, %v)",
				c.prev, c.next, got, changed, c.want, c.changed)
		}
	}

	// 反复用同值或更低值合并，结果保持不变
	score := 7.5
	for _, next := range []float64{7.5, 3, 0, 7.5} {
		score, _ = MergeScore(score, next)
	}
	if score != 7.5 {
		t.Errorf("Expected score to stay at 7.5, got %v", score)
	}
}
