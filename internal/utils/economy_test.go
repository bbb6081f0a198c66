package utils

import (
	"fmt"
	"math"
	"strings"
	"testing"
)

func TestQualityScoreMaxBand(t *testing.T) {
	// 1500 字左右、多行、全部唯一词：40 + 10 + 30 + 20 = 100
	var sb strings.Builder
	for i := 0; sb.Len() < 1500; i++ {
		sb.WriteString(fmt.Sprintf("word%d ", i))
		if i%20 == 19 {
			sb.WriteString("\n")
		}
	}

	if got := QualityScore(sb.String()); got != 100.0 {
		t.Errorf("Expected quality 100, got %f", got)
	}
}

func TestQualityScoreShortRepetitive(t *testing.T) {
	// 短文本、无换行、低多样性：只有基础分 20
	if got := QualityScore("ha ha ha ha ha ha ha ha ha ha"); got != 20.0 {
		t.Errorf("Expected quality 20, got %f", got)
	}
}

func TestQualityScoreBounds(t *testing.T) {
	samples := []string{
		"",
		"short",
		strings.Repeat("x ", 3000),
		strings.Repeat("unique", 1) + "\nwords here vary a lot indeed truly",
	}
	for _, s := range samples {
		got := QualityScore(s)
		if got < 0 || got > 100 {
			t.Errorf("Quality score out of bounds for %q: %f", s[:min(len(s), 20)], got)
		}
	}
}

func TestEngagementScore(t *testing.T) {
	if got := EngagementScore(0, 0); got != 0.0 {
		t.Errorf("Expected 0 engagement for no interaction, got %f", got)
	}

	// 3 likes + 1 comment: raw = 5, ln(6)*20
	got := EngagementScore(3, 1)
	want := math.Log(6) * 20
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Expected %f, got %f", want, got)
	}

	// 巨量互动封顶 100
	if got := EngagementScore(100000, 100000); got != 100.0 {
		t.Errorf("Expected engagement capped at 100, got %f", got)
	}
}

func TestOriginalityScore(t *testing.T) {
	if got := OriginalityScore(true); got != 10.0 {
		t.Errorf("Expected 10 for repost, got %f", got)
	}
	if got := OriginalityScore(false); got != 90.0 {
		t.Errorf("Expected 90 for original, got %f", got)
	}
}

func TestCompositeScore(t *testing.T) {
	got := CompositeScore(100, 50, 90)
	want := 100*0.5 + 50*0.4 + 90*0.1
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Expected %f, got %f", want, got)
	}
}

// 经济分端到端：90 字多行高多样性帖子，3 赞 1 评论
func TestEconomyEndToEnd(t *testing.T) {
	content := "Exploring distributed systems taught me patience.\n" +
		"Every failure mode hides another lesson worth writing down carefully."
	quality := QualityScore(content)
	if quality != 100.0 {
		t.Fatalf("Expected quality 100, got %f", quality)
	}

	engagement := EngagementScore(3, 1)
	originality := OriginalityScore(false)
	composite := CompositeScore(quality, engagement, originality)

	want := 100*0.5 + math.Log(6)*20*0.4 + 90*0.1
	if math.Abs(composite-want) > 1e-9 {
		t.Errorf("Expected composite %f, got %f", want, composite)
	}

	credit := composite * CreditRate
	if math.Abs(credit-composite*0.05) > 1e-9 {
		t.Errorf("Expected credit %f, got %f", composite*0.05, credit)
	}
}
