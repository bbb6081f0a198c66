package utils

import (
	"math"
	"testing"
)

func TestTokenOverlapIdentical(t *testing.T) {
	if got := TokenOverlap("hello world", "Hello World"); got != 1.0 {
		t.Errorf("Expected 1.0 for identical word sets, got %f", got)
	}
}

func TestTokenOverlapDisjoint(t *testing.T) {
	if got := TokenOverlap("alpha beta", "gamma delta"); got != 0.0 {
		t.Errorf("Expected 0.0 for disjoint sets, got %f", got)
	}
}

func TestTokenOverlapEmpty(t *testing.T) {
	if got := TokenOverlap("", "hello"); got != 0.0 {
		t.Errorf("Expected 0.0 for empty text, got %f", got)
	}
	if got := TokenOverlap("", ""); got != 0.0 {
		t.Errorf("Expected 0.0 for both empty, got %f", got)
	}
}

func TestTokenOverlapPartial(t *testing.T) {
	// 共享 {i, love, python, programming, fastapi} = 5，并集 9
	a := "I love python programming and fastapi development"
	b := "I love python programming especially with fastapi"

	got := TokenOverlap(a, b)
	want := 5.0 / 9.0
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Expected %f, got %f", want, got)
	}
	if got <= 0.2 {
		t.Errorf("Expected overlap above linking threshold, got %f", got)
	}
}

func TestTokenOverlapMonotonicInSharedTokens(t *testing.T) {
	base := "alpha beta gamma delta"
	low := TokenOverlap(base, "alpha zeta eta theta")
	high := TokenOverlap(base, "alpha beta eta theta")
	if high <= low {
		t.Errorf("Expected overlap to grow with shared tokens: %f vs %f", low, high)
	}
}
