package services

import (
	"testing"
	"time"
)

func TestBanDurationLadder(t *testing.T) {
	cases := []struct {
		banCount int
		want     time.Duration
	}{
		{1, 24 * time.Hour},
		{2, 7 * 24 * time.Hour},
		{3, 30 * 24 * time.Hour},
		{4, 365 * 24 * time.Hour},
		{10, 365 * 24 * time.Hour},
	}

	for _, c := range cases {
		if got := BanDuration(c.banCount); got != c.want {
			t.Errorf("BanDuration(%d) = %v, want %v", c.banCount, got, c.want)
		}
	}
}
