package utils

import (
	"testing"
	"time"
)

func TestTTLCacheSetGet(t *testing.T) {
	cache, err := NewTTLCache(8)
	if err != nil {
		t.Fatalf("NewTTLCache failed: %v", err)
	}

	cache.Set("key", "value", time.Minute)
	if got := cache.Get("key"); got != "value" {
		t.Errorf("Expected value, got %v", got)
	}

	if got := cache.Get("missing"); got != nil {
		t.Errorf("Expected nil for missing key, got %v", got)
	}
}

func TestTTLCacheExpiry(t *testing.T) {
	cache, err := NewTTLCache(8)
	if err != nil {
		t.Fatalf("NewTTLCache failed: %v", err)
	}

	cache.Set("key", "value", 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)

	if got := cache.Get("key"); got != nil {
		t.Errorf("Expected expired entry to be nil, got %v", got)
	}
}

func TestTTLCacheDelete(t *testing.T) {
	cache, err := NewTTLCache(8)
	if err != nil {
		t.Fatalf("NewTTLCache failed: %v", err)
	}

	cache.Set("key", "value", time.Minute)
	cache.Delete("key")
	if got := cache.Get("key"); got != nil {
		t.Errorf("Expected deleted entry to be nil, got %v", got)
	}
}
