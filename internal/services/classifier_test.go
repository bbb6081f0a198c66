package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestHTTPClassifierClassify(t *testing.T) {
	// 模拟分类服务
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" {
			t.Errorf("Expected POST request, got %s", r.Method)
		}
		if r.URL.Path != "/classify" {
			t.Errorf("Expected /classify path, got %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer test-token" {
			t.Errorf("Expected Bearer test-token, got %s", r.Header.Get("Authorization"))
		}

		var req classifyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("Failed to decode request: %v", err)
		}

		resp := classifyResponse{Label: "offensive", Score: 0.92}
		if req.Task == "sentiment" {
			resp = classifyResponse{Label: "negative", Score: 0.7}
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	c := &HTTPClassifier{
		BaseURL: server.URL,
		Token:   "test-token",
		client:  &http.Client{Timeout: time.Second},
	}

	label, score, err := c.ClassifyOffensive("some text")
	if err != nil {
		t.Fatalf("ClassifyOffensive failed: %v", err)
	}
	if label != "offensive" || score != 0.92 {
		t.Errorf("Expected (offensive, 0.92), got (%s, %f)", label, score)
	}

	label, score, err = c.ClassifySentiment("some text")
	if err != nil {
		t.Fatalf("ClassifySentiment failed: %v", err)
	}
	if label != "negative" || score != 0.7 {
		t.Errorf("Expected (negative, 0.7), got (%s, %f)", label, score)
	}
}

func TestHTTPClassifierErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	c := &HTTPClassifier{
		BaseURL: server.URL,
		client:  &http.Client{Timeout: time.Second},
	}

	if _, _, err := c.ClassifyOffensive("some text"); err == nil {
		t.Error("Expected error for non-200 response")
	}
}

func TestNoopClassifierDefaults(t *testing.T) {
	var c NoopClassifier

	label, score, err := c.ClassifyOffensive("anything")
	if err != nil || label != "" || score != 0 {
		t.Errorf("Expected empty neutral result, got (%s, %f, %v)", label, score, err)
	}

	label, score, err = c.ClassifySentiment("anything")
	if err != nil || label != "unknown" || score != 0 {
		t.Errorf("Expected (unknown, 0), got (%s, %f, %v)", label, score, err)
	}
}
