package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"rongshu/internal/utils"
)

// Classifier 外部文本分类能力的窄接口。实现方可能是任何模型服务，
// 这里只关心 文本 -> (标签, 置信度)
type Classifier interface {
	ClassifyOffensive(text string) (label string, confidence float64, err error)
	ClassifySentiment(text string) (label string, score float64, err error)
}

// HTTPClassifier 调用外部分类服务的实现，带超时，
// 超时或出错由上层降级为中性默认值
type HTTPClassifier struct {
	BaseURL string
	Token   string
	client  *http.Client
}

// NewHTTPClassifierFromEnv 从环境变量构建分类器客户端。
// 未配置 CLASSIFIER_BASE_URL 时返回 nil，调用方应换用 NoopClassifier
func NewHTTPClassifierFromEnv() *HTTPClassifier {
	baseURL := os.Getenv("CLASSIFIER_BASE_URL")
	if baseURL == "" {
		return nil
	}

	timeout := 3000 * time.Millisecond
	if ms := utils.StringToInt(os.Getenv("CLASSIFIER_TIMEOUT_MS")); ms > 0 {
		timeout = time.Duration(ms) * time.Millisecond
	}

	return &HTTPClassifier{
		BaseURL: baseURL,
		Token:   os.Getenv("CLASSIFIER_TOKEN"),
		client:  &http.Client{Timeout: timeout},
	}
}

type classifyRequest struct {
	Text string `json:"text"`
	Task string `json:"task"`
}

type classifyResponse struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

func (c *HTTPClassifier) classify(text, task string) (string, float64, error) {
	body, err := json.Marshal(classifyRequest{Text: text, Task: task})
	if err != nil {
		return "", 0, err
	}

	req, err := http.NewRequest("POST", c.BaseURL+"/classify", bytes.NewReader(body))
	if err != nil {
		return "", 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", 0, fmt.Errorf("classifier returned status %d", resp.StatusCode)
	}

	var result classifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", 0, err
	}
	return result.Label, result.Score, nil
}

func (c *HTTPClassifier) ClassifyOffensive(text string) (string, float64, error) {
	return c.classify(text, "offensive")
}

func (c *HTTPClassifier) ClassifySentiment(text string) (string, float64, error) {
	return c.classify(text, "sentiment")
}

// NoopClassifier 空实现，分类服务不可用时的降级对象，也用于测试
type NoopClassifier struct{}

func (NoopClassifier) ClassifyOffensive(text string) (string, float64, error) {
	return "", 0, nil
}

func (NoopClassifier) ClassifySentiment(text string) (string, float64, error) {
	return "unknown", 0, nil
}
