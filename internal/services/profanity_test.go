package services

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// fakeClassifier 可编程的分类器桩
type fakeClassifier struct {
	offensiveLabel string
	offensiveScore float64
	sentimentLabel string
	sentimentScore float64
	err            error
}

func (f fakeClassifier) ClassifyOffensive(text string) (string, float64, error) {
	return f.offensiveLabel, f.offensiveScore, f.err
}

func (f fakeClassifier) ClassifySentiment(text string) (string, float64, error) {
	return f.sentimentLabel, f.sentimentScore, f.err
}

func newTestService(t *testing.T, c Classifier) *ProfanityService {
	t.Helper()
	s := NewProfanityService(c)
	s.modelPath = filepath.Join(t.TempDir(), "model.json")
	return s
}

func TestIsProfaneDictionaryShortCircuit(t *testing.T) {
	s := newTestService(t, NoopClassifier{})

	if !s.IsProfane("what the FUCK is this") {
		t.Error("Expected dictionary hit regardless of case")
	}
	if !s.IsProfane("shit.") {
		t.Error("Expected dictionary hit with trailing punctuation")
	}
	if !s.IsProfane("这人说话真他妈的难听") {
		t.Error("Expected Chinese dictionary hit via substring scan")
	}
}

func TestIsProfaneFallbackClassifier(t *testing.T) {
	s := newTestService(t, NoopClassifier{})

	// 词典未命中，分类器兜底
	if !s.IsProfane("shut up you worthless stupid idiot") {
		t.Error("Expected statistical fallback to flag insulting text")
	}
	if s.IsProfane("thanks for sharing this interesting discussion") {
		t.Error("Expected clean text to pass")
	}

	// 懒训练应当落盘
	if _, err := os.Stat(s.modelPath); err != nil {
		t.Errorf("Expected model to be persisted after first use: %v", err)
	}
}

func TestIsOffensiveThreshold(t *testing.T) {
	// 高置信度命中
	s := newTestService(t, fakeClassifier{offensiveLabel: "offensive", offensiveScore: 0.95})
	offensive, confidence := s.IsOffensive("some text")
	if !offensive || confidence != 0.95 {
		t.Errorf("Expected (true, 0.95), got (%v, %f)", offensive, confidence)
	}

	// 低于阈值不算冒犯
	s = newTestService(t, fakeClassifier{offensiveLabel: "offensive", offensiveScore: 0.5})
	offensive, _ = s.IsOffensive("some text")
	if offensive {
		t.Error("Expected confidence below threshold to not be offensive")
	}

	// 非冒犯标签即使高置信度也不算
	s = newTestService(t, fakeClassifier{offensiveLabel: "neutral", offensiveScore: 0.99})
	offensive, _ = s.IsOffensive("some text")
	if offensive {
		t.Error("Expected non-offensive label to not be offensive")
	}
}

func TestIsOffensiveDegradedMode(t *testing.T) {
	s := newTestService(t, fakeClassifier{err: errors.New("classifier down")})

	offensive, confidence := s.IsOffensive("some text")
	if offensive || confidence != 0 {
		t.Errorf("Expected neutral default (false, 0), got (%v, %f)", offensive, confidence)
	}
}

func TestSentimentDegradedMode(t *testing.T) {
	s := newTestService(t, fakeClassifier{err: errors.New("classifier down")})

	label, score := s.Sentiment("some text")
	if label != "unknown" || score != 0 {
		t.Errorf("Expected (unknown, 0), got (%s, %f)", label, score)
	}
}

func TestSentimentPassthrough(t *testing.T) {
	s := newTestService(t, fakeClassifier{sentimentLabel: "positive", sentimentScore: 0.87})

	label, score := s.Sentiment("some text")
	if label != "positive" || score != 0.87 {
		t.Errorf("Expected (positive, 0.87), got (%s, %f)", label, score)
	}
}
