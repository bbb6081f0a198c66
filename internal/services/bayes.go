package services

import (
	"encoding/json"
	"math"
	"os"
	"strings"
	"unicode"
)

// bayesModel 轻量词袋朴素贝叶斯二分类器，作为词典未命中时的
// 廉价兜底。训练语料固定，计数过程确定，同一语料重训结果一致
type bayesModel struct {
	ClassDocs  map[string]int            `json:"class_docs"`  // 每类文档数
	WordCounts map[string]map[string]int `json:"word_counts"` // 每类词频
	TotalWords map[string]int            `json:"total_words"` // 每类总词数
	VocabSize  int                       `json:"vocab_size"`
}

const (
	classClean = "clean"
	classToxic = "toxic"
)

// 少量常见停用词，降低高频虚词的噪声
var bayesStopwords = map[string]bool{
	"a": true, "an": true, "the": true, "is": true, "are": true, "was": true,
	"this": true, "that": true, "with": true, "and": true, "or": true,
	"of": true, "to": true, "in": true, "on": true, "for": true, "you": true,
}

func bayesTokenize(text string) []string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsSpace(r) {
			return unicode.ToLower(r)
		}
		return ' '
	}, text)

	var tokens []string
	for _, w := range strings.Fields(cleaned) {
		if !bayesStopwords[w] {
			tokens = append(tokens, w)
		}
	}
	return tokens
}

type bayesSample struct {
	text  string
	toxic bool
}

// 引导语料，与持久化模型缺失时的重训保持确定性
var bootstrapCorpus = []bayesSample{
	{"this is a good comment about the community", false},
	{"thanks for sharing such a helpful post", false},
	{"normal text here nothing special going on", false},
	{"interesting discussion i learned something new", false},
	{"congratulations on the launch great work", false},
	{"bad comment with profanity and insults", true},
	{"you are a worthless idiot shut up", true},
	{"go kill yourself nobody wants you here", true},
	{"stupid trash post from a stupid trash author", true},
	{"what a dumb take written by a moron", true},
}

func trainBayesModel(samples []bayesSample) *bayesModel {
	m := &bayesModel{
		ClassDocs:  map[string]int{classClean: 0, classToxic: 0},
		WordCounts: map[string]map[string]int{classClean: {}, classToxic: {}},
		TotalWords: map[string]int{classClean: 0, classToxic: 0},
	}

	vocab := make(map[string]bool)
	for _, s := range samples {
		class := classClean
		if s.toxic {
			class = classToxic
		}
		m.ClassDocs[class]++
		for _, w := range bayesTokenize(s.text) {
			m.WordCounts[class][w]++
			m.TotalWords[class]++
			vocab[w] = true
		}
	}
	m.VocabSize = len(vocab)
	return m
}

// predictToxic 拉普拉斯平滑 + 对数概率比较
func (m *bayesModel) predictToxic(text string) bool {
	tokens := bayesTokenize(text)
	if len(tokens) == 0 {
		return false
	}

	totalDocs := m.ClassDocs[classClean] + m.ClassDocs[classToxic]
	if totalDocs == 0 {
		return false
	}

	score := func(class string) float64 {
		logProb := math.Log(float64(m.ClassDocs[class]) / float64(totalDocs))
		denom := float64(m.TotalWords[class] + m.VocabSize)
		for _, w := range tokens {
			logProb += math.Log(float64(m.WordCounts[class][w]+1) / denom)
		}
		return logProb
	}

	return score(classToxic) > score(classClean)
}

func (m *bayesModel) saveToFile(path string) error {
	data, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func loadBayesModel(path string) (*bayesModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m bayesModel
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}
