package services

import (
	"log"
	"os"
	"strconv"
	"strings"
	"sync"
	"unicode"
)

const defaultOffensiveThreshold = 0.8

// ProfanityService 两级脏话检测 + 外部冒犯性/情感分类。
// 词典命中短路返回；未命中时走懒训练的贝叶斯兜底。
// 外部分类器只做事后标记，出错时降级为中性默认值，绝不阻塞发布
type ProfanityService struct {
	classifier Classifier
	threshold  float64 // 冒犯性置信度阈值，默认 0.8
	modelPath  string

	mu    sync.Mutex
	model *bayesModel
}

var (
	profanityService *ProfanityService
	profanityOnce    sync.Once
)

// 内置脏话词典（tier 1）。生产中由运营维护，这里内置一份基础表
var profanityDictionary = map[string]bool{
	"fuck": true, "shit": true, "bitch": true, "asshole": true,
	"bastard": true, "cunt": true, "dick": true, "slut": true,
	"whore": true, "faggot": true, "nigger": true, "retard": true,
	"傻逼": true, "操你妈": true, "草泥马": true, "妈的": true,
}

// NewProfanityService 用注入的分类器创建检测服务
func NewProfanityService(classifier Classifier) *ProfanityService {
	if classifier == nil {
		classifier = NoopClassifier{}
	}

	threshold := defaultOffensiveThreshold
	if v := os.Getenv("OFFENSIVE_CONFIDENCE_THRESHOLD"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 && f < 1 {
			threshold = f
		}
	}

	modelPath := os.Getenv("CLASSIFIER_MODEL_PATH")
	if modelPath == "" {
		modelPath = "content_classifier.json"
	}

	return &ProfanityService{
		classifier: classifier,
		threshold:  threshold,
		modelPath:  modelPath,
	}
}

// GetProfanityService 获取单例检测服务。外部分类器未配置时用空实现
func GetProfanityService() *ProfanityService {
	profanityOnce.Do(func() {
		var classifier Classifier
		if httpClassifier := NewHTTPClassifierFromEnv(); httpClassifier != nil {
			classifier = httpClassifier
		} else {
			log.Println("CLASSIFIER_BASE_URL not set, offensive/sentiment checks degrade to neutral defaults")
			classifier = NoopClassifier{}
		}
		profanityService = NewProfanityService(classifier)
	})
	return profanityService
}

// ensureModel 懒加载贝叶斯模型：磁盘有则读取，没有则从引导语料
// 训练一次并持久化。训练是幂等的
func (s *ProfanityService) ensureModel() *bayesModel {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.model != nil {
		return s.model
	}

	if m, err := loadBayesModel(s.modelPath); err == nil {
		s.model = m
		return s.model
	}

	s.model = trainBayesModel(bootstrapCorpus)
	if err := s.model.saveToFile(s.modelPath); err != nil {
		log.Printf("保存分类器模型失败: %v", err)
	}
	return s.model
}

// IsProfane 两级检测：先查词典（大小写不敏感的逐词扫描），
// 未命中再走统计分类器
func (s *ProfanityService) IsProfane(text string) bool {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsPunct(r) || unicode.IsSymbol(r) {
			return ' '
		}
		return unicode.ToLower(r)
	}, text)

	for _, word := range strings.Fields(cleaned) {
		if profanityDictionary[word] {
			return true
		}
	}

	// 中文词典词不按空白分词，做一次包含检查
	lower := strings.ToLower(text)
	for word := range profanityDictionary {
		if len(word) > 0 && !isASCIIWord(word) && strings.Contains(lower, word) {
			return true
		}
	}

	return s.ensureModel().predictToxic(text)
}

func isASCIIWord(s string) bool {
	for _, r := range s {
		if r > unicode.MaxASCII {
			return false
		}
	}
	return true
}

// IsOffensive 调用外部分类器做冒犯性判定。
// 标签为 offensive 且置信度超过阈值才算命中。
// 分类器出错时降级为 (false, 0)，只影响标记，不影响发布
func (s *ProfanityService) IsOffensive(text string) (bool, float64) {
	label, confidence, err := s.classifier.ClassifyOffensive(text)
	if err != nil {
		log.Printf("冒犯性分类器调用失败，降级为中性结果: %v", err)
		return false, 0
	}
	offensive := label == "offensive" && confidence > s.threshold
	return offensive, confidence
}

// Sentiment 情感标注，仅作为内容注记，不参与任何审核决策。
// 分类器出错时返回 ("unknown", 0)
func (s *ProfanityService) Sentiment(text string) (string, float64) {
	label, score, err := s.classifier.ClassifySentiment(text)
	if err != nil {
		log.Printf("情感分类器调用失败，降级为未知结果: %v", err)
		return "unknown", 0
	}
	return label, score
}
