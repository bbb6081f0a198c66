package services

import (
	"log"
	"sync"
	"time"

	"rongshu/internal/db"
	"rongshu/internal/models"
	"rongshu/internal/utils"
)

const (
	bannedWordCacheKey = "banned_words"
	bannedWordCacheTTL = 60 * time.Second
)

// ContentFilterService 发布前的同步守门组件：违禁词检查与打码。
// 词表带 TTL 缓存，词表编辑最多延迟一分钟生效，管理端修改时会显式失效。
// ML 检测不在这条路径上，发布延迟与分类器无关
type ContentFilterService struct {
	cache *utils.TTLCache
	ttl   time.Duration
}

var (
	contentFilterService *ContentFilterService
	contentFilterOnce    sync.Once
)

// NewContentFilterService 用注入的缓存创建过滤服务
func NewContentFilterService(cache *utils.TTLCache) *ContentFilterService {
	return &ContentFilterService{cache: cache, ttl: bannedWordCacheTTL}
}

// GetContentFilterService 获取单例过滤服务
func GetContentFilterService() *ContentFilterService {
	contentFilterOnce.Do(func() {
		cache, err := utils.NewTTLCache(16)
		if err != nil {
			log.Fatalf("Failed to create content filter cache: %v", err)
		}
		contentFilterService = NewContentFilterService(cache)
	})
	return contentFilterService
}

// loadRules 读取并编译违禁词规则，命中缓存时直接返回
func (s *ContentFilterService) loadRules() []utils.CompiledRule {
	if cached := s.cache.Get(bannedWordCacheKey); cached != nil {
		if rules, ok := cached.([]utils.CompiledRule); ok {
			return rules
		}
	}

	var words []models.BannedWord
	if err := db.DB.Find(&words).Error; err != nil {
		log.Printf("加载违禁词表失败: %v", err)
		return nil
	}

	rules := make([]utils.WordRule, 0, len(words))
	for _, w := range words {
		rules = append(rules, utils.WordRule{Word: w.Word, Severity: w.Severity, IsRegex: w.IsRegex})
	}
	compiled := utils.CompileWordRules(rules)

	s.cache.Set(bannedWordCacheKey, compiled, s.ttl)
	return compiled
}

// Invalidate 词表变更后显式失效缓存
func (s *ContentFilterService) Invalidate() {
	s.cache.Delete(bannedWordCacheKey)
}

// Check 对文本执行守门检查。bans 非空时调用方必须拒绝发布，
// warnings 只记录不拦截
func (s *ContentFilterService) Check(text string) (warnings, bans []string) {
	matches := utils.FindMatches(text, s.loadRules())
	return matches.Warnings, matches.Bans
}

// Filter 对通过守门的文本做打码，warn 级命中替换为等长星号
func (s *ContentFilterService) Filter(text string) string {
	return utils.Redact(text, s.loadRules())
}
