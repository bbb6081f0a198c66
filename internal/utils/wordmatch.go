package utils

import (
	"log"
	"regexp"
	"strings"
	"unicode"
)

// WordRule 违禁词规则。IsRegex 为 true 时 Word 按管理员填写的原始
// 正则使用，否则按字面词转义
type WordRule struct {
	Word     string
	Severity string // "warn" or "ban"
	IsRegex  bool
}

// CompiledRule 编译后的规则，统一加了大小写不敏感和词边界锚点
type CompiledRule struct {
	WordRule
	re *regexp.Regexp
}

// WordMatches 按级别拆分的命中结果，每个词最多出现一次
type WordMatches struct {
	Warnings []string
	Bans     []string
}

// CompileWordRules 将规则编译为 (?i)\b...\b 模式。
// \b 是 ASCII 词边界，CJK 字面词在 CJK 文本里锚不住，
// 退化为无边界的包含匹配。
// 编译失败的正则跳过并记录日志，不中断整个管线
func CompileWordRules(rules []WordRule) []CompiledRule {
	compiled := make([]CompiledRule, 0, len(rules))
	for _, rule := range rules {
		if rule.Word == "" {
			continue
		}
		pattern := `(?i)\b` + rule.Word + `\b`
		if !rule.IsRegex {
			if isASCII(rule.Word) {
				pattern = `(?i)\b` + regexp.QuoteMeta(rule.Word) + `\b`
			} else {
				pattern = `(?i)` + regexp.QuoteMeta(rule.Word)
			}
		}
		re, err := regexp.Compile(pattern)
		if err != nil {
			log.Printf("违禁词正则编译失败，已跳过: %q: %v", rule.Word, err)
			continue
		}
		compiled = append(compiled, CompiledRule{WordRule: rule, re: re})
	}
	return compiled
}

func isASCII(s string) bool {
	for _, r := range s {
		if r > unicode.MaxASCII {
			return false
		}
	}
	return true
}

// FindMatches 在文本中查找所有命中的规则，按级别分组。
// 同一个词命中多次也只出现一次
func FindMatches(text string, rules []CompiledRule) WordMatches {
	var m WordMatches
	for _, rule := range rules {
		if !rule.re.MatchString(text) {
			continue
		}
		if rule.Severity == "ban" {
			m.Bans = append(m.Bans, rule.Word)
		} else {
			m.Warnings = append(m.Warnings, rule.Word)
		}
	}
	return m
}

// Redact 将所有命中片段替换为等长的星号，其余字符（包括空白和换行）
// 原样保留。正则规则按每个实际命中片段的长度打码
func Redact(text string, rules []CompiledRule) string {
	for _, rule := range rules {
		text = rule.re.ReplaceAllStringFunc(text, func(match string) string {
			return strings.Repeat("*", len([]rune(match)))
		})
	}
	return text
}
