package utils

import (
	"net/url"
	"strings"
)

// ValidateURLs 检查文本中所有 http(s) 链接是否都能解析。
// 只做格式校验，不发起网络请求
func ValidateURLs(text string) bool {
	for _, word := range strings.Fields(text) {
		if !strings.HasPrefix(word, "http://") && !strings.HasPrefix(word, "https://") {
			continue
		}
		u, err := url.Parse(word)
		if err != nil || u.Host == "" || !strings.Contains(u.Host, ".") {
			return false
		}
	}
	return true
}
