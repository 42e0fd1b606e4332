package i18n

import (
	"fmt"
	"strings"

	"github.com/senghong-shop/internal/constants"

	"github.com/gin-gonic/gin"
)

// 语言常量
const (
	LocaleEN = constants.LocaleEnUS
	LocaleZH = constants.LocaleZhCN
)

// DefaultLocale 默认语言
const DefaultLocale = LocaleEN

// ResolveLocale 解析请求语言：优先 query 参数 lang，其次 Accept-Language，最后默认语言
func ResolveLocale(c *gin.Context) string {
	if c == nil {
		return DefaultLocale
	}
	if lang := NormalizeLocale(c.Query("lang")); lang != "" {
		return lang
	}
	for _, part := range strings.Split(c.GetHeader("Accept-Language"), ",") {
		tag := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		if lang := NormalizeLocale(tag); lang != "" {
			return lang
		}
	}
	return DefaultLocale
}

// NormalizeLocale 将语言标签归一到支持的语言，不支持时返回空
func NormalizeLocale(raw string) string {
	tag := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(raw), "_", "-"))
	switch {
	case tag == "":
		return ""
	case tag == "en" || strings.HasPrefix(tag, "en-"):
		return LocaleEN
	case tag == "zh" || strings.HasPrefix(tag, "zh-"):
		return LocaleZH
	default:
		return ""
	}
}

// T 翻译消息键，缺失时回退默认语言，仍缺失则返回键本身
func T(locale, key string) string {
	if table, ok := messages[locale]; ok {
		if msg, ok := table[key]; ok {
			return msg
		}
	}
	if msg, ok := messages[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// Sprintf 翻译并格式化
func Sprintf(locale, key string, args ...interface{}) string {
	return fmt.Sprintf(T(locale, key), args...)
}
