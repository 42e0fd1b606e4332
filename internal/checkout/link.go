package checkout

import (
	"strings"
)

const upperHex = "0123456789ABCDEF"

// EncodeURIComponent 与浏览器 encodeURIComponent 一致：
// 保留 A-Z a-z 0-9 - _ . ! ~ * ' ( )，其余按 UTF-8 字节编码为 %XX。
func EncodeURIComponent(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 3)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreservedComponent(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperHex[c>>4])
		b.WriteByte(upperHex[c&0x0F])
	}
	return b.String()
}

func isUnreservedComponent(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}

// BuildURL 生成聊天深链：<base>/<handle>?text=<编码后的消息>
func BuildURL(baseURL, handle, message string) string {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if base == "" {
		base = "https://t.me"
	}
	name := strings.TrimPrefix(strings.TrimSpace(handle), "@")
	return base + "/" + name + "?text=" + EncodeURIComponent(message)
}
