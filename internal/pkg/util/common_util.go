package util

import (
	"strings"
)

// HumanizeKey 将 stats 键名片段转成可读文案，如 "installed_capacity" -> "Installed Capacity"
func HumanizeKey(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-' || r == '.'
	})

	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}

	return strings.Join(parts, " ")
}

// NormalizeSlug 统一 slug 形态：小写、去首尾空白
func NormalizeSlug(slug string) string {
	return strings.ToLower(strings.TrimSpace(slug))
}
