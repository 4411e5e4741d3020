package utils

import "strings"

// ContainsFold checks if string contains substring case-insensitively.
// Folding is a simple lowercase comparison, which is locale-independent
// and a no-op for kana and kanji.
func ContainsFold(s, substr string) bool {
	if substr == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// HasPrefixFold checks if string has prefix case-insensitively.
func HasPrefixFold(s, prefix string) bool {
	return strings.HasPrefix(strings.ToLower(s), strings.ToLower(prefix))
}
