package utils

import "testing"

func TestContainsFold(t *testing.T) {
	testCases := []struct {
		s        string
		substr   string
		expected bool
	}{
		{"食べる", "る", true},
		{"食べる", "食べ", true},
		{"食べる", "日本", false},
		{"Tokyo", "tok", true},
		{"tokyo", "TOKYO", true},
		{"日本語", "", true},
		{"", "", true},
		{"", "日", false},
	}

	for _, tc := range testCases {
		if got := ContainsFold(tc.s, tc.substr); got != tc.expected {
			t.Errorf("ContainsFold(%q, %q) = %v, want %v", tc.s, tc.substr, got, tc.expected)
		}
	}
}

func TestHasPrefixFold(t *testing.T) {
	testCases := []struct {
		s        string
		prefix   string
		expected bool
	}{
		{"日本語", "日本", true},
		{"日本語", "語", false},
		{"Tokyo", "TO", true},
	}

	for _, tc := range testCases {
		if got := HasPrefixFold(tc.s, tc.prefix); got != tc.expected {
			t.Errorf("HasPrefixFold(%q, %q) = %v, want %v", tc.s, tc.prefix, got, tc.expected)
		}
	}
}
