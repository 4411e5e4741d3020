package utils

import "testing"

func TestFormatWithCommas(t *testing.T) {
	testCases := []struct {
		input    int
		expected string
	}{
		{0, "0"},
		{7, "7"},
		{999, "999"},
		{1000, "1,000"},
		{45312, "45,312"},
		{1234567, "1,234,567"},
	}

	for _, tc := range testCases {
		if got := FormatWithCommas(tc.input); got != tc.expected {
			t.Errorf("FormatWithCommas(%d) = %q, want %q", tc.input, got, tc.expected)
		}
	}
}
