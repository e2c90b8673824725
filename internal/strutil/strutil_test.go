package strutil

import "testing"

func TestRepeat(t *testing.T) {
	tests := []struct {
		s        string
		count    int
		expected string
	}{
		{"ab", 3, "ababab"},
		{"x", 0, ""},
		{"x", -2, ""},
		{"", 5, ""},
	}

	for _, test := range tests {
		if got := Repeat(test.s, test.count); got != test.expected {
			t.Errorf("Repeat(%q, %d) = %q; want %q", test.s, test.count, got, test.expected)
		}
	}
}

func TestEscape(t *testing.T) {
	if got := Escape("a\nb\tc\r"); got != "a\\nb\\tc\\r" {
		t.Errorf("Escape = %q; want %q", got, "a\\nb\\tc\\r")
	}
}

func TestLimitShortString(t *testing.T) {
	if got := Limit("short", 10); got != "short" {
		t.Errorf("Limit must not change strings within the width; got %q", got)
	}
}
