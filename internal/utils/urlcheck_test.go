package utils

import "testing"

func TestValidateURLs(t *testing.T) {
	cases := []struct {
		text string
		want bool
	}{
		{"no links at all", true},
		{"see https://example.com/page for details", true},
		{"broken https://nohost link", false},
		{"mixed https://example.com and https://bad", false},
	}

	for _, c := range cases {
		if got := ValidateURLs(c.text); got != c.want {
			t.Errorf("ValidateURLs(%q) = %v, want %v", c.text, got, c.want)
		}
	}
}
