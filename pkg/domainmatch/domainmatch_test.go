package domainmatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Full URL with scheme, www, path and query",
			input:    "https://www.Example.com/page?x=1",
			expected: "example.com",
		},
		{
			name:     "Bare domain stays unchanged",
			input:    "example.com",
			expected: "example.com",
		},
		{
			name:     "Scheme without www",
			input:    "http://example.com/about",
			expected: "example.com",
		},
		{
			name:     "Subdomain is preserved",
			input:    "https://blog.example.com",
			expected: "blog.example.com",
		},
		{
			name:     "Upper case is lowered",
			input:    "EXAMPLE.COM",
			expected: "example.com",
		},
		{
			name:     "Malformed input falls back to lower-casing",
			input:    "Not a URL at all",
			expected: "not a url at all",
		},
		{
			name:     "Empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestMatches(t *testing.T) {
	tests := []struct {
		name     string
		a        string
		b        string
		expected bool
	}{
		{
			name:     "Subdomain matches parent domain",
			a:        "blog.example.com",
			b:        "example.com",
			expected: true,
		},
		{
			name:     "Matching is commutative",
			a:        "example.com",
			b:        "blog.example.com",
			expected: true,
		},
		{
			name:     "Full URL against bare domain",
			a:        "https://www.example.com/pricing",
			b:        "example.com",
			expected: true,
		},
		{
			name:     "Unrelated domains do not match",
			a:        "example.com",
			b:        "other.org",
			expected: false,
		},
		{
			name:     "Empty side never matches",
			a:        "",
			b:        "example.com",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Matches(tt.a, tt.b))
		})
	}
}
