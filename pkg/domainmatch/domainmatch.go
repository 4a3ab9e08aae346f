package domainmatch

import "strings"

// Normalize reduces a URL or domain string to a comparable host: the scheme,
// a leading "www." and everything from the first "/" are dropped, the rest is
// lower-cased. Malformed input degrades to the lower-cased raw string.
func Normalize(input string) string {
	s := strings.TrimSpace(strings.ToLower(input))

	s = strings.TrimPrefix(s, "http://")
	s = strings.TrimPrefix(s, "https://")
	s = strings.TrimPrefix(s, "www.")

	if i := strings.Index(s, "/"); i >= 0 {
		s = s[:i]
	}
	return s
}

// Matches reports whether two domains refer to the same site. The comparison
// is a commutative substring check on normalized forms, so subdomain variants
// like "blog.example.com" match "example.com". Loose on purpose: recall is
// preferred over precision here.
func Matches(a, b string) bool {
	na, nb := Normalize(a), Normalize(b)
	if na == "" || nb == "" {
		return false
	}
	return strings.Contains(na, nb) || strings.Contains(nb, na)
}
