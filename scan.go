package uri

import (
	"strings"

	"github.com/moonbit-community/uri/internal/grammar"
)

// rawURI holds the five component spans of a URI reference as produced by
// scan, before any character-class validation.
type rawURI struct {
	scheme, auth, path, query, fragment       string
	hasScheme, hasAuth, hasQuery, hasFragment bool
}

// scan splits s into its raw component spans following the RFC 3986
// delimiter precedence: fragment at the first "#", query at the first "?"
// of the remainder, then scheme, authority and path. It is a single
// left-to-right pass with no backtracking and performs no validation of
// the span contents.
func scan(s string) rawURI {
	var raw rawURI
	if i := strings.IndexByte(s, '#'); i >= 0 {
		raw.fragment, raw.hasFragment = s[i+1:], true
		s = s[:i]
	}
	if i := strings.IndexByte(s, '?'); i >= 0 {
		raw.query, raw.hasQuery = s[i+1:], true
		s = s[:i]
	}
	if i := schemeEnd(s); i > 0 {
		raw.scheme, raw.hasScheme = s[:i], true
		s = s[i+1:]
	}
	if len(s) >= 2 && s[0] == '/' && s[1] == '/' {
		s = s[2:]
		raw.hasAuth = true
		if i := strings.IndexByte(s, '/'); i >= 0 {
			raw.auth, s = s[:i], s[i:]
		} else {
			raw.auth, s = s, ""
		}
	}
	raw.path = s
	return raw
}

// schemeEnd returns the index of the ":" terminating a scheme prefix, or
// -1 when s starts with no scheme. A prefix that reaches a character
// outside the scheme set before any ":" makes s a relative reference.
func schemeEnd(s string) int {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == ':':
			if i == 0 {
				return -1
			}
			return i
		case i == 0 && !grammar.IsAlphaChar(c):
			return -1
		case i > 0 && !grammar.IsSchemeChar(c):
			return -1
		}
	}
	return -1
}
