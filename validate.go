package uri

import "github.com/moonbit-community/uri/internal/grammar"

// isScheme checks ALPHA *( ALPHA / DIGIT / "+" / "-" / "." ), non-empty.
func isScheme(s string) bool {
	if s == "" || !grammar.IsAlphaChar(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !grammar.IsSchemeChar(s[i]) {
			return false
		}
	}
	return true
}

// isComponent checks s against the allowed character class, consuming
// "% HEXDIG HEXDIG" triplets as single pct-encoded characters.
func isComponent(s string, allowed func(byte) bool) bool {
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '%':
			if i+2 >= len(s) || !grammar.IsHexChar(s[i+1]) || !grammar.IsHexChar(s[i+2]) {
				return false
			}
			i += 2
		case !allowed(s[i]):
			return false
		}
	}
	return true
}

func isUserinfo(s string) bool { return isComponent(s, grammar.IsUserinfoChar) }

func isRegName(s string) bool { return isComponent(s, grammar.IsRegNameChar) }

func isPath(s string) bool { return isComponent(s, grammar.IsPathChar) }

// isQueryOrFragment checks the character class shared by query and fragment.
func isQueryOrFragment(s string) bool { return isComponent(s, grammar.IsQueryChar) }

// isIPLiteral checks a bracketed IP-literal host, brackets included. The
// content between the brackets is held to its character class only, not to
// the full IPv6address grammar.
func isIPLiteral(s string) bool {
	if len(s) < 2 || s[0] != '[' || s[len(s)-1] != ']' {
		return false
	}
	for i := 1; i < len(s)-1; i++ {
		if !grammar.IsIPLiteralChar(s[i]) {
			return false
		}
	}
	return true
}
