// Package grammar implements the RFC 3986 character-class rules and the
// percent-encoding codec shared by the uri package.
package grammar

// IsAlphaChar checks the ALPHA rule.
func IsAlphaChar(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

// IsDigitChar checks the DIGIT rule.
func IsDigitChar(c byte) bool {
	return '0' <= c && c <= '9'
}

// IsAlphanumChar checks the ALPHA / DIGIT rule.
func IsAlphanumChar(c byte) bool {
	return IsAlphaChar(c) || IsDigitChar(c)
}

// IsHexChar checks the HEXDIG rule.
func IsHexChar(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	}
	return false
}

var unreservedChars = map[byte]bool{
	'-': true,
	'.': true,
	'_': true,
	'~': true,
}

// IsCharUnreserved checks the unreserved rule.
func IsCharUnreserved(c byte) bool {
	return unreservedChars[c] || IsAlphanumChar(c)
}

var subDelimChars = map[byte]bool{
	'!':  true,
	'$':  true,
	'&':  true,
	'\'': true,
	'(':  true,
	')':  true,
	'*':  true,
	'+':  true,
	',':  true,
	';':  true,
	'=':  true,
}

// IsSubDelimChar checks the sub-delims rule.
func IsSubDelimChar(c byte) bool {
	return subDelimChars[c]
}

var schemeExtraChars = map[byte]bool{
	'+': true,
	'-': true,
	'.': true,
}

// IsSchemeChar checks the scheme rule for positions after the first.
func IsSchemeChar(c byte) bool {
	return schemeExtraChars[c] || IsAlphanumChar(c)
}

// IsUserinfoChar checks the userinfo rule sans pct-encoded.
func IsUserinfoChar(c byte) bool {
	return c == ':' || IsCharUnreserved(c) || IsSubDelimChar(c)
}

// IsRegNameChar checks the reg-name rule sans pct-encoded.
func IsRegNameChar(c byte) bool {
	return IsCharUnreserved(c) || IsSubDelimChar(c)
}

// IsIPLiteralChar checks the characters permitted between the brackets of
// an IP-literal. Covers both IPv6address and IPvFuture content.
func IsIPLiteralChar(c byte) bool {
	return c == ':' || IsCharUnreserved(c) || IsSubDelimChar(c)
}

// IsPChar checks the pchar rule sans pct-encoded.
func IsPChar(c byte) bool {
	return c == ':' || c == '@' || IsCharUnreserved(c) || IsSubDelimChar(c)
}

// IsPathChar checks pchar plus the "/" segment separator.
func IsPathChar(c byte) bool {
	return c == '/' || IsPChar(c)
}

// IsQueryChar checks pchar plus "/" and "?". The query and fragment rules
// share the same character class.
func IsQueryChar(c byte) bool {
	return c == '/' || c == '?' || IsPChar(c)
}
