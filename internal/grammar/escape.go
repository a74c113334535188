package grammar

//go:generate go tool errtrace -w .

import (
	"bytes"

	"braces.dev/errtrace"

	"github.com/moonbit-community/uri/internal/constraints"
	"github.com/moonbit-community/uri/internal/errorutil"
)

// ErrBadEscape is returned by Unescape for a "%" not followed by two hex digits.
const ErrBadEscape errorutil.Error = "malformed percent escape"

// Unescape converts each 3-byte substring of the form "% HEXDIG HEXDIG" into
// the hex-decoded byte. Any other occurrence of "%" is an error.
func Unescape[T constraints.Byteseq](s T) (T, error) {
	if len(s) == 0 {
		return s, nil
	}

	var b bytes.Buffer
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '%' {
			b.WriteByte(s[i])
			continue
		}
		if i+2 >= len(s) || !IsHexChar(s[i+1]) || !IsHexChar(s[i+2]) {
			var zero T
			return zero, errtrace.Wrap(errorutil.NewWrapperError(ErrBadEscape, "%q", string(s[i:min(i+3, len(s))])))
		}
		b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
		i += 2
	}
	return T(b.Bytes()), nil
}

// Escape replaces each byte matched by the shouldEscape callback with the hex
// form "% HEXDIG HEXDIG". A nil callback escapes everything outside the
// unreserved set. The "%" byte is never exempt, so Unescape exactly inverts
// Escape on any input.
func Escape[T constraints.Byteseq](s T, shouldEscape func(c byte) bool) T {
	if len(s) == 0 {
		return s
	}

	if shouldEscape == nil {
		shouldEscape = func(c byte) bool { return !IsCharUnreserved(c) }
	}

	var b bytes.Buffer
	b.Grow(len(s) + len(s)/2)
	for i := 0; i < len(s); i++ {
		if shouldEscape(s[i]) {
			b.WriteByte('%')
			b.WriteByte(upperhex[s[i]>>4])
			b.WriteByte(upperhex[s[i]&15])
		} else {
			b.WriteByte(s[i])
		}
	}
	return T(b.Bytes())
}

const upperhex = "0123456789ABCDEF"

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}
