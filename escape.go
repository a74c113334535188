package uri

import (
	"braces.dev/errtrace"

	"github.com/moonbit-community/uri/internal/constraints"
	"github.com/moonbit-community/uri/internal/errorutil"
	"github.com/moonbit-community/uri/internal/grammar"
)

// Escape percent-encodes every byte of s outside the unreserved set
// (ALPHA / DIGIT / "-" / "." / "_" / "~") as "%" and two uppercase hex
// digits. Escape never fails and Unescape exactly inverts it.
func Escape[T constraints.Byteseq](s T) T {
	return grammar.Escape(s, nil)
}

// Unescape percent-decodes s, replacing each "%XY" triplet with the byte
// 0xXY. It is strict: a "%" not followed by two hex digits fails with
// [ErrInvalidEscape]. Decoding is not idempotent — decoding twice
// over-decodes literal "%" sequences.
func Unescape[T constraints.Byteseq](s T) (T, error) {
	v, err := grammar.Unescape(s)
	if err != nil {
		return v, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidEscape, err))
	}
	return v, nil
}
