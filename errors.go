package uri

import (
	"github.com/moonbit-community/uri/internal/errorutil"
	"github.com/moonbit-community/uri/internal/util"
)

// Error is the type of all sentinel errors reported by this package.
// Failures carry the offending component text and are matchable with
// [errors.Is] against the sentinels below.
type Error string

func (e Error) Error() string { return string(e) }

const (
	// ErrEmptyURI is returned by Parse for empty input.
	ErrEmptyURI Error = "empty uri"
	// ErrInvalidScheme is returned for a scheme violating
	// ALPHA *( ALPHA / DIGIT / "+" / "-" / "." ).
	ErrInvalidScheme Error = "invalid scheme"
	// ErrInvalidAuthority is returned for a malformed authority component,
	// and by Resolve when the base URI is not absolute.
	ErrInvalidAuthority Error = "invalid authority"
	// ErrInvalidPort is returned for a non-decimal or out-of-range port.
	ErrInvalidPort Error = "invalid port"
	// ErrInvalidPath is returned for a path outside the pchar / "/" set.
	ErrInvalidPath Error = "invalid path"
	// ErrInvalidQuery is returned for a query outside the pchar / "/" / "?" set.
	ErrInvalidQuery Error = "invalid query"
	// ErrInvalidFragment is returned for a fragment outside the pchar / "/" / "?" set.
	ErrInvalidFragment Error = "invalid fragment"
	// ErrInvalidEscape is returned by Unescape and ParseQuery for a "%" not
	// followed by two hex digits.
	ErrInvalidEscape Error = "invalid percent escape"
)

// newComponentErr wraps a sentinel with the offending component text.
func newComponentErr(sentinel error, frag string) error {
	return errorutil.NewWrapperError(sentinel, "%q", util.Ellipsis(frag, 64)) //errtrace:skip
}
