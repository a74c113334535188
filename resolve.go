package uri

import (
	"strings"

	"braces.dev/errtrace"

	"github.com/moonbit-community/uri/internal/errorutil"
)

// Resolve computes the target URI of the reference ref against the
// absolute base per RFC 3986 section 5.3. A nil ref is the empty
// reference, which resolves to the base itself minus its fragment.
//
// Resolve fails only when base is not absolute; it never re-validates
// component character classes, which hold by construction for URIs
// produced by Parse.
func Resolve(base, ref *URI) (*URI, error) {
	if !base.IsAbs() {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidAuthority, "base uri is not absolute"))
	}
	if ref == nil {
		ref = &URI{}
	}

	// The branch order is load-bearing: an authority-bearing reference
	// wins over an absolute-path one even though both could match.
	t := &URI{}
	switch {
	case ref.hasScheme:
		t.scheme, t.hasScheme = ref.scheme, true
		t.auth, t.hasAuth = ref.auth, ref.hasAuth
		t.path = removeDotSegments(ref.path)
		t.query, t.hasQuery = ref.query, ref.hasQuery
	case ref.hasAuth:
		t.scheme, t.hasScheme = base.scheme, true
		t.auth, t.hasAuth = ref.auth, true
		t.path = removeDotSegments(ref.path)
		t.query, t.hasQuery = ref.query, ref.hasQuery
	case ref.path == "":
		t.scheme, t.hasScheme = base.scheme, true
		t.auth, t.hasAuth = base.auth, base.hasAuth
		t.path = base.path
		if ref.hasQuery {
			t.query, t.hasQuery = ref.query, true
		} else {
			t.query, t.hasQuery = base.query, base.hasQuery
		}
	case ref.path[0] == '/':
		t.scheme, t.hasScheme = base.scheme, true
		t.auth, t.hasAuth = base.auth, base.hasAuth
		t.path = removeDotSegments(ref.path)
		t.query, t.hasQuery = ref.query, ref.hasQuery
	default:
		t.scheme, t.hasScheme = base.scheme, true
		t.auth, t.hasAuth = base.auth, base.hasAuth
		t.path = removeDotSegments(mergePaths(base, ref.path))
		t.query, t.hasQuery = ref.query, ref.hasQuery
	}
	t.fragment, t.hasFragment = ref.fragment, ref.hasFragment
	return t, nil
}

// mergePaths merges a relative-path reference with the base path per
// RFC 3986 section 5.3.3.
func mergePaths(base *URI, refPath string) string {
	if base.hasAuth && base.path == "" {
		return "/" + refPath
	}
	if i := strings.LastIndexByte(base.path, '/'); i >= 0 {
		return base.path[:i+1] + refPath
	}
	return refPath
}
