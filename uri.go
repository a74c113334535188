package uri

//go:generate go tool errtrace -w .

import (
	"braces.dev/errtrace"

	"github.com/moonbit-community/uri/internal/util"
)

// URI is an immutable RFC 3986 Uniform Resource Identifier.
//
// The zero value is the empty relative reference. A URI is produced by
// [Parse], [Resolve] or a With* builder and is never mutated afterward:
// every transformation returns a fresh value, so URIs are safe to share
// across concurrent readers without synchronization.
//
// Invariants maintained by Parse and checked by [URI.IsValid]: when an
// authority is present the path is either empty or begins with "/"; when
// absent the path must not begin with "//".
type URI struct {
	scheme      string
	hasScheme   bool
	auth        Authority
	hasAuth     bool
	path        string
	query       string
	hasQuery    bool
	fragment    string
	hasFragment bool
}

// Parse parses a URI or relative reference from the given input src
// (string or []byte).
//
// Parsing is fail-fast: the first component violating its RFC 3986
// character class aborts with the matching sentinel error and no partial
// URI is ever returned.
func Parse[T ~string | ~[]byte](src T) (*URI, error) {
	s := string(src)
	if s == "" {
		return nil, errtrace.Wrap(ErrEmptyURI)
	}

	raw := scan(s)
	u := &URI{path: raw.path}
	if raw.hasScheme {
		if !isScheme(raw.scheme) {
			return nil, errtrace.Wrap(newComponentErr(ErrInvalidScheme, raw.scheme))
		}
		u.scheme, u.hasScheme = raw.scheme, true
	}
	if raw.hasAuth {
		a, err := parseAuthority(raw.auth)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		u.auth, u.hasAuth = a, true
	}
	if !isPath(raw.path) {
		return nil, errtrace.Wrap(newComponentErr(ErrInvalidPath, raw.path))
	}
	if raw.hasQuery {
		if !isQueryOrFragment(raw.query) {
			return nil, errtrace.Wrap(newComponentErr(ErrInvalidQuery, raw.query))
		}
		u.query, u.hasQuery = raw.query, true
	}
	if raw.hasFragment {
		if !isQueryOrFragment(raw.fragment) {
			return nil, errtrace.Wrap(newComponentErr(ErrInvalidFragment, raw.fragment))
		}
		u.fragment, u.hasFragment = raw.fragment, true
	}
	return u, nil
}

// Scheme returns the URI scheme, or "" when the URI is a relative reference.
func (u *URI) Scheme() string {
	if u == nil {
		return ""
	}
	return u.scheme
}

// Authority returns the authority component and a flag indicating whether
// it is present. An empty present authority ("//") is distinct from an
// absent one.
func (u *URI) Authority() (Authority, bool) {
	if u == nil {
		return Authority{}, false
	}
	return u.auth, u.hasAuth
}

// Userinfo returns the userinfo subcomponent, in case it is set, and a
// flag indicating whether it is set.
func (u *URI) Userinfo() (string, bool) {
	if u == nil {
		return "", false
	}
	return u.auth.Userinfo()
}

// Host returns the host subcomponent, or "" when no authority is present.
// IP-literal hosts keep their surrounding brackets.
func (u *URI) Host() string {
	if u == nil {
		return ""
	}
	return u.auth.Host()
}

// Port returns the port, in case it is set, and a flag indicating whether
// it is set.
func (u *URI) Port() (uint16, bool) {
	if u == nil {
		return 0, false
	}
	return u.auth.Port()
}

// Path returns the path component. It is never absent but may be empty.
func (u *URI) Path() string {
	if u == nil {
		return ""
	}
	return u.path
}

// Query returns the raw (undecoded) query, in case it is set, and a flag
// indicating whether it is set.
func (u *URI) Query() (string, bool) {
	if u == nil {
		return "", false
	}
	return u.query, u.hasQuery
}

// Fragment returns the raw fragment, in case it is set, and a flag
// indicating whether it is set.
func (u *URI) Fragment() (string, bool) {
	if u == nil {
		return "", false
	}
	return u.fragment, u.hasFragment
}

// IsAbs reports whether the URI is absolute, that is, has a scheme.
func (u *URI) IsAbs() bool {
	return u != nil && u.hasScheme
}

// IsZero reports whether the URI is the empty relative reference.
func (u *URI) IsZero() bool {
	return u == nil || *u == URI{}
}

// Clone returns an independent copy of the URI.
func (u *URI) Clone() *URI {
	if u == nil {
		return nil
	}
	u2 := *u
	return &u2
}

// clone is like Clone but maps nil to the empty reference, for builders.
func (u *URI) clone() *URI {
	if u == nil {
		return &URI{}
	}
	u2 := *u
	return &u2
}

// Equal compares this URI with another for equality, accepting URI and
// *URI. Scheme and host compare case-insensitively per RFC 3986 section
// 6.2.2.1; all other components compare exactly.
func (u *URI) Equal(val any) bool {
	var other *URI
	switch v := val.(type) {
	case URI:
		other = &v
	case *URI:
		other = v
	default:
		return false
	}

	if u == other {
		return true
	} else if u == nil || other == nil {
		return false
	}

	return u.hasScheme == other.hasScheme &&
		util.EqFold(u.scheme, other.scheme) &&
		u.hasAuth == other.hasAuth &&
		u.auth.Equal(other.auth) &&
		u.path == other.path &&
		u.hasQuery == other.hasQuery &&
		u.query == other.query &&
		u.hasFragment == other.hasFragment &&
		u.fragment == other.fragment
}

// IsValid reports whether the URI satisfies the RFC 3986 structural
// invariants and component grammars. URIs produced by Parse or Resolve are
// always valid; hand-built ones may not be.
func (u *URI) IsValid() bool {
	if u == nil {
		return false
	}
	if u.hasScheme && !isScheme(u.scheme) {
		return false
	}
	if u.hasAuth {
		if !u.auth.IsValid() {
			return false
		}
		if u.path != "" && u.path[0] != '/' {
			return false
		}
	} else if len(u.path) >= 2 && u.path[0] == '/' && u.path[1] == '/' {
		// Ambiguous with an authority marker.
		return false
	}
	if !isPath(u.path) {
		return false
	}
	if u.hasQuery && !isQueryOrFragment(u.query) {
		return false
	}
	if u.hasFragment && !isQueryOrFragment(u.fragment) {
		return false
	}
	return true
}

// MarshalText implements [encoding.TextMarshaler].
func (u *URI) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (u *URI) UnmarshalText(text []byte) error {
	u1, err := Parse(string(text))
	if err != nil {
		*u = URI{}
		return errtrace.Wrap(err)
	}
	*u = *u1
	return nil
}
