package uri

// The With* builders are pure field-replacement copies: they run no
// parsing, escaping or validation, and calling one on a nil URI starts
// from the empty relative reference. Use [URI.IsValid] to re-check the
// grammar of a hand-built value.

// WithScheme returns a copy of u with the scheme replaced. An empty
// scheme makes the URI a relative reference.
func (u *URI) WithScheme(scheme string) *URI {
	u2 := u.clone()
	u2.scheme, u2.hasScheme = scheme, scheme != ""
	return u2
}

// WithUserinfo returns a copy of u with the authority's userinfo
// replaced, adding an authority when none is present.
func (u *URI) WithUserinfo(userinfo string) *URI {
	u2 := u.clone()
	u2.auth, u2.hasAuth = u2.auth.WithUserinfo(userinfo), true
	return u2
}

// WithHost returns a copy of u with the authority's host replaced, adding
// an authority when none is present.
func (u *URI) WithHost(host string) *URI {
	u2 := u.clone()
	u2.auth.host, u2.hasAuth = host, true
	return u2
}

// WithPort returns a copy of u with the authority's port replaced, adding
// an authority when none is present.
func (u *URI) WithPort(port uint16) *URI {
	u2 := u.clone()
	u2.auth.port, u2.auth.hasPort, u2.hasAuth = port, true, true
	return u2
}

// WithPath returns a copy of u with the path replaced.
func (u *URI) WithPath(path string) *URI {
	u2 := u.clone()
	u2.path = path
	return u2
}

// WithQuery returns a copy of u with the raw query replaced. The empty
// string is a present, empty query.
func (u *URI) WithQuery(query string) *URI {
	u2 := u.clone()
	u2.query, u2.hasQuery = query, true
	return u2
}

// WithFragment returns a copy of u with the raw fragment replaced. The
// empty string is a present, empty fragment.
func (u *URI) WithFragment(fragment string) *URI {
	u2 := u.clone()
	u2.fragment, u2.hasFragment = fragment, true
	return u2
}
