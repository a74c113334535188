// Package uri provides parsing, validation, normalization, serialization
// and reference resolution of Uniform Resource Identifiers according to
// RFC 3986.
//
// # Overview
//
// The package is a pure value library: every operation is a synchronous,
// side-effect-free computation over immutable [URI] values. It performs no
// network access and applies no scheme-specific semantics.
//
//   - [Parse] splits a raw string into scheme, authority, path, query and
//     fragment following the RFC 3986 delimiter precedence, then checks
//     each component against its character-class grammar. Parsing is
//     fail-fast: the first violation aborts with a typed error and no
//     partial URI is ever returned.
//
//   - [URI.Normalize] removes dot-segments from the path, drops a port
//     equal to the scheme's registered default, and lowercases the scheme
//     and host.
//
//   - [Resolve] computes a target URI from an absolute base and a
//     (possibly relative) reference per RFC 3986 section 5.3.
//
//   - [URI.String] and [URI.RenderTo] reassemble the canonical string
//     form. Components are stored exactly as validated, so serialization
//     is a straight concatenation and Parse(u.String()) equals u for any
//     parsed u.
//
// # Parsing
//
//	u, err := uri.Parse("https://example.com:8080/path?query=value#fragment")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	u.Scheme()       // "https"
//	u.Host()         // "example.com"
//	u.Port()         // 8080, true
//	u.Path()         // "/path"
//
// Failures are matchable against the sentinel errors with [errors.Is]:
//
//	_, err := uri.Parse("http://example.com:abc/")
//	errors.Is(err, uri.ErrInvalidPort) // true
//
// # Reference resolution
//
//	base, _ := uri.Parse("https://example.com/dir/")
//	ref, _ := uri.Parse("../other/file.html")
//	target, _ := uri.Resolve(base, ref)
//	target.String() // "https://example.com/other/file.html"
//
// # Percent-encoding
//
// [Escape] and [Unescape] implement the percent-encoding codec over the
// RFC 3986 unreserved set. [ParseQuery] and [BuildQuery] apply the codec
// to ordered key/value query pairs.
//
// # Building and transforming
//
// URIs are immutable. The With* methods return field-replacement copies
// without running any core algorithm; [URI.IsValid] re-checks the grammar
// of a hand-built value:
//
//	u := new(uri.URI).
//	    WithScheme("https").
//	    WithHost("example.com").
//	    WithPath("/index.html")
//
// # Thread safety
//
// No operation ever mutates an existing URI or Authority value, so values
// are safe to share across concurrent readers without synchronization.
package uri
