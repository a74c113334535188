package uri

import (
	"bytes"
	"strings"

	"github.com/moonbit-community/uri/internal/util"
)

// Normalize returns a normalized copy of the URI: dot-segments are removed
// from the path, the port is dropped when it equals the scheme's default
// port, and the scheme and host are lowercased per RFC 3986 section 6.2.2.1.
// Normalize is idempotent.
func (u *URI) Normalize() *URI {
	if u == nil {
		return nil
	}

	u2 := *u
	u2.scheme = util.LCase(u2.scheme)
	u2.path = removeDotSegments(u2.path)
	if u2.hasAuth {
		u2.auth.host = util.LCase(u2.auth.host)
		if dp, ok := DefaultPort(u2.scheme); ok && u2.auth.hasPort && u2.auth.port == dp {
			u2.auth.port, u2.auth.hasPort = 0, false
		}
	}
	return &u2
}

// removeDotSegments implements the remove_dot_segments algorithm of
// RFC 3986 section 5.2.4: a string-rewriting loop that moves path segments
// from the input to an output buffer, stripping "." segments and unwinding
// the output by one segment for each "..". Each byte is consumed or
// emitted a constant number of times, so the total work is O(n).
func removeDotSegments(path string) string {
	if path == "" {
		return path
	}

	var out []byte
	in := path
	for len(in) > 0 {
		switch {
		case strings.HasPrefix(in, "../"):
			in = in[3:]
		case strings.HasPrefix(in, "./"):
			in = in[2:]
		case strings.HasPrefix(in, "/./"):
			in = in[2:]
		case in == "/.":
			in = "/"
		case strings.HasPrefix(in, "/../"):
			in = in[3:]
			out = trimLastSegment(out)
		case in == "/..":
			in = "/"
			out = trimLastSegment(out)
		case in == "." || in == "..":
			in = ""
		default:
			// Move one segment, including its leading "/" if any, up to
			// but excluding the next "/".
			i := 0
			if in[0] == '/' {
				i = 1
			}
			if j := strings.IndexByte(in[i:], '/'); j >= 0 {
				i += j
			} else {
				i = len(in)
			}
			out = append(out, in[:i]...)
			in = in[i:]
		}
	}
	return string(out)
}

// trimLastSegment removes the last complete segment and its leading "/"
// from the output buffer.
func trimLastSegment(out []byte) []byte {
	if i := bytes.LastIndexByte(out, '/'); i >= 0 {
		return out[:i]
	}
	return out[:0]
}
