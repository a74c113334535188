package uri

import (
	"fmt"
	"io"
	"strconv"

	"braces.dev/errtrace"

	"github.com/moonbit-community/uri/internal/ioutil"
	"github.com/moonbit-community/uri/internal/util"
)

// RenderTo writes the URI to the provided writer in its canonical form:
// scheme ":" "//" authority path "?" query "#" fragment, with absent
// components and their separators omitted. Component text is written
// exactly as stored, so for any u produced by Parse,
// Parse(u.String()) equals u.
func (u *URI) RenderTo(w io.Writer) (num int, err error) {
	if u == nil {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	if u.hasScheme {
		cw.Fprint(u.scheme, ":")
	}
	if u.hasAuth {
		cw.Fprint("//")
		cw.Call(u.auth.renderTo)
	}
	if u.path != "" {
		cw.Fprint(u.path)
	}
	if u.hasQuery {
		cw.Fprint("?", u.query)
	}
	if u.hasFragment {
		cw.Fprint("#", u.fragment)
	}
	return errtrace.Wrap2(cw.Result())
}

// String returns the string representation of the URI.
func (u *URI) String() string {
	if u == nil {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	u.RenderTo(sb) //nolint:errcheck
	return sb.String()
}

// Format implements fmt.Formatter for custom formatting of the URI.
func (u *URI) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		if f.Flag('+') {
			u.RenderTo(f) //nolint:errcheck
			return
		}
		fmt.Fprint(f, u.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(u.String()))
		return
	default:
		type hideMethods URI
		type URI hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*URI)(u))
		return
	}
}
