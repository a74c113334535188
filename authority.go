package uri

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/moonbit-community/uri/internal/ioutil"
	"github.com/moonbit-community/uri/internal/util"
)

// Authority is a container for the userinfo, host and optional port of a
// URI. An IP-literal host is stored with its surrounding brackets, so the
// host round-trips losslessly.
type Authority struct {
	userinfo    string
	hasUserinfo bool
	host        string
	port        uint16
	hasPort     bool
}

// Host returns an [Authority] containing the provided host and no port.
func Host(host string) Authority {
	return Authority{host: host}
}

// HostPort returns an [Authority] containing the provided host and port.
func HostPort(host string, port uint16) Authority {
	return Authority{host: host, port: port, hasPort: true}
}

// ParseAuthority parses an authority component from the given input s
// (string or []byte). The empty string is a valid empty authority.
func ParseAuthority[T ~string | ~[]byte](s T) (Authority, error) {
	return errtrace.Wrap2(parseAuthority(string(s)))
}

// parseAuthority decomposes a raw authority span into userinfo, host and
// port. The userinfo is everything before the last "@"; a bracketed host
// runs to its closing "]"; the port is the all-decimal text after the
// final ":", where empty port text means no port.
func parseAuthority(s string) (Authority, error) {
	var a Authority
	hostport := s
	if i := strings.LastIndexByte(s, '@'); i >= 0 {
		ui := s[:i]
		if !isUserinfo(ui) {
			return Authority{}, errtrace.Wrap(newComponentErr(ErrInvalidAuthority, s))
		}
		a.userinfo, a.hasUserinfo = ui, true
		hostport = s[i+1:]
	}

	var portText string
	var hasPortText bool
	if strings.HasPrefix(hostport, "[") {
		end := strings.IndexByte(hostport, ']')
		if end < 0 {
			return Authority{}, errtrace.Wrap(newComponentErr(ErrInvalidAuthority, s))
		}
		a.host = hostport[:end+1]
		switch rest := hostport[end+1:]; {
		case rest == "":
		case rest[0] == ':':
			portText, hasPortText = rest[1:], true
		default:
			return Authority{}, errtrace.Wrap(newComponentErr(ErrInvalidAuthority, s))
		}
		if !isIPLiteral(a.host) {
			return Authority{}, errtrace.Wrap(newComponentErr(ErrInvalidAuthority, s))
		}
	} else {
		a.host = hostport
		if i := strings.IndexByte(hostport, ':'); i >= 0 {
			a.host, portText, hasPortText = hostport[:i], hostport[i+1:], true
		}
		if !isRegName(a.host) {
			return Authority{}, errtrace.Wrap(newComponentErr(ErrInvalidAuthority, s))
		}
	}

	if hasPortText && portText != "" {
		n, err := strconv.ParseUint(portText, 10, 16)
		if err != nil {
			return Authority{}, errtrace.Wrap(newComponentErr(ErrInvalidPort, portText))
		}
		a.port, a.hasPort = uint16(n), true
	}
	return a, nil
}

// Userinfo returns the userinfo, in case it is set, and a flag indicating
// whether it is set.
func (a Authority) Userinfo() (string, bool) { return a.userinfo, a.hasUserinfo }

// Host returns the host. IP-literal hosts keep their surrounding brackets.
func (a Authority) Host() string { return a.host }

// Port returns the port, in case it is set, and a flag indicating whether
// it is set.
func (a Authority) Port() (uint16, bool) { return a.port, a.hasPort }

// WithUserinfo returns a copy of the authority with the userinfo replaced.
func (a Authority) WithUserinfo(userinfo string) Authority {
	a.userinfo, a.hasUserinfo = userinfo, true
	return a
}

// renderTo writes the authority as userinfo "@" host ":" port.
func (a Authority) renderTo(w io.Writer) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	if a.hasUserinfo {
		cw.Fprint(a.userinfo, "@")
	}
	cw.Fprint(a.host)
	if a.hasPort {
		cw.Fprint(":", strconv.Itoa(int(a.port)))
	}
	return errtrace.Wrap2(cw.Result())
}

// String returns the string representation of the authority.
func (a Authority) String() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	a.renderTo(sb) //nolint:errcheck
	return sb.String()
}

// Format implements fmt.Formatter for custom formatting of the authority.
func (a Authority) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, a.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(a.String()))
		return
	default:
		if !f.Flag('+') && !f.Flag('#') {
			fmt.Fprint(f, a.String())
			return
		}

		type hideMethods Authority
		type Authority hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), Authority(a))
		return
	}
}

// Equal compares this authority with another for equality, accepting
// Authority and *Authority. The host compares case-insensitively.
func (a Authority) Equal(val any) bool {
	var other Authority
	switch v := val.(type) {
	case Authority:
		other = v
	case *Authority:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}

	return util.EqFold(a.host, other.host) &&
		a.userinfo == other.userinfo &&
		a.hasUserinfo == other.hasUserinfo &&
		a.port == other.port &&
		a.hasPort == other.hasPort
}

// IsValid reports whether the userinfo and host satisfy their RFC 3986
// grammars.
func (a Authority) IsValid() bool {
	if a.hasUserinfo && !isUserinfo(a.userinfo) {
		return false
	}
	if strings.HasPrefix(a.host, "[") {
		return isIPLiteral(a.host)
	}
	return isRegName(a.host)
}

// IsZero reports whether the authority is empty.
func (a Authority) IsZero() bool { return a == Authority{} }

// MarshalText implements [encoding.TextMarshaler].
func (a Authority) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (a *Authority) UnmarshalText(text []byte) error {
	a1, err := parseAuthority(string(text))
	if err != nil {
		*a = Authority{}
		return errtrace.Wrap(err)
	}
	*a = a1
	return nil
}
