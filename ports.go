package uri

import "github.com/moonbit-community/uri/internal/util"

var defaultPorts = map[string]uint16{
	"http":   80,
	"https":  443,
	"ftp":    21,
	"ssh":    22,
	"telnet": 23,
	"smtp":   25,
	"dns":    53,
	"pop3":   110,
	"imap":   143,
	"ldap":   389,
	"imaps":  993,
	"pop3s":  995,
}

// DefaultPort returns the registered default port for the given scheme
// and a flag indicating whether the scheme is known. The lookup is
// case-insensitive.
func DefaultPort(scheme string) (uint16, bool) {
	p, ok := defaultPorts[util.LCase(scheme)]
	return p, ok
}
