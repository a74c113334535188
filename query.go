package uri

import (
	"strings"

	"braces.dev/errtrace"

	"github.com/moonbit-community/uri/internal/util"
)

// Param is a single query key/value pair.
type Param struct {
	Key, Value string
}

// ParseQuery parses a raw query into its ordered key/value pairs: chunks
// split on "&", each cut at its first "=", both sides percent-decoded.
// A chunk without "=" yields an empty value; empty chunks are skipped.
func ParseQuery[T ~string | ~[]byte](s T) ([]Param, error) {
	q := string(s)
	if q == "" {
		return nil, nil
	}

	chunks := strings.Split(q, "&")
	params := make([]Param, 0, len(chunks))
	for _, chunk := range chunks {
		if chunk == "" {
			continue
		}
		k, v, _ := strings.Cut(chunk, "=")
		ku, err := Unescape(k)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		vu, err := Unescape(v)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		params = append(params, Param{Key: ku, Value: vu})
	}
	return params, nil
}

// BuildQuery assembles a raw query from key/value pairs in the given
// order, percent-encoding both sides and joining with "=" and "&".
func BuildQuery(params []Param) string {
	if len(params) == 0 {
		return ""
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	for i, p := range params {
		if i > 0 {
			sb.WriteString("&")
		}
		sb.WriteString(Escape(p.Key))
		sb.WriteString("=")
		sb.WriteString(Escape(p.Value))
	}
	return sb.String()
}
