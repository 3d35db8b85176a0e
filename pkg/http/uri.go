package http

import (
	"regexp"
	"strings"
)

// rfc3986 is the generic URI grammar from RFC 3986 appendix B: a single
// capturing regex rather than a hand-rolled component splitter.
var rfc3986 = regexp.MustCompile(`^(?:([^:/?#]+):)?(?://([^/?#]*))?([^?#]*)(?:\?([^#]*))?(?:#(.*))?`)

// Uri is a parsed generic URI: scheme, authority, path, query and
// fragment, each optional except path.
type Uri struct {
	Scheme    *string
	Authority *string
	Path      string
	Query     *string
	Fragment  *string
}

// ParseUri parses value per the RFC 3986 appendix B grammar.
func ParseUri(value string) Uri {
	idx := rfc3986.FindStringSubmatchIndex(value)
	return Uri{
		Scheme:    groupOrNil(value, idx, 1),
		Authority: groupOrNil(value, idx, 2),
		Path:      group(value, idx, 3),
		Query:     groupOrNil(value, idx, 4),
		Fragment:  groupOrNil(value, idx, 5),
	}
}

// groupOrNil returns nil when capture group n did not participate in the
// match (distinguishing "absent" from "present but empty", which a plain
// string comparison against "" cannot).
func groupOrNil(value string, idx []int, n int) *string {
	if idx[2*n] < 0 {
		return nil
	}
	s := value[idx[2*n]:idx[2*n+1]]
	return &s
}

func group(value string, idx []int, n int) string {
	if idx[2*n] < 0 {
		return ""
	}
	return value[idx[2*n]:idx[2*n+1]]
}

// String reconstructs the URI, round-tripping whatever ParseUri
// produced.
func (u Uri) String() string {
	var b strings.Builder
	if u.Scheme != nil {
		b.WriteString(*u.Scheme)
		b.WriteByte(':')
	}
	if u.Authority != nil {
		b.WriteString("//")
		b.WriteString(*u.Authority)
	}
	b.WriteString(u.Path)
	if u.Query != nil {
		b.WriteByte('?')
		b.WriteString(*u.Query)
	}
	if u.Fragment != nil {
		b.WriteByte('#')
		b.WriteString(*u.Fragment)
	}
	return b.String()
}
