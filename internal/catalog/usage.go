package catalog

import (
	"slices"
	"strings"
	"unicode/utf8"
)

// Source is a source file to be scanned for references.
type Source struct {
	Path string
	Text []byte
}

// Usage is a source line containing the reference prefix.
type Usage struct {
	Path string
	Line int // 1-based
	Text string
	// Names holds the entries referenced on the line, in order of
	// appearance. An empty Names means the reference is unattributed.
	Names []string
}

func (u Usage) Skipped() bool   { return len(u.Names) == 0 }
func (u Usage) Ambiguous() bool { return len(u.Names) > 1 }

// span locates one prefix occurrence and the identifier following it.
type span struct {
	start     int // offset of the prefix
	nameStart int
	nameEnd   int
}

// references returns every occurrence of prefix in line that is not
// itself the tail of a longer identifier ("MyMsg." does not count for
// "Msg."). The identifier after the prefix extends to the next
// non-identifier character, so "Msg.foo" never matches an entry "fo".
func references(line, prefix string) []span {
	if prefix == "" {
		return nil
	}
	var spans []span
	for off := 0; ; {
		i := strings.Index(line[off:], prefix)
		if i == -1 {
			return spans
		}
		start := off + i
		off = start + len(prefix)
		if start > 0 {
			r, _ := utf8.DecodeLastRuneInString(line[:start])
			if isIdentRune(r) {
				continue
			}
		}
		end := off
		for end < len(line) {
			r, size := utf8.DecodeRuneInString(line[end:])
			if !isIdentRune(r) {
				break
			}
			end += size
		}
		spans = append(spans, span{start: start, nameStart: off, nameEnd: end})
	}
}

// Scanner attributes reference lines to catalog entries.
type Scanner struct {
	prefix string
	known  map[string]bool
}

func NewScanner(prefix string, names []string) *Scanner {
	known := make(map[string]bool, len(names))
	for _, name := range names {
		known[name] = true
	}
	return &Scanner{prefix: prefix, known: known}
}

// Scan returns one Usage per line of src that contains the prefix.
func (s *Scanner) Scan(path string, src []byte) []Usage {
	var usages []Usage
	for idx, line := range strings.Split(string(src), "\n") {
		spans := references(line, s.prefix)
		if len(spans) == 0 {
			continue
		}
		u := Usage{Path: path, Line: idx + 1, Text: strings.TrimSpace(line)}
		for _, sp := range spans {
			name := line[sp.nameStart:sp.nameEnd]
			if s.known[name] && !slices.Contains(u.Names, name) {
				u.Names = append(u.Names, name)
			}
		}
		usages = append(usages, u)
	}
	return usages
}
