package catalog

import (
	"path"
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// ResourceEntry is one key=value pair of a resource file.
type ResourceEntry struct {
	Key string
	// Line is the 0-based line holding the key; Last is the last line of
	// the value, which differs from Line for backslash-continued values.
	Line, Last int
	Raw        string

	col, end int // byte offsets of Key in Raw
	val      int // byte offset just past the separator
}

// Value returns the value as written on the key line, without leading
// whitespace. Continuation lines are not included.
func (e ResourceEntry) Value() string {
	return strings.TrimSuffix(strings.TrimLeft(e.Raw[e.val:], " \t\f"), "\r")
}

// Resource is a parsed per-locale resource file.
type Resource struct {
	Path      string
	Locale    language.Tag
	Lines     []string
	Entries   []ResourceEntry
	Malformed []*MalformedResourceLineError
}

// ParseResource reads the key=value lines of src. Lines without a
// separator are recorded in Malformed and otherwise ignored.
func ParseResource(p string, src []byte) *Resource {
	r := &Resource{
		Path:   p,
		Locale: LocaleFromPath(p),
		Lines:  strings.Split(string(src), "\n"),
	}
	continued := false
	for idx, raw := range r.Lines {
		if continued {
			r.Entries[len(r.Entries)-1].Last = idx
			continued = continues(raw)
			continue
		}
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "!") {
			continue
		}
		col := len(raw) - len(strings.TrimLeft(raw, " \t\f"))
		sep := strings.IndexByte(raw, '=')
		key := ""
		if sep != -1 {
			key = strings.TrimRight(raw[col:sep], " \t\f")
		}
		if key == "" {
			r.Malformed = append(r.Malformed, &MalformedResourceLineError{Path: p, Line: idx + 1, Text: trimmed})
			continue
		}
		r.Entries = append(r.Entries, ResourceEntry{
			Key:  key,
			Line: idx,
			Last: idx,
			Raw:  raw,
			col:  col,
			end:  col + len(key),
			val:  sep + 1,
		})
		continued = continues(raw)
	}
	return r
}

// continues reports whether line ends in an odd number of backslashes.
func continues(line string) bool {
	line = strings.TrimSuffix(line, "\r")
	n := len(line) - len(strings.TrimRight(line, `\`))
	return n%2 == 1
}

// LocaleFromPath derives the locale from a file name such as
// Resource_pt_BR.properties. Files without a locale suffix yield
// language.Und.
func LocaleFromPath(p string) language.Tag {
	base := path.Base(p)
	base = strings.TrimSuffix(base, path.Ext(base))
	i := strings.IndexByte(base, '_')
	if i == -1 {
		return language.Und
	}
	tag, err := language.Parse(strings.ReplaceAll(base[i+1:], "_", "-"))
	if err != nil {
		return language.Und
	}
	return tag
}

// Keys returns the distinct keys in first-occurrence order.
func (r *Resource) Keys() []string {
	seen := make(map[string]bool, len(r.Entries))
	keys := make([]string, 0, len(r.Entries))
	for _, e := range r.Entries {
		if seen[e.Key] {
			continue
		}
		seen[e.Key] = true
		keys = append(keys, e.Key)
	}
	return keys
}

// Has reports whether key is defined.
func (r *Resource) Has(key string) bool {
	return r.index(key) != -1
}

func (r *Resource) index(key string) int {
	for i, e := range r.Entries {
		if e.Key == key {
			return i
		}
	}
	return -1
}

// KeysWithValue returns the keys whose value is exactly value, e.g. the
// placeholder of entries nobody has translated yet.
func (r *Resource) KeysWithValue(value string) []string {
	var keys []string
	for _, e := range r.Entries {
		if e.Value() == value && !slices.Contains(keys, e.Key) {
			keys = append(keys, e.Key)
		}
	}
	return keys
}

// Duplicates returns keys defined more than once, in first-occurrence
// order.
func (r *Resource) Duplicates() []string {
	count := make(map[string]int, len(r.Entries))
	for _, e := range r.Entries {
		count[e.Key]++
	}
	var dups []string
	for _, key := range r.Keys() {
		if count[key] > 1 {
			dups = append(dups, key)
		}
	}
	return dups
}

// LocaleName returns the locale tag, or "default" for the base file.
func (r *Resource) LocaleName() string {
	if r.Locale == language.Und {
		return "default"
	}
	return r.Locale.String()
}
