// Package catalog parses, cross-checks and edits a message catalog: an
// enumeration block in a source file, the per-locale resource files
// translating it and the source lines referencing its entries.
package catalog

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// Grammar describes where the enumeration block lives and how source code
// refers to its entries.
type Grammar struct {
	// Start is matched against the beginning of a trimmed line, e.g.
	// "public enum Msg".
	Start string
	// Terminator ends the entry list, e.g. ";".
	Terminator string
	// Prefix precedes an entry name at a reference site, e.g. "Msg.".
	// Derived from Start when empty.
	Prefix string
}

const (
	DefaultStart      = "public enum Msg"
	DefaultTerminator = ";"
)

func (g Grammar) withDefaults() Grammar {
	if g.Start == "" {
		g.Start = DefaultStart
	}
	if g.Terminator == "" {
		g.Terminator = DefaultTerminator
	}
	if g.Prefix == "" {
		g.Prefix = g.ReferencePrefix()
	}
	return g
}

// ReferencePrefix returns Prefix, or the last identifier of Start followed
// by a dot.
func (g Grammar) ReferencePrefix() string {
	if g.Prefix != "" {
		return g.Prefix
	}
	start := g.Start
	if start == "" {
		start = DefaultStart
	}
	fields := strings.FieldsFunc(start, func(r rune) bool { return !isIdentRune(r) })
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1] + "."
}

// Entry is one enumeration constant.
type Entry struct {
	Name string
	// Index is the ordinal position within the enumeration.
	Index int
	// Line is the 0-based line number within the catalog file.
	Line int
	Raw  string
	// Indent is the whitespace preceding the name.
	Indent string
	// Comma reports whether the entry is followed by a list separator.
	Comma bool
	// Terminal reports whether the entry shares its line with the
	// terminator.
	Terminal bool

	col int // byte offset of Name in Raw
	end int // byte offset just past the name and its arguments
}

// Catalog is a parsed catalog-definition file. Lines holds the file
// content split on '\n'; joining them again yields the original bytes.
type Catalog struct {
	Path    string
	Grammar Grammar
	Lines   []string
	// Start and End are the 0-based lines of the enumeration header and
	// of the terminator.
	Start, End int
	Entries    []Entry

	byName map[string]int
}

var (
	identRe = regexp.MustCompile(`^[\p{L}_$][\p{L}\p{N}_$]*$`)
	entryRe = regexp.MustCompile(`^([\p{L}_$][\p{L}\p{N}_$]*)\s*(\(.*?\))?\s*(,)?\s*(//.*|/\*.*)?$`)
)

// ValidName reports whether name can be used as an entry name.
func ValidName(name string) bool {
	return identRe.MatchString(name)
}

func isIdentRune(r rune) bool {
	return r == '_' || r == '$' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

type scanState int

const (
	outside scanState = iota
	header            // start marker seen, opening brace not yet
	inside
)

// ParseCatalog extracts the entries of the enumeration block in src.
func ParseCatalog(path string, src []byte, g Grammar) (*Catalog, error) {
	g = g.withDefaults()
	c := &Catalog{
		Path:    path,
		Grammar: g,
		Lines:   strings.Split(string(src), "\n"),
		Start:   -1,
		End:     -1,
		byName:  make(map[string]int),
	}
	malformed := func(idx int, reason string) error {
		return &MalformedCatalogError{
			Path:   path,
			Line:   idx + 1,
			Text:   strings.TrimSpace(c.Lines[idx]),
			Reason: reason,
		}
	}

	state := outside
	inComment := false
	for idx, raw := range c.Lines {
		switch state {
		case outside:
			trimmed := strings.TrimSpace(raw)
			if !strings.HasPrefix(trimmed, g.Start) {
				continue
			}
			rest := trimmed[len(g.Start):]
			if rest != "" && isIdentRune([]rune(rest)[0]) {
				continue // e.g. "public enum MsgKind"
			}
			c.Start = idx
			state = header
			brace := strings.Index(rest, "{")
			if brace == -1 {
				continue
			}
			state = inside
			var after string
			after, inComment = maskComments(rest[brace+1:], false)
			done, err := c.openBrace(after)
			if err != nil {
				return nil, malformed(idx, err.Error())
			}
			if done {
				c.End = idx
				return c, nil
			}

		case header:
			var masked string
			masked, inComment = maskComments(raw, inComment)
			trimmed := strings.TrimSpace(masked)
			if trimmed == "" || strings.HasPrefix(trimmed, "//") {
				continue
			}
			if !strings.HasPrefix(trimmed, "{") {
				return nil, malformed(idx, "expected '{' after enumeration header")
			}
			state = inside
			done, err := c.openBrace(trimmed[1:])
			if err != nil {
				return nil, malformed(idx, err.Error())
			}
			if done {
				c.End = idx
				return c, nil
			}

		case inside:
			// Block comments are blanked out so that byte offsets in the
			// masked line still match Raw.
			var masked string
			masked, inComment = maskComments(raw, inComment)
			seg := masked
			term := indexTerminator(masked, g.Terminator)
			if term != -1 {
				seg = masked[:term]
			}
			if err := c.parseSegment(idx, seg, term != -1); err != nil {
				return nil, malformed(idx, err.Error())
			}
			if term != -1 {
				c.End = idx
				return c, nil
			}
		}
	}

	if c.Start == -1 {
		return nil, &MalformedCatalogError{Path: path, Reason: fmt.Sprintf("enumeration start %q not found", g.Start)}
	}
	return nil, &MalformedCatalogError{
		Path:   path,
		Line:   c.Start + 1,
		Text:   strings.TrimSpace(c.Lines[c.Start]),
		Reason: fmt.Sprintf("terminator %q not found", g.Terminator),
	}
}

// openBrace checks the text following the opening brace. Entries must
// start on their own line.
func (c *Catalog) openBrace(rest string) (done bool, err error) {
	if term := indexTerminator(rest, c.Grammar.Terminator); term != -1 {
		if strings.TrimSpace(rest[:term]) != "" {
			return false, fmt.Errorf("entries must start on their own line")
		}
		return true, nil
	}
	rest = strings.TrimSpace(rest)
	if rest != "" && !strings.HasPrefix(rest, "//") {
		return false, fmt.Errorf("entries must start on their own line")
	}
	return false, nil
}

func (c *Catalog) parseSegment(idx int, seg string, terminal bool) error {
	trimmed := strings.TrimSpace(seg)
	if trimmed == "" || strings.HasPrefix(trimmed, "//") {
		return nil
	}
	col := len(seg) - len(strings.TrimLeft(seg, " \t"))
	loc := entryRe.FindStringSubmatchIndex(seg[col:])
	if loc == nil {
		return fmt.Errorf("expected name[(arguments)][,]")
	}
	raw := c.Lines[idx]
	name := raw[col+loc[2] : col+loc[3]]
	if prev, ok := c.byName[name]; ok {
		return fmt.Errorf("duplicate entry %q (first defined on line %d)", name, c.Entries[prev].Line+1)
	}
	end := col + loc[3]
	if loc[4] != -1 {
		end = col + loc[5]
	}
	c.byName[name] = len(c.Entries)
	c.Entries = append(c.Entries, Entry{
		Name:     name,
		Index:    len(c.Entries),
		Line:     idx,
		Raw:      raw,
		Indent:   raw[:len(raw)-len(strings.TrimLeft(raw, " \t"))],
		Comma:    loc[6] != -1,
		Terminal: terminal,
		col:      col,
		end:      end,
	})
	return nil
}

// maskComments replaces the block comments of line with spaces, keeping
// byte offsets. inComment reports whether line starts inside a comment;
// the result reports whether one is still open at its end. Line comments
// and string literals are left alone.
func maskComments(line string, inComment bool) (string, bool) {
	b := []byte(line)
	var quote byte
	for i := 0; i < len(b); i++ {
		switch {
		case inComment:
			if b[i] == '*' && i+1 < len(b) && b[i+1] == '/' {
				b[i], b[i+1] = ' ', ' '
				i++
				inComment = false
			} else if b[i] != '\r' {
				b[i] = ' '
			}
		case quote != 0:
			if b[i] == '\\' {
				i++
			} else if b[i] == quote {
				quote = 0
			}
		case b[i] == '"' || b[i] == '\'':
			quote = b[i]
		case b[i] == '/' && i+1 < len(b) && b[i+1] == '/':
			return string(b), false
		case b[i] == '/' && i+1 < len(b) && b[i+1] == '*':
			b[i], b[i+1] = ' ', ' '
			i++
			inComment = true
		}
	}
	return string(b), inComment
}

// indexTerminator returns the byte offset of term in line, ignoring
// occurrences inside string or character literals and line comments.
func indexTerminator(line, term string) int {
	var quote byte
	for i := 0; i < len(line); i++ {
		ch := line[i]
		switch {
		case quote != 0:
			if ch == '\\' {
				i++
			} else if ch == quote {
				quote = 0
			}
		case ch == '"' || ch == '\'':
			quote = ch
		case strings.HasPrefix(line[i:], "//"):
			return -1
		case strings.HasPrefix(line[i:], term):
			return i
		}
	}
	return -1
}

// Entry returns the entry called name.
func (c *Catalog) Entry(name string) (Entry, bool) {
	idx, ok := c.byName[name]
	if !ok {
		return Entry{}, false
	}
	return c.Entries[idx], true
}

// Names returns the entry names in declaration order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.Entries))
	for i, e := range c.Entries {
		names[i] = e.Name
	}
	return names
}

// Bytes returns the file content.
func (c *Catalog) Bytes() []byte {
	return []byte(strings.Join(c.Lines, "\n"))
}
