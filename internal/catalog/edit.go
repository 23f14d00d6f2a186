package catalog

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Side selects where an entry is inserted relative to its anchor.
type Side int

const (
	Before Side = iota
	After
)

func (s Side) String() string {
	if s == After {
		return "after"
	}
	return "before"
}

// ParseSide parses "before" or "after".
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(s) {
	case "before":
		return Before, nil
	case "after":
		return After, nil
	}
	return Before, fmt.Errorf("position must be either 'before' or 'after', not %q", s)
}

// Mutation is an edit request: Insert, Rename or AddLocale.
type Mutation interface {
	// Validate checks the request against cat without modifying anything.
	Validate(cat *Catalog) error
	String() string
}

// Insert adds Name next to the existing entry Anchor.
type Insert struct {
	Anchor string
	Side   Side
	Name   string
}

func (m Insert) String() string {
	return fmt.Sprintf("insert %s %s %s", m.Side, m.Anchor, m.Name)
}

func (m Insert) Validate(cat *Catalog) error {
	if !ValidName(m.Name) {
		return &InvalidNameError{Name: m.Name}
	}
	if e, ok := cat.Entry(m.Name); ok {
		return &DuplicateEntryError{Path: cat.Path, Name: m.Name, Line: e.Line + 1}
	}
	anchor, ok := cat.Entry(m.Anchor)
	if !ok {
		return &AnchorNotFoundError{Path: cat.Path, Name: m.Anchor}
	}
	if m.Side == After && anchor.Terminal {
		return &LayoutError{
			Path:   cat.Path,
			Line:   anchor.Line + 1,
			Reason: fmt.Sprintf("cannot insert after %q: it shares its line with %q", anchor.Name, cat.Grammar.Terminator),
		}
	}
	return nil
}

// Rename changes the entry Old to New.
type Rename struct {
	Old, New string
}

func (m Rename) String() string {
	return fmt.Sprintf("rename %s %s", m.Old, m.New)
}

var ErrSameName = errors.New("old and new name are identical")

func (m Rename) Validate(cat *Catalog) error {
	if !ValidName(m.New) {
		return &InvalidNameError{Name: m.New}
	}
	if m.Old == m.New {
		return ErrSameName
	}
	if _, ok := cat.Entry(m.Old); !ok {
		return &AnchorNotFoundError{Path: cat.Path, Name: m.Old}
	}
	if e, ok := cat.Entry(m.New); ok {
		return &DuplicateEntryError{Path: cat.Path, Name: m.New, Line: e.Line + 1}
	}
	return nil
}

// AddLocale creates the resource file of a new locale from the default
// resource file.
type AddLocale struct {
	Locale language.Tag
}

func (m AddLocale) String() string {
	return "add locale " + m.Locale.String()
}

func (m AddLocale) Validate(cat *Catalog) error {
	if m.Locale == language.Und {
		return errors.New("the default locale cannot be added")
	}
	return nil
}

// Insert returns the catalog lines with a new entry placed before or after
// anchor. The new line copies the anchor's indentation and line ending.
// c itself is not modified.
func (c *Catalog) Insert(anchor string, side Side, name string) ([]string, error) {
	if err := (Insert{Anchor: anchor, Side: side, Name: name}).Validate(c); err != nil {
		return nil, err
	}
	a, _ := c.Entry(anchor)
	eol := lineEnding(a.Raw)
	lines := make([]string, 0, len(c.Lines)+1)
	lines = append(lines, c.Lines...)

	if side == Before {
		return insertLine(lines, a.Line, a.Indent+name+","+eol), nil
	}
	if !a.Comma {
		// a is the last entry and the terminator follows on a later
		// line: it gets the separator, the new entry takes its place.
		lines[a.Line] = a.Raw[:a.end] + "," + a.Raw[a.end:]
		return insertLine(lines, a.Line+1, a.Indent+name+eol), nil
	}
	return insertLine(lines, a.Line+1, a.Indent+name+","+eol), nil
}

// Rename returns the catalog lines with the name token of old replaced by
// name. Arguments and comments on the line are left as they are.
func (c *Catalog) Rename(old, name string) ([]string, error) {
	if err := (Rename{Old: old, New: name}).Validate(c); err != nil {
		return nil, err
	}
	e, _ := c.Entry(old)
	lines := make([]string, len(c.Lines))
	copy(lines, c.Lines)
	lines[e.Line] = e.Raw[:e.col] + name + e.Raw[e.col+len(old):]
	return lines, nil
}

func insertLine(lines []string, at int, line string) []string {
	lines = append(lines, "")
	copy(lines[at+1:], lines[at:])
	lines[at] = line
	return lines
}

func lineEnding(raw string) string {
	if strings.HasSuffix(raw, "\r") {
		return "\r"
	}
	return ""
}
