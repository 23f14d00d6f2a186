package catalog

import "fmt"

// MalformedCatalogError is returned when the enumeration block cannot be
// located or one of its lines does not have the shape name[(args)][,].
type MalformedCatalogError struct {
	Path   string
	Line   int // 1-based, 0 if the error is not tied to a line
	Text   string
	Reason string
}

func (e *MalformedCatalogError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("%s: malformed catalog: %s", e.Path, e.Reason)
	}
	return fmt.Sprintf("%s:%d: malformed catalog: %s: %q", e.Path, e.Line, e.Reason, e.Text)
}

// MalformedResourceLineError describes a single resource line without a
// key/value separator. It is recorded on the Resource, never returned.
type MalformedResourceLineError struct {
	Path string
	Line int
	Text string
}

func (e *MalformedResourceLineError) Error() string {
	return fmt.Sprintf("%s:%d: expected key=value: %q", e.Path, e.Line, e.Text)
}

type AnchorNotFoundError struct {
	Path string
	Name string
}

func (e *AnchorNotFoundError) Error() string {
	return fmt.Sprintf("%s: entry %q not found", e.Path, e.Name)
}

type DuplicateEntryError struct {
	Path string
	Name string
	Line int
}

func (e *DuplicateEntryError) Error() string {
	return fmt.Sprintf("%s:%d: entry %q already exists", e.Path, e.Line, e.Name)
}

type InvalidNameError struct {
	Name string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("%q is not a valid entry name", e.Name)
}

// LayoutError is returned for edits the line-based editor cannot express,
// e.g. inserting after an entry that shares its line with the terminator.
type LayoutError struct {
	Path   string
	Line   int
	Reason string
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Reason)
}
