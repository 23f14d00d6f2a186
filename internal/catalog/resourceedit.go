package catalog

import (
	"fmt"
	"path"
	"strings"

	"golang.org/x/text/language"
)

// Location points at a line of a file.
type Location struct {
	Path string
	Line int // 1-based
}

func (l Location) String() string {
	return fmt.Sprintf("%s:%d", l.Path, l.Line)
}

// InsertAcrossAll adds name=placeholder before or after the anchor key of
// every resource file. Files lacking the anchor, or already defining name,
// are skipped with a warning. The returned locations point at the new
// lines, which still need a real translation.
func InsertAcrossAll(resources []*Resource, anchor string, side Side, name, placeholder string) ([]Change, []Location, []Warning) {
	var (
		changes  []Change
		fillIn   []Location
		warnings []Warning
	)
	for _, r := range resources {
		if r.Has(name) {
			warnings = append(warnings, Warning{
				Kind:    SkippedArtifact,
				Path:    r.Path,
				Message: fmt.Sprintf("%q is already defined, file omitted", name),
			})
			continue
		}
		idx := r.index(anchor)
		if idx == -1 {
			warnings = append(warnings, Warning{
				Kind:    SkippedArtifact,
				Path:    r.Path,
				Message: fmt.Sprintf("missing target entry %q, file omitted", anchor),
			})
			continue
		}
		e := r.Entries[idx]
		at := e.Line
		if side == After {
			at = e.Last + 1
		}
		lines := make([]string, 0, len(r.Lines)+1)
		lines = append(lines, r.Lines...)
		lines = insertLine(lines, at, name+"="+placeholder+lineEnding(e.Raw))
		changes = append(changes, Change{Path: r.Path, Before: r.Lines, After: lines})
		fillIn = append(fillIn, Location{Path: r.Path, Line: at + 1})
	}
	return changes, fillIn, warnings
}

// RenameAcrossAll rewrites the key of every old=... line to name, keeping
// the value. Files without such a line are skipped with a warning.
func RenameAcrossAll(resources []*Resource, old, name string) ([]Change, []Warning) {
	var (
		changes  []Change
		warnings []Warning
	)
	for _, r := range resources {
		if !r.Has(old) {
			warnings = append(warnings, Warning{
				Kind:    SkippedArtifact,
				Path:    r.Path,
				Message: fmt.Sprintf("no entry %q", old),
			})
			continue
		}
		if r.Has(name) {
			warnings = append(warnings, Warning{
				Kind:    SkippedArtifact,
				Path:    r.Path,
				Message: fmt.Sprintf("%q is already defined, file omitted", name),
			})
			continue
		}
		lines := make([]string, len(r.Lines))
		copy(lines, r.Lines)
		for _, e := range r.Entries {
			if e.Key == old {
				lines[e.Line] = e.Raw[:e.col] + name + e.Raw[e.end:]
			}
		}
		changes = append(changes, Change{Path: r.Path, Before: r.Lines, After: lines})
	}
	return changes, warnings
}

// LocalePath returns the resource file name for tag next to base, e.g.
// resources/Resource_pt_BR.properties for resources/Resource.properties.
func LocalePath(base string, tag language.Tag) string {
	ext := path.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	if i := strings.IndexByte(path.Base(stem), '_'); i != -1 {
		stem = path.Join(path.Dir(stem), path.Base(stem)[:i])
	}
	return stem + "_" + strings.ReplaceAll(tag.String(), "-", "_") + ext
}

// SeedLocale returns the content of a new resource file at p: the layout
// of base with every value replaced by placeholder. Comments and blank
// lines are kept, continuation lines of multi-line values are dropped.
func SeedLocale(base *Resource, p, placeholder string) (Change, []Location) {
	byLine := make(map[int]ResourceEntry, len(base.Entries))
	for _, e := range base.Entries {
		byLine[e.Line] = e
	}
	var (
		lines  []string
		fillIn []Location
	)
	for idx := 0; idx < len(base.Lines); idx++ {
		e, ok := byLine[idx]
		if !ok {
			lines = append(lines, base.Lines[idx])
			continue
		}
		lines = append(lines, e.Raw[:e.end]+"="+placeholder+lineEnding(base.Lines[e.Last]))
		fillIn = append(fillIn, Location{Path: p, Line: len(lines)})
		idx = e.Last
	}
	return Change{Path: p, After: lines}, fillIn
}
