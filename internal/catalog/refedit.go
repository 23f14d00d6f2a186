package catalog

import (
	"fmt"
	"strings"
)

// RenameReferences rewrites prefix+old to prefix+name in every source
// file. Only whole references are touched: renaming "Foo" leaves
// "Msg.FooBar" alone. A line ending in the prefix is reported, since the
// name continues on the next line; other references on it are still
// rewritten. Files without a reference produce no Change.
func RenameReferences(sources []Source, prefix, old, name string) ([]Change, []Warning) {
	var (
		changes  []Change
		warnings []Warning
	)
	for _, src := range sources {
		before := strings.Split(string(src.Text), "\n")
		var after []string
		for idx, line := range before {
			if endsWithPrefix(line, prefix) {
				warnings = append(warnings, Warning{
					Kind:    TrailingPrefix,
					Path:    src.Path,
					Line:    idx + 1,
					Message: fmt.Sprintf("%q omitted: %s", prefix, strings.TrimSpace(line)),
				})
			}
			rewritten, ok := renameInLine(line, prefix, old, name)
			if !ok {
				continue
			}
			if after == nil {
				after = make([]string, len(before))
				copy(after, before)
			}
			after[idx] = rewritten
		}
		if after != nil {
			changes = append(changes, Change{Path: src.Path, Before: before, After: after})
		}
	}
	return changes, warnings
}

func renameInLine(line, prefix, old, name string) (string, bool) {
	var b strings.Builder
	last := 0
	for _, sp := range references(line, prefix) {
		if line[sp.nameStart:sp.nameEnd] != old {
			continue
		}
		b.WriteString(line[last:sp.nameStart])
		b.WriteString(name)
		last = sp.nameEnd
	}
	if last == 0 {
		return line, false
	}
	b.WriteString(line[last:])
	return b.String(), true
}

// endsWithPrefix reports whether the last reference on line is a bare
// prefix with nothing after it.
func endsWithPrefix(line, prefix string) bool {
	spans := references(line, prefix)
	if len(spans) == 0 {
		return false
	}
	last := spans[len(spans)-1]
	return last.nameStart == last.nameEnd && strings.TrimSpace(line[last.nameEnd:]) == ""
}
