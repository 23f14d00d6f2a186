// Package report renders the outcome of a consistency check.
package report

import (
	"bytes"
	"fmt"
	"io"
	"path"
	"strings"

	"msgtool/internal/catalog"
)

type Format string

const (
	Text     Format = "text"
	Markdown Format = "markdown"
	HTML     Format = "html"
	YAML     Format = "yaml"
)

var Formats = []Format{Text, Markdown, HTML, YAML}

func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == strings.ToLower(s) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown report format %q (want text, markdown, html or yaml)", s)
}

// Write renders rep to w.
func Write(w io.Writer, rep *catalog.Report, f Format) error {
	switch f {
	case Text, "":
		return WriteText(w, rep)
	case Markdown:
		b, err := FormatMarkdown(rep)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	case HTML:
		return WriteHTML(w, rep)
	case YAML:
		return WriteYAML(w, rep)
	}
	return fmt.Errorf("unknown report format %q", f)
}

// WriteText prints rep in the plain format of the original maintenance
// scripts: warnings first, then unused entries, then one block per
// resource file.
func WriteText(w io.Writer, rep *catalog.Report) error {
	var b bytes.Buffer
	catalogName := path.Base(rep.Catalog)

	for _, warn := range rep.Warnings {
		fmt.Fprintf(&b, "Warning: %s\n", warn)
	}
	for _, u := range rep.Unattributed {
		fmt.Fprintf(&b, "Warning: Line %d in file %s was skipped: %s\n", u.Line, u.Path, u.Text)
	}
	for _, u := range rep.Ambiguous {
		fmt.Fprintf(&b, "Note: Line %d in file %s references %s\n", u.Line, u.Path, strings.Join(u.Names, ", "))
	}

	if len(rep.Unused) > 0 {
		fmt.Fprintf(&b, "The following message strings in %s seem to be out of use:\n", catalogName)
		bullets(&b, rep.Unused)
		b.WriteString("\n")
	} else {
		fmt.Fprintf(&b, "No unused message strings in %s found.\n\n", catalogName)
	}

	for _, l := range rep.Locales {
		if l.Clean() {
			fmt.Fprintf(&b, "%s: No unused entries found.\n\n", l.Path)
			continue
		}
		if len(l.Orphaned) > 0 {
			fmt.Fprintf(&b, "%s contains message strings not used in %s:\n", l.Path, catalogName)
			bullets(&b, l.Orphaned)
		}
		if len(l.Missing) > 0 {
			fmt.Fprintf(&b, "%s lacks translations for:\n", l.Path)
			bullets(&b, l.Missing)
		}
		if len(l.Duplicates) > 0 {
			fmt.Fprintf(&b, "%s defines these keys more than once:\n", l.Path)
			bullets(&b, l.Duplicates)
		}
		if len(l.Untranslated) > 0 {
			fmt.Fprintf(&b, "%s still has placeholder values for:\n", l.Path)
			bullets(&b, l.Untranslated)
		}
		for _, m := range l.Malformed {
			fmt.Fprintf(&b, "%s\n", m)
		}
		b.WriteString("\n")
	}

	_, err := w.Write(b.Bytes())
	return err
}

func bullets(b *bytes.Buffer, items []string) {
	for _, item := range items {
		fmt.Fprintf(b, "  * %s\n", item)
	}
}
