package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/Kunde21/markdownfmt/v2/markdown"
	"github.com/yuin/goldmark"

	"msgtool/internal/catalog"
)

// markdownSource builds the markdown report. The result is passed through
// FormatMarkdown or the HTML renderer, so spacing need not be canonical.
func markdownSource(rep *catalog.Report) []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "# Message catalog %s\n\n", code(rep.Catalog))
	fmt.Fprintf(&b, "%d entries, %d source files scanned.\n\n", rep.Entries, rep.Sources)
	if rep.Clean() {
		b.WriteString("No problems found.\n\n")
	}

	if len(rep.Warnings) > 0 {
		b.WriteString("## Warnings\n\n")
		for _, w := range rep.Warnings {
			fmt.Fprintf(&b, "- %s\n", escape(w.String()))
		}
		b.WriteString("\n")
	}

	b.WriteString("## Unused entries\n\n")
	if len(rep.Unused) == 0 {
		b.WriteString("None.\n\n")
	} else {
		codeList(&b, rep.Unused)
	}

	usages := func(title string, us []catalog.Usage) {
		if len(us) == 0 {
			return
		}
		fmt.Fprintf(&b, "## %s\n\n", title)
		for _, u := range us {
			fmt.Fprintf(&b, "- %s:%d: %s", escape(u.Path), u.Line, code(u.Text))
			if len(u.Names) > 0 {
				names := make([]string, len(u.Names))
				for i, n := range u.Names {
					names[i] = code(n)
				}
				fmt.Fprintf(&b, " (%s)", strings.Join(names, ", "))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	usages("Unattributed references", rep.Unattributed)
	usages("Ambiguous references", rep.Ambiguous)

	if len(rep.Locales) > 0 {
		b.WriteString("## Resource files\n\n")
	}
	for _, l := range rep.Locales {
		fmt.Fprintf(&b, "### %s (%s)\n\n", escape(l.Path), localeName(l))
		if l.Clean() {
			b.WriteString("In sync with the catalog.\n\n")
			continue
		}
		section := func(title string, items []string) {
			if len(items) == 0 {
				return
			}
			fmt.Fprintf(&b, "%s:\n\n", title)
			codeList(&b, items)
		}
		section("Keys without catalog entry", l.Orphaned)
		section("Missing translations", l.Missing)
		section("Duplicate keys", l.Duplicates)
		section("Placeholder values", l.Untranslated)
		if len(l.Malformed) > 0 {
			b.WriteString("Malformed lines:\n\n")
			for _, m := range l.Malformed {
				fmt.Fprintf(&b, "- line %d: %s\n", m.Line, code(m.Text))
			}
			b.WriteString("\n")
		}
	}
	return b.Bytes()
}

// FormatMarkdown returns the report as canonically formatted markdown.
func FormatMarkdown(rep *catalog.Report) ([]byte, error) {
	md := goldmark.New(goldmark.WithRenderer(markdown.NewRenderer()))
	var buf bytes.Buffer
	if err := md.Convert(markdownSource(rep), &buf); err != nil {
		return nil, fmt.Errorf("format markdown: %w", err)
	}
	return buf.Bytes(), nil
}

func codeList(b *bytes.Buffer, items []string) {
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", code(item))
	}
	b.WriteString("\n")
}

// code wraps s in a code span long enough not to be closed by backticks
// inside s.
func code(s string) string {
	fence := "`"
	for strings.Contains(s, fence) {
		fence += "`"
	}
	if strings.HasPrefix(s, "`") || strings.HasSuffix(s, "`") {
		return fence + " " + s + " " + fence
	}
	return fence + s + fence
}

var escaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	"*", `\*`,
	"_", `\_`,
	"[", `\[`,
	"]", `\]`,
	"<", `\<`,
	">", `\>`,
	"#", `\#`,
)

func escape(s string) string {
	return escaper.Replace(s)
}

func localeName(l catalog.LocaleReport) string {
	if l.Locale.IsRoot() {
		return "default"
	}
	return l.Locale.String()
}
