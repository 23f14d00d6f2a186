package report

import (
	"io"

	"gopkg.in/yaml.v3"

	"msgtool/internal/catalog"
)

type yamlReport struct {
	Catalog      string       `yaml:"catalog"`
	Entries      int          `yaml:"entries"`
	Sources      int          `yaml:"sources"`
	Clean        bool         `yaml:"clean"`
	Unused       []string     `yaml:"unused,omitempty"`
	Unattributed []yamlUsage  `yaml:"unattributed,omitempty"`
	Ambiguous    []yamlUsage  `yaml:"ambiguous,omitempty"`
	Resources    []yamlLocale `yaml:"resources,omitempty"`
	Warnings     []string     `yaml:"warnings,omitempty"`
}

type yamlUsage struct {
	Path  string   `yaml:"path"`
	Line  int      `yaml:"line"`
	Text  string   `yaml:"text"`
	Names []string `yaml:"names,omitempty"`
}

type yamlLocale struct {
	Path         string   `yaml:"path"`
	Locale       string   `yaml:"locale"`
	Orphaned     []string `yaml:"orphaned,omitempty"`
	Missing      []string `yaml:"missing,omitempty"`
	Duplicates   []string `yaml:"duplicates,omitempty"`
	Untranslated []string `yaml:"untranslated,omitempty"`
	Malformed    []int    `yaml:"malformed_lines,omitempty"`
}

func toYAML(rep *catalog.Report) yamlReport {
	out := yamlReport{
		Catalog: rep.Catalog,
		Entries: rep.Entries,
		Sources: rep.Sources,
		Clean:   rep.Clean(),
		Unused:  rep.Unused,
	}
	usages := func(us []catalog.Usage) []yamlUsage {
		var ys []yamlUsage
		for _, u := range us {
			ys = append(ys, yamlUsage{Path: u.Path, Line: u.Line, Text: u.Text, Names: u.Names})
		}
		return ys
	}
	out.Unattributed = usages(rep.Unattributed)
	out.Ambiguous = usages(rep.Ambiguous)
	for _, l := range rep.Locales {
		yl := yamlLocale{
			Path:         l.Path,
			Locale:       localeName(l),
			Orphaned:     l.Orphaned,
			Missing:      l.Missing,
			Duplicates:   l.Duplicates,
			Untranslated: l.Untranslated,
		}
		for _, m := range l.Malformed {
			yl.Malformed = append(yl.Malformed, m.Line)
		}
		out.Resources = append(out.Resources, yl)
	}
	for _, w := range rep.Warnings {
		out.Warnings = append(out.Warnings, w.String())
	}
	return out
}

func WriteYAML(w io.Writer, rep *catalog.Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(toYAML(rep)); err != nil {
		return err
	}
	return enc.Close()
}
