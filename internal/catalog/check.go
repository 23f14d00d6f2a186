package catalog

import "golang.org/x/text/language"

// LocaleReport lists the differences between one resource file and the
// catalog.
type LocaleReport struct {
	Path   string
	Locale language.Tag
	// Orphaned keys are translations without a catalog entry.
	Orphaned []string
	// Missing entries have no translation in this file.
	Missing    []string
	Duplicates []string
	Malformed  []*MalformedResourceLineError
	// Untranslated keys still hold the placeholder value.
	Untranslated []string
}

func (l LocaleReport) Clean() bool {
	return len(l.Orphaned) == 0 &&
		len(l.Missing) == 0 &&
		len(l.Duplicates) == 0 &&
		len(l.Malformed) == 0 &&
		len(l.Untranslated) == 0
}

// Report is the outcome of a consistency check.
type Report struct {
	Catalog string
	Entries int
	Sources int
	// Unused entries are never referenced from a source file.
	Unused []string
	// Unattributed lines contain the reference prefix but match no entry;
	// they need manual review (typos, dynamic lookups).
	Unattributed []Usage
	// Ambiguous lines reference more than one entry. All of them count as
	// used.
	Ambiguous []Usage
	Locales   []LocaleReport
	// Warnings collects files that could not be read.
	Warnings []Warning
}

// Clean reports whether the check found nothing to act on.
func (r *Report) Clean() bool {
	if len(r.Unused) > 0 || len(r.Unattributed) > 0 {
		return false
	}
	for _, l := range r.Locales {
		if !l.Clean() {
			return false
		}
	}
	return true
}

// Check cross-references the catalog with the source and resource files.
// Every source file is scanned so that all unattributed lines are
// reported.
func Check(cat *Catalog, sources []Source, resources []*Resource) *Report {
	rep := &Report{
		Catalog: cat.Path,
		Entries: len(cat.Entries),
		Sources: len(sources),
	}

	used := make(map[string]bool, len(cat.Entries))
	scanner := NewScanner(cat.Grammar.ReferencePrefix(), cat.Names())
	for _, src := range sources {
		for _, u := range scanner.Scan(src.Path, src.Text) {
			switch {
			case u.Skipped():
				rep.Unattributed = append(rep.Unattributed, u)
			case u.Ambiguous():
				rep.Ambiguous = append(rep.Ambiguous, u)
			}
			for _, name := range u.Names {
				used[name] = true
			}
		}
	}
	for _, e := range cat.Entries {
		if !used[e.Name] {
			rep.Unused = append(rep.Unused, e.Name)
		}
	}

	for _, r := range resources {
		rep.Locales = append(rep.Locales, checkResource(cat, r))
	}
	return rep
}

func checkResource(cat *Catalog, r *Resource) LocaleReport {
	lr := LocaleReport{
		Path:       r.Path,
		Locale:     r.Locale,
		Duplicates: r.Duplicates(),
		Malformed:  r.Malformed,
	}
	have := make(map[string]bool, len(r.Entries))
	for _, key := range r.Keys() {
		have[key] = true
		if _, ok := cat.Entry(key); !ok {
			lr.Orphaned = append(lr.Orphaned, key)
		}
	}
	for _, e := range cat.Entries {
		if !have[e.Name] {
			lr.Missing = append(lr.Missing, e.Name)
		}
	}
	return lr
}
