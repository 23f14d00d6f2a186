package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// Options locates the three artifact kinds inside a Workspace.
type Options struct {
	// Catalog is the path of the catalog-definition file.
	Catalog string
	Grammar Grammar
	// Resources and Sources are doublestar patterns.
	Resources []string
	Sources   []string
	Exclude   []string
	// Placeholder is the value of resource entries created by Insert.
	Placeholder string
}

const DefaultPlaceholder = "$TODO$"

// Project loads catalog, resource and source files fresh from its
// workspace on every call. Nothing is cached between operations.
type Project struct {
	ws   *Workspace
	opts Options
	log  *zap.Logger
}

func NewProject(ws *Workspace, opts Options, log *zap.Logger) *Project {
	if opts.Placeholder == "" {
		opts.Placeholder = DefaultPlaceholder
	}
	if opts.Catalog != "" {
		// Glob results are clean, so "./src/Msg.java" must match "src/Msg.java".
		opts.Catalog = filepath.ToSlash(filepath.Clean(filepath.FromSlash(opts.Catalog)))
	}
	opts.Grammar = opts.Grammar.withDefaults()
	if log == nil {
		log = zap.NewNop()
	}
	return &Project{ws: ws, opts: opts, log: log}
}

// LoadCatalog reads and parses the catalog-definition file. Any failure is
// fatal: the catalog is the single source of truth.
func (p *Project) LoadCatalog() (*Catalog, error) {
	if p.opts.Catalog == "" {
		return nil, errors.New("no catalog file configured")
	}
	src, err := p.ws.ReadFile(p.opts.Catalog)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	cat, err := ParseCatalog(p.opts.Catalog, src, p.opts.Grammar)
	if err != nil {
		return nil, err
	}
	p.log.Debug("parsed catalog", zap.String("path", cat.Path), zap.Int("entries", len(cat.Entries)))
	return cat, nil
}

// LoadResources parses every resource file. Unreadable files are skipped
// with a warning.
func (p *Project) LoadResources() ([]*Resource, []Warning, error) {
	paths, err := p.ws.Glob(p.opts.Resources, p.opts.Exclude)
	if err != nil {
		return nil, nil, err
	}
	var (
		resources []*Resource
		warnings  []Warning
	)
	for _, path := range paths {
		src, err := p.ws.ReadFile(path)
		if err != nil {
			warnings = append(warnings, Warning{Kind: SkippedArtifact, Path: path, Message: err.Error()})
			continue
		}
		r := ParseResource(path, src)
		p.log.Debug("parsed resource file",
			zap.String("path", path),
			zap.String("locale", r.LocaleName()),
			zap.Int("entries", len(r.Entries)))
		resources = append(resources, r)
	}
	return resources, warnings, nil
}

// LoadSources reads every source file except the catalog itself.
func (p *Project) LoadSources() ([]Source, []Warning, error) {
	paths, err := p.ws.Glob(p.opts.Sources, p.opts.Exclude)
	if err != nil {
		return nil, nil, err
	}
	var (
		sources  []Source
		warnings []Warning
	)
	for _, path := range paths {
		if path == p.opts.Catalog {
			continue
		}
		src, err := p.ws.ReadFile(path)
		if err != nil {
			warnings = append(warnings, Warning{Kind: SkippedArtifact, Path: path, Message: err.Error()})
			continue
		}
		sources = append(sources, Source{Path: path, Text: src})
	}
	p.log.Debug("loaded source files", zap.Int("files", len(sources)))
	return sources, warnings, nil
}

// Check runs the consistency check over the whole project.
func (p *Project) Check() (*Report, error) {
	cat, err := p.LoadCatalog()
	if err != nil {
		return nil, err
	}
	sources, srcWarnings, err := p.LoadSources()
	if err != nil {
		return nil, err
	}
	resources, resWarnings, err := p.LoadResources()
	if err != nil {
		return nil, err
	}
	rep := Check(cat, sources, resources)
	for i, r := range resources {
		rep.Locales[i].Untranslated = r.KeysWithValue(p.opts.Placeholder)
	}
	rep.Warnings = append(srcWarnings, resWarnings...)
	return rep, nil
}

// Change is the new content of one file. A nil Before means the file is
// created.
type Change struct {
	Path          string
	Before, After []string
}

func (c Change) Bytes() []byte {
	return []byte(strings.Join(c.After, "\n"))
}

// Plan holds every file change of a mutation, computed before anything is
// written. For Insert and Rename, Changes[0] is the catalog file.
type Plan struct {
	Mutation Mutation
	Changes  []Change
	// FillIn lists resource lines holding a placeholder value.
	FillIn   []Location
	Warnings []Warning
}

// Diff describes the plan as per-file line diffs.
func (pl *Plan) Diff() string {
	var b strings.Builder
	for _, c := range pl.Changes {
		fmt.Fprintf(&b, "%s (-old +new):\n%s\n", c.Path, cmp.Diff(c.Before, c.After))
	}
	return b.String()
}

// Plan validates m against the current catalog and computes its changes.
// A failing precondition returns an error before any file is written.
func (p *Project) Plan(m Mutation) (*Plan, error) {
	cat, err := p.LoadCatalog()
	if err != nil {
		return nil, err
	}
	if err := m.Validate(cat); err != nil {
		return nil, err
	}
	resources, warnings, err := p.LoadResources()
	if err != nil {
		return nil, err
	}
	plan := &Plan{Mutation: m, Warnings: warnings}

	switch m := m.(type) {
	case Insert:
		lines, err := cat.Insert(m.Anchor, m.Side, m.Name)
		if err != nil {
			return nil, err
		}
		plan.Changes = append(plan.Changes, Change{Path: cat.Path, Before: cat.Lines, After: lines})
		changes, fillIn, warnings := InsertAcrossAll(resources, m.Anchor, m.Side, m.Name, p.opts.Placeholder)
		plan.Changes = append(plan.Changes, changes...)
		plan.FillIn = fillIn
		plan.Warnings = append(plan.Warnings, warnings...)

	case Rename:
		lines, err := cat.Rename(m.Old, m.New)
		if err != nil {
			return nil, err
		}
		plan.Changes = append(plan.Changes, Change{Path: cat.Path, Before: cat.Lines, After: lines})
		changes, warnings := RenameAcrossAll(resources, m.Old, m.New)
		plan.Changes = append(plan.Changes, changes...)
		plan.Warnings = append(plan.Warnings, warnings...)

		sources, srcWarnings, err := p.LoadSources()
		if err != nil {
			return nil, err
		}
		plan.Warnings = append(plan.Warnings, srcWarnings...)
		changes, warnings = RenameReferences(sources, cat.Grammar.ReferencePrefix(), m.Old, m.New)
		plan.Changes = append(plan.Changes, changes...)
		plan.Warnings = append(plan.Warnings, warnings...)

	case AddLocale:
		var base *Resource
		for _, r := range resources {
			if r.Locale == m.Locale {
				return nil, fmt.Errorf("%s: locale %s: %w", r.Path, m.Locale, fs.ErrExist)
			}
			if r.Locale == language.Und && base == nil {
				base = r
			}
		}
		if base == nil {
			return nil, errors.New("no default resource file to copy from")
		}
		change, fillIn := SeedLocale(base, LocalePath(base.Path, m.Locale), p.opts.Placeholder)
		plan.Changes = append(plan.Changes, change)
		plan.FillIn = fillIn

	default:
		return nil, fmt.Errorf("unsupported mutation %T", m)
	}
	return plan, nil
}

// ErrStale is returned by Apply when a file changed after it was planned.
var ErrStale = errors.New("file changed since it was read")

// Apply writes the changes of pl. The catalog is written first; if that
// fails nothing else is touched. Failures on later files do not stop the
// remaining writes and are returned together.
func (p *Project) Apply(pl *Plan) error {
	var errs []error
	for i, c := range pl.Changes {
		err := p.write(c)
		if err != nil && i == 0 {
			return fmt.Errorf("%s: %w", c.Path, err)
		}
		if err != nil {
			p.log.Error("write failed", zap.String("path", c.Path), zap.Error(err))
			errs = append(errs, fmt.Errorf("%s: %w", c.Path, err))
			continue
		}
		p.log.Info("updated", zap.String("path", c.Path))
	}
	return errors.Join(errs...)
}

func (p *Project) write(c Change) error {
	current, err := p.ws.ReadFile(c.Path)
	if c.Before == nil {
		if err == nil {
			return ErrStale
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		return p.ws.WriteFile(c.Path, c.Bytes())
	}
	if err != nil {
		return err
	}
	if !bytes.Equal(current, []byte(strings.Join(c.Before, "\n"))) {
		return ErrStale
	}
	return p.ws.WriteFile(c.Path, c.Bytes())
}
