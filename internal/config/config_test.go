package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"msgtool/internal/catalog"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("msgtool", pflag.ContinueOnError)
	fs.String("root", ".", "")
	fs.String("config", "", "")
	fs.String("catalog", "", "")
	fs.String("placeholder", "", "")
	fs.String("log-level", "info", "")
	fs.String("log-format", "console", "")
	require.NoError(t, fs.Parse(args))
	return fs
}

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0644))
}

func TestLoad_Defaults(t *testing.T) {
	root := t.TempDir()
	t.Setenv("MSGTOOL_CATALOG", "src/Msg.java")

	cfg, err := Load(newFlags(t, "--root", root))
	require.NoError(t, err)

	assert.Equal(t, root, cfg.Root)
	assert.Equal(t, "src/Msg.java", cfg.Catalog)
	assert.Equal(t, catalog.DefaultStart, cfg.EnumStart)
	assert.Equal(t, ";", cfg.Terminator)
	assert.Empty(t, cfg.ReferencePrefix)
	assert.Equal(t, []string{"resources/lang/Resource*.properties"}, cfg.Resources)
	assert.Equal(t, []string{"src/**/*.java", "src/**/*.aj"}, cfg.Sources)
	assert.Empty(t, cfg.Exclude)
	assert.Equal(t, "$TODO$", cfg.Placeholder)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoad_File(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, `catalog: app/Texts.java
enum_start: public enum Texts
exclude:
  - src/generated/**
log:
  format: json
`)
	cfg, err := Load(newFlags(t, "--root", root))
	require.NoError(t, err)

	assert.Equal(t, "app/Texts.java", cfg.Catalog)
	assert.Equal(t, []string{"src/generated/**"}, cfg.Exclude)
	assert.Equal(t, "json", cfg.Log.Format)

	opts := cfg.ProjectOptions()
	assert.Equal(t, "app/Texts.java", opts.Catalog)
	assert.Equal(t, "public enum Texts", opts.Grammar.Start)
	assert.Equal(t, "Texts.", opts.Grammar.ReferencePrefix())
}

func TestLoad_Precedence(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "catalog: Msg.java\nplaceholder: FILE\n")

	cfg, err := Load(newFlags(t, "--root", root))
	require.NoError(t, err)
	assert.Equal(t, "FILE", cfg.Placeholder)

	t.Setenv("MSGTOOL_PLACEHOLDER", "ENV")
	cfg, err = Load(newFlags(t, "--root", root))
	require.NoError(t, err)
	assert.Equal(t, "ENV", cfg.Placeholder)

	cfg, err = Load(newFlags(t, "--root", root, "--placeholder", "FLAG"))
	require.NoError(t, err)
	assert.Equal(t, "FLAG", cfg.Placeholder)
}

func TestLoad_ExplicitFile(t *testing.T) {
	root := t.TempDir()
	other := t.TempDir()
	fn := filepath.Join(other, "custom.yaml")
	require.NoError(t, os.WriteFile(fn, []byte("catalog: x/Msg.java\n"), 0644))

	cfg, err := Load(newFlags(t, "--root", root, "--config", fn))
	require.NoError(t, err)
	assert.Equal(t, "x/Msg.java", cfg.Catalog)
	assert.Equal(t, root, cfg.Root)

	_, err = Load(newFlags(t, "--root", root, "--config", filepath.Join(other, "missing.yaml")))
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	root := t.TempDir()

	_, err := Load(newFlags(t, "--root", root))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalog must be set")

	_, err = Load(newFlags(t, "--root", root, "--catalog", "Msg.java", "--log-format", "xml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log.format")
}
