// Command msgtool checks and edits a message catalog: the enumeration of
// message keys in a source file, the resource files translating them and
// the source lines referencing them.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"msgtool/internal/catalog"
	"msgtool/internal/config"
	"msgtool/internal/logger"
)

type app struct {
	stdout, stderr io.Writer

	cfg     *config.Config
	log     *zap.Logger
	project *catalog.Project
}

// setup loads the configuration for cmd and opens the project.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}
	l, err := logger.New(a.stderr, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	ws, err := catalog.NewWorkspace(cfg.Root)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = l
	a.project = catalog.NewProject(ws, cfg.ProjectOptions(), l)
	l.Debug("loaded configuration",
		zap.String("root", cfg.Root),
		zap.String("catalog", cfg.Catalog),
		zap.Strings("resources", cfg.Resources),
		zap.Strings("sources", cfg.Sources))
	return nil
}

func (a *app) printWarnings(warnings []catalog.Warning) {
	for _, w := range warnings {
		a.log.Warn(w.Kind.String(), zap.String("path", w.Path), zap.Int("line", w.Line), zap.String("message", w.Message))
		fmt.Fprintf(a.stdout, "Warning: %s\n", w)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}
	root := &cobra.Command{
		Use:   "msgtool",
		Short: "Check and edit a message catalog and its translations",
		Long: `msgtool keeps a message catalog consistent with the resource files
translating it and the source code referencing it.

The catalog is an enumeration block (e.g. "public enum Msg { ... ;") in a
source file. Each entry has one key=value line per resource file and is
referenced in source code as Msg.<entry>.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.String("root", ".", "project directory")
	pf.String("config", "", "configuration file (default <root>/"+config.FileName+")")
	pf.String("catalog", "", "catalog-definition file, relative to the project directory")
	pf.String("log-level", "info", "log level: debug, info, warn or error")
	pf.String("log-format", "console", "log format: console or json")

	root.AddCommand(
		newCheckCmd(a),
		newInsertCmd(a),
		newRenameCmd(a),
		newAddLocaleCmd(a),
	)
	return root
}

func main() {
	log.SetFlags(0)
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		log.Fatal(err)
	}
}
