package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"msgtool/internal/report"
)

var errFindings = errors.New("consistency check found problems")

func newCheckCmd(a *app) *cobra.Command {
	var (
		format string
		output string
		strict bool
	)
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report unused entries, unattributed references and out-of-sync resource files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(cmd); err != nil {
				return err
			}
			f, err := report.ParseFormat(format)
			if err != nil {
				return err
			}
			rep, err := a.project.Check()
			if err != nil {
				return err
			}
			a.log.Info("checked catalog",
				zap.String("catalog", rep.Catalog),
				zap.Int("entries", rep.Entries),
				zap.Int("sources", rep.Sources),
				zap.Int("unused", len(rep.Unused)),
				zap.Int("unattributed", len(rep.Unattributed)))

			if output != "" {
				if err := report.WriteFile(output, rep, f); err != nil {
					return fmt.Errorf("write report: %w", err)
				}
				a.log.Info("wrote report", zap.String("path", output))
			} else if err := report.Write(a.stdout, rep, f); err != nil {
				return err
			}

			if strict && !rep.Clean() {
				return errFindings
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", string(report.Text), "report format: text, markdown, html or yaml")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the report to this file instead of stdout")
	cmd.Flags().BoolVar(&strict, "strict", false, "exit with an error if the check has findings")
	return cmd
}
