package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"msgtool/internal/catalog"
)

func newRenameCmd(a *app) *cobra.Command {
	var dryRun bool
	cmd := &cobra.Command{
		Use:   "rename OLD NEW",
		Short: "Rename an entry in the catalog, every resource file and every reference",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(cmd); err != nil {
				return err
			}
			plan, err := a.project.Plan(catalog.Rename{Old: args[0], New: args[1]})
			if err != nil {
				return err
			}
			if dryRun {
				fmt.Fprint(a.stdout, plan.Diff())
				a.printWarnings(plan.Warnings)
				return nil
			}
			if err := a.project.Apply(plan); err != nil {
				return err
			}
			for _, c := range plan.Changes {
				fmt.Fprintf(a.stdout, "Occurrence in %s replaced.\n", c.Path)
			}
			a.printWarnings(plan.Warnings)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "print the changes instead of writing them")
	return cmd
}
