package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"msgtool/internal/catalog"
)

func newInsertCmd(a *app) *cobra.Command {
	var dryRun bool
	cmd := &cobra.Command{
		Use:   "insert before|after ANCHOR NEW",
		Short: "Insert a new entry next to an existing one, in the catalog and every resource file",
		Long: `insert adds NEW before or after ANCHOR in the catalog and, with a
placeholder value, in every resource file that contains ANCHOR. Resource
files lacking ANCHOR are left untouched and reported.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(cmd); err != nil {
				return err
			}
			side, err := catalog.ParseSide(args[0])
			if err != nil {
				return err
			}
			m := catalog.Insert{Anchor: args[1], Side: side, Name: args[2]}
			plan, err := a.project.Plan(m)
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
			a.printWarnings(plan.Warnings)
			for _, loc := range plan.FillIn {
				fmt.Fprintf(a.stdout, "Please fill out the rest in %s, line %d.\n", loc.Path, loc.Line)
			}
			return nil
		},
	}
	cmd.Flags().String("placeholder", catalog.DefaultPlaceholder, "value of the new resource entries")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "print the changes instead of writing them")
	return cmd
}
