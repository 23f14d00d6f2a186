package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"msgtool/internal/catalog"
)

func newAddLocaleCmd(a *app) *cobra.Command {
	var dryRun bool
	cmd := &cobra.Command{
		Use:   "add-locale LOCALE",
		Short: "Create the resource file of a new locale with placeholder values",
		Long: `add-locale copies the default resource file (the one without a locale
suffix) to a new file for LOCALE, e.g. "pt-BR" creates Resource_pt_BR.properties.
Every value is replaced by the placeholder.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(cmd); err != nil {
				return err
			}
			tag, err := language.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid locale %q: %w", args[0], err)
			}
			plan, err := a.project.Plan(catalog.AddLocale{Locale: tag})
			if err != nil {
				return err
			}
			if dryRun {
				fmt.Fprint(a.stdout, plan.Diff())
				return nil
			}
			if err := a.project.Apply(plan); err != nil {
				return err
			}
			a.printWarnings(plan.Warnings)
			fmt.Fprintf(a.stdout, "Created %s. Please fill out its %d entries.\n", plan.Changes[0].Path, len(plan.FillIn))
			return nil
		},
	}
	cmd.Flags().String("placeholder", catalog.DefaultPlaceholder, "value of the new resource entries")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "print the new file instead of writing it")
	return cmd
}
