package main

import (
	"github.com/spf13/cobra"

	"github.com/ersonp/dota2-ontology/internal/infrastructure/exporters"
)

func newBuildCmd(opts *globalOptions) *cobra.Command {
	var (
		flags  pathFlags
		format string
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Run populate then convert",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd, opts, func(d *Deps) error {
				flags.apply(d)
				result, err := d.BuildHandler.Handle(cmd.Context(), populateRequest(d), convertRequest(d, format))
				if err != nil {
					return err
				}
				printPopulateResult(d.Out, result.Populate)
				printDiagnostics(d.Out, result.Convert)
				return nil
			})
		},
	}

	flags.addSourceFlags(cmd)
	cmd.Flags().StringVar(&flags.ontology, "ontology", "", "Ontology output (default: dota2_ontology.owl)")
	cmd.Flags().StringVarP(&flags.facts, "output", "o", "", "Fact output (default: abox_dota2.pl)")
	cmd.Flags().StringVarP(&format, "format", "f", string(exporters.FormatProlog), "Output format (prolog, json, csv, markdown)")

	return cmd
}
