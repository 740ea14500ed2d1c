package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ersonp/dota2-ontology/internal/application/handlers"
	"github.com/ersonp/dota2-ontology/internal/domain/entities"
	"github.com/ersonp/dota2-ontology/internal/infrastructure/exporters"
)

func newConvertCmd(opts *globalOptions) *cobra.Command {
	var (
		flags  pathFlags
		format string
	)

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Derive Prolog facts from the ontology",
		Long: `Parses dota2_ontology.owl and writes hero, role, ability, ability type and
damage type facts to abox_dota2.pl. Other formats: json, csv, markdown.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd, opts, func(d *Deps) error {
				flags.apply(d)
				result, err := d.ConvertHandler.Handle(cmd.Context(), convertRequest(d, format))
				if err != nil {
					return err
				}
				printDiagnostics(d.Out, result)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&flags.ontology, "input", "i", "", "Ontology input (default: dota2_ontology.owl)")
	cmd.Flags().StringVarP(&flags.facts, "output", "o", "", "Fact output (default: abox_dota2.pl)")
	cmd.Flags().StringVarP(&format, "format", "f", string(exporters.FormatProlog), "Output format (prolog, json, csv, markdown)")

	return cmd
}

func convertRequest(d *Deps, format string) handlers.ConvertRequest {
	return handlers.ConvertRequest{
		Namespace: d.Config.Namespace,
		Input:     d.Path(d.Config.Paths.Ontology),
		Output:    d.Path(d.Config.Paths.Facts),
		Format:    exporters.Format(format),
	}
}

func printDiagnostics(w io.Writer, r *handlers.ConvertResult) {
	fmt.Fprintln(w, "Diagnostics:")
	fmt.Fprintf(w, "  %-20s %d\n", "triples", r.Triples)
	fmt.Fprintf(w, "  %-20s %d\n", "abilities inspected", r.Abilities)
	counts := r.Counts()
	for _, p := range entities.Predicates {
		fmt.Fprintf(w, "  %-20s %d\n", p, counts[p])
	}
	fmt.Fprintf(w, "Wrote %d facts to %s (%s)\n", r.Facts.Len(), r.OutputPath, r.Format)
}
