package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStoreCmd(opts *globalOptions) *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "store",
		Short: "Load the ontology into the SQLite catalog",
		Long: `Replaces the catalog contents with the named individuals of the ontology,
their classes, data values and links, so they can be looked up with
describe and list.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCatalog(cmd, opts, func(d *CatalogDeps) error {
				if input != "" {
					d.Config.Paths.Ontology = input
				}
				result, err := d.StoreHandler.Handle(cmd.Context(), d.Path(d.Config.Paths.Ontology), d.Config.Namespace)
				if err != nil {
					return err
				}

				fmt.Fprintf(d.Out, "Stored %s in %s\n", result.Input, d.Path(d.Config.SQLite.Path))
				fmt.Fprintf(d.Out, "  Entities:      %d\n", result.Entities)
				fmt.Fprintf(d.Out, "  Attributes:    %d\n", result.Attributes)
				fmt.Fprintf(d.Out, "  Relationships: %d\n", result.Relationships)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "Ontology input (default: dota2_ontology.owl)")

	return cmd
}
