package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/dota2-ontology/internal/domain/entities"
)

func newListCmd(opts *globalOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list <class>",
		Short: "List catalog entities of a class",
		Long:  "Lists individuals asserted with the class, e.g. AgilityHero, NeutralItem or UltimateAbility.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCatalog(cmd, opts, func(d *CatalogDeps) error {
				class := entities.Class(args[0])
				result, err := d.ListHandler.Handle(cmd.Context(), class, limit)
				if err != nil {
					return err
				}

				if len(result.Entities) == 0 {
					fmt.Fprintf(d.Out, "No %s entities found.\n", class)
					return nil
				}

				fmt.Fprintf(d.Out, "%s (%d shown, %d entities in catalog):\n", class, len(result.Entities), result.Stats.Entities)
				for _, e := range result.Entities {
					fmt.Fprintf(d.Out, "  %s\n", e.Name)
				}
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", DefaultListLimit, "Maximum number of entities")

	return cmd
}
