package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ersonp/dota2-ontology/internal/application/handlers"
	"github.com/ersonp/dota2-ontology/internal/domain/entities"
	"github.com/ersonp/dota2-ontology/internal/domain/services"
)

func newSearchCmd(opts *globalOptions) *cobra.Command {
	var (
		limit     int
		predicate string
	)

	cmd := &cobra.Command{
		Use:   "search <question>",
		Short: "Search indexed facts",
		Long:  "Performs semantic search over the indexed facts.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var p entities.Predicate
			if predicate != "" {
				parsed, err := services.ParsePredicate(predicate)
				if err != nil {
					return err
				}
				p = parsed
			}

			return withIndex(cmd, opts, func(d *IndexDeps) error {
				var (
					result *handlers.QueryResult
					err    error
				)
				if p != "" {
					result, err = d.QueryHandler.HandleByPredicate(cmd.Context(), args[0], p, limit)
				} else {
					result, err = d.QueryHandler.Handle(cmd.Context(), args[0], limit)
				}
				if err != nil {
					return err
				}
				printSearchResult(d.Out, result)
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", DefaultSearchLimit, "Maximum number of results")
	cmd.Flags().StringVarP(&predicate, "predicate", "p", "", "Filter by predicate (hero, primary_attribute, has_role, has_ability, ability_type, damage_type)")

	return cmd
}

func printSearchResult(w io.Writer, result *handlers.QueryResult) {
	if len(result.Facts) == 0 {
		fmt.Fprintln(w, "No facts found.")
		return
	}

	fmt.Fprintf(w, "Found %d facts:\n\n", len(result.Facts))
	for i, f := range result.Facts {
		fmt.Fprintf(w, "%d. %s  (score %.3f)\n", i+1, f.Fact, f.Score)
	}
}
