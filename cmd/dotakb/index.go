package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/dota2-ontology/internal/application/handlers"
	"github.com/ersonp/dota2-ontology/internal/domain/services"
)

func newIndexCmd(opts *globalOptions) *cobra.Command {
	var (
		input       string
		dryRun      bool
		batchSize   int
		concurrency int
	)

	cmd := &cobra.Command{
		Use:   "index",
		Short: "Embed the extracted facts into Qdrant",
		Long: `Extracts the facts of the ontology, embeds each one and upserts it into the
Qdrant collection. Re-indexing overwrites facts instead of duplicating them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withIndex(cmd, opts, func(d *IndexDeps) error {
				if input != "" {
					d.Config.Paths.Ontology = input
				}
				result, err := d.IndexHandler.Handle(cmd.Context(), handlers.IndexRequest{
					Input:       d.Path(d.Config.Paths.Ontology),
					Namespace:   d.Config.Namespace,
					DryRun:      dryRun,
					BatchSize:   batchSize,
					Concurrency: concurrency,
				})
				if err != nil {
					return err
				}

				if result.DryRun {
					fmt.Fprintf(d.Out, "Dry run: embedded %d facts in %d batches, nothing saved.\n", result.Indexed, result.Batches)
					return nil
				}
				fmt.Fprintf(d.Out, "Indexed %d facts in %d batches into %s\n", result.Indexed, result.Batches, d.Config.CollectionName())
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "Ontology input (default: dota2_ontology.owl)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Embed without saving")
	cmd.Flags().IntVar(&batchSize, "batch-size", services.DefaultIndexBatchSize, "Facts per embedding request")
	cmd.Flags().IntVar(&concurrency, "concurrency", services.DefaultIndexConcurrency, "Embedding requests in flight")

	return cmd
}
