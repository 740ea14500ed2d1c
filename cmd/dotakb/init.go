package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/dota2-ontology/internal/application/handlers"
	"github.com/ersonp/dota2-ontology/internal/infrastructure/config"
	embedder "github.com/ersonp/dota2-ontology/internal/infrastructure/embedder/openai"
	"github.com/ersonp/dota2-ontology/internal/infrastructure/vectordb/qdrant"
)

func newInitCmd(opts *globalOptions) *cobra.Command {
	var withCollection bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default .dotakb/config.yaml",
		Long: `Creates a .dotakb directory with the default configuration. With
--with-collection the Qdrant fact collection is created as well.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := baseDir(opts)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if !withCollection {
				result, err := handlers.NewInitHandler(nil, 0).Handle(cmd.Context(), base)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Created %s\n", result.ConfigPath)
				return nil
			}

			cfg, err := config.Load(base)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			cfg.Qdrant.Collection = cfg.CollectionName()
			repo, err := qdrant.NewRepository(cfg.Qdrant)
			if err != nil {
				return fmt.Errorf("connecting to qdrant: %w", err)
			}
			defer repo.Close()

			result, err := handlers.NewInitHandler(repo, embedder.VectorSize).Handle(cmd.Context(), base)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Created %s\n", result.ConfigPath)
			fmt.Fprintf(out, "Created Qdrant collection: %s\n", result.CollectionName)
			return nil
		},
	}

	cmd.Flags().BoolVar(&withCollection, "with-collection", false, "Also create the Qdrant collection")

	return cmd
}
