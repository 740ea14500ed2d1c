package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ersonp/dota2-ontology/internal/application/handlers"
	"github.com/ersonp/dota2-ontology/internal/domain/services"
	"github.com/ersonp/dota2-ontology/internal/infrastructure/config"
	embedder "github.com/ersonp/dota2-ontology/internal/infrastructure/embedder/openai"
	"github.com/ersonp/dota2-ontology/internal/infrastructure/logging"
	"github.com/ersonp/dota2-ontology/internal/infrastructure/parsers"
	"github.com/ersonp/dota2-ontology/internal/infrastructure/relationaldb/sqlite"
	"github.com/ersonp/dota2-ontology/internal/infrastructure/vectordb/qdrant"
)

// Deps holds high-level dependencies for commands.
// Only handlers are exposed - services and repositories are internal.
type Deps struct {
	Config  *config.Config
	BaseDir string
	Logger  *zap.Logger
	Out     io.Writer

	PopulateHandler *handlers.PopulateHandler
	ConvertHandler  *handlers.ConvertHandler
	BuildHandler    *handlers.BuildHandler

	extractionService *services.ExtractionService
}

// CatalogDeps holds the handlers backed by the SQLite catalog.
type CatalogDeps struct {
	*Deps
	StoreHandler    *handlers.StoreHandler
	DescribeHandler *handlers.DescribeHandler
	ListHandler     *handlers.ListHandler
}

// IndexDeps holds the handlers backed by the embedder and Qdrant.
type IndexDeps struct {
	*Deps
	IndexHandler *handlers.IndexHandler
	QueryHandler *handlers.QueryHandler
}

// Path resolves a configured path against the working directory.
func (d *Deps) Path(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(d.BaseDir, p)
}

// Sources returns the resolved input paths.
func (d *Deps) Sources() parsers.SourcePaths {
	return parsers.SourcePaths{
		Heroes:      d.Path(d.Config.Paths.Heroes),
		HeroDetails: d.Path(d.Config.Paths.HeroDetails),
		Items:       d.Path(d.Config.Paths.Items),
		Abilities:   d.Path(d.Config.Paths.Abilities),
	}
}

func baseDir(opts *globalOptions) (string, error) {
	if opts.dir != "" {
		return opts.dir, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting current directory: %w", err)
	}
	return cwd, nil
}

// withDeps loads config and builds the pipeline dependencies, then calls
// the provided function. It handles cleanup automatically.
func withDeps(cmd *cobra.Command, opts *globalOptions, fn func(*Deps) error) error {
	base, err := baseDir(opts)
	if err != nil {
		return err
	}

	cfg, err := config.Load(base)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	level := cfg.Log.Level
	if opts.logLevel != "" {
		level = opts.logLevel
	}
	logger, err := logging.New(level)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	out := cmd.OutOrStdout()
	populateService := services.NewPopulateService(logger.Named("populate"), cfg.ImageHost)
	extractionService := services.NewExtractionService(logger.Named("extract"))
	populateHandler := handlers.NewPopulateHandler(populateService, out)
	convertHandler := handlers.NewConvertHandler(extractionService, out)

	return fn(&Deps{
		Config:            cfg,
		BaseDir:           base,
		Logger:            logger,
		Out:               out,
		PopulateHandler:   populateHandler,
		ConvertHandler:    convertHandler,
		BuildHandler:      handlers.NewBuildHandler(populateHandler, convertHandler),
		extractionService: extractionService,
	})
}

// withCatalog opens the SQLite catalog on top of the pipeline dependencies.
func withCatalog(cmd *cobra.Command, opts *globalOptions, fn func(*CatalogDeps) error) error {
	return withDeps(cmd, opts, func(d *Deps) error {
		path := d.Path(d.Config.SQLite.Path)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return fmt.Errorf("creating catalog directory: %w", err)
		}

		repo, err := sqlite.NewRepository(config.SQLiteConfig{Path: path})
		if err != nil {
			return fmt.Errorf("creating sqlite repository: %w", err)
		}
		defer repo.Close()

		if err := repo.EnsureSchema(cmd.Context()); err != nil {
			return fmt.Errorf("ensuring sqlite schema: %w", err)
		}

		catalogService := services.NewCatalogService(repo, d.Logger.Named("catalog"))
		return fn(&CatalogDeps{
			Deps:            d,
			StoreHandler:    handlers.NewStoreHandler(repo, catalogService),
			DescribeHandler: handlers.NewDescribeHandler(catalogService),
			ListHandler:     handlers.NewListHandler(catalogService),
		})
	})
}

// withIndex connects to Qdrant and the embedding provider.
func withIndex(cmd *cobra.Command, opts *globalOptions, fn func(*IndexDeps) error) error {
	return withDeps(cmd, opts, func(d *Deps) error {
		qdrantCfg := d.Config.Qdrant
		qdrantCfg.Collection = d.Config.CollectionName()

		repo, err := qdrant.NewRepository(qdrantCfg)
		if err != nil {
			return fmt.Errorf("creating qdrant repository: %w", err)
		}
		defer repo.Close()

		emb, err := embedder.NewEmbedder(d.Config.Embedder)
		if err != nil {
			return fmt.Errorf("creating embedder: %w", err)
		}

		indexService := services.NewIndexService(emb, repo, d.Logger.Named("index"))
		return fn(&IndexDeps{
			Deps:         d,
			IndexHandler: handlers.NewIndexHandler(repo, d.extractionService, indexService, embedder.VectorSize),
			QueryHandler: handlers.NewQueryHandler(services.NewQueryService(emb, repo)),
		})
	})
}
