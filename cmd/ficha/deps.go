package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/simoesconsultoriaammao-lab/Ficha-de-Nova-Eden-Jogadores/internal/application/handlers"
	"github.com/simoesconsultoriaammao-lab/Ficha-de-Nova-Eden-Jogadores/internal/domain/entities"
	"github.com/simoesconsultoriaammao-lab/Ficha-de-Nova-Eden-Jogadores/internal/domain/ports"
	"github.com/simoesconsultoriaammao-lab/Ficha-de-Nova-Eden-Jogadores/internal/domain/services"
	"github.com/simoesconsultoriaammao-lab/Ficha-de-Nova-Eden-Jogadores/internal/infrastructure/catalog"
	"github.com/simoesconsultoriaammao-lab/Ficha-de-Nova-Eden-Jogadores/internal/infrastructure/config"
	"github.com/simoesconsultoriaammao-lab/Ficha-de-Nova-Eden-Jogadores/internal/infrastructure/kvstore/bolt"
	"github.com/simoesconsultoriaammao-lab/Ficha-de-Nova-Eden-Jogadores/internal/infrastructure/kvstore/sqlite"
	"github.com/simoesconsultoriaammao-lab/Ficha-de-Nova-Eden-Jogadores/internal/infrastructure/logging"
)

// Deps holds high-level dependencies for commands.
// Only handlers are exposed - services and stores are internal.
type Deps struct {
	Config     *config.Config
	Log        logrus.FieldLogger
	Catalog    *catalog.Catalog
	Characters *handlers.CharacterHandler
	Share      *handlers.ShareHandler
	Import     *handlers.ImportHandler
}

// withDeps loads config and builds dependencies, then calls the provided function.
// It handles cleanup automatically.
func withDeps(ctx context.Context, fn func(*Deps) error) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logging.New(cfg.Log)

	store, err := openStore(ctx, cfg, cwd)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := store.Close(); cerr != nil {
			log.WithError(cerr).Warn("closing roster store")
		}
	}()

	skills, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return fmt.Errorf("loading skill catalog: %w", err)
	}

	deps := buildDeps(ctx, cfg, log, store, skills)
	return fn(deps)
}

// buildDeps wires services and handlers on top of an opened store.
func buildDeps(ctx context.Context, cfg *config.Config, log logrus.FieldLogger, store ports.KeyValueStore, skills *catalog.Catalog) *Deps {
	roster := services.NewRosterService(store, log)
	roster.Load(ctx)

	shareService := services.NewShareService(cfg.Share.Origin)
	importService := services.NewImportService(roster, shareService)
	characters := handlers.NewCharacterHandler(roster, skills)

	return &Deps{
		Config:     cfg,
		Log:        log,
		Catalog:    skills,
		Characters: characters,
		Share:      handlers.NewShareHandler(characters, shareService, importService, skills),
		Import:     handlers.NewImportHandler(importService),
	}
}

// openStore opens the configured key-value backend, creating it if needed.
func openStore(ctx context.Context, cfg *config.Config, basePath string) (ports.KeyValueStore, error) {
	path := cfg.StoragePath(basePath)
	if path != ":memory:" {
		if err := config.EnsureDir(basePath); err != nil {
			return nil, err
		}
	}

	switch cfg.Storage.Driver {
	case config.DriverBolt:
		store, err := bolt.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening bolt store: %w", err)
		}
		return store, nil
	default:
		repo, err := sqlite.NewRepository(path)
		if err != nil {
			return nil, fmt.Errorf("creating sqlite repository: %w", err)
		}
		if err := repo.EnsureSchema(ctx); err != nil {
			_ = repo.Close()
			return nil, fmt.Errorf("ensuring sqlite schema: %w", err)
		}
		return repo, nil
	}
}

// reportWarning prints a storage write warning and swallows it. The change
// it accompanies has already been applied; every other error is returned.
func reportWarning(err error) error {
	if err == nil {
		return nil
	}
	if entities.IsPersistenceWrite(err) {
		fmt.Fprintf(os.Stderr, "warning: %v (the change was not saved)\n", err)
		return nil
	}
	return err
}
