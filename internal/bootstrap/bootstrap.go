// Package bootstrap opens the configured store so the API server and the
// command-line tool share one wiring path.
package bootstrap

import (
	"context"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/sangkips/kuittikone/internal/application/service"
	"github.com/sangkips/kuittikone/internal/config"
	"github.com/sangkips/kuittikone/internal/domain/entity"
	domainRepo "github.com/sangkips/kuittikone/internal/domain/repository"
	"github.com/sangkips/kuittikone/internal/infrastructure/database"
	"github.com/sangkips/kuittikone/internal/infrastructure/repository"
	"github.com/sangkips/kuittikone/internal/infrastructure/seed"
	"github.com/spf13/afero"
)

// Store is an opened document store and its companions
type Store struct {
	Documents   *service.DocumentStore
	Idempotency domainRepo.IdempotencyRepository
	Close       func() error
}

// Seeds returns the profiles a new store starts with
func Seeds(cfg *config.StoreConfig, fs afero.Fs) ([]*entity.MerchantProfile, error) {
	if cfg.SeedFile != "" {
		return seed.LoadProfiles(fs, cfg.SeedFile)
	}
	if cfg.SeedDefaults {
		return seed.DefaultProfiles(), nil
	}
	return nil, nil
}

// OpenStore connects the configured driver and loads the document
func OpenStore(ctx context.Context, cfg *config.Config, fs afero.Fs) (*Store, error) {
	seeds, err := Seeds(&cfg.Store, fs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load seed profiles")
	}

	var (
		docRepo domainRepo.DocumentRepository
		st      = &Store{Close: func() error { return nil }}
	)

	switch cfg.Store.Driver {
	case "postgres":
		db, err := database.NewPostgresDB(&cfg.Database, cfg.App.Debug)
		if err != nil {
			return nil, err
		}
		if err := database.AutoMigrate(db); err != nil {
			return nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, errors.Wrap(err, "failed to get underlying sql.DB")
		}
		docRepo = repository.NewDocumentPostgresRepository(db, cfg.Store.DocumentID)
		st.Idempotency = repository.NewIdempotencyRepository(db)
		st.Close = sqlDB.Close
	case "file", "":
		if err := fs.MkdirAll(filepath.Dir(cfg.Store.Path), 0o755); err != nil {
			return nil, errors.Wrapf(err, "failed to create store directory for %s", cfg.Store.Path)
		}
		docRepo = repository.NewDocumentFileRepository(fs, cfg.Store.Path)
		st.Idempotency = repository.NewIdempotencyMemoryRepository()
	default:
		return nil, errors.Errorf("unknown store driver %q (use file or postgres)", cfg.Store.Driver)
	}

	st.Documents = service.NewDocumentStore(docRepo)
	if err := st.Documents.Load(ctx, seeds); err != nil {
		_ = st.Close()
		return nil, err
	}

	log.Info().Str("driver", cfg.Store.Driver).Msg("store opened")
	return st, nil
}
