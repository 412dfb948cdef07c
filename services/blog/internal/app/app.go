package app

import (
	"fmt"

	"blogdb/pkg/config"
	"blogdb/pkg/database"
	"blogdb/pkg/logger"
	"blogdb/services/blog/internal/repo/persistent"
	"blogdb/services/blog/internal/usecase"

	"gorm.io/gorm"
)

type App struct {
	cfg *config.Config
	log *logger.Logger
	db  *gorm.DB

	Authors usecase.AuthorUseCase
	Posts   usecase.PostUseCase
}

func New(cfg *config.Config, log *logger.Logger) (*App, error) {
	log = log.With("driver", cfg.DBDriver)

	db, err := database.NewDB(cfg, log)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		return nil, err
	}

	if cfg.AutoMigrate {
		if err := database.Migrate(db, cfg.DBDriver, log); err != nil {
			log.Error("Failed to migrate database: %v", err)
			_ = database.Close(db)
			return nil, err
		}
	}

	// Initialize repositories
	authorRepo := persistent.NewAuthorRepository(db)
	postRepo := persistent.NewPostRepository(db)

	log.Info("Blog store ready")

	return &App{
		cfg:     cfg,
		log:     log,
		db:      db,
		Authors: usecase.NewAuthorUseCase(authorRepo, log),
		Posts:   usecase.NewPostUseCase(postRepo, authorRepo, log),
	}, nil
}

// DB exposes the underlying connection for maintenance tooling.
func (a *App) DB() *gorm.DB {
	return a.db
}

func (a *App) Close() error {
	if err := database.Close(a.db); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}
