// Package app assembles the store, the book service and its instrumentation
// from a Config. Both the server and the seed command start from here.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/snnyvrz/bookstore/internal/config"
	"github.com/snnyvrz/bookstore/internal/db"
	"github.com/snnyvrz/bookstore/internal/observe"
	"github.com/snnyvrz/bookstore/internal/repository"
	"github.com/snnyvrz/bookstore/internal/service"
)

type Store interface {
	repository.BookRepository
	Ping(ctx context.Context) error
}

type App struct {
	Logger *slog.Logger
	Store  Store
	Books  service.BookService

	close func() error
}

func New(cfg *config.Config, logOut io.Writer) (*App, error) {
	logger, err := observe.NewLogger(logOut, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, err
	}

	store, closeFn, err := openStore(cfg)
	if err != nil {
		return nil, err
	}

	books, err := observe.NewService(service.NewBooks(store), observe.WithLogger(logger))
	if err != nil {
		_ = closeFn()
		return nil, err
	}

	return &App{
		Logger: logger,
		Store:  store,
		Books:  books,
		close:  closeFn,
	}, nil
}

func (a *App) Close() error {
	return a.close()
}

func openStore(cfg *config.Config) (Store, func() error, error) {
	if cfg.DBDriver == config.DriverMemory {
		return repository.NewMemoryBookRepository(), func() error { return nil }, nil
	}

	database, err := db.ConnectWithRetry(cfg)
	if err != nil {
		return nil, nil, err
	}

	sqlDB, err := database.DB()
	if err != nil {
		return nil, nil, err
	}

	if err := db.Migrate(database); err != nil {
		_ = sqlDB.Close()
		return nil, nil, fmt.Errorf("migrate: %w", err)
	}

	return repository.NewGormBookRepository(database), sqlDB.Close, nil
}
