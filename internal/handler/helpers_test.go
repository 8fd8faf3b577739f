package handler

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/snnyvrz/bookstore/internal/model"
	"github.com/snnyvrz/bookstore/internal/repository"
	"github.com/snnyvrz/bookstore/internal/service"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:testdb_" + uuid.New().String() + "?mode=memory&cache=shared"

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	if err := db.AutoMigrate(&model.Book{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB from gorm: %v", err)
	}

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return db
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func setupRouterWithService(books service.BookService, store Pinger) *gin.Engine {
	gin.SetMode(gin.TestMode)

	return NewRouter(RouterConfig{
		Books:     books,
		Store:     store,
		Logger:    quietLogger(),
		StartTime: time.Now(),
		Version:   "test",
	})
}

func setupTestRouter(db *gorm.DB) *gin.Engine {
	repo := repository.NewGormBookRepository(db)
	return setupRouterWithService(service.NewBooks(repo), repo)
}

func seedBook(t *testing.T, db *gorm.DB, book model.Book) model.Book {
	t.Helper()

	if err := db.Create(&book).Error; err != nil {
		t.Fatalf("failed to seed book %q: %v", book.Title, err)
	}

	return book
}

type fakeBookService struct {
	CreateFn  func(ctx context.Context, b model.Book) (model.Book, error)
	ListAllFn func(ctx context.Context) ([]model.Book, error)
	GetByIDFn func(ctx context.Context, id uint64) (model.Book, error)
	UpdateFn  func(ctx context.Context, id uint64, b model.Book) (model.Book, error)
	DeleteFn  func(ctx context.Context, id uint64) error
}

func (f *fakeBookService) Create(ctx context.Context, b model.Book) (model.Book, error) {
	if f.CreateFn != nil {
		return f.CreateFn(ctx, b)
	}
	return b, nil
}

func (f *fakeBookService) ListAll(ctx context.Context) ([]model.Book, error) {
	if f.ListAllFn != nil {
		return f.ListAllFn(ctx)
	}
	return []model.Book{}, nil
}

func (f *fakeBookService) GetByID(ctx context.Context, id uint64) (model.Book, error) {
	if f.GetByIDFn != nil {
		return f.GetByIDFn(ctx, id)
	}
	return model.Book{}, &service.NotFoundError{ID: id}
}

func (f *fakeBookService) Update(ctx context.Context, id uint64, b model.Book) (model.Book, error) {
	if f.UpdateFn != nil {
		return f.UpdateFn(ctx, id, b)
	}
	return model.Book{}, &service.NotFoundError{ID: id}
}

func (f *fakeBookService) Delete(ctx context.Context, id uint64) error {
	if f.DeleteFn != nil {
		return f.DeleteFn(ctx, id)
	}
	return &service.NotFoundError{ID: id}
}

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

var alwaysUp = pingerFunc(func(context.Context) error { return nil })
