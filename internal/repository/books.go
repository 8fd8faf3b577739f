package repository

import (
	"context"
	"math"

	"github.com/snnyvrz/bookstore/internal/model"
	"gorm.io/gorm"
)

// ErrRecordNotFound is returned by FindByID when no book has the given id.
var ErrRecordNotFound = gorm.ErrRecordNotFound

type BookRepository interface {
	Save(ctx context.Context, book *model.Book) error
	FindByID(ctx context.Context, id uint64) (*model.Book, error)
	FindAll(ctx context.Context) ([]model.Book, error)
	ExistsByID(ctx context.Context, id uint64) (bool, error)
	DeleteByID(ctx context.Context, id uint64) error
}

type GormBookRepository struct {
	db *gorm.DB
}

func NewGormBookRepository(db *gorm.DB) *GormBookRepository {
	return &GormBookRepository{db: db}
}

// Save inserts the book when its ID is zero and overwrites the stored row
// otherwise. The assigned ID is written back into book.
func (r *GormBookRepository) Save(ctx context.Context, book *model.Book) error {
	return r.db.WithContext(ctx).Save(book).Error
}

func (r *GormBookRepository) FindByID(ctx context.Context, id uint64) (*model.Book, error) {
	if !fitsColumn(id) {
		return nil, ErrRecordNotFound
	}

	var book model.Book
	if err := r.db.WithContext(ctx).
		First(&book, "id = ?", id).Error; err != nil {

		return nil, err
	}
	return &book, nil
}

func (r *GormBookRepository) FindAll(ctx context.Context) ([]model.Book, error) {
	books := make([]model.Book, 0)
	if err := r.db.WithContext(ctx).
		Order("id").
		Find(&books).Error; err != nil {

		return nil, err
	}
	return books, nil
}

func (r *GormBookRepository) ExistsByID(ctx context.Context, id uint64) (bool, error) {
	if !fitsColumn(id) {
		return false, nil
	}

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&model.Book{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {

		return false, err
	}
	return count > 0, nil
}

// DeleteByID removes the row if present. Deleting a missing id is not an error.
func (r *GormBookRepository) DeleteByID(ctx context.Context, id uint64) error {
	if !fitsColumn(id) {
		return nil
	}
	return r.db.WithContext(ctx).Delete(&model.Book{}, "id = ?", id).Error
}

// Ping reports whether the underlying database is reachable.
func (r *GormBookRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// fitsColumn reports whether id is representable in the signed bigint id
// column. Larger ids can never have been assigned.
func fitsColumn(id uint64) bool {
	return id <= math.MaxInt64
}
