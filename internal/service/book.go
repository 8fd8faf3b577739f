// Package service holds the book lifecycle rules: reads, updates and deletes
// only succeed against books that exist.
package service

import (
	"context"
	"errors"

	"github.com/snnyvrz/bookstore/internal/model"
	"github.com/snnyvrz/bookstore/internal/repository"
)

type BookService interface {
	Create(ctx context.Context, book model.Book) (model.Book, error)
	ListAll(ctx context.Context) ([]model.Book, error)
	GetByID(ctx context.Context, id uint64) (model.Book, error)
	Update(ctx context.Context, id uint64, patch model.Book) (model.Book, error)
	Delete(ctx context.Context, id uint64) error
}

type Books struct {
	repo repository.BookRepository
}

func NewBooks(repo repository.BookRepository) *Books {
	return &Books{repo: repo}
}

// Create stores book under a freshly assigned ID. Any ID on the input is ignored.
func (s *Books) Create(ctx context.Context, book model.Book) (model.Book, error) {
	book.ID = 0
	if err := s.repo.Save(ctx, &book); err != nil {
		return model.Book{}, err
	}
	return book, nil
}

func (s *Books) ListAll(ctx context.Context) ([]model.Book, error) {
	books, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if books == nil {
		books = []model.Book{}
	}
	return books, nil
}

func (s *Books) GetByID(ctx context.Context, id uint64) (model.Book, error) {
	book, err := s.find(ctx, id)
	if err != nil {
		return model.Book{}, err
	}
	return *book, nil
}

// Update overwrites all four business fields of the stored book with the
// values in patch, zero values included, and keeps the stored ID.
//
// The lookup and the save are separate storage calls; a concurrent delete
// in between lets the save recreate the row under the same id.
func (s *Books) Update(ctx context.Context, id uint64, patch model.Book) (model.Book, error) {
	book, err := s.find(ctx, id)
	if err != nil {
		return model.Book{}, err
	}

	book.Overwrite(patch)

	if err := s.repo.Save(ctx, book); err != nil {
		return model.Book{}, err
	}
	return *book, nil
}

// Delete removes the book with the given id. The existence check and the
// delete are two storage calls, not one atomic operation.
func (s *Books) Delete(ctx context.Context, id uint64) error {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return &NotFoundError{ID: id}
	}
	return s.repo.DeleteByID(ctx, id)
}

func (s *Books) find(ctx context.Context, id uint64) (*model.Book, error) {
	book, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, &NotFoundError{ID: id}
		}
		return nil, err
	}
	return book, nil
}
