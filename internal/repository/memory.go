package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/snnyvrz/bookstore/internal/model"
)

// MemoryBookRepository keeps books in a map guarded by a RWMutex.
// IDs are assigned from a counter starting at 1 and never reused.
type MemoryBookRepository struct {
	mu     sync.RWMutex
	books  map[uint64]model.Book
	nextID uint64
}

func NewMemoryBookRepository() *MemoryBookRepository {
	return &MemoryBookRepository{
		books:  make(map[uint64]model.Book),
		nextID: 1,
	}
}

func (r *MemoryBookRepository) Save(_ context.Context, book *model.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if book.ID == 0 {
		book.ID = r.nextID
		r.nextID++
	} else if book.ID >= r.nextID {
		r.nextID = book.ID + 1
	}

	r.books[book.ID] = *book
	return nil
}

func (r *MemoryBookRepository) FindByID(_ context.Context, id uint64) (*model.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	book, ok := r.books[id]
	if !ok {
		return nil, ErrRecordNotFound
	}
	return &book, nil
}

// FindAll returns all books in ascending ID order.
func (r *MemoryBookRepository) FindAll(_ context.Context) ([]model.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]model.Book, 0, len(r.books))
	for _, book := range r.books {
		result = append(result, book)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result, nil
}

func (r *MemoryBookRepository) ExistsByID(_ context.Context, id uint64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.books[id]
	return ok, nil
}

func (r *MemoryBookRepository) DeleteByID(_ context.Context, id uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.books, id)
	return nil
}

func (r *MemoryBookRepository) Ping(context.Context) error {
	return nil
}
