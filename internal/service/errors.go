package service

import (
	"errors"
	"fmt"
)

// ErrNotFound matches any *NotFoundError under errors.Is.
var ErrNotFound = errors.New("book not found")

// NotFoundError reports that no book is stored under ID.
type NotFoundError struct {
	ID uint64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Book not found with id %d", e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
