//go:build integration
// +build integration

package integration

import "github.com/snnyvrz/bookstore/internal/model"

func bookNamed(title string) model.Book {
	return model.Book{Title: title, Author: "Integration"}
}
