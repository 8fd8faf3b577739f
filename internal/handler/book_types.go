package handler

import (
	"github.com/shopspring/decimal"
	"github.com/snnyvrz/bookstore/internal/model"
)

// BookRequest is the full representation accepted by create and update.
// Fields left out of the payload are stored as their zero value.
type BookRequest struct {
	Title         string          `json:"title" binding:"max=255" example:"One of Us Is Lying"`
	Author        string          `json:"author" binding:"max=255" example:"Karen M. McManus"`
	Price         decimal.Decimal `json:"price" swaggertype:"string" example:"375.00"`
	PublishedDate model.Date      `json:"publishedDate" swaggertype:"string" example:"2017-05-10"`
}

type Book struct {
	ID            uint64     `json:"id" example:"1"`
	Title         string     `json:"title" example:"One of Us Is Lying"`
	Author        string     `json:"author" example:"Karen M. McManus"`
	Price         string     `json:"price" example:"375.00"`
	PublishedDate model.Date `json:"publishedDate" swaggertype:"string" example:"2017-05-10"`
}
