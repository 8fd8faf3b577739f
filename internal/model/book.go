package model

import (
	"github.com/shopspring/decimal"
)

type Book struct {
	ID            uint64          `gorm:"primaryKey;autoIncrement"`
	Title         string          `gorm:"size:255"`
	Author        string          `gorm:"size:255"`
	Price         decimal.Decimal `gorm:"type:numeric(10,2)"`
	PublishedDate Date
}

func (Book) TableName() string {
	return "books"
}

// Overwrite replaces every business field with the values from src.
// The receiver's ID is left untouched.
func (b *Book) Overwrite(src Book) {
	b.Title = src.Title
	b.Author = src.Author
	b.Price = src.Price
	b.PublishedDate = src.PublishedDate
}
