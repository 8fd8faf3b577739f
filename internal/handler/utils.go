package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/snnyvrz/bookstore/internal/model"
)

// Column shape of books.price: numeric(10,2).
const (
	priceScale         = 2
	priceIntegerDigits = 8
)

var priceLimit = decimal.New(1, priceIntegerDigits)

// parseIDParam accepts non-negative ids that fit the signed bigint id column.
func parseIDParam(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 0 {
		return 0, false
	}
	return uint64(id), true
}

// priceFits reports whether p is stored without rounding in books.price.
func priceFits(p decimal.Decimal) bool {
	return p.Equal(p.Truncate(priceScale)) && p.Abs().LessThan(priceLimit)
}

func (r BookRequest) toModel() model.Book {
	return model.Book{
		Title:         r.Title,
		Author:        r.Author,
		Price:         r.Price,
		PublishedDate: r.PublishedDate,
	}
}

func toBookResponse(b model.Book) Book {
	return Book{
		ID:            b.ID,
		Title:         b.Title,
		Author:        b.Author,
		Price:         b.Price.StringFixed(2),
		PublishedDate: b.PublishedDate,
	}
}

func toBookListResponse(books []model.Book) []Book {
	responses := make([]Book, 0, len(books))
	for _, b := range books {
		responses = append(responses, toBookResponse(b))
	}
	return responses
}
