package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/snnyvrz/bookstore/internal/app"
	"github.com/snnyvrz/bookstore/internal/config"
	"github.com/snnyvrz/bookstore/internal/model"
	"github.com/snnyvrz/bookstore/internal/service"
)

var catalog = []model.Book{
	{
		Title:         "One of Us Is Lying",
		Author:        "Karen M. McManus",
		Price:         decimal.RequireFromString("375.00"),
		PublishedDate: model.NewDate(2017, time.May, 10),
	},
	{
		Title:         "Spring Boot Advanced",
		Author:        "John Doe",
		Price:         decimal.RequireFromString("550.00"),
		PublishedDate: model.NewDate(2023, time.January, 1),
	},
	{
		Title:         "Two Can Keep a Secret",
		Author:        "Karen M. McManus",
		Price:         decimal.RequireFromString("399.00"),
		PublishedDate: model.NewDate(2019, time.January, 8),
	},
	{
		Title:         "Domain-Driven Design",
		Author:        "Eric Evans",
		Price:         decimal.RequireFromString("2499.50"),
		PublishedDate: model.NewDate(2003, time.August, 30),
	},
}

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	if cfg.DBDriver == config.DriverMemory {
		log.Fatalf("seeding the memory driver has no lasting effect; set DB_DRIVER to postgres or sqlite")
	}

	a, err := app.New(cfg, os.Stdout)
	if err != nil {
		log.Fatalf("startup failed: %v", err)
	}
	defer a.Close()

	inserted, err := seedCatalog(context.Background(), a.Books, catalog)
	if err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	log.Printf("Done. Inserted %d of %d catalog books", inserted, len(catalog))
}

// seedCatalog creates every catalog book whose title is not stored yet, so
// running the seed twice leaves the catalog unchanged.
func seedCatalog(ctx context.Context, books service.BookService, catalog []model.Book) (int, error) {
	existing, err := books.ListAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("list books: %w", err)
	}

	stored := make(map[string]bool, len(existing))
	for _, b := range existing {
		stored[b.Title] = true
	}

	inserted := 0
	for _, b := range catalog {
		if stored[b.Title] {
			log.Printf("Skipping %q: already present", b.Title)
			continue
		}

		created, err := books.Create(ctx, b)
		if err != nil {
			return inserted, fmt.Errorf("insert %q: %w", b.Title, err)
		}
		stored[b.Title] = true
		inserted++
		log.Printf("Inserted book %d: %s", created.ID, created.Title)
	}

	return inserted, nil
}
