package handler

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/bookstore/internal/service"
)

type RouterConfig struct {
	Books     service.BookService
	Store     Pinger
	Logger    *slog.Logger
	StartTime time.Time
	Version   string
}

// NewRouter mounts the book routes under /api and at the root, plus the
// health endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	e := gin.New()
	e.Use(RequestID(), AccessLog(cfg.Logger), gin.Recovery())

	_ = e.SetTrustedProxies([]string{
		"127.0.0.1",
		"::1",
	})

	healthHandler := NewHealthHandler(cfg.Store, cfg.StartTime, cfg.Version)
	healthHandler.RegisterRoutes(e)

	bookHandler := NewBookHandler(cfg.Books)
	bookHandler.RegisterRoutes(e.Group("/api"))
	bookHandler.RegisterRoutes(e.Group(""))

	return e
}
