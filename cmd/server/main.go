package main

// @title           Bookstore Inventory API
// @version         1.0
// @description     API for managing the book catalog.

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /api

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/bookstore/internal/app"
	"github.com/snnyvrz/bookstore/internal/config"
	docs "github.com/snnyvrz/bookstore/internal/docs"
	"github.com/snnyvrz/bookstore/internal/handler"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const appVersion = "0.1.0"

func main() {
	startTime := time.Now()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	gin.SetMode(cfg.GinMode)

	a, err := app.New(cfg, os.Stdout)
	if err != nil {
		log.Fatalf("startup failed: %v", err)
	}
	defer a.Close()

	docs.SwaggerInfo.BasePath = "/api"

	e := handler.NewRouter(handler.RouterConfig{
		Books:     a.Books,
		Store:     a.Store,
		Logger:    a.Logger,
		StartTime: startTime,
		Version:   appVersion,
	})

	e.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	a.Logger.Info("starting server", "addr", cfg.Addr, "driver", cfg.DBDriver, "version", appVersion)
	if err := e.Run(cfg.Addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
