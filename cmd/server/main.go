package main

import (
	"context"
	"log"

	"github.com/ecomdash/product-dashboard/internal/config"
	"github.com/ecomdash/product-dashboard/internal/es"
	"github.com/ecomdash/product-dashboard/internal/httpserver"
	"github.com/ecomdash/product-dashboard/internal/logging"
	"github.com/ecomdash/product-dashboard/internal/mykafka"
	"github.com/ecomdash/product-dashboard/internal/repo"
	"github.com/ecomdash/product-dashboard/internal/service"
	"github.com/ecomdash/product-dashboard/pkg/db"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := logging.New(cfg.LogLevel)

	gdb, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("open database", "error", err)
		log.Fatal(err)
	}

	var producer service.EventPublisher
	if len(cfg.KafkaBrokers) > 0 {
		p := mykafka.NewProducer(cfg.KafkaBrokers)
		defer p.Close()
		producer = p
	}

	var index service.ProductIndex
	if cfg.ESURL != "" {
		idx, err := es.NewIndexer(cfg.ESURL, cfg.ESUser, cfg.ESPassword)
		if err != nil {
			logger.Error("elasticsearch unavailable, index mirroring disabled", "error", err)
		} else {
			index = idx
		}
	}

	r := repo.New(gdb)
	authSvc := service.NewAuthService(r, producer, []byte(cfg.JWTSecret), cfg.TokenTTL)
	catalogSvc := service.NewCatalogService(r, producer, index)

	e := httpserver.New(&httpserver.Deps{
		AuthHandler:    &httpserver.AuthHTTP{Svc: authSvc},
		CatalogHandler: &httpserver.CatalogHTTP{Svc: catalogSvc},
		JWTSecret:      []byte(cfg.JWTSecret),
		Logger:         logger,
	})

	logger.Info("starting server", "port", cfg.Port, "env", cfg.Env)
	if err := e.Start(":" + cfg.Port); err != nil {
		logger.Error("server stopped", "error", err)
	}
}
