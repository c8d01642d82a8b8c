package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/youssofmousssa/luxestorebackeend/configs"
	"github.com/youssofmousssa/luxestorebackeend/gateway"
	"github.com/youssofmousssa/luxestorebackeend/middlewares"
	"github.com/youssofmousssa/luxestorebackeend/pkg/logger"
	"github.com/youssofmousssa/luxestorebackeend/pkg/shutdown"
	"github.com/youssofmousssa/luxestorebackeend/routes"
	"github.com/youssofmousssa/luxestorebackeend/ws"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", slog.Any("err", err))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := configs.LoadConfig()
	if err != nil {
		return err
	}

	log := logger.New(logger.Options{
		Service:   "luxestore-api",
		Env:       cfg.AppEnv,
		Level:     cfg.LogLevel,
		AddSource: cfg.IsDev(),
	})

	// DB
	db, err := configs.OpenDB(cfg)
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	// migrate
	if err := configs.Migrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	if err := configs.SeedAdmin(db, cfg, log); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	if cfg.StripeSecretKey == "" {
		log.Warn("STRIPE_SECRET_KEY not set; checkout will fail upstream")
	}
	if cfg.ImgBBAPIKey == "" {
		log.Warn("IMGBB_API_KEY not set; uploads will fail upstream")
	}

	ctx, stop := shutdown.WithSignals(context.Background())
	defer stop()

	feed := ws.NewOrderFeed(log)
	go feed.Run(ctx)

	// HTTP
	logger.Gin(log, cfg.IsDev())
	r := gin.New()
	r.Use(middlewares.RequestLogger(log), middlewares.Recovery(log))

	routes.RegisterRoutes(r, routes.Deps{
		DB:       db,
		Config:   cfg,
		Payments: gateway.NewStripe(cfg.StripeSecretKey, cfg.UpstreamTimeout),
		Images:   gateway.NewImgBB(cfg.ImgBBAPIKey, cfg.ImgBBUploadURL, cfg.UpstreamTimeout),
		Feed:     feed,
	})

	srv := &http.Server{
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      cfg.UpstreamTimeout + 15*time.Second,
		IdleTimeout:       60 * time.Second,
	}
	ln, err := net.Listen("tcp", ":"+cfg.Port)
	if err != nil {
		return err
	}
	return shutdown.Serve(ctx, srv, ln, 10*time.Second, log)
}
