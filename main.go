package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"listora/config"
	"listora/db"
	"listora/logger"
	"listora/realtime"
	"listora/router"
	"listora/store"
	"listora/tools"
	"listora/workers"

	"github.com/gin-gonic/gin"
)

// =====================
// ENV toggles
// =====================
//
// - CONFIG_PATH    (default: config/config.json)
// - AUTOMIGRATE=1  run schema automigrate on boot
// - SEED=1         install the default prompt packs on boot
//
// =====================

func main() {
	cfg := config.Get(tools.Getenv("CONFIG_PATH", "config/config.json"))

	zlog, err := logger.New(cfg.LogMode)
	if err != nil {
		log.Fatal(err)
	}
	defer zlog.Sync()

	db.SetConfigurations(cfg)
	database, err := db.Connect(zlog)
	if err != nil {
		zlog.Fatal("database connect failed", "error", err)
	}
	defer database.Close()

	st := store.New(database, zlog)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Redis.Addr != "" {
		bus, err := realtime.New(zlog, cfg.Redis.Addr, cfg.Redis.Channel)
		if err != nil {
			zlog.Fatal("realtime bus init failed", "error", err)
		}
		defer bus.Close()
		if err := bus.Start(ctx, st); err != nil {
			zlog.Fatal("realtime bus start failed", "error", err)
		}
		zlog.Info("realtime bus connected", "addr", cfg.Redis.Addr, "channel", cfg.Redis.Channel)
	}

	uploads := workers.NewUploadProcessor(
		st, zlog,
		time.Duration(cfg.Uploads.ProcessingSeconds)*time.Second,
		nil,
	)

	stopCounts := workers.StartCountRefresher(
		st, zlog,
		time.Duration(cfg.CountsReconcileSeconds)*time.Second,
	)
	defer stopCounts()

	if tools.Getenv("SEED", "0") == "1" {
		tools.SeedPromptPacks(st, zlog)
	}

	if cfg.LogMode == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(db.SetDBtoContext(database))
	r.Use(store.SetStoreToContext(st))
	r.Use(workers.SetUploadsToContext(uploads))
	router.Initialize(r, zlog)

	srv := &http.Server{
		Addr:              ":" + cfg.ApiPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	zlog.Info("listora listening", "port", cfg.ApiPort)
	if err := srv.ListenAndServe(); err != nil {
		zlog.Fatal("server stopped", "error", err)
	}
}
