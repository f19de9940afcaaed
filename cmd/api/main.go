package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pet-adoptions/internal/adapters/auth/token"
	pg "pet-adoptions/internal/adapters/storage/postgres"
	"pet-adoptions/internal/config"
	"pet-adoptions/internal/platform/kv"
	"pet-adoptions/internal/platform/logger"
	"pet-adoptions/internal/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		App:    "pet-adoptions",
		Pretty: cfg.AppEnv == "development",
	})

	var db *sql.DB
	if cfg.Database.DSN != "" {
		db, err = pg.Open(cfg.Database.DSN)
		if err != nil {
			log.Error("postgres connect failed", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
		defer db.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := pg.Migrate(ctx, db); err != nil {
			cancel()
			log.Error("migrations failed", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
		cancel()
	} else {
		log.Warn("DB_DSN not set, using in-memory store", nil)
	}

	limiter, err := kv.NewRateLimiter(cfg.Redis.URL)
	if err != nil {
		log.Error("redis connect failed", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	defer limiter.Close()

	r := router.NewRouter(router.Options{
		DB:      db,
		Tokens:  token.NewManager(cfg.Session.JWTSecret, cfg.Session.TokenTTL),
		Limiter: limiter,
		Log:     log,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr, "env": cfg.AppEnv})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("shutdown error", map[string]any{"error": err.Error()})
	}
}
