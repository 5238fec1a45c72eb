package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"shillscore/internal/api"
	"shillscore/internal/cache"
	"shillscore/internal/chain"
	"shillscore/internal/config"
	"shillscore/internal/service"
	"shillscore/internal/social"
)

func main() {
	addr := flag.String("addr", ":8080", "HTTP listen address")
	cfgPath := flag.String("config", "configs/server.yaml", "Path to service YAML config")
	flag.Parse()

	// .env is optional; in containers the keys arrive as plain env vars.
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	// ── Load config ──────────────────────────────────────────────────────────
	loader, err := config.NewLoader(*cfgPath)
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}
	cfg := loader.Config()
	if err := config.Validate(cfg); err != nil {
		slog.Error("config validation failed", "err", err)
		os.Exit(1)
	}

	// ── Upstream clients ──────────────────────────────────────────────────────
	socialClient := social.NewClient(cfg.Social.BaseURL, os.Getenv("TAPESTRY_API_KEY"), cfg.Social.Timeout())
	chainClient := chain.NewClient(cfg.Chain.BaseURL, os.Getenv("HELIUS_API_KEY"), cfg.Chain.Timeout())

	// ── Optional result cache ─────────────────────────────────────────────────
	var scoreCache *cache.ScoreCache
	if cfg.Cache.Enabled() {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.Cache.RedisAddr, DB: cfg.Cache.RedisDB})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			slog.Warn("redis unavailable, caching disabled", "addr", cfg.Cache.RedisAddr, "err", err)
		} else {
			scoreCache = cache.New(rdb, cfg.Cache.TTL())
			slog.Info("result cache enabled", "addr", cfg.Cache.RedisAddr, "ttl", cfg.Cache.TTL())
		}
	}

	analyzer := service.NewAnalyzer(socialClient, chainClient, loader, scoreCache)

	// ── Hot-reload watcher ────────────────────────────────────────────────────
	loader.OnChange(func(newCfg *config.Config) {
		if err := config.Validate(newCfg); err != nil {
			slog.Warn("hot-reload: config invalid", "err", err)
			return
		}
		slog.Info("config reloaded", "patterns", len(newCfg.PostIDPatterns))
	})
	stopWatch, err := loader.Watch()
	if err != nil {
		slog.Warn("config watcher unavailable (hot-reload disabled)", "err", err)
	} else {
		defer stopWatch()
	}

	// ── HTTP server ───────────────────────────────────────────────────────────
	handler := api.New(analyzer)
	srv := &http.Server{
		Addr:         *addr,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("server starting", "addr", *addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	// ── Graceful shutdown ─────────────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("shutting down…")

	shutCtx, shutCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutCancel()
	_ = srv.Shutdown(shutCtx)
	slog.Info("goodbye")
}
