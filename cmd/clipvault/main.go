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

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/unkn0wn-root/clipvault"
	asynchook "github.com/unkn0wn-root/clipvault/hooks/async"
	"github.com/unkn0wn-root/clipvault/internal/httpapi"
	zaplog "github.com/unkn0wn-root/clipvault/log/zap"
	"github.com/unkn0wn-root/clipvault/sloghooks"
	"github.com/unkn0wn-root/clipvault/store"
	"github.com/unkn0wn-root/clipvault/store/cached"
	"github.com/unkn0wn-root/clipvault/store/memory"
	redisstore "github.com/unkn0wn-root/clipvault/store/redis"
)

func main() {
	var (
		addr      = flag.String("addr", ":8080", "listen address")
		redisAddr = flag.String("redis", "", "redis address; empty = in-memory store")
		namespace = flag.String("namespace", "clip", "redis key namespace")
		staticDir = flag.String("static", "./static", "static files directory")
		useCache  = flag.Bool("cache", false, "front the store with a ristretto lookup cache")
		cacheMB   = flag.Int64("cache-mb", 64, "lookup cache budget in MB")
	)
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer logger.Sync()

	st, err := buildStore(*redisAddr, *namespace)
	if err != nil {
		logger.Fatal("store init failed", zap.Error(err))
	}
	if *useCache {
		st, err = cached.New(st, cached.Config{
			NumCounters: 100_000,
			MaxCost:     *cacheMB << 20,
			BufferItems: 64,
		})
		if err != nil {
			logger.Fatal("lookup cache init failed", zap.Error(err))
		}
	}

	hooks := asynchook.New(
		sloghooks.New(slog.Default(), sloghooks.Options{KeyRejectEvery: 10}),
		1, 1000,
	)
	defer hooks.Close()

	cb, err := clipvault.New(clipvault.Options{
		Store:  st,
		Logger: zaplog.ZapLogger{L: logger},
		Hooks:  hooks,
	})
	if err != nil {
		logger.Fatal("clipboard init failed", zap.Error(err))
	}

	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.Dir(*staticDir)))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	httpapi.NewServer(cb, logger).Register(mux)

	srv := &http.Server{
		Addr:         *addr,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("clipvault listening", zap.String("addr", *addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Warn("shutdown", zap.Error(err))
	}
	if err := cb.Close(ctx); err != nil {
		logger.Warn("store close", zap.Error(err))
	}
}

func buildStore(redisAddr, namespace string) (store.Store, error) {
	if redisAddr == "" {
		return memory.New(), nil
	}
	client := goredis.NewClient(&goredis.Options{Addr: redisAddr})
	return redisstore.New(redisstore.Config{
		Client:      client,
		Namespace:   namespace,
		CloseClient: true,
	})
}
