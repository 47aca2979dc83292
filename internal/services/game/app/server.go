// Package app hosts the game HTTP service lifecycle: it opens the configured
// store, assembles the middleware'd handler, and runs the server until the
// context ends.
package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/louisbranch/life.space/internal/platform/httpx"
	"github.com/louisbranch/life.space/internal/services/game/storage"
	"github.com/louisbranch/life.space/internal/services/game/storage/kv"
	"github.com/louisbranch/life.space/internal/services/game/storage/sqlite"
	"github.com/louisbranch/life.space/internal/services/game/transport/web"
)

const shutdownTimeout = 5 * time.Second

// Config defines startup inputs for the game service.
type Config struct {
	HTTPAddr string
	Backend  string
	DBPath   string
	KVPath   string
}

// Run opens the configured store and serves HTTP until ctx is cancelled.
func Run(ctx context.Context, cfg Config) error {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return errors.New("http address is required")
	}

	store, err := OpenStore(cfg)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("close game store: %v", err)
		}
	}()

	httpServer := &http.Server{
		Addr:              httpAddr,
		Handler:           NewHandler(store),
		ReadHeaderTimeout: 5 * time.Second,
	}

	serveErr := make(chan error, 1)
	log.Printf("game listening on %s backend=%s", httpAddr, backendName(cfg.Backend))
	go func() {
		serveErr <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// NewHandler builds the routed, instrumented root handler.
func NewHandler(store storage.GameStore) http.Handler {
	handler := httpx.Chain(web.NewHandlers(store).Routes(),
		httpx.RecoverPanic(),
		httpx.RequestID(),
		httpx.RequestLogger(log.Default()),
	)
	return otelhttp.NewHandler(handler, "game.http")
}

// OpenStore opens the storage backend named by the config.
func OpenStore(cfg Config) (storage.GameStore, error) {
	switch backendName(cfg.Backend) {
	case "sqlite":
		return sqlite.Open(cfg.DBPath)
	case "kv":
		return kv.Open(cfg.KVPath)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

func backendName(backend string) string {
	backend = strings.ToLower(strings.TrimSpace(backend))
	if backend == "" {
		return "sqlite"
	}
	return backend
}
