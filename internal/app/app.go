// Package app arma dependencias (store, blobs, limiter, router) y corre el servidor HTTP.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bordoodles-api/internal/adapters/blob/gcs"
	"bordoodles-api/internal/adapters/blob/localfs"
	mem "bordoodles-api/internal/adapters/storage/memory"
	"bordoodles-api/internal/adapters/storage/sqlstore"
	"bordoodles-api/internal/platform/config"
	"bordoodles-api/internal/platform/logger"
	"bordoodles-api/internal/platform/metrics"
	"bordoodles-api/internal/ports/blob"
	"bordoodles-api/internal/router"
)

const shutdownTimeout = 15 * time.Second

type App struct {
	cfg    config.Config
	log    logger.Logger
	server *http.Server

	// recursos a cerrar en stop, en orden
	closers []io.Closer
}

func NewApp(cfg config.Config, log logger.Logger) (*App, error) {
	a := &App{cfg: cfg, log: log}

	opts := router.Options{
		Logger:         log,
		MaxUploadBytes: cfg.MaxUploadBytes(),
		CORSOrigins:    cfg.CORSOrigins,
		ContactLimiter: cfg.ContactLimiter(),
		Metrics:        metrics.New("bordoodles"),
	}

	// Store
	switch cfg.DBDriver {
	case config.DBDriverMemory:
		log.Warn("using in-memory store, data is lost on restart", nil)
		opts.Parents = mem.NewParentRepo()
		opts.Puppies = mem.NewPuppyRepo()
	default:
		st, err := OpenStore(cfg)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, st)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := st.EnsureSchema(ctx); err != nil {
			a.closeAll()
			return nil, fmt.Errorf("app: ensure schema: %w", err)
		}
		opts.Parents = st.Parents()
		opts.Puppies = st.Puppies()
		log.Info("store ready", map[string]any{"driver": string(st.Driver())})
	}

	// Uploads
	blobs, static, err := a.openBlobs()
	if err != nil {
		a.closeAll()
		return nil, err
	}
	opts.Blobs = blobs
	opts.Static = static

	a.server = &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router.NewRouter(opts),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
	}
	return a, nil
}

// OpenStore abre el store SQL según DB_DRIVER. No aplica para memory.
func OpenStore(cfg config.Config) (*sqlstore.Store, error) {
	driver := sqlstore.Driver(cfg.DBDriver)
	if !driver.IsValid() {
		return nil, fmt.Errorf("app: driver %q has no sql store", cfg.DBDriver)
	}
	st, err := sqlstore.Open(driver, cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("app: open %s: %w", driver, err)
	}
	return st, nil
}

func (a *App) openBlobs() (blob.Store, http.Handler, error) {
	switch a.cfg.UploadBackend {
	case config.UploadBackendGCS:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		st, err := gcs.New(ctx, gcs.Config{
			Bucket:          a.cfg.GCSBucket,
			PublicBaseURL:   a.cfg.GCSPublicBaseURL,
			CredentialsFile: a.cfg.GCSCredentialsFile,
			Timeout:         30 * time.Second,
		})
		if err != nil {
			return nil, nil, err
		}
		a.closers = append(a.closers, st)
		a.log.Info("uploads go to gcs", map[string]any{"bucket": a.cfg.GCSBucket})
		return st, nil, nil
	default:
		st, err := localfs.New(a.cfg.UploadDir, "/")
		if err != nil {
			return nil, nil, err
		}
		a.log.Info("uploads go to local dir", map[string]any{"dir": st.Dir()})
		return st, st.Handler(), nil
	}
}

// Handler expone el router (útil en tests).
func (a *App) Handler() http.Handler {
	return a.server.Handler
}

func (a *App) start(errc chan<- error) {
	a.log.Info("starting server", map[string]any{"addr": a.server.Addr})

	go func() {
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
	}()
}

func (a *App) stop() error {
	a.log.Info("shutting down server", nil)

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err := a.server.Shutdown(ctx)
	if err != nil {
		a.log.Error("server forced to shutdown", map[string]any{"error": err})
	}
	a.closeAll()

	a.log.Info("server exited", nil)
	return err
}

func (a *App) closeAll() {
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			a.log.Warn("close failed", map[string]any{"error": err})
		}
	}
	a.closers = nil
}

// Run levanta el servidor y espera SIGINT/SIGTERM para apagar ordenadamente.
func (a *App) Run() error {
	errc := make(chan error, 1)
	a.start(errc)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case <-ctx.Done():
		return a.stop()
	case err := <-errc:
		a.closeAll()
		return fmt.Errorf("app: listen: %w", err)
	}
}
