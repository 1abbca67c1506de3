// Package preview serves a freshly built site over HTTP and rebuilds it when
// the vault changes.
package preview

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"git.home.luguber.info/inful/obsidian2md/internal/config"
	"git.home.luguber.info/inful/obsidian2md/internal/logfields"
	"git.home.luguber.info/inful/obsidian2md/internal/metrics"
	"git.home.luguber.info/inful/obsidian2md/internal/site"
)

// Server is the local preview server. It owns a Builder, a watcher and the
// Prometheus recorder whose registry backs /metrics.
type Server struct {
	cfg     *config.Config
	builder *site.Builder
	rec     *metrics.PrometheusRecorder
}

// NewServer wires a preview server over a build configuration.
func NewServer(cfg *config.Config, rec *metrics.PrometheusRecorder) *Server {
	return &Server{
		cfg:     cfg,
		builder: site.NewBuilder(cfg, rec),
		rec:     rec,
	}
}

// Run builds the site once, then serves it while watching the vault for
// changes. Returns when ctx is canceled or the listener fails.
func (s *Server) Run(ctx context.Context) error {
	if _, err := s.builder.Build(); err != nil {
		return err
	}
	s.rec.IncRebuild("cli")

	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.Dir(s.cfg.Output.Directory)))
	mux.Handle("/metrics", s.rec.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	srv := &http.Server{
		Addr:              s.cfg.Preview.Listen,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	watchCtx, cancelWatch := context.WithCancel(ctx)
	defer cancelWatch()
	go func() {
		debounce := time.Duration(s.cfg.Preview.DebounceMS) * time.Millisecond
		err := WatchVault(watchCtx, s.cfg.Source.Root, debounce, s.reBuild)
		if err != nil && !errors.Is(err, context.Canceled) {
			slog.Warn("Vault watcher stopped", logfields.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	slog.Info("Preview server listening", slog.String("addr", s.cfg.Preview.Listen))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// reBuild runs a full rebuild after a watch event. Build failures are logged
// and the previous output tree keeps serving.
func (s *Server) reBuild() {
	s.rec.IncRebuild("watch")
	if _, err := s.builder.Build(); err != nil {
		slog.Error("Rebuild failed, serving previous output", logfields.Error(err))
	}
}
