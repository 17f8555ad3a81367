// Package app wires configuration, content, services and the HTTP server together.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"bhajaj.dev/internal/config"
	"bhajaj.dev/internal/content"
	"bhajaj.dev/internal/handlers"
	"bhajaj.dev/internal/logger"
	"bhajaj.dev/internal/metrics"
	"bhajaj.dev/internal/middleware"
	"bhajaj.dev/internal/security"
	"bhajaj.dev/internal/services"
)

// Run is the entry point. args is os.Args[1:].
func Run(w io.Writer, args []string) error {
	cmd := ParseCommand(args)

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cmd == CommandHealthcheck {
		return runHealthcheck(cfg.ServerAddr)
	}

	log := logger.SetupDefault(w, cfg.LogLevel)
	log.Info("starting application",
		slog.String("command", string(cmd)),
		slog.String("addr", cfg.ServerAddr),
		slog.String("content_path", cfg.ContentPath),
	)

	srv, err := NewServer(cfg, log)
	if err != nil {
		return err
	}

	ln, err := net.Listen("tcp", cfg.ServerAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.ServerAddr, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return srv.Serve(ctx, ln)
}

// Server is the configured HTTP server and the resources it owns
type Server struct {
	cfg         *config.Config
	logger      *slog.Logger
	handler     http.Handler
	rateLimiter *middleware.RateLimiter
}

// NewServer loads content and wires services, handlers and middleware
func NewServer(cfg *config.Config, log *slog.Logger) (*Server, error) {
	c, err := content.Load(cfg.ContentPath, security.NewTextSanitizer())
	if err != nil {
		return nil, fmt.Errorf("failed to load content: %w", err)
	}

	var (
		recorder       metrics.Recorder = metrics.Nop{}
		metricsHandler http.Handler
	)
	if cfg.MetricsEnabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		recorder = metrics.NewCollector(reg)
		metricsHandler = metrics.Handler(reg)
	}

	contentService := services.NewContentService(c)
	renderService := services.NewRenderService(contentService, cfg.SiteTitle, recorder)
	rateLimiter := middleware.NewRateLimiter(
		middleware.RateLimiterConfigPerMinute(cfg.RateLimit.PerMinute, cfg.RateLimit.Burst),
	)

	router := handlers.SetupRoutes(handlers.RouterDeps{
		Logger:         log,
		ContentService: contentService,
		RenderService:  renderService,
		RateLimiter:    rateLimiter,
		Recorder:       recorder,
		MetricsHandler: metricsHandler,

		TrustProxyHeaders: cfg.TrustProxyHeaders,
	})

	log.Info("content loaded",
		slog.Int("skills", len(c.About.Skills)),
		slog.Int("education", len(c.Education)),
		slog.Int("projects", len(c.Projects)),
	)

	return &Server{
		cfg:         cfg,
		logger:      log,
		handler:     router,
		rateLimiter: rateLimiter,
	}, nil
}

// Handler returns the fully wired router
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down
// gracefully within the configured timeout
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	defer s.rateLimiter.Stop()

	server := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", slog.String("addr", ln.Addr().String()))
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.logger.Info("server stopped")
	return nil
}

// runHealthcheck probes /api/health on the local server
func runHealthcheck(addr string) error {
	url := fmt.Sprintf("http://%s/api/health", healthcheckHost(addr))
	client := &http.Client{Timeout: 5 * time.Second}

	resp, err := client.Get(url)
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check returned status %d", resp.StatusCode)
	}

	return nil
}

// healthcheckHost turns a listen address into a dialable host:port
func healthcheckHost(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	return net.JoinHostPort(host, port)
}
