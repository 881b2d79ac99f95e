// Package server exposes parsing and label printing over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	kargo "github.com/okang-lab/Kaffesa-Cargo-Print"
	"github.com/okang-lab/Kaffesa-Cargo-Print/internal/session"
	"github.com/okang-lab/Kaffesa-Cargo-Print/shipment"
)

// Renderer produces label documents. [*kargo.Printer] implements it.
type Renderer interface {
	LabelPDF(ctx context.Context, rec shipment.Record) (*kargo.Result, error)
	BulkPDF(ctx context.Context, recs []shipment.Record) (*kargo.Result, error)
	PrintHTML(w io.Writer, recs []shipment.Record) error
}

// Options configures a [Server].
type Options struct {
	Store    *session.Store
	Renderer Renderer
	Parser   *shipment.Parser
	Logger   *slog.Logger

	// AllowedOrigins enables CORS for the listed origins; "*" allows any.
	AllowedOrigins []string
	// PDFRate and PDFBurst size the token bucket shared by PDF routes.
	PDFRate  float64
	PDFBurst int
	// MaxUpload caps request bodies on the parse route, in bytes.
	MaxUpload int64
	// SweepInterval is how often [Server.Run] evicts idle sessions.
	SweepInterval time.Duration
}

// Server is the HTTP front end.
type Server struct {
	engine    *gin.Engine
	store     *session.Store
	renderer  Renderer
	parser    *shipment.Parser
	logger    *slog.Logger
	limiter   *rate.Limiter
	maxUpload int64
	sweep     time.Duration
}

// New builds a Server and registers its routes.
func New(opts Options) *Server {
	s := &Server{
		store:     opts.Store,
		renderer:  opts.Renderer,
		parser:    opts.Parser,
		logger:    opts.Logger,
		maxUpload: opts.MaxUpload,
		sweep:     opts.SweepInterval,
	}
	if s.store == nil {
		s.store = session.NewStore(2 * time.Hour)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.DiscardHandler)
	}
	if s.parser == nil {
		s.parser = shipment.NewParser(shipment.WithLogger(s.logger))
	}
	if s.maxUpload <= 0 {
		s.maxUpload = 10 << 20
	}
	if s.sweep <= 0 {
		s.sweep = 5 * time.Minute
	}
	limit, burst := rate.Limit(opts.PDFRate), opts.PDFBurst
	if limit <= 0 {
		limit = rate.Inf
	}
	if burst < 1 {
		burst = 1
	}
	s.limiter = rate.NewLimiter(limit, burst)

	s.engine = gin.New()
	s.engine.Use(gin.Recovery(), requestLogger(s.logger))
	if mw := corsMiddleware(opts.AllowedOrigins); mw != nil {
		s.engine.Use(mw)
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	api := s.engine.Group("/api/sessions")
	api.POST("", s.createSession)
	api.GET("/:sid", s.getSession)
	api.DELETE("/:sid", s.deleteSession)
	api.PATCH("/:sid/records/:rid", s.setPayer)
	api.GET("/:sid/labels.html", s.labelsHTML)
	api.GET("/:sid/records/:rid/label.html", s.labelHTML)

	pdf := api.Group("", rateLimit(s.limiter))
	pdf.GET("/:sid/labels.pdf", s.labelsPDF)
	pdf.GET("/:sid/records/:rid/label.pdf", s.labelPDF)
}

// Handler returns the HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on addr until ctx is done, then shuts down gracefully.
// Idle sessions are swept in the background while serving.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	sweepCtx, stopSweep := context.WithCancel(ctx)
	defer stopSweep()
	go s.store.Run(sweepCtx, s.sweep)

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: listening on %s: %w", addr, err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	s.logger.Info("http server shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	return nil
}
