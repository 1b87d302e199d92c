package http

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/02loveslollipop/harvest-price-forecaster/internal/errx"
	"github.com/02loveslollipop/harvest-price-forecaster/internal/logx"
	"github.com/02loveslollipop/harvest-price-forecaster/internal/predictor"
	"github.com/02loveslollipop/harvest-price-forecaster/internal/reference"
	"github.com/02loveslollipop/harvest-price-forecaster/internal/weather"
	"github.com/02loveslollipop/harvest-price-forecaster/services/api/config"
	"github.com/02loveslollipop/harvest-price-forecaster/services/api/db"
)

// RunStore archives prediction runs. A nil RunStore disables the history
// endpoints.
type RunStore interface {
	SaveRun(ctx context.Context, fc predictor.Forecast) (db.Run, error)
	ListRuns(ctx context.Context, q db.RunQuery) ([]db.Run, error)
	GetRun(ctx context.Context, id string) (*db.Run, error)
}

// market bundles a catalog with one predictor per region ("" for the
// region-free catalog).
type market struct {
	catalog    *reference.Catalog
	predictors map[string]*predictor.Predictor
}

func (m *market) predictor(region string) (*predictor.Predictor, error) {
	if !m.catalog.Regional() {
		return m.predictors[""], nil
	}
	region = strings.ToLower(strings.TrimSpace(region))
	if region == "" {
		region = m.catalog.DefaultRegion
	}
	if p, ok := m.predictors[region]; ok {
		return p, nil
	}
	// Unknown codes get the same validation error as the predictor constructor.
	return predictor.New(m.catalog, region, nil)
}

// Server bundles router and dependencies for the REST API.
type Server struct {
	cfg     config.Config
	markets map[string]*market
	store   RunStore
	engine  *gin.Engine
}

// New constructs a server with routes and middleware.
func New(cfg config.Config, source weather.Source, store RunStore, opts ...predictor.Option) (*Server, error) {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(requestLogger())
	engine.Use(corsMiddleware())

	markets := make(map[string]*market)
	for _, name := range reference.Markets() {
		catalog, _ := reference.Lookup(name)
		m := &market{catalog: catalog, predictors: make(map[string]*predictor.Predictor)}

		codes := catalog.RegionCodes()
		if !catalog.Regional() {
			codes = []string{""}
		}
		for _, code := range codes {
			p, err := predictor.New(catalog, code, source, opts...)
			if err != nil {
				return nil, err
			}
			m.predictors[code] = p
		}
		markets[name] = m
	}

	server := &Server{cfg: cfg, markets: markets, store: store, engine: engine}
	server.registerRoutes()
	return server, nil
}

// Engine exposes the underlying gin engine (for tests).
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Run starts the HTTP server and blocks until shutdown.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.cfg.ListenAddr(),
		Handler: s.engine,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) registerRoutes() {
	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	s.registerV1Routes()
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func apiVersionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-API-Version", "v1")
		c.Next()
	}
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		event := logx.Info()
		if status >= http.StatusInternalServerError {
			event = logx.Error()
		}
		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}

// respondError writes err as {"error": message} with the status it carries.
func respondError(c *gin.Context, err error) {
	status := errx.Status(err)
	if status >= http.StatusInternalServerError {
		logx.Error().Err(err).Int("status", status).Str("path", c.Request.URL.Path).Msg("request failed")
	}
	c.JSON(status, gin.H{"error": errx.Message(err)})
}
