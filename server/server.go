// Package server exposes the calculator engine over a JSON HTTP API. It is
// a thin facade: every request runs one synchronous, stateless evaluation,
// so the server holds no cross-request state beyond its configuration.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	calc "github.com/smartcalc/calcd"
)

// shutdownGrace bounds how long in-flight requests may finish after the
// context is canceled.
const shutdownGrace = 5 * time.Second

// Server is the HTTP facade over a Calculator.
type Server struct {
	cfg    Config
	calc   *calc.Calculator
	logger *zap.Logger
	engine *gin.Engine
}

// New builds a Server with its routes and middleware wired.
func New(cfg Config, logger *zap.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	engine.HandleMethodNotAllowed = true
	engine.Use(gin.Recovery())
	engine.Use(requestLogger(logger))
	engine.Use(cors.New(corsConfig(cfg.AllowedOrigins)))

	s := &Server{
		cfg:    cfg,
		calc:   calc.New(cfg.MaxExpressionLength),
		logger: logger,
		engine: engine,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.engine.GET("/", s.handleIndex)

	api := s.engine.Group("/api")
	api.POST("/evaluate", s.handleEvaluate)
	api.GET("/functions", s.handleFunctions)
	api.GET("/health", s.handleHealth)
	api.POST("/clear-history", s.handleClearHistory)

	s.engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":               "endpoint not found",
			"available_endpoints": []string{"/api/evaluate", "/api/functions", "/api/health"},
		})
	})
	s.engine.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})
}

// Handler returns the routed http.Handler, used directly by tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.cfg.Addr,
		Handler: s.engine,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	s.logger.Info("server listening", zap.String("addr", s.cfg.Addr))

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		<-errCh
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// requestLogger tags every request with an id and logs its outcome.
func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.NewString()
		c.Header("X-Request-Id", requestID)

		start := time.Now()
		c.Next()

		logger.Info("request",
			zap.String("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	}
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{http.MethodGet, http.MethodPost}
	cfg.AllowHeaders = []string{"Content-Type"}

	for _, origin := range origins {
		if origin == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	cfg.AllowOrigins = origins
	return cfg
}
