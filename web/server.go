// Package web exposes generated artifacts over HTTP: a static /images
// namespace rooted at the generator's output directory, a JSON generation
// endpoint, and a small HTML page for manual testing.
package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/imagine"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Server serves the artifact namespace and the generation API.
type Server struct {
	gen    imagine.Generator
	logger *zap.Logger
	engine *gin.Engine
}

// Option configures a [Server].
type Option func(*Server)

// WithLogger sets the logger. Default is a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Server) { s.logger = logger }
}

// New creates a Server around the given generator.
func New(gen imagine.Generator, opts ...Option) *Server {
	gin.SetMode(gin.ReleaseMode)
	s := &Server{
		gen:    gen,
		logger: zap.NewNop(),
		engine: gin.New(),
	}
	for _, o := range opts {
		o(s)
	}
	s.engine.Use(gin.Recovery(), s.logRequests())
	s.engine.GET("/", s.handleIndex)
	s.engine.GET("/images/:name", s.handleImage)
	s.engine.POST("/api/generate", s.handleGenerate)
	return s
}

// Handler returns the server as an http.Handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.engine}

	done := make(chan struct{})
	go func() {
		defer close(done)
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info("http server listening", zap.String("addr", addr))
	err := srv.ListenAndServe()
	<-done
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) logRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Info("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("elapsed", time.Since(start)))
	}
}

func (s *Server) handleIndex(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexPage))
}

// handleImage serves a single artifact by file name. The :name route param
// cannot span path separators, and the base-name check below rejects any
// remaining traversal attempt, so only files directly under the output
// directory are reachable.
func (s *Server) handleImage(c *gin.Context) {
	name := c.Param("name")
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid image name"})
		return
	}
	full := filepath.Join(s.gen.OutputDir(), name)
	if _, err := os.Stat(full); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "image not found"})
		return
	}
	c.File(full)
}

type generateRequest struct {
	Prompt          string   `json:"prompt"`
	Temperature     *float64 `json:"temperature"`
	TopP            *float64 `json:"topP"`
	TopK            *int     `json:"topK"`
	MaxOutputTokens *int     `json:"maxOutputTokens"`
}

// handleGenerate mirrors the MCP tools/call validation rules over HTTP.
func (s *Server) handleGenerate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Prompt == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "prompt is required"})
		return
	}
	gr := imagine.Request{
		Prompt:          req.Prompt,
		Temperature:     req.Temperature,
		TopP:            req.TopP,
		TopK:            req.TopK,
		MaxOutputTokens: req.MaxOutputTokens,
	}
	if err := gr.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	out := s.gen.Generate(c.Request.Context(), gr)
	if out.Failed() {
		c.JSON(http.StatusInternalServerError, gin.H{"error": out.Reason})
		return
	}
	rel, err := filepath.Rel(s.gen.OutputDir(), out.Path)
	if !out.Valid() || err != nil || strings.HasPrefix(rel, "..") {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "no image was produced"})
		return
	}
	url := path.Join("/images", filepath.ToSlash(rel))
	c.JSON(http.StatusOK, gin.H{
		"imageUrl": url,
		"text":     fmt.Sprintf("Image generated successfully: %s", url),
	})
}
