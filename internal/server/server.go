// Package server exposes the symcalc tool calls over HTTP.
package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/njchilds90/symcalc"
	"github.com/njchilds90/symcalc/internal/config"
)

type Server struct {
	conf   config.Config
	router *gin.Engine
}

func New(conf config.Config) *Server {
	if !conf.GinDebugMode {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())

	s := &Server{conf: conf, router: router}
	router.POST("/tool", s.handleTool)
	router.GET("/schema", s.handleSchema)
	router.GET("/health", s.handleHealth)
	return s
}

// Handler returns the routed http.Handler.
func (s *Server) Handler() http.Handler { return s.router }

// Run listens on the configured port until the server fails.
func (s *Server) Run() error {
	srv := &http.Server{
		Addr:              ":" + s.conf.Port,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	slog.Info("Starting symcalc tool server", slog.String("port", s.conf.Port), slog.Bool("autoSimplify", s.conf.AutoSimplify), slog.Int("maxDiffOrder", s.conf.MaxDiffOrder))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) handleTool(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.conf.MaxBodyBytes)

	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()

	var req symcalc.ToolRequest
	if err := dec.Decode(&req); err != nil {
		slog.Debug("handleTool: invalid request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if dec.More() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON: trailing data"})
		return
	}

	if req.Params == nil {
		req.Params = map[string]interface{}{}
	}
	if _, ok := req.Params["auto_simplify"]; !ok {
		req.Params["auto_simplify"] = s.conf.AutoSimplify
	}

	resp := symcalc.HandleToolCall(req, symcalc.WithMaxOrder(s.conf.MaxDiffOrder))
	if resp.Error != "" {
		slog.Info("handleTool: tool call failed", slog.String("tool", req.Tool), slog.String("error", resp.Error))
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleSchema(c *gin.Context) {
	c.Data(http.StatusOK, "application/json", []byte(symcalc.MCPToolSpec()))
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		slog.Debug("request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("latency", time.Since(start)),
		)
	}
}
