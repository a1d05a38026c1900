// Package httpserver exposes the task list over the REST API and serves
// the static client.
package httpserver

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"tasklist/internal/auth"
	"tasklist/internal/config"
	"tasklist/internal/service"
)

// Server wires handlers, middleware and the static client over gin.
type Server struct {
	engine   *gin.Engine
	sessions *auth.SessionManager
	tasks    *service.TaskService
	cfg      config.Config
}

func New(cfg config.Config, sessions *auth.SessionManager, tasks *service.TaskService) *Server {
	s := &Server{
		sessions: sessions,
		tasks:    tasks,
		cfg:      cfg,
	}
	s.engine = s.buildRouter()
	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) buildRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())

	perSecond := rate.Limit(float64(s.cfg.RateLimitPerMin) / 60.0)
	r.Use(RateLimiter(perSecond, s.cfg.RateLimitBurst))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	api.POST("/sessions", s.login)

	protected := api.Group("")
	protected.Use(s.requireLogin())
	{
		protected.DELETE("/sessions/current", s.logout)
		protected.GET("/tasks", s.listTasks)
		protected.GET("/tasks/:id", s.getTask)
		protected.POST("/tasks", s.createTask)
		protected.PUT("/tasks/:id", s.updateTask)
		protected.DELETE("/tasks/:id", s.deleteTask)
	}

	r.NoRoute(s.serveClient)

	return r
}

// serveClient answers non-API GETs with the static client, falling back
// to the index page so client-side routes resolve.
func (s *Server) serveClient(c *gin.Context) {
	if c.Request.Method != http.MethodGet || strings.HasPrefix(c.Request.URL.Path, "/api/") {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	path := filepath.Join(s.cfg.StaticDir, filepath.Clean("/"+c.Request.URL.Path))
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		c.File(path)
		return
	}
	c.File(filepath.Join(s.cfg.StaticDir, "index.html"))
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
