// Package server exposes the editing session over HTTP: the live
// preview page plus a small JSON API for document replacement, section
// toggles, theme selection, and export download.
package server

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/foliokit/folio/internal/assemble"
	"github.com/foliokit/folio/internal/logger"
	"github.com/foliokit/folio/internal/render"
	"github.com/foliokit/folio/internal/session"
)

// Server serves one editing session. The preview page is regenerated
// through the session's debounced loop; GET / always returns the most
// recent render.
type Server struct {
	cfg       Config
	log       *logger.Logger
	sess      *session.Session
	assembler *assemble.Assembler
	loop      *session.PreviewLoop

	mu     sync.RWMutex
	latest string
}

// New wires a server around an existing session.
func New(cfg Config, sess *session.Session, asm *assemble.Assembler, log *logger.Logger) *Server {
	s := &Server{
		cfg:       cfg,
		log:       log.WithComponent("server"),
		sess:      sess,
		assembler: asm,
	}
	s.loop = session.NewPreviewLoop(sess, asm, render.DeviceWide, cfg.PreviewDebounce, s.storePreview, log)
	return s
}

func (s *Server) storePreview(p assemble.Preview) {
	s.mu.Lock()
	s.latest = p.HTML
	s.mu.Unlock()
}

// latestPreview returns the cached preview, rendering synchronously
// when no debounced render has completed yet.
func (s *Server) latestPreview(device render.Device) (string, error) {
	if device == render.DeviceWide {
		s.mu.RLock()
		cached := s.latest
		s.mu.RUnlock()
		if cached != "" {
			return cached, nil
		}
	}

	preview, err := s.assembler.AssemblePreview(s.sess.Document(), device)
	if err != nil {
		return "", err
	}
	return preview.HTML, nil
}

// Router builds the gin engine with all routes attached.
func (s *Server) Router() *gin.Engine {
	if !s.cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())

	if len(s.cfg.AllowedOrigins) > 0 {
		corsCfg := cors.DefaultConfig()
		corsCfg.AllowOrigins = s.cfg.AllowedOrigins
		corsCfg.AllowMethods = []string{"GET", "PUT", "POST"}
		r.Use(cors.New(corsCfg))
	}

	r.GET("/", s.preview)
	r.GET("/healthz", s.health)

	api := r.Group("/api")
	{
		api.GET("/document", s.getDocument)
		api.PUT("/document", s.putDocument)
		api.POST("/document/restore", s.restoreDocument)
		api.POST("/sections/:kind/toggle", s.toggleSection)
		api.GET("/themes", s.listThemes)
		api.PUT("/theme", s.putTheme)
		api.GET("/export.json", s.exportJSON)
	}

	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	loopCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go s.loop.Run(loopCtx)
	s.loop.Submit(s.sess.Document())

	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	s.log.WithFields(map[string]any{"addr": s.cfg.Addr}).Info("preview server listening")

	select {
	case <-ctx.Done():
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}
