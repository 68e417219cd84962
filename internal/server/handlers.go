package server

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/foliokit/folio/internal/document"
	"github.com/foliokit/folio/internal/render"
	"github.com/foliokit/folio/internal/theme"
)

// previewCSP locks the preview page down to its own inline styles. The
// preview never ships script, and the sandbox header makes the browser
// enforce that.
const previewCSP = "default-src 'none'; style-src 'unsafe-inline'; img-src https: data:"

func (s *Server) preview(c *gin.Context) {
	device, err := render.ParseDevice(c.DefaultQuery("device", string(render.DeviceWide)))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}

	html, err := s.latestPreview(device)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.Header("Content-Security-Policy", previewCSP)
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"ok":      true,
		"session": s.sess.ID(),
		"state":   s.sess.State(),
	})
}

func (s *Server) getDocument(c *gin.Context) {
	doc := s.sess.Document()
	data, err := document.MarshalPretty(doc)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", data)
}

func (s *Server) putDocument(c *gin.Context) {
	data, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "unreadable body"})
		return
	}

	doc, err := document.Parse(data)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}
	if err := document.Validate(doc); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"ok": false, "error": err.Error()})
		return
	}

	replaced := s.sess.Replace(*doc)
	s.loop.Submit(replaced)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (s *Server) restoreDocument(c *gin.Context) {
	doc, err := s.sess.Restore()
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"ok": false, "error": err.Error()})
		return
	}
	s.loop.Submit(doc)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

type toggleRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

func (s *Server) toggleSection(c *gin.Context) {
	kind := document.Kind(c.Param("kind"))

	var req toggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	updated, err := s.sess.Apply(func(doc document.Document) (document.Document, error) {
		return doc.WithSectionEnabled(kind, *req.Enabled)
	})
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": err.Error()})
		return
	}

	s.loop.Submit(updated)
	c.JSON(http.StatusOK, gin.H{"ok": true, "kind": kind, "enabled": *req.Enabled})
}

func (s *Server) listThemes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "themes": theme.List()})
}

type themeRequest struct {
	Theme string `json:"theme" binding:"required"`
}

func (s *Server) putTheme(c *gin.Context) {
	var req themeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	// Unknown themes are accepted: rendering falls back to the default
	// and surfaces a warning instead of failing the edit.
	_, known := theme.Resolve(req.Theme)

	updated, err := s.sess.Apply(func(doc document.Document) (document.Document, error) {
		return doc.WithTheme(req.Theme), nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	s.loop.Submit(updated)
	c.JSON(http.StatusOK, gin.H{"ok": true, "theme": req.Theme, "known": known})
}

func (s *Server) exportJSON(c *gin.Context) {
	data, err := document.MarshalPretty(s.sess.Document())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="portfolio.json"`)
	c.Data(http.StatusOK, "application/json; charset=utf-8", data)
}
