package handlers

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"go.uber.org/zap"
)

const indexTemplate = "templates/index.html"

type PageHandler struct {
	tmpl   *template.Template
	logger *zap.Logger
}

// NewPageHandler parses the index template out of fsys once at startup.
func NewPageHandler(fsys fs.FS, logger *zap.Logger) (*PageHandler, error) {
	tmpl, err := template.ParseFS(fsys, indexTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", indexTemplate, err)
	}
	return &PageHandler{tmpl: tmpl, logger: logger}, nil
}

// ServeIndex renders the landing page. Nothing is substituted into it.
func (h *PageHandler) ServeIndex(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.tmpl.Execute(&buf, nil); err != nil {
		h.logger.Error("Template execute error", zap.Error(err))
		http.Error(w, "Template error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w)
}

func HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}
