// Package api serves the settings over HTTP and a websocket feed
package api

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"

	"github.com/iiroan/better-terminal/internal/config"
)

// Option configures the settings service.
type Option func(*handler)

// WithAllowedOrigins lets browser pages served from other origins open the
// websocket feed. Origins are compared as scheme://host[:port]. By default
// only same-origin pages may connect.
func WithAllowedOrigins(origins ...string) Option {
	return func(h *handler) {
		for _, o := range origins {
			if o = strings.TrimRight(strings.TrimSpace(o), "/"); o != "" {
				h.origins[strings.ToLower(o)] = true
			}
		}
	}
}

// RegisterRoutes returns the router for the settings service. Every request
// goes through the config file, so several servers and the CLI can share it.
func RegisterRoutes(m *config.Manager, logger *log.Logger, opts ...Option) http.Handler {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := &handler{manager: m, logger: logger, origins: map[string]bool{}}
	for _, opt := range opts {
		opt(h)
	}
	h.upgrader = websocket.Upgrader{CheckOrigin: h.checkOrigin}

	r := chi.NewRouter()
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Get("/api/settings", h.getSettings)
	r.Put("/api/settings/colors", h.putColors)
	r.Put("/api/settings/titlebar", h.putTitleBar)
	r.Put("/api/settings/font", h.putFont)
	r.Get("/api/settings/ws", h.handleWS)

	r.Get("/api/presets", h.getPresets)

	return r
}

type handler struct {
	manager  *config.Manager
	logger   *log.Logger
	origins  map[string]bool
	upgrader websocket.Upgrader
}

// requestLogger logs one line per request through the charm logger.
func requestLogger(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"dur", time.Since(start).Round(time.Microsecond),
			)
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
