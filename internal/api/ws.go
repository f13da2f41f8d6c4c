package api

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/iiroan/better-terminal/internal/config"
	"github.com/iiroan/better-terminal/internal/settings"
)

const wsWriteTimeout = 5 * time.Second

// checkOrigin accepts clients that send no Origin header (not browsers),
// same-origin pages and the configured extra origins.
func (h *handler) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	if strings.EqualFold(u.Host, r.Host) {
		return true
	}
	if h.origins[strings.ToLower(strings.TrimRight(origin, "/"))] {
		return true
	}
	h.logger.Warn("websocket origin rejected", "origin", origin)
	return false
}

type wsMessage struct {
	Type     string                `json:"type"`
	Settings *settings.AppSettings `json:"settings,omitempty"`
}

// handleWS pushes the current settings on connect and again after every
// change to the config file. Client messages are read only to notice the
// disconnect.
func (h *handler) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "err", err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	// gorilla/websocket allows one concurrent writer.
	var writeMu sync.Mutex
	send := func(s settings.AppSettings) {
		writeMu.Lock()
		defer writeMu.Unlock()
		conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout)) //nolint:errcheck
		if err := conn.WriteJSON(wsMessage{Type: "settings", Settings: &s}); err != nil {
			h.logger.Debug("websocket write failed", "err", err)
			cancel()
		}
	}

	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	err = h.manager.Watch(ctx, send)
	if errors.Is(err, config.ErrNoConfigPath) {
		send(h.manager.LoadAppSettings())
		<-ctx.Done()
		return
	}
	if err != nil {
		h.logger.Error("settings feed stopped", "err", err)
	}
}
