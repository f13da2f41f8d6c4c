package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/iiroan/better-terminal/internal/config"
	"github.com/iiroan/better-terminal/internal/preset"
	"github.com/iiroan/better-terminal/internal/settings"
)

type titleBarRequest struct {
	Visible *bool `json:"visible"`
}

type fontRequest struct {
	Family *string  `json:"family,omitempty"`
	Size   *float64 `json:"size,omitempty"`
}

type presetEntry struct {
	Name   string               `json:"name"`
	Colors settings.ColorBundle `json:"colors"`
}

func (h *handler) getSettings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.manager.LoadAppSettings())
}

func (h *handler) putColors(w http.ResponseWriter, r *http.Request) {
	var b settings.ColorBundle
	if err := json.NewDecoder(r.Body).Decode(&b); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := config.ValidateColors(b); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.manager.SaveColorSettings(b); err != nil {
		http.Error(w, "failed to save colors", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, h.manager.LoadAppSettings())
}

func (h *handler) putTitleBar(w http.ResponseWriter, r *http.Request) {
	var req titleBarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Visible == nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.manager.SaveTitleBarSetting(*req.Visible); err != nil {
		http.Error(w, "failed to save titlebar", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, h.manager.LoadAppSettings())
}

func (h *handler) putFont(w http.ResponseWriter, r *http.Request) {
	var req fontRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Family == nil && req.Size == nil {
		http.Error(w, "family or size is required", http.StatusBadRequest)
		return
	}
	if req.Family != nil {
		if err := config.ValidateFontFamily(*req.Family); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}
	if req.Size != nil && *req.Size <= 0 {
		http.Error(w, "size must be positive", http.StatusBadRequest)
		return
	}

	if req.Family != nil {
		if err := h.manager.SaveFontFamilySetting(strings.TrimSpace(*req.Family)); err != nil {
			http.Error(w, "failed to save font family", http.StatusInternalServerError)
			return
		}
	}
	if req.Size != nil {
		if err := h.manager.SaveFontSizeSetting(*req.Size); err != nil {
			http.Error(w, "failed to save font size", http.StatusInternalServerError)
			return
		}
	}
	writeJSON(w, http.StatusOK, h.manager.LoadAppSettings())
}

func (h *handler) getPresets(w http.ResponseWriter, r *http.Request) {
	ids := preset.All()
	out := make([]presetEntry, 0, len(ids))
	for _, id := range ids {
		out = append(out, presetEntry{Name: id.Name(), Colors: preset.ColorsFor(id)})
	}
	writeJSON(w, http.StatusOK, out)
}
