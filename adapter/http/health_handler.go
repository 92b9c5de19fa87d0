package http

import (
	"encoding/json"
	"net/http"

	"lingua-proxy/domain/port"
)

// HealthHandler reports whether the proxy's upstreams are configured.
type HealthHandler struct {
	config port.ConfigProvider
	logger port.Logger
}

// NewHealthHandler creates a health handler.
func NewHealthHandler(config port.ConfigProvider, logger port.Logger) *HealthHandler {
	return &HealthHandler{config: config, logger: logger}
}

// HealthStatus is the health response body.
type HealthStatus struct {
	Status string `json:"status"`
	Chat   bool   `json:"chat_configured"`
	Speech bool   `json:"tts_configured"`
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	cfg := h.config.Get()

	status := HealthStatus{
		Status: "ok",
		Chat:   cfg.ChatConfigured,
		Speech: cfg.SpeechConfigured,
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(status); err != nil {
		h.logger.Error("failed to encode health status", port.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
