package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/mkvet/mkvet/internal/httpserver/deps"
)

type reloadResponse struct {
	Triggered bool   `json:"triggered"`
	Reason    string `json:"reason,omitempty"`
}

// Reload triggers an out-of-band config reload. Non-blocking: if a reload
// is already pending the request is a no-op.
func Reload(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if d.ReloadTrigger == nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_ = json.NewEncoder(w).Encode(reloadResponse{
				Triggered: false,
				Reason:    "watcher not running",
			})
			return
		}

		select {
		case d.ReloadTrigger <- struct{}{}:
			_ = json.NewEncoder(w).Encode(reloadResponse{Triggered: true})
		default:
			_ = json.NewEncoder(w).Encode(reloadResponse{
				Triggered: false,
				Reason:    "reload already pending",
			})
		}
	}
}
