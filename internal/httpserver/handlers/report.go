package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/mkvet/mkvet/internal/httpserver/deps"
)

type reportResponse struct {
	RunID     string   `json:"run_id"`
	StartedAt string   `json:"started_at"`
	Checked   int      `json:"checked"`
	OK        bool     `json:"ok"`
	Missing   []string `json:"missing,omitempty"`
	Problems  []string `json:"problems,omitempty"`
}

// Report exposes the outcome of the latest validation run.
func Report(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := d.Snapshot.Report()
		if err != nil {
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
			return
		}

		resp := reportResponse{
			RunID:     report.RunID,
			StartedAt: report.StartedAt.Format(time.RFC3339),
			Checked:   report.Checked,
			OK:        report.OK(),
			Missing:   report.Missing,
		}
		for _, problem := range report.Problems() {
			resp.Problems = append(resp.Problems, problem.Error())
		}

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(resp)
	}
}
