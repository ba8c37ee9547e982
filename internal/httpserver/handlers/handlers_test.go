package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mkvet/mkvet/internal/domain"
	"github.com/mkvet/mkvet/internal/httpserver/deps"
	"github.com/mkvet/mkvet/internal/logger"
	"github.com/mkvet/mkvet/internal/state"
	"github.com/mkvet/mkvet/internal/validate"
)

func testDeps() deps.Deps {
	return deps.Deps{
		Logger:    logger.New("error", false),
		StartTime: time.Now(),
		Version:   "test",
		Snapshot:  state.NewSnapshot(),
	}
}

func TestHealthz(t *testing.T) {
	d := testDeps()
	rr := httptest.NewRecorder()
	Healthz(d)(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	var resp struct {
		Status  string `json:"status"`
		Version string `json:"version"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if resp.Status != "ok" || resp.Version != "test" {
		t.Errorf("resp = %+v, want status ok, version test", resp)
	}
}

func TestReadyzBeforeAndAfterLoad(t *testing.T) {
	d := testDeps()

	rr := httptest.NewRecorder()
	Readyz(d)(rr, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if rr.Code != http.StatusServiceUnavailable {
		t.Errorf("status before load = %d, want 503", rr.Code)
	}

	d.Snapshot.Update(&domain.Config{}, &validate.Report{})
	rr = httptest.NewRecorder()
	Readyz(d)(rr, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if rr.Code != http.StatusOK {
		t.Errorf("status after load = %d, want 200", rr.Code)
	}
}

func TestConfigHandler(t *testing.T) {
	d := testDeps()

	rr := httptest.NewRecorder()
	Config(d)(rr, httptest.NewRequest(http.MethodGet, "/api/config", nil))
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status with empty snapshot = %d, want 503", rr.Code)
	}

	d.Snapshot.Update(&domain.Config{
		Site:    domain.SiteMetadata{Name: "Firmware Documentation", Generator: true},
		DocsDir: "docs",
		SiteDir: "site",
		Theme:   domain.Theme{Name: "material"},
		Nav: []domain.NavNode{
			domain.Leaf{Title: "Home", Path: "index.en.md"},
			domain.Section{Title: "Guide", Children: []domain.NavNode{
				domain.Leaf{Title: "About", Path: "getting-started/index.en.md"},
			}},
		},
		Plugins: []domain.Plugin{{Name: "search"}, {Name: "i18n"}},
	}, &validate.Report{})

	rr = httptest.NewRecorder()
	Config(d)(rr, httptest.NewRequest(http.MethodGet, "/api/config", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}

	var resp struct {
		Site struct {
			Name string `json:"name"`
		} `json:"site"`
		Nav []struct {
			Title    string `json:"title"`
			Path     string `json:"path"`
			Children []struct {
				Path string `json:"path"`
			} `json:"children"`
		} `json:"nav"`
		Plugins []struct {
			Name string `json:"name"`
		} `json:"plugins"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if resp.Site.Name != "Firmware Documentation" {
		t.Errorf("site.name = %q", resp.Site.Name)
	}
	if len(resp.Nav) != 2 || resp.Nav[1].Children[0].Path != "getting-started/index.en.md" {
		t.Errorf("nav view = %+v", resp.Nav)
	}
	if len(resp.Plugins) != 2 || resp.Plugins[0].Name != "search" || resp.Plugins[1].Name != "i18n" {
		t.Errorf("plugins = %+v, want [search i18n] in order", resp.Plugins)
	}
}

func TestReportHandler(t *testing.T) {
	d := testDeps()
	d.Snapshot.Update(&domain.Config{}, &validate.Report{
		RunID:     "run-42",
		StartedAt: time.Now(),
		Checked:   3,
		Missing:   []string{"nope.md"},
	})

	rr := httptest.NewRecorder()
	Report(d)(rr, httptest.NewRequest(http.MethodGet, "/api/report", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}

	var resp struct {
		RunID   string   `json:"run_id"`
		Checked int      `json:"checked"`
		OK      bool     `json:"ok"`
		Missing []string `json:"missing"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if resp.RunID != "run-42" || resp.Checked != 3 || !resp.OK {
		t.Errorf("resp = %+v", resp)
	}
	if len(resp.Missing) != 1 || resp.Missing[0] != "nope.md" {
		t.Errorf("missing = %v, want [nope.md]", resp.Missing)
	}
}

func TestReloadHandler(t *testing.T) {
	d := testDeps()

	rr := httptest.NewRecorder()
	Reload(d)(rr, httptest.NewRequest(http.MethodPost, "/api/reload", nil))
	if rr.Code != http.StatusServiceUnavailable {
		t.Errorf("status without watcher = %d, want 503", rr.Code)
	}

	d.ReloadTrigger = make(chan struct{}, 1)
	rr = httptest.NewRecorder()
	Reload(d)(rr, httptest.NewRequest(http.MethodPost, "/api/reload", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	select {
	case <-d.ReloadTrigger:
	default:
		t.Error("reload trigger was not signaled")
	}

	// A second request while one is pending is a no-op.
	d.ReloadTrigger <- struct{}{}
	rr = httptest.NewRecorder()
	Reload(d)(rr, httptest.NewRequest(http.MethodPost, "/api/reload", nil))
	var resp struct {
		Triggered bool `json:"triggered"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Triggered {
		t.Error("second reload should report not triggered")
	}
}
