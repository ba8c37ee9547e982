package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/mkvet/mkvet/internal/domain"
	"github.com/mkvet/mkvet/internal/httpserver/deps"
	"github.com/mkvet/mkvet/internal/logger"
)

type configResponse struct {
	Site       siteView      `json:"site"`
	DocsDir    string        `json:"docs_dir"`
	SiteDir    string        `json:"site_dir"`
	Theme      themeView     `json:"theme"`
	Nav        []navView     `json:"nav,omitempty"`
	Extensions []entryView   `json:"markdown_extensions,omitempty"`
	Plugins    []entryView   `json:"plugins,omitempty"`
	ExtraCSS   []string      `json:"extra_css,omitempty"`
	ExtraJS    []string      `json:"extra_javascript,omitempty"`
	LoadedAt   string        `json:"loaded_at"`
}

type siteView struct {
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	URL         string       `json:"url,omitempty"`
	RepoURL     string       `json:"repo_url,omitempty"`
	RepoName    string       `json:"repo_name,omitempty"`
	EditURI     string       `json:"edit_uri,omitempty"`
	Copyright   string       `json:"copyright,omitempty"`
	Generator   bool         `json:"generator"`
	Social      []socialView `json:"social,omitempty"`
}

type socialView struct {
	Icon string `json:"icon"`
	Link string `json:"link"`
	Name string `json:"name,omitempty"`
}

type themeView struct {
	Name     string   `json:"name"`
	Language string   `json:"language,omitempty"`
	Logo     string   `json:"logo,omitempty"`
	Favicon  string   `json:"favicon,omitempty"`
	Features []string `json:"features,omitempty"`
}

type navView struct {
	Title    string    `json:"title,omitempty"`
	Path     string    `json:"path,omitempty"`
	Children []navView `json:"children,omitempty"`
}

type entryView struct {
	Name    string                 `json:"name"`
	Options map[string]interface{} `json:"options,omitempty"`
}

// Config exposes the current validated configuration as JSON.
func Config(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfg, err := d.Snapshot.Config()
		if err != nil {
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
			return
		}

		resp := configResponse{
			Site: siteView{
				Name:        cfg.Site.Name,
				Description: cfg.Site.Description,
				URL:         cfg.Site.URL,
				RepoURL:     cfg.Site.RepoURL,
				RepoName:    cfg.Site.RepoName,
				EditURI:     cfg.Site.EditURI,
				Copyright:   cfg.Site.Copyright,
				Generator:   cfg.Site.Generator,
			},
			DocsDir: cfg.DocsDir,
			SiteDir: cfg.SiteDir,
			Theme: themeView{
				Name:     cfg.Theme.Name,
				Language: cfg.Theme.Language,
				Logo:     cfg.Theme.Logo,
				Favicon:  cfg.Theme.Favicon,
				Features: cfg.Theme.Features,
			},
			Nav:      navViews(cfg.Nav),
			ExtraCSS: cfg.ExtraCSS,
			ExtraJS:  cfg.ExtraJS,
			LoadedAt: d.Snapshot.LoadedAt().Format("2006-01-02T15:04:05Z07:00"),
		}
		for _, s := range cfg.Site.Social {
			resp.Site.Social = append(resp.Site.Social, socialView{
				Icon: s.Icon, Link: s.Link, Name: s.Name,
			})
		}
		for _, e := range cfg.Extensions {
			resp.Extensions = append(resp.Extensions, entryView{Name: e.Name, Options: e.Options})
		}
		for _, p := range cfg.Plugins {
			resp.Plugins = append(resp.Plugins, entryView{Name: p.Name, Options: p.Options})
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			d.Logger.Error("failed to encode config response",
				logger.Error(err))
		}
	}
}

func navViews(nodes []domain.NavNode) []navView {
	views := make([]navView, 0, len(nodes))
	for _, node := range nodes {
		switch n := node.(type) {
		case domain.Leaf:
			views = append(views, navView{Title: n.Title, Path: n.Path})
		case domain.Section:
			views = append(views, navView{Title: n.Title, Children: navViews(n.Children)})
		}
	}
	return views
}
