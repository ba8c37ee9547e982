package schema

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/mkvet/mkvet/internal/domain"
)

// documentOut mirrors Document with fully materialized values so the tree
// can be handed straight to yaml.Marshal. Defaults that mapDocument
// re-applies on load (docs_dir, theme name, generator) are omitted when they
// hold their default value, keeping Parse(Encode(cfg)) structurally equal
// to cfg.
type documentOut struct {
	SiteName        string `yaml:"site_name"`
	SiteDescription string `yaml:"site_description,omitempty"`
	SiteURL         string `yaml:"site_url,omitempty"`
	RepoURL         string `yaml:"repo_url,omitempty"`
	RepoName        string `yaml:"repo_name,omitempty"`
	EditURI         string `yaml:"edit_uri,omitempty"`
	Copyright       string `yaml:"copyright,omitempty"`

	DocsDir string `yaml:"docs_dir,omitempty"`
	SiteDir string `yaml:"site_dir,omitempty"`

	Theme *themeOut `yaml:"theme,omitempty"`

	Nav                []interface{} `yaml:"nav,omitempty"`
	MarkdownExtensions []interface{} `yaml:"markdown_extensions,omitempty"`
	Plugins            []interface{} `yaml:"plugins,omitempty"`

	Extra           *ExtraProps `yaml:"extra,omitempty"`
	ExtraCSS        []string    `yaml:"extra_css,omitempty"`
	ExtraJavascript []string    `yaml:"extra_javascript,omitempty"`
}

type themeOut struct {
	Name      string            `yaml:"name"`
	Language  string            `yaml:"language,omitempty"`
	Logo      string            `yaml:"logo,omitempty"`
	Favicon   string            `yaml:"favicon,omitempty"`
	CustomDir string            `yaml:"custom_dir,omitempty"`
	Features  []string          `yaml:"features,omitempty"`
	Icon      map[string]string `yaml:"icon,omitempty"`
	Palette   []PaletteProps    `yaml:"palette,omitempty"`
}

// Encode re-serializes a configuration to YAML. Loading the result yields a
// structurally identical in-memory configuration.
func Encode(cfg *domain.Config) ([]byte, error) {
	out := documentOut{
		SiteName:        cfg.Site.Name,
		SiteDescription: cfg.Site.Description,
		SiteURL:         cfg.Site.URL,
		RepoURL:         cfg.Site.RepoURL,
		RepoName:        cfg.Site.RepoName,
		EditURI:         cfg.Site.EditURI,
		Copyright:       cfg.Site.Copyright,
		ExtraCSS:        cfg.ExtraCSS,
		ExtraJavascript: cfg.ExtraJS,
	}

	if cfg.DocsDir != defaultDocsDir {
		out.DocsDir = cfg.DocsDir
	}
	if cfg.SiteDir != defaultSiteDir {
		out.SiteDir = cfg.SiteDir
	}

	out.Theme = encodeTheme(cfg.Theme)
	out.Nav = encodeNav(cfg.Nav)
	out.MarkdownExtensions = encodeNamed(extensionEntries(cfg.Extensions))
	out.Plugins = encodeNamed(pluginEntries(cfg.Plugins))
	out.Extra = encodeExtra(cfg.Site)

	data, err := yaml.Marshal(&out)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

func encodeTheme(theme domain.Theme) *themeOut {
	bare := theme.Name == defaultTheme &&
		theme.Language == "" && theme.Logo == "" && theme.Favicon == "" &&
		theme.CustomDir == "" && len(theme.Features) == 0 &&
		len(theme.Icons) == 0 && len(theme.Palettes) == 0
	if bare {
		// mapDocument restores the default theme on load.
		return nil
	}

	out := &themeOut{
		Name:      theme.Name,
		Language:  theme.Language,
		Logo:      theme.Logo,
		Favicon:   theme.Favicon,
		CustomDir: theme.CustomDir,
		Features:  theme.Features,
		Icon:      theme.Icons,
	}
	for _, p := range theme.Palettes {
		out.Palette = append(out.Palette, PaletteProps{
			Scheme:  p.Scheme,
			Primary: p.Primary,
			Accent:  p.Accent,
			Media:   p.Media,
			Toggle: ToggleProps{
				Icon: p.Toggle.Icon,
				Name: p.Toggle.Name,
			},
		})
	}
	return out
}

func encodeNav(nodes []domain.NavNode) []interface{} {
	if len(nodes) == 0 {
		return nil
	}
	out := make([]interface{}, 0, len(nodes))
	for _, node := range nodes {
		switch n := node.(type) {
		case domain.Leaf:
			if n.Title == "" {
				out = append(out, n.Path)
			} else {
				out = append(out, map[string]string{n.Title: n.Path})
			}
		case domain.Section:
			out = append(out, map[string][]interface{}{n.Title: encodeNav(n.Children)})
		}
	}
	return out
}

func extensionEntries(extensions []domain.Extension) []namedEntry {
	entries := make([]namedEntry, 0, len(extensions))
	for _, e := range extensions {
		entries = append(entries, namedEntry{name: e.Name, options: e.Options})
	}
	return entries
}

func pluginEntries(plugins []domain.Plugin) []namedEntry {
	entries := make([]namedEntry, 0, len(plugins))
	for _, p := range plugins {
		entries = append(entries, namedEntry{name: p.Name, options: p.Options})
	}
	return entries
}

func encodeNamed(entries []namedEntry) []interface{} {
	if len(entries) == 0 {
		return nil
	}
	out := make([]interface{}, 0, len(entries))
	for _, e := range entries {
		if e.options == nil {
			out = append(out, e.name)
			continue
		}
		out = append(out, map[string]map[string]interface{}{e.name: e.options})
	}
	return out
}

func encodeExtra(site domain.SiteMetadata) *ExtraProps {
	if site.Generator && len(site.Social) == 0 {
		return nil
	}

	extra := &ExtraProps{}
	if !site.Generator {
		off := false
		extra.Generator = &off
	}
	for _, s := range site.Social {
		extra.Social = append(extra.Social, SocialProps{
			Icon: s.Icon,
			Link: s.Link,
			Name: s.Name,
		})
	}
	return extra
}
