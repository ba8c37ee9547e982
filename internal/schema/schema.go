package schema

import "gopkg.in/yaml.v3"

// Document represents the raw top-level structure of the configuration
// document. Nav, extensions and plugins keep their yaml.Node form because
// their entries are shape-polymorphic (bare scalar, single-key mapping, or
// nested sequence) and are mapped by recursive descent.
type Document struct {
	SiteName        string `yaml:"site_name"`
	SiteDescription string `yaml:"site_description,omitempty"`
	SiteURL         string `yaml:"site_url,omitempty"`
	RepoURL         string `yaml:"repo_url,omitempty"`
	RepoName        string `yaml:"repo_name,omitempty"`
	EditURI         string `yaml:"edit_uri,omitempty"`
	Copyright       string `yaml:"copyright,omitempty"`

	DocsDir string `yaml:"docs_dir,omitempty"`
	SiteDir string `yaml:"site_dir,omitempty"`

	Theme *ThemeProps `yaml:"theme,omitempty"`

	Nav                yaml.Node `yaml:"nav,omitempty"`
	MarkdownExtensions yaml.Node `yaml:"markdown_extensions,omitempty"`
	Plugins            yaml.Node `yaml:"plugins,omitempty"`

	Extra           ExtraProps `yaml:"extra,omitempty"`
	ExtraCSS        []string   `yaml:"extra_css,omitempty"`
	ExtraJavascript []string   `yaml:"extra_javascript,omitempty"`
}

// ThemeProps contains the raw theme section.
type ThemeProps struct {
	Name      string            `yaml:"name"`
	Language  string            `yaml:"language,omitempty"`
	Logo      string            `yaml:"logo,omitempty"`
	Favicon   string            `yaml:"favicon,omitempty"`
	CustomDir string            `yaml:"custom_dir,omitempty"`
	Features  []string          `yaml:"features,omitempty"`
	Icon      map[string]string `yaml:"icon,omitempty"`

	// Palette is either a single mapping or a sequence of scheme toggles.
	Palette yaml.Node `yaml:"palette,omitempty"`
}

// PaletteProps is one palette entry once its shape is known.
type PaletteProps struct {
	Scheme  string      `yaml:"scheme,omitempty"`
	Primary string      `yaml:"primary,omitempty"`
	Accent  string      `yaml:"accent,omitempty"`
	Media   string      `yaml:"media,omitempty"`
	Toggle  ToggleProps `yaml:"toggle,omitempty"`
}

// ToggleProps is the palette switcher control.
type ToggleProps struct {
	Icon string `yaml:"icon,omitempty"`
	Name string `yaml:"name,omitempty"`
}

// ExtraProps contains the free-form extra section.
type ExtraProps struct {
	Generator *bool         `yaml:"generator,omitempty"`
	Social    []SocialProps `yaml:"social,omitempty"`
}

// SocialProps is one social link entry.
type SocialProps struct {
	Icon string `yaml:"icon"`
	Link string `yaml:"link"`
	Name string `yaml:"name,omitempty"`
}
