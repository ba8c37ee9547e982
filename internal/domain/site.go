package domain

// Config is the fully parsed site configuration. It is built once per run,
// held immutably for the duration of that run, and discarded afterward.
type Config struct {
	Site SiteMetadata

	// DocsDir is the documentation source directory, relative to the
	// directory containing the configuration document. Defaults to "docs".
	DocsDir string

	// SiteDir is the build output directory. Defaults to "site".
	// It is not required to exist; the renderer creates it.
	SiteDir string

	Nav        []NavNode
	Theme      Theme
	Extensions []Extension
	Plugins    []Plugin

	// ExtraCSS and ExtraJS are additional assets, relative to DocsDir.
	ExtraCSS []string
	ExtraJS  []string
}

// SiteMetadata is the flat key-value record describing the site.
type SiteMetadata struct {
	Name        string
	Description string
	URL         string // canonical site URL
	RepoURL     string
	RepoName    string
	EditURI     string // edit-link template appended to RepoURL
	Copyright   string

	// Generator controls the "made with ..." footer credit.
	// Defaults to true when the document does not mention it.
	Generator bool

	Social []SocialLink
}

// SocialLink is one entry of the social icon strip in the footer.
type SocialLink struct {
	Icon string // icon token, ex: "fontawesome/brands/github"
	Link string
	Name string // accessible display name, optional
}

// Theme selects the visual presentation layer and its cosmetic settings.
type Theme struct {
	Name     string
	Language string

	// Logo and Favicon are asset paths relative to DocsDir.
	Logo    string
	Favicon string

	// CustomDir is a theme override directory, relative to the directory
	// containing the configuration document.
	CustomDir string

	// Features is the set of enabled UI feature tokens,
	// ex: "navigation.tabs", "content.code.copy".
	Features []string

	// Palettes holds one entry per color scheme. A document may declare a
	// single palette mapping or a list of scheme toggles.
	Palettes []Palette

	// Icons maps theme icon slots to icon tokens, ex: "repo" -> "fontawesome/brands/github".
	Icons map[string]string
}

// Palette is one color scheme of the theme.
type Palette struct {
	Scheme  string // "default" | "slate" | theme-specific
	Primary string
	Accent  string
	Media   string // media query selecting this palette, optional
	Toggle  PaletteToggle
}

// PaletteToggle describes the scheme switcher control, when present.
type PaletteToggle struct {
	Icon string
	Name string
}
