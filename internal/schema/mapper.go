package schema

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/mkvet/mkvet/internal/domain"
	"github.com/mkvet/mkvet/internal/registry"
)

const (
	defaultDocsDir = "docs"
	defaultSiteDir = "site"
	defaultTheme   = "mkdocs"
)

// mapDocument converts the raw Document into the typed domain model.
func mapDocument(doc *Document) (*domain.Config, error) {
	if doc.SiteName == "" {
		return nil, &domain.ParseError{Err: domain.ErrMissingSite}
	}

	cfg := &domain.Config{
		Site: domain.SiteMetadata{
			Name:        doc.SiteName,
			Description: doc.SiteDescription,
			URL:         doc.SiteURL,
			RepoURL:     doc.RepoURL,
			RepoName:    doc.RepoName,
			EditURI:     doc.EditURI,
			Copyright:   doc.Copyright,
			Generator:   true,
		},
		DocsDir:  doc.DocsDir,
		SiteDir:  doc.SiteDir,
		ExtraCSS: doc.ExtraCSS,
		ExtraJS:  doc.ExtraJavascript,
	}
	if cfg.DocsDir == "" {
		cfg.DocsDir = defaultDocsDir
	}
	if cfg.SiteDir == "" {
		cfg.SiteDir = defaultSiteDir
	}

	if doc.Extra.Generator != nil {
		cfg.Site.Generator = *doc.Extra.Generator
	}
	for _, s := range doc.Extra.Social {
		cfg.Site.Social = append(cfg.Site.Social, domain.SocialLink{
			Icon: s.Icon,
			Link: s.Link,
			Name: s.Name,
		})
	}

	theme, err := mapTheme(doc.Theme)
	if err != nil {
		return nil, err
	}
	cfg.Theme = theme

	nav, err := mapNav(&doc.Nav)
	if err != nil {
		return nil, err
	}
	cfg.Nav = nav

	extensions, err := mapExtensions(&doc.MarkdownExtensions)
	if err != nil {
		return nil, err
	}
	cfg.Extensions = extensions

	plugins, err := mapPlugins(&doc.Plugins)
	if err != nil {
		return nil, err
	}
	cfg.Plugins = plugins

	return cfg, nil
}

func mapTheme(props *ThemeProps) (domain.Theme, error) {
	if props == nil {
		return domain.Theme{Name: defaultTheme}, nil
	}
	if props.Name == "" {
		return domain.Theme{}, &domain.ParseError{Err: domain.ErrMissingTheme}
	}

	theme := domain.Theme{
		Name:      props.Name,
		Language:  props.Language,
		Logo:      props.Logo,
		Favicon:   props.Favicon,
		CustomDir: props.CustomDir,
		Features:  props.Features,
		Icons:     props.Icon,
	}

	palettes, err := mapPalettes(&props.Palette)
	if err != nil {
		return domain.Theme{}, err
	}
	theme.Palettes = palettes

	return theme, nil
}

func mapPalettes(node *yaml.Node) ([]domain.Palette, error) {
	switch node.Kind {
	case 0: // absent
		return nil, nil
	case yaml.MappingNode:
		var props PaletteProps
		if err := node.Decode(&props); err != nil {
			return nil, &domain.ParseError{Line: node.Line, Err: err}
		}
		return []domain.Palette{paletteFromProps(props)}, nil
	case yaml.SequenceNode:
		var list []PaletteProps
		if err := node.Decode(&list); err != nil {
			return nil, &domain.ParseError{Line: node.Line, Err: err}
		}
		if len(list) == 0 {
			return nil, nil
		}
		palettes := make([]domain.Palette, 0, len(list))
		for _, props := range list {
			palettes = append(palettes, paletteFromProps(props))
		}
		return palettes, nil
	default:
		return nil, &domain.ParseError{
			Line: node.Line,
			Err:  fmt.Errorf("theme.palette must be a mapping or a sequence"),
		}
	}
}

func paletteFromProps(props PaletteProps) domain.Palette {
	return domain.Palette{
		Scheme:  props.Scheme,
		Primary: props.Primary,
		Accent:  props.Accent,
		Media:   props.Media,
		Toggle: domain.PaletteToggle{
			Icon: props.Toggle.Icon,
			Name: props.Toggle.Name,
		},
	}
}

// mapNav builds the navigation tree by recursive descent. Every entry is
// either a bare path, a one-key {title: path} mapping, or a one-key
// {title: [children]} mapping.
func mapNav(node *yaml.Node) ([]domain.NavNode, error) {
	if node.Kind == 0 {
		return nil, nil
	}
	if node.Kind != yaml.SequenceNode {
		return nil, &domain.ParseError{
			Line: node.Line,
			Err:  fmt.Errorf("nav must be a sequence: %w", domain.ErrBadNavShape),
		}
	}
	return mapNavItems(node.Content)
}

func mapNavItems(items []*yaml.Node) ([]domain.NavNode, error) {
	if len(items) == 0 {
		return nil, nil
	}
	nodes := make([]domain.NavNode, 0, len(items))
	for _, item := range items {
		node, err := mapNavItem(item)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

func mapNavItem(item *yaml.Node) (domain.NavNode, error) {
	switch item.Kind {
	case yaml.ScalarNode:
		// Bare path; the renderer derives the title from the page itself.
		return domain.Leaf{Path: item.Value}, nil

	case yaml.MappingNode:
		if len(item.Content) != 2 {
			return nil, &domain.ParseError{
				Line: item.Line,
				Err: fmt.Errorf("nav mapping must have exactly one key, got %d: %w",
					len(item.Content)/2, domain.ErrBadNavShape),
			}
		}
		key, value := item.Content[0], item.Content[1]
		if key.Kind != yaml.ScalarNode {
			return nil, &domain.ParseError{
				Line: key.Line,
				Err:  fmt.Errorf("nav title must be a string: %w", domain.ErrBadNavShape),
			}
		}

		switch value.Kind {
		case yaml.ScalarNode:
			return domain.Leaf{Title: key.Value, Path: value.Value}, nil
		case yaml.SequenceNode:
			children, err := mapNavItems(value.Content)
			if err != nil {
				return nil, err
			}
			return domain.Section{Title: key.Value, Children: children}, nil
		default:
			return nil, &domain.ParseError{
				Line: value.Line,
				Err: fmt.Errorf("nav entry %q must map to a path or a sequence: %w",
					key.Value, domain.ErrBadNavShape),
			}
		}

	default:
		return nil, &domain.ParseError{
			Line: item.Line,
			Err:  domain.ErrBadNavShape,
		}
	}
}

// mapExtensions maps the markdown_extensions sequence, preserving order.
// Names are checked against the renderer registry so a typo never yields a
// partially usable configuration.
func mapExtensions(node *yaml.Node) ([]domain.Extension, error) {
	entries, err := namedEntries(node, "markdown_extensions")
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}

	extensions := make([]domain.Extension, 0, len(entries))
	for _, e := range entries {
		if err := registry.ResolveExtension(e.name); err != nil {
			return nil, err
		}
		extensions = append(extensions, domain.Extension{Name: e.name, Options: e.options})
	}
	return extensions, nil
}

// mapPlugins maps the plugins sequence, preserving declaration order.
func mapPlugins(node *yaml.Node) ([]domain.Plugin, error) {
	entries, err := namedEntries(node, "plugins")
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}

	plugins := make([]domain.Plugin, 0, len(entries))
	for _, e := range entries {
		if _, err := registry.ResolvePlugin(e.name); err != nil {
			return nil, err
		}
		plugins = append(plugins, domain.Plugin{Name: e.name, Options: e.options})
	}
	return plugins, nil
}

type namedEntry struct {
	name    string
	options map[string]interface{}
}

// namedEntries decodes a sequence whose items are either a bare name or a
// single-key mapping of name to an option mapping.
func namedEntries(node *yaml.Node, section string) ([]namedEntry, error) {
	if node.Kind == 0 {
		return nil, nil
	}
	if node.Kind != yaml.SequenceNode {
		return nil, &domain.ParseError{
			Line: node.Line,
			Err:  fmt.Errorf("%s must be a sequence", section),
		}
	}

	entries := make([]namedEntry, 0, len(node.Content))
	for _, item := range node.Content {
		switch item.Kind {
		case yaml.ScalarNode:
			entries = append(entries, namedEntry{name: item.Value})

		case yaml.MappingNode:
			if len(item.Content) != 2 {
				return nil, &domain.ParseError{
					Line: item.Line,
					Err: fmt.Errorf("%s mapping must have exactly one key: %w",
						section, domain.ErrBadPluginShape),
				}
			}
			key, value := item.Content[0], item.Content[1]
			if key.Kind != yaml.ScalarNode {
				return nil, &domain.ParseError{
					Line: key.Line,
					Err:  fmt.Errorf("%s name must be a string", section),
				}
			}

			var options map[string]interface{}
			// A trailing "name:" with no options decodes from a null node.
			if value.Kind != 0 && !(value.Kind == yaml.ScalarNode && value.Tag == "!!null") {
				if err := value.Decode(&options); err != nil {
					return nil, &domain.ParseError{
						Line: value.Line,
						Err:  fmt.Errorf("%s %q options: %w", section, key.Value, err),
					}
				}
			}
			entries = append(entries, namedEntry{name: key.Value, options: options})

		default:
			return nil, &domain.ParseError{
				Line: item.Line,
				Err:  fmt.Errorf("%s entry: %w", section, domain.ErrBadPluginShape),
			}
		}
	}
	return entries, nil
}
