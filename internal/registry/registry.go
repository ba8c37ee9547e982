// Package registry mirrors the fixed set of plugins and markdown extensions
// the external renderer ships with. The loader only forwards declared names
// and options; anything outside these tables fails resolution.
package registry

import (
	"sort"

	"github.com/mkvet/mkvet/internal/domain"
)

// PluginHandle identifies a resolved plugin. mkvet never executes plugins;
// the handle is what gets forwarded to the renderer together with the
// declared options.
type PluginHandle struct {
	Name        string
	Description string
}

var plugins = map[string]PluginHandle{
	"search":    {Name: "search", Description: "client-side search index"},
	"i18n":      {Name: "i18n", Description: "multi-language page variants"},
	"tags":      {Name: "tags", Description: "page tag index"},
	"minify":    {Name: "minify", Description: "HTML/CSS/JS output minification"},
	"redirects": {Name: "redirects", Description: "moved-page redirect stubs"},
	"macros":    {Name: "macros", Description: "template macros in markdown"},
}

// extensions lists the markdown extension names the renderer recognizes,
// including the pymdownx family.
var extensions = map[string]struct{}{
	"abbr":                 {},
	"admonition":           {},
	"attr_list":            {},
	"def_list":             {},
	"footnotes":            {},
	"md_in_html":           {},
	"meta":                 {},
	"tables":               {},
	"toc":                  {},
	"pymdownx.arithmatex":  {},
	"pymdownx.betterem":    {},
	"pymdownx.caret":       {},
	"pymdownx.critic":      {},
	"pymdownx.details":     {},
	"pymdownx.emoji":       {},
	"pymdownx.highlight":   {},
	"pymdownx.inlinehilite": {},
	"pymdownx.keys":        {},
	"pymdownx.magiclink":   {},
	"pymdownx.mark":        {},
	"pymdownx.smartsymbols": {},
	"pymdownx.snippets":    {},
	"pymdownx.superfences": {},
	"pymdownx.tabbed":      {},
	"pymdownx.tasklist":    {},
	"pymdownx.tilde":       {},
}

// ResolvePlugin looks a plugin up by name against the fixed registry.
func ResolvePlugin(name string) (PluginHandle, error) {
	h, ok := plugins[name]
	if !ok {
		return PluginHandle{}, &domain.UnknownPluginError{Name: name}
	}
	return h, nil
}

// ResolveExtension checks an extension name against the fixed registry.
func ResolveExtension(name string) error {
	if _, ok := extensions[name]; !ok {
		return &domain.UnknownExtensionError{Name: name}
	}
	return nil
}

// KnownExtension reports whether name is recognized by the renderer.
func KnownExtension(name string) bool {
	_, ok := extensions[name]
	return ok
}

// KnownPlugin reports whether name is recognized by the renderer.
func KnownPlugin(name string) bool {
	_, ok := plugins[name]
	return ok
}

// PluginNames returns the registry's plugin names, sorted.
func PluginNames() []string {
	names := make([]string, 0, len(plugins))
	for name := range plugins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ExtensionNames returns the registry's extension names, sorted.
func ExtensionNames() []string {
	names := make([]string, 0, len(extensions))
	for name := range extensions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
