package schema

import (
	"reflect"
	"testing"

	"pgregory.net/rapid"

	"github.com/mkvet/mkvet/internal/domain"
	"github.com/mkvet/mkvet/internal/registry"
)

// Loading a document, re-serializing it and loading it again must yield an
// identical in-memory configuration.
func TestRoundTripSample(t *testing.T) {
	first, err := Parse([]byte(sampleDocument))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	data, err := Encode(first)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	second, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(Encode()) error = %v\nencoded:\n%s", err, data)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("round trip changed the config\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cfg := genConfig(t)

		data, err := Encode(cfg)
		if err != nil {
			t.Fatalf("Encode() error = %v", err)
		}

		reloaded, err := Parse(data)
		if err != nil {
			t.Fatalf("Parse(Encode()) error = %v\nencoded:\n%s", err, data)
		}

		if !reflect.DeepEqual(cfg, reloaded) {
			t.Fatalf("round trip changed the config\nencoded:\n%s\nfirst:  %+v\nsecond: %+v",
				data, cfg, reloaded)
		}
	})
}

var (
	genTitle = rapid.StringMatching(`[A-Za-z][A-Za-z0-9 -]{0,14}`)
	genPath  = rapid.StringMatching(`[a-z][a-z0-9-]{0,7}(/[a-z][a-z0-9-]{0,7}){0,2}\.md`)
	genToken = rapid.StringMatching(`[a-z][a-z0-9._-]{0,11}`)
)

func genConfig(t *rapid.T) *domain.Config {
	cfg := &domain.Config{
		Site: domain.SiteMetadata{
			Name:      genTitle.Draw(t, "site_name"),
			Generator: rapid.Bool().Draw(t, "generator"),
		},
		DocsDir: "docs",
		SiteDir: "site",
		Theme:   domain.Theme{Name: "mkdocs"},
	}

	if rapid.Bool().Draw(t, "described") {
		cfg.Site.Description = genTitle.Draw(t, "description")
		cfg.Site.Copyright = genTitle.Draw(t, "copyright")
	}
	if rapid.Bool().Draw(t, "themed") {
		cfg.Theme = domain.Theme{
			Name:     "material",
			Logo:     genPath.Draw(t, "logo"),
			Features: rapid.SliceOfNDistinct(genToken, 1, 3, rapid.ID[string]).Draw(t, "features"),
		}
	}
	for i := 0; i < rapid.IntRange(0, 2).Draw(t, "socials"); i++ {
		cfg.Site.Social = append(cfg.Site.Social, domain.SocialLink{
			Icon: genToken.Draw(t, "social_icon"),
			Link: "https://example.org/" + genToken.Draw(t, "social_path"),
		})
	}

	cfg.Nav = genNav(t, 2)

	for _, name := range rapid.SliceOfNDistinct(
		rapid.SampledFrom(registry.ExtensionNames()), 0, 4, rapid.ID[string],
	).Draw(t, "extensions") {
		cfg.Extensions = append(cfg.Extensions, domain.Extension{
			Name:    name,
			Options: genOptions(t),
		})
	}

	for _, name := range rapid.SliceOfNDistinct(
		rapid.SampledFrom(registry.PluginNames()), 0, 3, rapid.ID[string],
	).Draw(t, "plugins") {
		cfg.Plugins = append(cfg.Plugins, domain.Plugin{
			Name:    name,
			Options: genOptions(t),
		})
	}

	return cfg
}

func genNav(t *rapid.T, depth int) []domain.NavNode {
	count := rapid.IntRange(1, 3).Draw(t, "nav_len")
	nodes := make([]domain.NavNode, 0, count)
	for i := 0; i < count; i++ {
		if depth > 0 && rapid.Bool().Draw(t, "is_section") {
			nodes = append(nodes, domain.Section{
				Title:    genTitle.Draw(t, "section_title"),
				Children: genNav(t, depth-1),
			})
			continue
		}
		leaf := domain.Leaf{Path: genPath.Draw(t, "leaf_path")}
		if rapid.Bool().Draw(t, "titled") {
			leaf.Title = genTitle.Draw(t, "leaf_title")
		}
		nodes = append(nodes, leaf)
	}
	return nodes
}

func genOptions(t *rapid.T) map[string]interface{} {
	count := rapid.IntRange(0, 3).Draw(t, "opt_len")
	if count == 0 {
		return nil
	}
	options := make(map[string]interface{}, count)
	keys := rapid.SliceOfNDistinct(
		rapid.StringMatching(`[a-z][a-z_]{0,9}`), count, count, rapid.ID[string],
	).Draw(t, "opt_keys")
	for _, key := range keys {
		switch rapid.IntRange(0, 2).Draw(t, "opt_kind") {
		case 0:
			options[key] = genToken.Draw(t, "opt_string")
		case 1:
			options[key] = rapid.Bool().Draw(t, "opt_bool")
		default:
			options[key] = rapid.IntRange(-1000, 1000).Draw(t, "opt_int")
		}
	}
	return options
}
