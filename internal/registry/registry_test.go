package registry

import (
	"errors"
	"testing"

	"github.com/mkvet/mkvet/internal/domain"
)

func TestResolvePlugin(t *testing.T) {
	tests := []struct {
		name    string
		plugin  string
		wantErr bool
	}{
		{name: "search", plugin: "search", wantErr: false},
		{name: "i18n", plugin: "i18n", wantErr: false},
		{name: "unknown", plugin: "doesnotexist", wantErr: true},
		{name: "empty", plugin: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handle, err := ResolvePlugin(tt.plugin)
			if tt.wantErr {
				var pluginErr *domain.UnknownPluginError
				if !errors.As(err, &pluginErr) {
					t.Fatalf("ResolvePlugin(%q) error = %v, want *domain.UnknownPluginError", tt.plugin, err)
				}
				if pluginErr.Name != tt.plugin {
					t.Errorf("UnknownPluginError.Name = %q, want %q", pluginErr.Name, tt.plugin)
				}
				return
			}
			if err != nil {
				t.Fatalf("ResolvePlugin(%q) error = %v", tt.plugin, err)
			}
			if handle.Name != tt.plugin {
				t.Errorf("handle.Name = %q, want %q", handle.Name, tt.plugin)
			}
		})
	}
}

func TestResolveExtension(t *testing.T) {
	if err := ResolveExtension("pymdownx.superfences"); err != nil {
		t.Errorf("ResolveExtension(pymdownx.superfences) error = %v", err)
	}

	err := ResolveExtension("pymdownx.doesnotexist")
	var extErr *domain.UnknownExtensionError
	if !errors.As(err, &extErr) {
		t.Fatalf("ResolveExtension() error = %v, want *domain.UnknownExtensionError", err)
	}
	if extErr.Name != "pymdownx.doesnotexist" {
		t.Errorf("UnknownExtensionError.Name = %q, want pymdownx.doesnotexist", extErr.Name)
	}
}

func TestNamesAreSorted(t *testing.T) {
	plugins := PluginNames()
	for i := 1; i < len(plugins); i++ {
		if plugins[i-1] >= plugins[i] {
			t.Fatalf("PluginNames() not sorted: %v", plugins)
		}
	}
	if !KnownPlugin("search") || KnownPlugin("doesnotexist") {
		t.Error("KnownPlugin misclassifies names")
	}
	if !KnownExtension("admonition") || KnownExtension("nope") {
		t.Error("KnownExtension misclassifies names")
	}
}
