package domain

// Extension is a named text-rendering feature toggle with optional settings.
// Extensions are ordered; the renderer applies them in declaration order.
type Extension struct {
	Name string

	// Options is the raw option mapping as declared, nil when the extension
	// was declared as a bare name. Option semantics belong to the renderer;
	// the loader carries them through untouched.
	Options map[string]interface{}
}

// Plugin is an external-tool add-on referenced by name with optional
// configuration. Plugins are ordered; declaration order is preserved.
type Plugin struct {
	Name    string
	Options map[string]interface{}
}

// StringOption returns a string-valued option, or "" when absent or not a string.
func StringOption(options map[string]interface{}, key string) string {
	if v, ok := options[key].(string); ok {
		return v
	}
	return ""
}
