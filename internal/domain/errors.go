package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyDocument  = errors.New("empty configuration document")
	ErrMissingSite    = errors.New("site_name is required")
	ErrMissingTheme   = errors.New("theme.name is required")
	ErrSnapshotEmpty  = errors.New("no configuration loaded yet")
	ErrBadNavShape    = errors.New("nav entry must be a path, a title mapping, or a section")
	ErrBadPluginShape = errors.New("plugin entry must be a name or a single-key mapping")
)

// ParseError reports a structurally malformed configuration document.
type ParseError struct {
	Path string // document path, may be empty when parsing from memory
	Line int    // 1-based line of the offending node, 0 when unknown
	Err  error
}

func (e *ParseError) Error() string {
	switch {
	case e.Path != "" && e.Line > 0:
		return fmt.Sprintf("parse %s:%d: %v", e.Path, e.Line, e.Err)
	case e.Path != "":
		return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
	case e.Line > 0:
		return fmt.Sprintf("parse line %d: %v", e.Line, e.Err)
	default:
		return fmt.Sprintf("parse: %v", e.Err)
	}
}

func (e *ParseError) Unwrap() error { return e.Err }

// MissingFileError reports every referenced path that does not resolve to an
// existing file under the docs root. Validation collects the full set in one
// pass rather than failing on the first miss.
type MissingFileError struct {
	Paths []string
}

func (e *MissingFileError) Error() string {
	if len(e.Paths) == 1 {
		return fmt.Sprintf("referenced file does not exist: %s", e.Paths[0])
	}
	return fmt.Sprintf("%d referenced files do not exist: %s",
		len(e.Paths), strings.Join(e.Paths, ", "))
}

// UnknownExtensionError reports an extension name absent from the registry.
type UnknownExtensionError struct {
	Name string
}

func (e *UnknownExtensionError) Error() string {
	return fmt.Sprintf("unknown markdown extension: %s", e.Name)
}

// UnknownPluginError reports a plugin name absent from the registry.
type UnknownPluginError struct {
	Name string
}

func (e *UnknownPluginError) Error() string {
	return fmt.Sprintf("unknown plugin: %s", e.Name)
}
