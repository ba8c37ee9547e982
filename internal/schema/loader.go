package schema

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mkvet/mkvet/internal/domain"
)

// Loader handles loading and parsing of the site configuration document.
type Loader struct {
	filePath string
}

// NewLoader creates a loader for the document at filePath.
func NewLoader(filePath string) *Loader {
	return &Loader{
		filePath: filePath,
	}
}

// Load reads and parses the configuration document into a domain.Config.
// Structural problems surface as *domain.ParseError; unknown extension or
// plugin names as their dedicated error types. No partial configuration is
// ever returned alongside an error.
func (l *Loader) Load() (*domain.Config, error) {
	data, err := os.ReadFile(l.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config document: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		var pe *domain.ParseError
		if errors.As(err, &pe) && pe.Path == "" {
			pe.Path = l.filePath
		}
		return nil, err
	}
	return cfg, nil
}

// Path returns the document path this loader reads from.
func (l *Loader) Path() string { return l.filePath }

// Parse parses a configuration document held in memory.
func Parse(data []byte) (*domain.Config, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, &domain.ParseError{Err: domain.ErrEmptyDocument}
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &domain.ParseError{Err: err}
	}

	return mapDocument(&doc)
}
