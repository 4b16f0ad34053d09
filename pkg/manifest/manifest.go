// Package manifest reads the product name and version from the application's
// package.json.
package manifest

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Metadata holds the product identity used for bundle and archive naming.
type Metadata struct {
	Name    string `yaml:"productName"`
	Version string `yaml:"version"`
}

// Load reads and parses the manifest at path. JSON is a subset of YAML, so
// package.json goes through the same decoder as the tool's own config.
// Both productName and version must be present and non-empty.
func Load(path string) (*Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	var meta Metadata
	if err := yaml.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}

	if meta.Name == "" {
		return nil, fmt.Errorf("manifest %s is missing productName", path)
	}
	if meta.Version == "" {
		return nil, fmt.Errorf("manifest %s is missing version", path)
	}

	return &meta, nil
}
