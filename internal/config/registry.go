package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/couchcryptid/cyclone-track-service/internal/domain"
)

// DatasetSpec describes one dataset in the registry manifest. Exactly one
// of Path or URL must be set.
type DatasetSpec struct {
	Name   string `yaml:"name"`
	Format string `yaml:"format"`
	Path   string `yaml:"path,omitempty"`
	URL    string `yaml:"url,omitempty"`

	// IDMode is the default identifier mode for lookups against this
	// dataset; "name" when omitted.
	IDMode string `yaml:"id_mode,omitempty"`
}

// Mode returns the dataset's identifier mode, defaulting to name selection.
func (s DatasetSpec) Mode() domain.IDMode {
	if s.IDMode == "" {
		return domain.IDModeName
	}
	return domain.IDMode(s.IDMode)
}

// Registry is the parsed dataset manifest.
type Registry struct {
	Datasets []DatasetSpec `yaml:"datasets"`
}

// LoadRegistry reads and validates the YAML dataset manifest at path.
func LoadRegistry(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read registry: %w", err)
	}

	var reg Registry
	if err := yaml.Unmarshal(data, &reg); err != nil {
		return nil, fmt.Errorf("parse registry: %w", err)
	}

	if len(reg.Datasets) == 0 {
		return nil, fmt.Errorf("registry %s declares no datasets", path)
	}

	seen := make(map[string]struct{}, len(reg.Datasets))
	for i, ds := range reg.Datasets {
		if ds.Name == "" {
			return nil, fmt.Errorf("registry dataset %d has no name", i)
		}
		if _, dup := seen[ds.Name]; dup {
			return nil, fmt.Errorf("registry dataset %q declared twice", ds.Name)
		}
		seen[ds.Name] = struct{}{}

		if ds.Format == "" {
			return nil, fmt.Errorf("dataset %q has no format", ds.Name)
		}
		if (ds.Path == "") == (ds.URL == "") {
			return nil, fmt.Errorf("dataset %q needs exactly one of path or url", ds.Name)
		}
		if !ds.Mode().Valid() {
			return nil, fmt.Errorf("dataset %q has invalid id_mode %q", ds.Name, ds.IDMode)
		}
	}

	return &reg, nil
}
