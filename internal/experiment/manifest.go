// Package experiment loads and validates run manifests.
//
// A manifest is the batch replacement for interactive data entry: it
// names the experiment and maps each culture day to its images, either
// as explicit paths or as a folder to scan. All user-input validation
// happens here so malformed input never reaches the processing core.
package experiment

import (
	"fmt"
	"os"

	"lipidscan/pkg/imagefiles"

	"gopkg.in/yaml.v3"
)

// DayEntry maps one culture day to its source images.
type DayEntry struct {
	Day    float64  `yaml:"day"`
	Images []string `yaml:"images,omitempty"`
	Folder string   `yaml:"folder,omitempty"`
}

// Manifest describes a complete analysis run.
type Manifest struct {
	Name    string     `yaml:"name"`
	Culture string     `yaml:"culture"`
	Days    []DayEntry `yaml:"days"`
}

// Load reads and validates a manifest from a YAML file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest %s: %w", path, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}

	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}
	return &m, nil
}

// Validate checks the manifest against the input contract.
func (m *Manifest) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("experiment name is required")
	}
	if m.Culture == "" {
		m.Culture = "Unnamed culture"
	}
	if len(m.Days) == 0 {
		return fmt.Errorf("at least one day is required")
	}

	seen := make(map[float64]bool, len(m.Days))
	for _, e := range m.Days {
		if seen[e.Day] {
			return fmt.Errorf("day %v is registered twice", e.Day)
		}
		seen[e.Day] = true

		if e.Folder == "" && len(e.Images) == 0 {
			return fmt.Errorf("day %v has no images and no folder", e.Day)
		}
		if e.Folder != "" && len(e.Images) > 0 {
			return fmt.Errorf("day %v: specify images or a folder, not both", e.Day)
		}

		if e.Folder != "" {
			info, err := os.Stat(e.Folder)
			if err != nil {
				return fmt.Errorf("day %v: folder %s: %w", e.Day, e.Folder, err)
			}
			if !info.IsDir() {
				return fmt.Errorf("day %v: %s is not a folder", e.Day, e.Folder)
			}
		}
		for _, p := range e.Images {
			if _, err := os.Stat(p); err != nil {
				return fmt.Errorf("day %v: image %s: %w", e.Day, p, err)
			}
			if !imagefiles.IsImage(p) {
				return fmt.Errorf("day %v: %s is not a recognized image format", e.Day, p)
			}
		}
	}
	return nil
}

// Resolve returns the ordered image paths for one day entry. Folder
// entries are scanned and sorted lexicographically; explicit paths keep
// their listed order.
func (e DayEntry) Resolve() ([]string, error) {
	if e.Folder == "" {
		return e.Images, nil
	}

	paths, err := imagefiles.ListDir(e.Folder)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no images found in %s", e.Folder)
	}
	return paths, nil
}
