// Package seed provides the built-in menu, categories and staff accounts used
// when storage holds nothing yet.
package seed

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Lixing-Zhang/grand-hotel-dining/internal/models"
)

//go:embed seed.yaml
var defaultSeed []byte

// Data is a complete seed set
type Data struct {
	MenuItems  []models.MenuItem `yaml:"menuItems"`
	Categories []models.Category `yaml:"categories"`
	Admins     []models.Admin    `yaml:"admins"`
}

// Default returns the embedded seed set. Each call returns fresh slices.
func Default() Data {
	data, err := Parse(defaultSeed)
	if err != nil {
		panic(fmt.Sprintf("embedded seed data is invalid: %v", err))
	}
	return data
}

// LoadFile reads a seed set from a YAML file
func LoadFile(path string) (Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Data{}, fmt.Errorf("failed to read seed file: %w", err)
	}
	return Parse(raw)
}

// Parse decodes a YAML seed set and checks that menu items point at known categories
func Parse(raw []byte) (Data, error) {
	var data Data
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return Data{}, fmt.Errorf("failed to parse seed data: %w", err)
	}

	known := make(map[string]bool, len(data.Categories))
	for _, cat := range data.Categories {
		known[cat.ID] = true
	}
	for _, item := range data.MenuItems {
		if !known[item.Category] {
			return Data{}, fmt.Errorf("menu item %s references unknown category %q", item.ID, item.Category)
		}
	}

	return data, nil
}
