package store

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"resort-concierge/model"
)

const appDir = "resort-concierge"

//go:embed catalog.json
var embeddedCatalog []byte

// Catalog is the static resort data: sunbeds and the bar/kitchen menu.
type Catalog struct {
	Sunbeds []model.Sunbed   `json:"sunbeds"`
	Menu    []model.MenuItem `json:"menu"`
}

// Drinks returns the drink entries of the menu in catalog order.
func (c Catalog) Drinks() []model.MenuItem {
	return c.menuOfKind(model.MenuDrink)
}

// Food returns the food entries of the menu in catalog order.
func (c Catalog) Food() []model.MenuItem {
	return c.menuOfKind(model.MenuFood)
}

func (c Catalog) menuOfKind(kind model.MenuKind) []model.MenuItem {
	var items []model.MenuItem
	for _, item := range c.Menu {
		if item.Kind == kind {
			items = append(items, item)
		}
	}
	return items
}

// MenuItem looks an entry up by id.
func (c Catalog) MenuItem(id string) (model.MenuItem, bool) {
	for _, item := range c.Menu {
		if item.ID == id {
			return item, true
		}
	}
	return model.MenuItem{}, false
}

// LoadCatalog returns the catalog at path. With an empty path it looks for
// catalog.json in the user config dir and falls back to the built-in data.
func LoadCatalog(path string) (Catalog, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		override, err := configPath("catalog.json")
		if err == nil {
			if _, statErr := os.Stat(override); statErr == nil {
				path = override
			}
		}
	}
	if path == "" {
		return DefaultCatalog()
	}

	catalog, err := loadJSON[Catalog](path)
	if err != nil {
		return Catalog{}, fmt.Errorf("load catalog %s: %w", path, err)
	}
	if err := catalog.validate(); err != nil {
		return Catalog{}, fmt.Errorf("load catalog %s: %w", path, err)
	}
	return catalog, nil
}

// DefaultCatalog decodes the built-in catalog.
func DefaultCatalog() (Catalog, error) {
	var catalog Catalog
	if err := json.Unmarshal(embeddedCatalog, &catalog); err != nil {
		return Catalog{}, fmt.Errorf("decode built-in catalog: %w", err)
	}
	return catalog, catalog.validate()
}

func (c Catalog) validate() error {
	if len(c.Sunbeds) == 0 {
		return errors.New("catalog has no sunbeds")
	}
	seen := map[string]bool{}
	for _, sunbed := range c.Sunbeds {
		if strings.TrimSpace(sunbed.ID) == "" {
			return errors.New("sunbed id is required")
		}
		if seen[sunbed.ID] {
			return fmt.Errorf("duplicate sunbed id %q", sunbed.ID)
		}
		seen[sunbed.ID] = true
	}
	items := map[string]bool{}
	for _, item := range c.Menu {
		if strings.TrimSpace(item.ID) == "" {
			return fmt.Errorf("menu item %q has no id", item.Name)
		}
		if items[item.ID] {
			return fmt.Errorf("duplicate menu item id %q", item.ID)
		}
		if item.Price < 0 {
			return fmt.Errorf("menu item %q has a negative price", item.ID)
		}
		items[item.ID] = true
	}
	return nil
}

func loadJSON[T any](path string) (T, error) {
	var out T
	data, err := os.ReadFile(path)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, err
	}
	return out, nil
}

func configPath(name string) (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appDir, name), nil
}
