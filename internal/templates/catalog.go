package templates

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

var ErrNotFound = errors.New("template not found")

// Catalog is an immutable, ordered list of templates.
type Catalog struct {
	items []Template
	byID  map[string]int
}

type catalogFile struct {
	Templates []Template `yaml:"templates"`
}

// Default returns the built-in catalog.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Load reads the catalog at path, or the built-in one when path is empty.
func Load(path string) (*Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return Default()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read template catalog: %w", err)
	}
	return Parse(raw)
}

// Parse decodes a YAML catalog. IDs must be unique and non-empty.
func Parse(raw []byte) (*Catalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	var file catalogFile
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("decode template catalog: %w", err)
	}

	c := &Catalog{
		items: make([]Template, 0, len(file.Templates)),
		byID:  make(map[string]int, len(file.Templates)),
	}
	for i, t := range file.Templates {
		t.ID = strings.TrimSpace(t.ID)
		if t.ID == "" {
			return nil, fmt.Errorf("template %d: id is required", i)
		}
		if _, dup := c.byID[t.ID]; dup {
			return nil, fmt.Errorf("template %q: duplicate id", t.ID)
		}
		if t.Features == nil {
			t.Features = []string{}
		}
		c.byID[t.ID] = len(c.items)
		c.items = append(c.items, t)
	}
	return c, nil
}

// All returns every template in catalog order.
func (c *Catalog) All() []Template {
	out := make([]Template, len(c.items))
	for i, t := range c.items {
		out[i] = t.clone()
	}
	return out
}

// Get looks up a template by exact ID.
func (c *Catalog) Get(id string) (Template, error) {
	idx, ok := c.byID[id]
	if !ok {
		return Template{}, ErrNotFound
	}
	return c.items[idx].clone(), nil
}

// ByCategory filters by category, ignoring case. No match yields an empty slice.
func (c *Catalog) ByCategory(category string) []Template {
	out := []Template{}
	for _, t := range c.items {
		if strings.EqualFold(t.Category, category) {
			out = append(out, t.clone())
		}
	}
	return out
}
