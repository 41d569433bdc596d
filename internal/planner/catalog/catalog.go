package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"room-planner/internal/planner/models"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// ============================================================
// Catalog
// ============================================================

//go:embed catalog.yaml
var embedded []byte

var (
	ErrUnknownType     = errors.New("unknown furniture type")
	ErrUnknownTemplate = errors.New("unknown template")
)

// Shape: габариты примитива для отрисовки типа.
type Shape struct {
	Width  float64 `yaml:"width" json:"width"`
	Height float64 `yaml:"height" json:"height"`
	Depth  float64 `yaml:"depth" json:"depth"`
	Color  string  `yaml:"color" json:"color"`
}

type document struct {
	Items     []models.CatalogEntry          `yaml:"items"`
	Shapes    map[models.FurnitureType]Shape `yaml:"shapes"`
	Templates []models.Template              `yaml:"templates"`
}

type Catalog struct {
	entries   []models.CatalogEntry
	templates []models.Template
	byType    map[models.FurnitureType]models.CatalogEntry
	shapes    map[models.FurnitureType]Shape
}

// Load читает каталог из YAML-файла; при пустом пути берётся встроенный.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Parse(embedded)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Default возвращает встроенный каталог.
func Default() *Catalog {
	c, err := Parse(embedded)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog: %v", err))
	}
	return c
}

// Parse разбирает и проверяет YAML-документ каталога.
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	c := &Catalog{
		byType: make(map[models.FurnitureType]models.CatalogEntry, len(doc.Items)),
		shapes: make(map[models.FurnitureType]Shape, len(doc.Shapes)),
	}

	for _, entry := range doc.Items {
		if !entry.Type.Valid() {
			return nil, fmt.Errorf("catalog item %q: %w: %s", entry.Name, ErrUnknownType, entry.Type)
		}
		if _, dup := c.byType[entry.Type]; dup {
			return nil, fmt.Errorf("catalog item %q: duplicate type %s", entry.Name, entry.Type)
		}
		c.byType[entry.Type] = entry
		c.entries = append(c.entries, entry)
	}

	for t, shape := range doc.Shapes {
		if !t.Valid() {
			return nil, fmt.Errorf("shape: %w: %s", ErrUnknownType, t)
		}
		if _, err := colorful.Hex(shape.Color); err != nil {
			return nil, fmt.Errorf("shape %s: invalid color %q", t, shape.Color)
		}
		c.shapes[t] = shape
	}

	for _, tpl := range doc.Templates {
		for i, item := range tpl.Items {
			if _, ok := c.byType[item.Type]; !ok {
				return nil, fmt.Errorf("template %q item %d: %w: %s", tpl.Name, i, ErrUnknownType, item.Type)
			}
			if item.Color != "" {
				if _, err := colorful.Hex(item.Color); err != nil {
					return nil, fmt.Errorf("template %q item %d: invalid color %q", tpl.Name, i, item.Color)
				}
			}
		}
		c.templates = append(c.templates, tpl)
	}

	return c, nil
}

// ============================================================
// Lookups
// ============================================================

func (c *Catalog) Entries() []models.CatalogEntry {
	return append([]models.CatalogEntry(nil), c.entries...)
}

func (c *Catalog) Templates() []models.Template {
	return append([]models.Template(nil), c.templates...)
}

func (c *Catalog) Entry(t models.FurnitureType) (models.CatalogEntry, error) {
	entry, ok := c.byType[t]
	if !ok {
		return models.CatalogEntry{}, fmt.Errorf("%w: %s", ErrUnknownType, t)
	}
	return entry, nil
}

func (c *Catalog) Template(name string) (models.Template, error) {
	for _, tpl := range c.templates {
		if tpl.Name == name {
			return tpl, nil
		}
	}
	return models.Template{}, fmt.Errorf("%w: %s", ErrUnknownTemplate, name)
}

// Shape возвращает габариты типа; для типа без описания куб 1×1×1.
func (c *Catalog) Shape(t models.FurnitureType) Shape {
	if shape, ok := c.shapes[t]; ok {
		return shape
	}
	return Shape{Width: 1, Height: 1, Depth: 1, Color: "#888888"}
}

// Shapes возвращает таблицу габаритов для всех известных типов.
func (c *Catalog) Shapes() map[models.FurnitureType]Shape {
	out := make(map[models.FurnitureType]Shape, len(models.AllTypes))
	for _, t := range models.AllTypes {
		out[t] = c.Shape(t)
	}
	return out
}
