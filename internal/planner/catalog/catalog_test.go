package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"room-planner/internal/planner/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	assert.Len(t, c.Entries(), len(models.AllTypes))
	for _, typ := range models.AllTypes {
		_, err := c.Entry(typ)
		assert.NoError(t, err, typ)
	}

	names := []string{}
	for _, tpl := range c.Templates() {
		names = append(names, tpl.Name)
	}
	assert.Equal(t, []string{"Modern Living", "Bedroom", "Office"}, names)

	eco := []models.FurnitureType{}
	for _, e := range c.Entries() {
		if e.Eco {
			eco = append(eco, e.Type)
		}
	}
	assert.ElementsMatch(t, []models.FurnitureType{models.TypeSofa, models.TypeBookshelf, models.TypePlant}, eco)
}

func TestLookups(t *testing.T) {
	c := Default()

	_, err := c.Entry("spaceship")
	assert.ErrorIs(t, err, ErrUnknownType)

	_, err = c.Template("Garage")
	assert.ErrorIs(t, err, ErrUnknownTemplate)

	tpl, err := c.Template("Office")
	require.NoError(t, err)
	assert.Len(t, tpl.Items, 3)

	shapes := c.Shapes()
	assert.Len(t, shapes, len(models.AllTypes))
}

func TestShapeFallback(t *testing.T) {
	c, err := Parse([]byte(`items: [{name: Lamp, type: lamp}]`))
	require.NoError(t, err)

	assert.Equal(t, Shape{Width: 1, Height: 1, Depth: 1, Color: "#888888"}, c.Shape(models.TypeLamp))
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown item type", `items: [{name: Car, type: car}]`},
		{"duplicate type", `items: [{name: A, type: lamp}, {name: B, type: lamp}]`},
		{"bad shape color", "items: [{name: Lamp, type: lamp}]\nshapes: {lamp: {width: 1, color: nope}}"},
		{"template with unknown item", "items: [{name: Lamp, type: lamp}]\ntemplates: [{name: T, items: [{type: bed}]}]"},
		{"bad template color", "items: [{name: Lamp, type: lamp}]\ntemplates: [{name: T, items: [{type: lamp, color: \"#zzz\"}]}]"},
		{"not yaml", `items: [`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.NotEmpty(t, c.Entries())

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`items: [{name: Rug, type: rug, category: decor}]`), 0o644))

	c, err = Load(path)
	require.NoError(t, err)
	entry, err := c.Entry(models.TypeRug)
	require.NoError(t, err)
	assert.Equal(t, "decor", entry.Category)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestTables(t *testing.T) {
	assert.Equal(t, 25000.0, Price(models.TypeSofa))
	assert.Equal(t, 1500.0, Price(models.TypePlant))
	assert.Equal(t, 0.0, Price("spaceship"))

	assert.Equal(t, 4.4, BaseArea(models.TypeBed))
	assert.Equal(t, 0.72, BaseArea(models.TypeTable))
	assert.Equal(t, 0.5, BaseArea(models.TypeRug))
}
