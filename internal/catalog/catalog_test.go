package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()
	require.Equal(t, 5, c.Len())

	names := []string{"Product A", "Product B", "Product C", "Product D", "Product E"}
	for i, want := range names {
		p, ok := c.At(i)
		require.True(t, ok)
		require.Equal(t, want, p.Name)
	}

	p, ok := c.Lookup("product c")
	require.True(t, ok)
	require.Equal(t, "$200", p.Price)
	require.Equal(t, "Premium product C.", p.Description)
}

func TestProductsReturnsCopy(t *testing.T) {
	c := Default()
	ps := c.Products()
	ps[0].Name = "mutated"

	p, _ := c.At(0)
	require.Equal(t, "Product A", p.Name)
}

func TestNewCopiesInput(t *testing.T) {
	in := []Product{{Name: "X", Price: "$1", Description: "x"}}
	c, err := New(in)
	require.NoError(t, err)

	in[0].Name = "Y"
	p, _ := c.At(0)
	require.Equal(t, "X", p.Name)
}

func TestAtOutOfRange(t *testing.T) {
	c := Default()
	_, ok := c.At(-1)
	require.False(t, ok)
	_, ok = c.At(5)
	require.False(t, ok)

	var nilCatalog *Catalog
	require.Equal(t, 0, nilCatalog.Len())
	_, ok = nilCatalog.At(0)
	require.False(t, ok)
}

func TestIndex(t *testing.T) {
	c := Default()
	p, _ := c.At(3)
	require.Equal(t, 3, c.Index(p))

	// Structural equality: a copy with a changed field is a different product.
	p.Price = "$1"
	require.Equal(t, -1, c.Index(p))
}

func TestProductIDStable(t *testing.T) {
	a := Product{Name: "Product A", Price: "$100", Description: "one"}
	b := Product{Name: "Product A", Price: "$999", Description: "two"}
	require.Equal(t, a.ID(), b.ID())
	require.NotEqual(t, a.ID(), Product{Name: "Product B"}.ID())

	c := Default()
	got, ok := c.Lookup(a.ID())
	require.True(t, ok)
	require.Equal(t, "Product A", got.Name)
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name     string
		products []Product
		want     error
	}{
		{"empty", nil, ErrEmptyCatalog},
		{"no name", []Product{{Price: "$1", Description: "d"}}, ErrMissingField},
		{"no price", []Product{{Name: "A", Description: "d"}}, ErrMissingField},
		{"no description", []Product{{Name: "A", Price: "$1"}}, ErrMissingField},
		{"duplicate", []Product{
			{Name: "A", Price: "$1", Description: "d"},
			{Name: "A", Price: "$2", Description: "e"},
		}, ErrDuplicateName},
		{"duplicate ignoring case", []Product{
			{Name: "Product A", Price: "$1", Description: "d"},
			{Name: "product a", Price: "$2", Description: "e"},
		}, ErrDuplicateName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.products)
			require.Error(t, err)
			require.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadEmptyPathUsesDefault(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default().Products(), c.Products())
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "catalog.toml", `
[[product]]
name = "Kettle"
price = "$35"
description = "Boils water."

[[product]]
name = "Teapot"
price = "$20"
description = "Holds tea."
`)
	c, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())
	p, _ := c.At(1)
	require.Equal(t, Product{Name: "Teapot", Price: "$20", Description: "Holds tea."}, p)
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "catalog.yaml", `
products:
  - name: Kettle
    price: "$35"
    description: Boils water.
  - name: Teapot
    price: "$20"
    description: Holds tea.
`)
	c, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())
	p, _ := c.At(0)
	require.Equal(t, "Kettle", p.Name)
}

func TestLoadMarkdown(t *testing.T) {
	path := writeFile(t, "catalog.md", `# Kitchen catalog
## Kettle | $35
Boils water.
Fast.

## Teapot | $20
Holds *tea*.

## Broken header without price
ignored
`)
	c, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())

	p, _ := c.At(0)
	require.Equal(t, "Boils water.\nFast.", p.Description)
	p, _ = c.At(1)
	require.Equal(t, "$20", p.Price)
	require.Equal(t, "Holds *tea*.", p.Description)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	require.True(t, errors.Is(err, os.ErrNotExist))

	_, err = Load(writeFile(t, "catalog.json", `{}`))
	require.True(t, errors.Is(err, ErrUnsupportedFormat))

	_, err = Load(writeFile(t, "bad.toml", `[[product]`))
	require.Error(t, err)

	empty := writeFile(t, "empty.yaml", `products: []`)
	_, err = Load(empty)
	require.True(t, errors.Is(err, ErrEmptyCatalog))
	require.Contains(t, err.Error(), empty)

	dup := writeFile(t, "dup.yaml", "products:\n"+
		"  - {name: Product A, price: $1, description: one}\n"+
		"  - {name: product a, price: $2, description: two}\n")
	_, err = Load(dup)
	require.True(t, errors.Is(err, ErrDuplicateName))
	require.Contains(t, err.Error(), dup)

	missing := writeFile(t, "missing.md", "## Product A | $1\n")
	_, err = Load(missing)
	require.True(t, errors.Is(err, ErrMissingField))
	require.Contains(t, err.Error(), missing)
}
