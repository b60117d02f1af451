// Package catalog holds the static, ordered product catalog shown by the browser.
package catalog

import (
	"strings"

	"github.com/google/uuid"
)

// idNamespace scopes product IDs so the same name always maps to the same ID.
var idNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/theirongolddev/shelf/product"))

// Product is an immutable catalog record. Two products are the same product
// when all three fields are equal.
type Product struct {
	Name        string `toml:"name" yaml:"name" json:"name"`
	Price       string `toml:"price" yaml:"price" json:"price"`
	Description string `toml:"description" yaml:"description" json:"description"`
}

// ID returns a stable identifier derived from the product name.
func (p Product) ID() string {
	return uuid.NewSHA1(idNamespace, []byte(p.Name)).String()
}

// Catalog is a fixed, ordered sequence of products. It has no mutation
// operations; callers get copies.
type Catalog struct {
	products []Product
}

// New builds a catalog after validating every record.
func New(products []Product) (*Catalog, error) {
	if err := validate(products); err != nil {
		return nil, err
	}
	out := make([]Product, len(products))
	copy(out, products)
	return &Catalog{products: out}, nil
}

// Len returns the number of products.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.products)
}

// At returns the product at position i.
func (c *Catalog) At(i int) (Product, bool) {
	if c == nil || i < 0 || i >= len(c.products) {
		return Product{}, false
	}
	return c.products[i], true
}

// Products returns a copy of the products in catalog order.
func (c *Catalog) Products() []Product {
	if c == nil {
		return nil
	}
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// Index returns the position of p, or -1 when p is not in the catalog.
func (c *Catalog) Index(p Product) int {
	if c == nil {
		return -1
	}
	for i, q := range c.products {
		if q == p {
			return i
		}
	}
	return -1
}

// Lookup finds a product by name (case-insensitive) or by ID.
func (c *Catalog) Lookup(key string) (Product, bool) {
	key = strings.TrimSpace(key)
	if c == nil || key == "" {
		return Product{}, false
	}
	for _, p := range c.products {
		if strings.EqualFold(p.Name, key) || p.ID() == key {
			return p, true
		}
	}
	return Product{}, false
}

// Default returns the built-in reference catalog.
func Default() *Catalog {
	c, err := New(defaultProducts())
	if err != nil {
		panic("catalog: invalid built-in catalog: " + err.Error())
	}
	return c
}

func defaultProducts() []Product {
	return []Product{
		{Name: "Product A", Price: "$100", Description: "This is a great product A."},
		{Name: "Product B", Price: "$150", Description: "This is product B with more features."},
		{Name: "Product C", Price: "$200", Description: "Premium product C."},
		{Name: "Product D", Price: "$200", Description: "Premium product D."},
		{Name: "Product E", Price: "$200", Description: "Premium product E."},
	}
}
