package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

var (
	// ErrEmptyCatalog is returned when a source holds no products.
	ErrEmptyCatalog = errors.New("catalog: no products")
	// ErrDuplicateName is returned when two products share a name.
	ErrDuplicateName = errors.New("catalog: duplicate product name")
	// ErrMissingField is returned when a product lacks a name, price, or description.
	ErrMissingField = errors.New("catalog: missing product field")
	// ErrUnsupportedFormat is returned for unknown file extensions.
	ErrUnsupportedFormat = errors.New("catalog: unsupported file format")
)

type tomlFile struct {
	Products []Product `toml:"product"`
}

type yamlFile struct {
	Products []Product `yaml:"products"`
}

// Load reads a catalog from path. The decoder is chosen by extension:
// .toml, .yaml/.yml, or .md. An empty path yields the built-in catalog.
// path is used as given; callers expand ~ (see config.ExpandHome).
func Load(path string) (*Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}

	products, err := Decode(filepath.Ext(path), data)
	if err != nil {
		return nil, fmt.Errorf("loading catalog %s: %w", path, err)
	}
	c, err := New(products)
	if err != nil {
		return nil, fmt.Errorf("loading catalog %s: %w", path, err)
	}
	return c, nil
}

// Decode parses catalog data in the format named by ext.
func Decode(ext string, data []byte) ([]Product, error) {
	switch strings.ToLower(ext) {
	case ".toml":
		var f tomlFile
		if err := toml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parsing toml: %w", err)
		}
		return trimAll(f.Products), nil
	case ".yaml", ".yml":
		var f yamlFile
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parsing yaml: %w", err)
		}
		return trimAll(f.Products), nil
	case ".md", ".markdown":
		return ParseMarkdown(string(data)), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// ParseMarkdown parses a catalog written as markdown.
// Format:
//
//	## Product Name | $100
//	Description text (can be multiple lines)
//
// Lines starting with a single # are comments.
func ParseMarkdown(content string) []Product {
	var products []Product
	var current *Product
	var descLines []string

	flush := func() {
		if current == nil {
			return
		}
		current.Description = strings.TrimSpace(strings.Join(descLines, "\n"))
		products = append(products, *current)
		current = nil
		descLines = nil
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(line, "## ") {
			flush()
			header := strings.TrimSpace(strings.TrimPrefix(line, "## "))
			name, price, ok := strings.Cut(header, "|")
			if !ok {
				continue
			}
			current = &Product{
				Name:  strings.TrimSpace(name),
				Price: strings.TrimSpace(price),
			}
			continue
		}

		if strings.HasPrefix(line, "#") && !strings.HasPrefix(line, "##") {
			continue
		}

		if current != nil {
			descLines = append(descLines, line)
		}
	}
	flush()

	return products
}

func validate(products []Product) error {
	if len(products) == 0 {
		return ErrEmptyCatalog
	}
	seen := make(map[string]int, len(products))
	for i, p := range products {
		switch {
		case strings.TrimSpace(p.Name) == "":
			return fmt.Errorf("%w: product %d has no name", ErrMissingField, i+1)
		case strings.TrimSpace(p.Price) == "":
			return fmt.Errorf("%w: %q has no price", ErrMissingField, p.Name)
		case strings.TrimSpace(p.Description) == "":
			return fmt.Errorf("%w: %q has no description", ErrMissingField, p.Name)
		}
		// Lookup is case-insensitive, so names must be unique ignoring case.
		key := strings.ToLower(p.Name)
		if prev, dup := seen[key]; dup {
			return fmt.Errorf("%w: %q at %d and %d", ErrDuplicateName, p.Name, prev+1, i+1)
		}
		seen[key] = i
	}
	return nil
}

func trimAll(products []Product) []Product {
	for i := range products {
		products[i].Name = strings.TrimSpace(products[i].Name)
		products[i].Price = strings.TrimSpace(products[i].Price)
		products[i].Description = strings.TrimSpace(products[i].Description)
	}
	return products
}
