// Package browse is the view-state model of the catalog browser: which
// product is selected, how orientation maps to a layout mode, and which
// panes a given state renders.
package browse

import "github.com/theirongolddev/shelf/internal/catalog"

// Selection holds at most one selected product. The zero value is empty.
type Selection struct {
	product catalog.Product
	present bool
}

// Select makes p the current selection. Membership in a catalog is not checked.
func (s *Selection) Select(p catalog.Product) {
	s.product = p
	s.present = true
}

// Clear empties the selection. Clearing an empty selection is a no-op.
func (s *Selection) Clear() {
	s.product = catalog.Product{}
	s.present = false
}

// Current returns the selected product and whether one is selected.
func (s Selection) Current() (catalog.Product, bool) {
	return s.product, s.present
}

// Empty reports whether nothing is selected.
func (s Selection) Empty() bool {
	return !s.present
}
