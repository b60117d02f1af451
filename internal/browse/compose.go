package browse

import "github.com/theirongolddev/shelf/internal/catalog"

// Placeholder is shown in the detail pane when nothing is selected.
const Placeholder = "Select a product to view details."

// ListPane is the catalog list, in catalog order.
type ListPane struct {
	Entries []catalog.Product
}

// DetailPane shows one product, or the placeholder when Product is nil.
type DetailPane struct {
	Product     *catalog.Product
	Placeholder string
}

// Field is a labelled detail row.
type Field struct {
	Label string
	Value string
}

// Fields returns name, price, and description in display order.
// It returns nil when the pane has no product.
func (d DetailPane) Fields() []Field {
	if d.Product == nil {
		return nil
	}
	return []Field{
		{Label: "Name", Value: d.Product.Name},
		{Label: "Price", Value: d.Product.Price},
		{Label: "Description", Value: d.Product.Description},
	}
}

// Frame is the pane tree for one render. A nil pane is not rendered.
type Frame struct {
	Mode        Mode
	List        *ListPane
	Detail      *DetailPane
	BackVisible bool
}

// Panes returns the rendered pane names in left-to-right order.
func (f Frame) Panes() []string {
	var out []string
	if f.List != nil {
		out = append(out, "list")
	}
	if f.Detail != nil {
		out = append(out, "detail")
	}
	return out
}

// Compose decides what to render for a catalog, selection, and layout mode.
func Compose(c *catalog.Catalog, sel Selection, mode Mode) Frame {
	f := Frame{Mode: mode}
	p, selected := sel.Current()

	detail := func() *DetailPane {
		if selected {
			return &DetailPane{Product: &p}
		}
		return &DetailPane{Placeholder: Placeholder}
	}

	switch {
	case mode == Split:
		f.List = &ListPane{Entries: c.Products()}
		f.Detail = detail()
	case !selected:
		f.List = &ListPane{Entries: c.Products()}
	default:
		f.Detail = detail()
		f.BackVisible = true
	}
	return f
}
