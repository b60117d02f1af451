package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/shelf/internal/browse"
	"github.com/theirongolddev/shelf/internal/catalog"
	"github.com/theirongolddev/shelf/internal/output"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "list",
		Aliases:     []string{"ls"},
		Short:       "Print the catalog in order",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationCatalog: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			resp := output.CatalogResponse{
				Source:   catalogSource,
				Count:    cat.Len(),
				Products: make([]output.ProductResponse, 0, cat.Len()),
			}
			for i, p := range cat.Products() {
				resp.Products = append(resp.Products, productResponse(i, p))
			}

			return GetFormatter(cmd).OutputData(resp, func(w io.Writer) error {
				table := output.NewTable(w, "#", "NAME", "PRICE", "DESCRIPTION")
				for _, p := range resp.Products {
					table.AddRow(strconv.Itoa(p.Position), p.Name, p.Price, p.Description)
				}
				if err := table.Render(); err != nil {
					return err
				}
				_, err := fmt.Fprintf(w, "\n%s from %s\n", output.CountStr(resp.Count, "product", "products"), resp.Source)
				return err
			})
		},
	}
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name|id>",
		Short: "Print one product's details",
		Long: `Print one product's details. Products are matched by name
(case-insensitive) or by the id shown in 'shelf list --json'.`,
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{annotationCatalog: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, ok := cat.Lookup(args[0])
			if !ok {
				return output.ProductNotFoundError(args[0])
			}
			resp := productResponse(cat.Index(p), p)

			return GetFormatter(cmd).OutputData(resp, func(w io.Writer) error {
				pane := browse.DetailPane{Product: &p}
				for _, f := range pane.Fields() {
					if _, err := fmt.Fprintf(w, "%-12s %s\n", f.Label+":", f.Value); err != nil {
						return err
					}
				}
				_, err := fmt.Fprintf(w, "%-12s %s\n", "ID:", resp.ID)
				return err
			})
		},
	}
}

// productResponse converts a product at 0-based catalog position i.
func productResponse(i int, p catalog.Product) output.ProductResponse {
	return output.ProductResponse{
		Position:    i + 1,
		ID:          p.ID(),
		Name:        p.Name,
		Price:       p.Price,
		Description: p.Description,
	}
}
