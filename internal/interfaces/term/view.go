package term

import (
	"fmt"
	"io"

	"storefront/internal/domain/catalog"
	"storefront/internal/domain/order"
)

// The view is rebuilt from a state snapshot on every render, earlier
// output is never patched. Drift between state and display is therefore
// impossible, and the lists are small enough that redraw cost does not
// matter.

func RenderCatalog(w io.Writer, products []catalog.Product) {
	fmt.Fprintln(w, "Products:")
	if len(products) == 0 {
		fmt.Fprintln(w, "  (no products available)")
		return
	}
	for _, p := range products {
		fmt.Fprintf(w, "  [%d] %s - %s\n", p.ID, p.Name, p.Price.Display())
	}
}

func RenderSummary(w io.Writer, s order.Summary) {
	fmt.Fprintln(w, "--- Order Summary ---")

	name := s.Customer.Name
	if name == "" {
		name = "N/A"
	}
	fmt.Fprintf(w, "Customer Name: %s\n", name)

	for _, item := range s.Items {
		fmt.Fprintf(w, "  %s: %d x %s  [remove %d]\n",
			item.ProductName, item.Quantity, item.Price.Display(), item.ProductID)
	}

	if s.TotalAvailable {
		fmt.Fprintf(w, "Total Amount: $%s\n", s.Total.StringFixed(2))
	} else {
		fmt.Fprintln(w, "Total Amount: unavailable")
	}
}
