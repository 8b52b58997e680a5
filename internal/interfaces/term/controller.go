package term

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"storefront/internal/application/storefront"
	"storefront/pkg/logger"
)

const usage = `Commands:
  list                 show the product catalog
  add <id> [qty]       add a product to the order (qty defaults to 1)
  remove <id>          remove a product from the order
  name <value>         set the customer name
  cpf <value>          set the customer CPF
  email <value>        set the customer email
  summary              show the order summary
  submit               submit the order
  quit                 leave without submitting`

// Controller drives the storefront from a line-oriented terminal. Every
// command that mutates the draft re-renders the summary, errors are
// printed for the user and logged for the operator, and a failed
// command never leaves partial state behind.
type Controller struct {
	svc *storefront.Service
	in  *bufio.Scanner
	out io.Writer
	log logger.Logger
}

func NewController(svc *storefront.Service, in io.Reader, out io.Writer, log logger.Logger) *Controller {
	return &Controller{
		svc: svc,
		in:  bufio.NewScanner(in),
		out: out,
		log: log,
	}
}

// Run fetches the catalog once, renders it, then reads commands until
// EOF or quit. A failed fetch is reported and the loop still starts
// with an empty catalog.
func (c *Controller) Run(ctx context.Context) error {
	products, err := c.svc.LoadCatalog(ctx)
	if err != nil {
		fmt.Fprintln(c.out, "Failed to fetch products")
	} else {
		RenderCatalog(c.out, products)
	}
	RenderSummary(c.out, c.svc.Summary())

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		fmt.Fprint(c.out, "> ")
		if !c.in.Scan() {
			return c.in.Err()
		}

		line := strings.TrimSpace(c.in.Text())
		if line == "" {
			continue
		}

		if quit := c.dispatch(ctx, line); quit {
			return nil
		}
	}
}

func (c *Controller) dispatch(ctx context.Context, line string) (quit bool) {
	cmd, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	switch cmd {
	case "list":
		RenderCatalog(c.out, c.svc.Catalog())

	case "add":
		c.handleAdd(rest)

	case "remove":
		id, err := strconv.ParseInt(rest, 10, 64)
		if err != nil {
			fmt.Fprintln(c.out, "usage: remove <product-id>")
			return false
		}
		c.svc.RemoveProduct(id)
		RenderSummary(c.out, c.svc.Summary())

	case "name":
		c.svc.SetCustomerName(rest)
		RenderSummary(c.out, c.svc.Summary())

	case "cpf":
		c.svc.SetCustomerCPF(rest)
		RenderSummary(c.out, c.svc.Summary())

	case "email":
		c.svc.SetCustomerEmail(rest)
		RenderSummary(c.out, c.svc.Summary())

	case "summary", "show":
		RenderSummary(c.out, c.svc.Summary())

	case "submit":
		c.handleSubmit(ctx)

	case "help":
		fmt.Fprintln(c.out, usage)

	case "quit", "exit":
		return true

	default:
		fmt.Fprintf(c.out, "unknown command %q (try \"help\")\n", cmd)
	}

	return false
}

func (c *Controller) handleAdd(rest string) {
	args := strings.Fields(rest)
	if len(args) < 1 || len(args) > 2 {
		fmt.Fprintln(c.out, "usage: add <product-id> [quantity]")
		return
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintln(c.out, "usage: add <product-id> [quantity]")
		return
	}

	qty := 1
	if len(args) == 2 {
		qty, err = strconv.Atoi(args[1])
		if err != nil {
			fmt.Fprintln(c.out, "quantity must be a positive integer")
			return
		}
	}

	if err := c.svc.AddProduct(id, qty); err != nil {
		fmt.Fprintf(c.out, "cannot add product: %v\n", err)
		c.log.Warn("add product rejected",
			logger.Int64("product_id", id),
			logger.Int("quantity", qty),
			logger.Error(err),
		)
		return
	}

	RenderSummary(c.out, c.svc.Summary())
}

func (c *Controller) handleSubmit(ctx context.Context) {
	conf, err := c.svc.Submit(ctx)
	if err != nil {
		fmt.Fprintf(c.out, "Failed to create order: %v\n", err)
		return
	}

	fmt.Fprintf(c.out, "Order created successfully! Order ID: %d\n", conf.OrderID)
	RenderSummary(c.out, c.svc.Summary())
}
