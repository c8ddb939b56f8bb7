package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/omlco/catalog/internal/client"
	"github.com/omlco/catalog/internal/ui"
	"github.com/spf13/cobra"
)

// browseCmd runs an interactive shell over the UI state controller: the held
// product list, search and category filters, and the create/edit form flow.
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the catalog interactively",
	RunE:  runBrowse,
}

func runBrowse(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	ctrl := ui.NewController(apiClient(), func(message string) {
		fmt.Fprintln(out, "! "+message)
	})

	// A failed load keeps the shell open with an empty list, the notice above
	// already told the user what happened.
	_ = ctrl.Load(cmd.Context())

	scanner := bufio.NewScanner(cmd.InOrStdin())
	printBrowseHelp(out)
	renderVisible(out, ctrl)

	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			renderVisible(out, ctrl)
			continue
		}

		command, arg, _ := strings.Cut(line, " ")
		arg = strings.TrimSpace(arg)

		switch command {
		case "q", "quit":
			return nil
		case "h", "help":
			printBrowseHelp(out)
		case "s", "search":
			ctrl.SetSearchTerm(arg)
			renderVisible(out, ctrl)
		case "c", "category":
			ctrl.SetCategoryFilter(arg)
			renderVisible(out, ctrl)
		case "categories":
			for _, category := range ctrl.Categories() {
				fmt.Fprintln(out, "  "+category)
			}
		case "r", "reload":
			if err := ctrl.Load(cmd.Context()); err == nil {
				renderVisible(out, ctrl)
			}
		case "add":
			ctrl.OpenCreate()
			submitForm(cmd, scanner, ctrl, ui.ProductForm{})
		case "edit":
			product, ok := findHeld(ctrl, arg)
			if !ok {
				fmt.Fprintf(out, "! no product with id %q in the list\n", arg)
				continue
			}
			ctrl.OpenEdit(product)
			submitForm(cmd, scanner, ctrl, ui.FormFromProduct(product))
		case "del", "delete":
			err := ctrl.Delete(cmd.Context(), arg, func(p client.Product) bool {
				fmt.Fprintf(out, "Delete %q? [y/N]: ", p.Name)
				if !scanner.Scan() {
					return false
				}
				return strings.EqualFold(strings.TrimSpace(scanner.Text()), "y")
			})
			if err != nil {
				fmt.Fprintf(out, "! %v\n", err)
				continue
			}
			renderVisible(out, ctrl)
		default:
			fmt.Fprintf(out, "! unknown command %q, try 'help'\n", command)
		}
	}
}

// submitForm prompts for every product field, then submits the open modal.
// Validation failures reprint the field errors and leave the modal open for
// another attempt; a blank name on retry cancels.
func submitForm(cmd *cobra.Command, scanner *bufio.Scanner, ctrl *ui.Controller, form ui.ProductForm) {
	out := cmd.OutOrStdout()

	for ctrl.ModalMode() != ui.ModalClosed {
		form.Name = promptField(out, scanner, "Name", form.Name)
		if form.Name == "" {
			fmt.Fprintln(out, "Cancelled")
			ctrl.Cancel()
			return
		}
		form.Category = promptField(out, scanner, "Category", form.Category)
		form.Description = promptField(out, scanner, "Description", form.Description)
		form.Price = promptField(out, scanner, "Price", form.Price)
		form.Stock = promptField(out, scanner, "Stock", form.Stock)
		form.Rating = promptField(out, scanner, "Rating (optional)", form.Rating)
		form.Image = promptField(out, scanner, "Image URL (optional)", form.Image)

		err := ctrl.Submit(cmd.Context(), form)
		if err == nil {
			fmt.Fprintln(out, "Saved")
			renderVisible(out, ctrl)
			return
		}

		var formErr *ui.FormError
		if errors.As(err, &formErr) {
			for field, message := range formErr.Fields {
				fmt.Fprintf(out, "! %s: %s\n", field, message)
			}
			continue
		}
		// API failure: the notice is already surfaced, drop back to the list.
		ctrl.Cancel()
		return
	}
}

// promptField reads one form field, keeping the current value on empty input.
func promptField(out io.Writer, scanner *bufio.Scanner, label, current string) string {
	if current != "" {
		fmt.Fprintf(out, "%s [%s]: ", label, current)
	} else {
		fmt.Fprintf(out, "%s: ", label)
	}
	if !scanner.Scan() {
		return current
	}
	input := strings.TrimSpace(scanner.Text())
	if input == "" {
		return current
	}
	return input
}

// findHeld looks a product up in the held list by id.
func findHeld(ctrl *ui.Controller, id string) (client.Product, bool) {
	for _, p := range ctrl.Products() {
		if p.ID == id {
			return p, true
		}
	}
	return client.Product{}, false
}

func renderVisible(out io.Writer, ctrl *ui.Controller) {
	visible := ctrl.Visible()
	for _, p := range visible {
		fmt.Fprintf(out, "  %-10s %-45s %-20s %9.2f  x%d\n", p.ID, p.Name, p.Category, p.Price, p.Stock)
	}
	fmt.Fprintf(out, "%d product(s) shown\n", len(visible))
}

func printBrowseHelp(out io.Writer) {
	fmt.Fprintln(out, `Commands:
  s <term>       search by name or description
  c <category>   filter by exact category ('c all' to reset)
  categories     list known categories
  add            create a product
  edit <id>      edit a product
  del <id>       delete a product (asks for confirmation)
  r              reload from the server
  h              help
  q              quit`)
}
