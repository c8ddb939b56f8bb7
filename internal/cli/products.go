package cli

import (
	"bufio"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/omlco/catalog/internal/client"
	"github.com/spf13/cobra"
)

var listCategory string

// listCmd prints all products, optionally narrowed to a category substring.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List products",
	RunE: func(cmd *cobra.Command, _ []string) error {
		api := apiClient()

		var (
			products []client.Product
			err      error
		)
		if listCategory != "" {
			products, err = api.GetProductsByCategory(cmd.Context(), listCategory)
		} else {
			products, err = api.GetProducts(cmd.Context())
		}
		if err != nil {
			return err
		}

		printProductTable(cmd, products)
		return nil
	},
}

// getCmd prints a single product in full.
var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		product, err := apiClient().GetProduct(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		printProduct(cmd, *product)
		return nil
	},
}

var createFlags = struct {
	name        string
	category    string
	description string
	price       float64
	stock       int
	rating      float64
	image       string
}{}

// createCmd creates a new product from flags.
var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a product",
	RunE: func(cmd *cobra.Command, _ []string) error {
		req := client.CreateProduct{
			Name:        createFlags.name,
			Category:    createFlags.category,
			Description: createFlags.description,
			Price:       createFlags.price,
			Stock:       createFlags.stock,
		}
		if cmd.Flags().Changed("rating") {
			req.Rating = &createFlags.rating
		}
		if cmd.Flags().Changed("image") {
			req.Image = &createFlags.image
		}

		product, err := apiClient().CreateProduct(cmd.Context(), req)
		if err != nil {
			return err
		}
		cmd.Printf("Created product %s\n", product.ID)
		printProduct(cmd, *product)
		return nil
	},
}

var updateFlags = struct {
	name        string
	category    string
	description string
	price       float64
	stock       int
	rating      float64
	image       string
}{}

// updateCmd sends a partial update built from the flags that were set.
var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update fields of a product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var req client.UpdateProduct
		if cmd.Flags().Changed("name") {
			req.Name = &updateFlags.name
		}
		if cmd.Flags().Changed("category") {
			req.Category = &updateFlags.category
		}
		if cmd.Flags().Changed("description") {
			req.Description = &updateFlags.description
		}
		if cmd.Flags().Changed("price") {
			req.Price = &updateFlags.price
		}
		if cmd.Flags().Changed("stock") {
			req.Stock = &updateFlags.stock
		}
		if cmd.Flags().Changed("rating") {
			req.Rating = &updateFlags.rating
		}
		if cmd.Flags().Changed("image") {
			req.Image = &updateFlags.image
		}

		product, err := apiClient().UpdateProduct(cmd.Context(), args[0], req)
		if err != nil {
			return err
		}
		cmd.Printf("Updated product %s\n", product.ID)
		printProduct(cmd, *product)
		return nil
	},
}

var deleteYes bool

// deleteCmd removes a product after an explicit confirmation.
var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		api := apiClient()
		id := args[0]

		if !deleteYes {
			product, err := api.GetProduct(cmd.Context(), id)
			if err != nil {
				return err
			}
			cmd.Printf("Delete %q? [y/N]: ", product.Name)
			reader := bufio.NewReader(cmd.InOrStdin())
			answer, _ := reader.ReadString('\n')
			if !strings.EqualFold(strings.TrimSpace(answer), "y") {
				cmd.Println("Aborted")
				return nil
			}
		}

		if err := api.DeleteProduct(cmd.Context(), id); err != nil {
			return err
		}
		cmd.Printf("Deleted product %s\n", id)
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listCategory, "category", "", "filter by category substring")

	createCmd.Flags().StringVar(&createFlags.name, "name", "", "product name")
	createCmd.Flags().StringVar(&createFlags.category, "category", "", "product category")
	createCmd.Flags().StringVar(&createFlags.description, "description", "", "product description")
	createCmd.Flags().Float64Var(&createFlags.price, "price", 0, "price, must be positive")
	createCmd.Flags().IntVar(&createFlags.stock, "stock", 0, "stock quantity, must be non-negative")
	createCmd.Flags().Float64Var(&createFlags.rating, "rating", 0, "rating from 0 to 5")
	createCmd.Flags().StringVar(&createFlags.image, "image", "", "image URL")
	_ = createCmd.MarkFlagRequired("name")
	_ = createCmd.MarkFlagRequired("category")
	_ = createCmd.MarkFlagRequired("description")
	_ = createCmd.MarkFlagRequired("price")
	_ = createCmd.MarkFlagRequired("stock")

	updateCmd.Flags().StringVar(&updateFlags.name, "name", "", "product name")
	updateCmd.Flags().StringVar(&updateFlags.category, "category", "", "product category")
	updateCmd.Flags().StringVar(&updateFlags.description, "description", "", "product description")
	updateCmd.Flags().Float64Var(&updateFlags.price, "price", 0, "price, must be positive")
	updateCmd.Flags().IntVar(&updateFlags.stock, "stock", 0, "stock quantity, must be non-negative")
	updateCmd.Flags().Float64Var(&updateFlags.rating, "rating", 0, "rating from 0 to 5")
	updateCmd.Flags().StringVar(&updateFlags.image, "image", "", "image URL")

	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "skip the confirmation prompt")
}

// printProductTable renders products as an aligned table.
func printProductTable(cmd *cobra.Command, products []client.Product) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tPRICE\tSTOCK\tRATING")
	for _, p := range products {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%d\t%.1f\n", p.ID, p.Name, p.Category, p.Price, p.Stock, p.Rating)
	}
	_ = w.Flush()
	cmd.Printf("%d product(s)\n", len(products))
}

// printProduct renders a single product in full.
func printProduct(cmd *cobra.Command, p client.Product) {
	cmd.Printf("ID:          %s\n", p.ID)
	cmd.Printf("Name:        %s\n", p.Name)
	cmd.Printf("Category:    %s\n", p.Category)
	cmd.Printf("Description: %s\n", p.Description)
	cmd.Printf("Price:       %.2f\n", p.Price)
	cmd.Printf("Stock:       %d\n", p.Stock)
	cmd.Printf("Rating:      %.1f\n", p.Rating)
	cmd.Printf("Image:       %s\n", p.Image)
}
