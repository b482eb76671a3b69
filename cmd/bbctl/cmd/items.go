package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/bluberry/bluberry/internal/api/client"
)

func itemsCmd() *cobra.Command {
	itemsRoot := &cobra.Command{
		Use:   "items",
		Short: "Submit and inspect items",
	}

	itemsRoot.AddCommand(
		itemsListCmd(),
		itemsGetCmd(),
		itemsSubmitCmd(),
	)
	return itemsRoot
}

func itemsListCmd() *cobra.Command {
	var params apiclient.ListItemsParams

	c := &cobra.Command{
		Use:   "list",
		Short: "List items",
		Example: `  bbctl items list
  bbctl items list --ebay-status listed --limit 20`,
		RunE: func(c *cobra.Command, _ []string) error {
			resp, err := newClient().ListItems(c.Context(), &params)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(c.OutOrStdout(), resp)
			}
			if len(resp.Items) == 0 {
				fmt.Fprintln(c.OutOrStdout(), "No items found.")
				return nil
			}
			if err := printItemsTable(c.OutOrStdout(), resp.Items); err != nil {
				return err
			}
			fmt.Fprintf(c.OutOrStdout(), "\nShowing %d of %d items\n", len(resp.Items), resp.Total)
			return nil
		},
	}

	c.Flags().StringVar(&params.Status, "status", "", "filter by status (pending, listed, unlisted)")
	c.Flags().StringVar(&params.EbayStatus, "ebay-status", "", "filter by eBay status (listed, unlisted)")
	c.Flags().IntVar(&params.Limit, "limit", 0, "max results (server default 50)")
	c.Flags().IntVar(&params.Offset, "offset", 0, "pagination offset")
	return c
}

func itemsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <id>",
		Short:   "Show item details",
		Example: `  bbctl items get 5b0c7a52-1111-4c55-9a0e-0c1d2e3f4a5b`,
		Args:    cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			it, err := newClient().GetItem(c.Context(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(c.OutOrStdout(), it)
			}
			return printItemDetail(c.OutOrStdout(), it)
		},
	}
}

func itemsSubmitCmd() *cobra.Command {
	var (
		req   apiclient.SubmitItemRequest
		price float64
	)

	c := &cobra.Command{
		Use:   "submit",
		Short: "Submit an item for resale",
		Example: `  bbctl items submit --name "Oak desk" --email me@example.com --condition "Like New" --price 120
  bbctl items submit --name Lamp --email me@example.com --image items/lamp-1.jpg`,
		RunE: func(c *cobra.Command, _ []string) error {
			if c.Flags().Changed("price") {
				req.Price = &price
			}
			it, err := newClient().SubmitItem(c.Context(), &req)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(c.OutOrStdout(), it)
			}
			fmt.Fprintf(c.OutOrStdout(), "Submitted item %s\n", it.ID)
			return nil
		},
	}

	c.Flags().StringVar(&req.Name, "name", "", "item name")
	c.Flags().StringVar(&req.Description, "description", "", "item description")
	c.Flags().StringVar(&req.Condition, "condition", "", "free-text condition, e.g. \"Like New\"")
	c.Flags().StringVar(&req.ImageRef, "image", "", "image URL or storage path")
	c.Flags().StringVar(&req.Email, "email", "", "contact email")
	c.Flags().StringVar(&req.Phone, "phone", "", "contact phone")
	c.Flags().Float64Var(&price, "price", 0, "asking price")
	cobra.CheckErr(c.MarkFlagRequired("name"))
	cobra.CheckErr(c.MarkFlagRequired("email"))
	return c
}
