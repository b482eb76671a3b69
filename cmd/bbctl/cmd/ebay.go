package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/bluberry/bluberry/internal/api/client"
)

var errOperationFailed = errors.New("operation failed")

func ebayCmd() *cobra.Command {
	ebayRoot := &cobra.Command{
		Use:   "ebay",
		Short: "List items on eBay and manage the seller connection",
	}

	ebayRoot.AddCommand(
		ebayListCmd(),
		ebayUnlistCmd(),
		ebayAuthCmd(),
	)
	return ebayRoot
}

func ebayListCmd() *cobra.Command {
	var (
		opts  apiclient.ListOptions
		price float64
	)

	c := &cobra.Command{
		Use:   "list <item-id>",
		Short: "Publish an item on eBay",
		Example: `  bbctl ebay list 5b0c7a52-1111-4c55-9a0e-0c1d2e3f4a5b
  bbctl ebay list 5b0c7a52-1111-4c55-9a0e-0c1d2e3f4a5b --price 99.99 --quantity 2`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			if c.Flags().Changed("price") {
				opts.Price = &price
			}
			out, err := newClient().ListItem(c.Context(), args[0], &opts)
			if err != nil {
				return err
			}
			return reportOutcome(c, out)
		},
	}

	c.Flags().Float64Var(&price, "price", 0, "override the item's asking price")
	c.Flags().IntVar(&opts.Quantity, "quantity", 0, "available quantity (default 1)")
	c.Flags().StringVar(&opts.CategoryID, "category", "", "override the default eBay category id")
	return c
}

func ebayUnlistCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "unlist <item-id>",
		Short:   "Withdraw an item's eBay offer",
		Example: `  bbctl ebay unlist 5b0c7a52-1111-4c55-9a0e-0c1d2e3f4a5b`,
		Args:    cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			out, err := newClient().UnlistItem(c.Context(), args[0])
			if err != nil {
				return err
			}
			return reportOutcome(c, out)
		},
	}
}

// reportOutcome prints the outcome and turns a failed one into a non-zero
// exit.
func reportOutcome(c *cobra.Command, out *apiclient.Outcome) error {
	var err error
	if jsonOutput() {
		err = outputJSON(c.OutOrStdout(), out)
	} else {
		err = printOutcome(c.OutOrStdout(), out)
	}
	if err != nil {
		return err
	}
	if !out.Success {
		c.SilenceErrors = true
		return errOperationFailed
	}
	return nil
}

func ebayAuthCmd() *cobra.Command {
	authRoot := &cobra.Command{
		Use:   "auth",
		Short: "Connect the seller's eBay account",
	}

	var state string
	urlCmd := &cobra.Command{
		Use:   "url",
		Short: "Print the eBay consent URL",
		RunE: func(c *cobra.Command, _ []string) error {
			u, err := newClient().EbayAuthURL(c.Context(), state)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(c.OutOrStdout(), u)
			}
			fmt.Fprintln(c.OutOrStdout(), u.URL)
			return nil
		},
	}
	urlCmd.Flags().StringVar(&state, "state", "", "state value echoed to the callback")

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show whether the eBay account is connected",
		RunE: func(c *cobra.Command, _ []string) error {
			st, err := newClient().EbayAuthStatus(c.Context())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(c.OutOrStdout(), st)
			}
			return printAuthStatus(c.OutOrStdout(), st)
		},
	}

	authRoot.AddCommand(urlCmd, statusCmd)
	return authRoot
}
