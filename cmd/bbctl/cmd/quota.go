package cmd

import (
	"github.com/spf13/cobra"
)

func quotaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quota",
		Short: "Show the eBay API call budget",
		RunE: func(c *cobra.Command, _ []string) error {
			q, err := newClient().Quota(c.Context())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(c.OutOrStdout(), q)
			}
			return printQuota(c.OutOrStdout(), q)
		},
	}
}
