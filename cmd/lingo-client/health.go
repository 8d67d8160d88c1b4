package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check whether the server is up",
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := newClient().Health(cmd.Context())
		if err != nil {
			return fmt.Errorf("health check failed: %w", err)
		}
		fmt.Printf("%s %s %s\n", okMark,
			resultStyle.Render("server is "+resp.Status),
			labelStyle.Render("as of "+resp.Timestamp))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(healthCmd)
}
