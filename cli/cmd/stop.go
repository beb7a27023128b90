package cmd

import (
	"github.com/spf13/cobra"

	"github.com/telhawk-systems/sdk-mockservers/cli/internal/client"
)

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop a running mock server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		url, err := serverURL(cmd)
		if err != nil {
			return err
		}

		if err := client.NewMockServerClient(url).Stop(cmd.Context()); err != nil {
			return err
		}

		printer(cmd).Success("Stop requested for %s", url)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(stopCmd)
	stopCmd.Flags().String("url", "", "mock server URL (default: profile URL)")
}
