package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/telhawk-systems/sdk-mockservers/cli/internal/client"
	"github.com/telhawk-systems/sdk-mockservers/envelope/pkg/envelope"
)

var sendCmd = &cobra.Command{
	Use:   "send <file>",
	Short: "POST a raw envelope to an envelope server",
	Example: `  mockctl send event.envelope
  mockctl send event.envelope --url http://127.0.0.1:8001 --gzip`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read envelope: %w", err)
		}

		if compress, _ := cmd.Flags().GetBool("gzip"); compress && !envelope.IsGzip(raw) {
			raw, err = envelope.Compress(raw)
			if err != nil {
				return err
			}
		}

		url, err := serverURL(cmd)
		if err != nil {
			return err
		}

		if err := client.NewMockServerClient(url).SendEnvelope(cmd.Context(), raw, envelope.IsGzip(raw)); err != nil {
			return err
		}

		printer(cmd).Success("Sent %d bytes to %s%s", len(raw), url, client.EnvelopePath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sendCmd)
	sendCmd.Flags().String("url", "", "envelope server URL (default: profile URL)")
	sendCmd.Flags().Bool("gzip", false, "gzip compress the envelope before sending")
}
