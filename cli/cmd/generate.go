package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/telhawk-systems/sdk-mockservers/cli/internal/generate"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a sample envelope",
	Example: `  mockctl generate --items 3 -o event.envelope
  mockctl generate --attachment-size 4096 --gzip -o attachment.envelope`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		items, _ := cmd.Flags().GetInt("items")
		attachmentSize, _ := cmd.Flags().GetInt("attachment-size")
		gzip, _ := cmd.Flags().GetBool("gzip")
		seed, _ := cmd.Flags().GetInt64("seed")
		out, _ := cmd.Flags().GetString("out")

		res, err := generate.New(seed).Generate(generate.Options{
			Items:          items,
			AttachmentSize: attachmentSize,
			Gzip:           gzip,
		})
		if err != nil {
			return err
		}

		if out == "" {
			_, err := cmd.OutOrStdout().Write(res.Raw)
			return err
		}

		if err := os.WriteFile(out, res.Raw, 0o644); err != nil {
			return err
		}
		printer(cmd).Success("Wrote envelope %s with %d items to %s", res.EventID, res.Items, out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().Int("items", 1, "number of event, session or transaction items")
	generateCmd.Flags().Int("attachment-size", 0, "add a binary attachment of this many bytes")
	generateCmd.Flags().Bool("gzip", false, "gzip compress the envelope")
	generateCmd.Flags().Int64("seed", 0, "random seed (0 picks one)")
	generateCmd.Flags().StringP("out", "o", "", "write to file instead of stdout")
}
