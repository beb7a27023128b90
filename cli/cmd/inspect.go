package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/telhawk-systems/sdk-mockservers/cli/internal/inspect"
	"github.com/telhawk-systems/sdk-mockservers/cli/pkg/output"
	"github.com/telhawk-systems/sdk-mockservers/envelope/pkg/envelope"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Summarize a raw envelope file",
	Example: `  mockctl inspect crash.envelope
  mockctl inspect crash.envelope --output yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read envelope: %w", err)
		}

		decoded, err := envelope.Decode(raw)
		if err != nil {
			return err
		}
		summary := inspect.Summarize(decoded)

		p := printer(cmd)
		if p.Structured() {
			return p.Encode(summary)
		}

		if summary.EventID != "" {
			p.Info("Event ID:   %s", summary.EventID)
		}
		p.Info("Compressed: %t", summary.Compressed)
		p.Info("Size:       %d bytes (%d raw)", summary.Size, summary.RawSize)
		p.Info("Items:      %d (%d binary)", len(summary.Items), summary.BinaryPayloads)

		if len(summary.Items) > 0 {
			p.Println()
			table := output.NewTable([]string{"#", "TYPE", "PAYLOAD", "SIZE"})
			for i, item := range summary.Items {
				payload := "text"
				if item.Binary {
					payload = "binary"
				}
				size := strconv.Itoa(item.Size)
				if item.Size < 0 {
					payload, size = "none", "-"
				}
				table.AddRow([]string{strconv.Itoa(i + 1), item.Type, payload, size})
			}
			table.Render(p.Out)
		}

		for _, w := range summary.Warnings {
			p.Warn("%s", w)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
