package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/telhawk-systems/sdk-mockservers/envelope/pkg/envelope"
	"github.com/telhawk-systems/sdk-mockservers/envelope/pkg/storage"
)

var decodeCmd = &cobra.Command{
	Use:   "decode <file>",
	Short: "Decode a raw envelope file",
	Long: `Decode a raw (optionally gzip compressed) envelope into the text form the
envelope server stores. Binary payloads are replaced by a size placeholder.`,
	Example: `  mockctl decode crash.envelope
  mockctl decode crash.envelope --out-dir ./envelopes`,
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

		p := printer(cmd)
		for _, w := range decoded.Warnings {
			p.Warn("%s", w)
		}

		outDir, _ := cmd.Flags().GetString("out-dir")
		if outDir == "" {
			p.Println(decoded.Text())
			return nil
		}

		store, err := storage.NewFileStore(outDir)
		if err != nil {
			return err
		}
		rec, err := store.Save(cmd.Context(), decoded.Text())
		if err != nil {
			return err
		}

		if p.Structured() {
			return p.Encode(map[string]interface{}{"id": rec.ID, "path": rec.Path, "size": rec.Size})
		}
		p.Success("Envelope saved to %s", rec.Path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(decodeCmd)
	decodeCmd.Flags().String("out-dir", "", "store the decoded envelope in this directory instead of printing it")
}
