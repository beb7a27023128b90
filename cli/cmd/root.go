package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/telhawk-systems/sdk-mockservers/cli/internal/config"
	"github.com/telhawk-systems/sdk-mockservers/cli/pkg/output"
)

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "mockctl",
	Short: "SDK mock server toolbox",
	Long: `mockctl works with the envelopes captured by the SDK integration mock servers.

Decode and inspect raw envelopes, generate sample ones, send them to a
running envelope server and stop servers at the end of a CI run.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("output")
		if err := output.ValidateFormat(format); err != nil {
			return err
		}
		if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
			color.NoColor = true
		}
		return nil
	},
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		output.New(os.Stdout, os.Stderr, "").Error("%v", err)
	}
	return err
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.mockctl/config.yaml)")
	rootCmd.PersistentFlags().String("profile", "", "profile to use (default: current profile)")
	rootCmd.PersistentFlags().String("output", output.FormatText, "output format: text, json, yaml")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")
}

func initConfig() {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not load config: %v\n", err)
		cfg = config.Default()
	}
}

func printer(cmd *cobra.Command) *output.Printer {
	format, _ := cmd.Flags().GetString("output")
	return output.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), format)
}

func activeProfile(cmd *cobra.Command) (*config.Profile, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	name, _ := cmd.Flags().GetString("profile")
	return cfg.GetProfile(name)
}

// serverURL is --url when given, the profile URL otherwise.
func serverURL(cmd *cobra.Command) (string, error) {
	if url, _ := cmd.Flags().GetString("url"); url != "" {
		return url, nil
	}
	p, err := activeProfile(cmd)
	if err != nil {
		return "", err
	}
	return p.URL, nil
}
