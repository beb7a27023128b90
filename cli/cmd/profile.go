package cmd

import (
	"github.com/spf13/cobra"

	"github.com/telhawk-systems/sdk-mockservers/cli/internal/config"
	"github.com/telhawk-systems/sdk-mockservers/cli/pkg/output"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage mock server profiles",
}

var profileSetCmd = &cobra.Command{
	Use:     "set <name>",
	Short:   "Create or update a profile and make it current",
	Example: `  mockctl profile set ci --url http://10.0.0.5:8000 --nats-url nats://10.0.0.5:4222`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		url, _ := cmd.Flags().GetString("url")
		natsURL, _ := cmd.Flags().GetString("nats-url")
		if url == "" {
			url = config.DefaultProfile().URL
		}

		if err := cfg.SaveProfile(args[0], url, natsURL); err != nil {
			return err
		}
		printer(cmd).Success("Profile %s saved", args[0])
		return nil
	},
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List profiles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p := printer(cmd)
		if p.Structured() {
			return p.Encode(cfg)
		}

		table := output.NewTable([]string{"", "NAME", "URL", "NATS"})
		for _, name := range cfg.ProfileNames() {
			current := ""
			if name == cfg.CurrentProfile {
				current = "*"
			}
			profile := cfg.Profiles[name]
			table.AddRow([]string{current, name, profile.URL, profile.NATSURL})
		}
		table.Render(p.Out)
		return nil
	},
}

var profileRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Delete a profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.RemoveProfile(args[0]); err != nil {
			return err
		}
		printer(cmd).Success("Profile %s removed", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileSetCmd, profileListCmd, profileRemoveCmd)

	profileSetCmd.Flags().String("url", "", "mock server URL")
	profileSetCmd.Flags().String("nats-url", "", "NATS URL for mockctl watch")
}
