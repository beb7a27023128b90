package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/telhawk-systems/sdk-mockservers/cli/pkg/output"
	"github.com/telhawk-systems/sdk-mockservers/common/messaging"
	"github.com/telhawk-systems/sdk-mockservers/common/logging"
	natsclient "github.com/telhawk-systems/sdk-mockservers/common/messaging/nats"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Follow envelopes as the envelope server stores them",
	Long: `Subscribe to the envelope events an envelope server publishes when it runs
with NATS enabled, and print one line per stored envelope.`,
	Example: `  mockctl watch
  mockctl watch --count 1 --output json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		natsURL, _ := cmd.Flags().GetString("nats-url")
		if natsURL == "" {
			p, err := activeProfile(cmd)
			if err != nil {
				return err
			}
			natsURL = p.NATSURL
		}
		count, _ := cmd.Flags().GetInt("count")

		natsCfg := natsclient.DefaultConfig()
		natsCfg.URL = natsURL
		natsCfg.Name = "mockctl"
		client, err := natsclient.NewClient(natsCfg, logging.Discard())
		if err != nil {
			return err
		}
		defer client.Close()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		p := printer(cmd)
		if !p.Structured() {
			p.Info("Watching %s on %s (Ctrl+C to stop)", messaging.SubjectEnvelopesAll, natsURL)
		}
		return watchEnvelopes(ctx, client, p, count)
	},
}

// watchEnvelopes prints saved-envelope events until ctx ends or count events
// were seen (count <= 0 means no limit).
func watchEnvelopes(ctx context.Context, sub messaging.Subscriber, p *output.Printer, count int) error {
	events := make(chan messaging.EnvelopeSaved, 16)

	subscription, err := sub.Subscribe(messaging.SubjectEnvelopesAll, func(_ context.Context, msg *messaging.Message) error {
		ev, err := messaging.ParseEnvelopeSaved(msg)
		if err != nil {
			p.Warn("Ignoring malformed event: %v", err)
			return nil
		}
		select {
		case events <- ev:
		case <-ctx.Done():
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("subscribe: %w", err)
	}
	defer subscription.Unsubscribe()

	// Events published before the server has seen the subscription are lost.
	if err := sub.Flush(); err != nil {
		return fmt.Errorf("subscribe: %w", err)
	}

	seen := 0
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if p.Structured() {
				if err := p.Encode(ev); err != nil {
					return err
				}
			} else {
				p.Success("%s  %s  items=%d binary=%d size=%d", ev.ReceivedAt.Format("15:04:05"), ev.Path, ev.Items, ev.BinaryPayloads, ev.Size)
			}
			seen++
			if count > 0 && seen >= count {
				return nil
			}
		}
	}
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().String("nats-url", "", "NATS server URL (default: profile NATS URL)")
	watchCmd.Flags().Int("count", 0, "exit after this many envelopes")
}
