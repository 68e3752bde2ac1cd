package main

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"

	"stay-pricing/internal/infra/events"
	"stay-pricing/internal/usecase/shared"

	"github.com/spf13/cobra"
)

func newWatchCmd() *cobra.Command {
	var (
		url      string
		exchange string
		queue    string
		binding  string
	)
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Print rate change events as JSON lines",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if url == "" {
				url = os.Getenv("AMQP_URL")
			}
			if url == "" {
				return errors.New("--amqp-url or AMQP_URL is required")
			}

			sub, err := events.NewAMQPSubscriber(url, exchange, queue, binding)
			if err != nil {
				return err
			}
			defer sub.Close()

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			err = sub.Run(ctx, printEvent(cmd.OutOrStdout()))
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
	cmd.Flags().StringVar(&url, "amqp-url", "", "broker URL (defaults to AMQP_URL)")
	cmd.Flags().StringVar(&exchange, "exchange", events.DefaultExchange, "topic exchange")
	cmd.Flags().StringVar(&queue, "queue", "", "durable queue name; a temporary queue when empty")
	cmd.Flags().StringVar(&binding, "binding", events.AllRatesChanges, "routing key pattern")
	return cmd
}

func printEvent(out io.Writer) events.HandlerFunc {
	enc := json.NewEncoder(out)
	return func(_ context.Context, evt shared.RatesChanged) error {
		return enc.Encode(evt)
	}
}
