package commands

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"racha/internal/events"
)

func eventsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Inspect ledger change events",
	}
	cmd.AddCommand(eventsTailCmd())
	return cmd
}

func eventsTailCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tail",
		Short: "Print change events from the broker until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.AMQPURL == "" {
				return fmt.Errorf("AMQP_URL is not configured")
			}

			client, err := events.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
			if err != nil {
				return err
			}
			defer client.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			err = client.ConsumeChanges(ctx, func(msg *events.ChangeMessage) error {
				fmt.Printf("%s\t%s\t%s\t%d\n",
					msg.Timestamp.Format("2006-01-02 15:04:05"),
					msg.Entity,
					msg.Op,
					msg.ID)
				return nil
			})
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
}
