package cli

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/iliyamo/fyyur/internal/queue"
)

func newConsumeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "consume",
		Short: "Append listing events from RabbitMQ to the activity log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := opts.load(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			fmt.Fprintf(cmd.OutOrStdout(), "%s writing %s to %s\n", okMark("✔"), queue.ActivityQueueName, cfg.Events.ActivityLogPath)
			err = queue.StartActivityConsumer(ctx, cfg.Events.URL, cfg.Events.ActivityLogPath, log)
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
}
