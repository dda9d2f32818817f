package main

import (
	"context"
	"os/signal"
	"recon/internal/config"
	"recon/pkg/logger"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// newsCommand constructs the 'news' command group.
func newsCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "news",
		Short: "Manages the cached news feed",
	}

	refresh := &cobra.Command{
		Use:   "refresh",
		Short: "Enqueues a news refresh, or runs it in place with --sync",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			sync, _ := cmd.Flags().GetBool("sync")

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()
			feed := newFeed(ctx, cfg, strg)

			if sync {
				n, err := feed.Refresh(ctx)
				if err != nil {
					logger.Fatal(ctx, "could not refresh news", zap.Error(err))
				}
				logger.Info(ctx, "news refreshed", zap.Int64("stored", n))

				return
			}

			added, err := feed.ScheduleRefresh(ctx)
			if err != nil {
				logger.Fatal(ctx, "could not schedule news refresh", zap.Error(err))
			}
			logger.Info(ctx, "news refresh scheduled", zap.Bool("alreadyQueued", !added))
		},
	}
	refresh.Flags().Bool("sync", false, "Refresh in this process instead of enqueuing a job")

	cmd.AddCommand(refresh)

	return cmd
}
